package vector

import (
	"slices"

	"github.com/benbjohnson/immutable"
)

// DualSort stably sorts keys under cmp and applies the same permutation to
// values. Both vectors must have the same length.
func DualSort[K, V any](keys *Vector[K], values *Vector[V], cmp func(a, b K) int) {
	n := keys.Len()
	if n != values.Len() {
		panic("vector: DualSort length mismatch")
	}
	if n < 2 {
		return
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	slices.SortStableFunc(perm, func(a, b int) int {
		return cmp(keys.list.Get(a).val, keys.list.Get(b).val)
	})
	if slices.IsSorted(perm) {
		return
	}
	kb := immutable.NewListBuilder[*cell[K]]()
	vb := immutable.NewListBuilder[*cell[V]]()
	for _, i := range perm {
		kb.Append(keys.list.Get(i))
		vb.Append(values.list.Get(i))
	}
	keys.list = kb.List()
	values.list = vb.List()
}

// Equal reports whether a and b have the same length and eq holds for every
// pair of elements at the same position.
func Equal[T any](a, b Vector[T], eq func(x, y T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	if a.list == b.list {
		return true
	}
	for i := 0; i < a.Len(); i++ {
		if !eq(a.list.Get(i).val, b.list.Get(i).val) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically using cmp for elements.
func Compare[T any](a, b Vector[T], cmp func(x, y T) int) int {
	n := min(a.Len(), b.Len())
	for i := 0; i < n; i++ {
		if c := cmp(a.list.Get(i).val, b.list.Get(i).val); c != 0 {
			return c
		}
	}
	switch {
	case a.Len() < b.Len():
		return -1
	case a.Len() > b.Len():
		return 1
	}
	return 0
}
