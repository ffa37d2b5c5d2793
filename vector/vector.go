// Package vector provides Vector, a persistent indexed sequence.
//
// A Vector is backed by an immutable.List, so every modification produces a
// new tree that shares all untouched nodes with the previous one. Copying a
// Vector with Clone is O(1); the two copies then evolve independently.
//
// Elements are held in cells tagged with the owning Vector. GetMut hands out a
// pointer into a cell only when the cell is owned by the receiver; a cell
// shared with another version is copied first. This keeps repeated GetMut
// calls stable (same pointer) while never leaking a write into another
// version.
//
// Plain struct assignment of a Vector shares ownership, the same way a slice
// header does. Use Clone to obtain an independent version: it retires the
// token for every copy holding it, so each side copies before its next write.
package vector

import (
	"sort"

	"github.com/benbjohnson/immutable"
)

// Sharer is implemented by element types that hold Vectors of their own.
// Unshare is called on every element copied out of a shared cell, so that
// the copy stops claiming the nested storage of its source.
type Sharer interface {
	Unshare()
}

// token identifies the version allowed to write cells in place. A frozen
// token has been retired by Clone and no longer grants that right.
type token struct{ frozen bool }

type cell[T any] struct {
	owner *token
	val   T
}

// Vector is a persistent sequence of T. The zero value is an empty vector.
type Vector[T any] struct {
	list  *immutable.List[*cell[T]]
	owner *token
	// borrowed is set on views, which share owner with their source but
	// never write through it.
	borrowed bool
}

// New returns a vector holding items in order.
func New[T any](items ...T) Vector[T] {
	var v Vector[T]
	v.own()
	b := immutable.NewListBuilder[*cell[T]]()
	for _, x := range items {
		b.Append(&cell[T]{owner: v.owner, val: x})
	}
	v.list = b.List()
	return v
}

// own makes sure v has a list and a live ownership token of its own.
func (v *Vector[T]) own() {
	if v.owner == nil || v.owner.frozen || v.borrowed {
		v.owner = &token{}
		v.borrowed = false
	}
	if v.list == nil {
		v.list = immutable.NewList[*cell[T]]()
	}
}

func (v *Vector[T]) newCell(x T) *cell[T] {
	v.own()
	return &cell[T]{owner: v.owner, val: x}
}

// Len returns the number of elements.
func (v Vector[T]) Len() int {
	if v.list == nil {
		return 0
	}
	return v.list.Len()
}

// IsEmpty reports whether v has no elements.
func (v Vector[T]) IsEmpty() bool {
	return v.Len() == 0
}

func (v Vector[T]) inBounds(i int) bool {
	return i >= 0 && i < v.Len()
}

// Get returns a copy of the element at i.
func (v Vector[T]) Get(i int) (T, bool) {
	if !v.inBounds(i) {
		var zero T
		return zero, false
	}
	x := v.list.Get(i).val
	unshare(&x)
	return x, true
}

// GetMut returns a pointer to the element at i, or nil when i is out of
// range. The pointer stays valid until the vector is next cloned or
// structurally modified.
func (v *Vector[T]) GetMut(i int) *T {
	if !v.inBounds(i) {
		return nil
	}
	v.own()
	c := v.list.Get(i)
	if c.owner != v.owner {
		c = &cell[T]{owner: v.owner, val: c.val}
		unshare(&c.val)
		v.list = v.list.Set(i, c)
	}
	return &c.val
}

// Set replaces the element at i and returns the previous one.
// Returned and removed elements never share ownership with v.
// It panics if i is out of range.
func (v *Vector[T]) Set(i int, x T) T {
	if !v.inBounds(i) {
		panic("vector: Set index out of range")
	}
	old := v.list.Get(i).val
	unshare(&old)
	v.list = v.list.Set(i, v.newCell(x))
	return old
}

// PushBack appends x.
func (v *Vector[T]) PushBack(x T) {
	c := v.newCell(x)
	v.list = v.list.Append(c)
}

// PushFront prepends x.
func (v *Vector[T]) PushFront(x T) {
	c := v.newCell(x)
	v.list = v.list.Prepend(c)
}

// Insert places x at position i, shifting later elements up by one.
// i may equal Len. It panics if i is out of range.
func (v *Vector[T]) Insert(i int, x T) {
	n := v.Len()
	if i < 0 || i > n {
		panic("vector: Insert index out of range")
	}
	switch i {
	case n:
		v.PushBack(x)
		return
	case 0:
		v.PushFront(x)
		return
	}
	c := v.newCell(x)
	// rebuild whichever side of i is shorter on top of the other side
	if i < n-i {
		l := v.list.Slice(i, n).Prepend(c)
		for j := i - 1; j >= 0; j-- {
			l = l.Prepend(v.list.Get(j))
		}
		v.list = l
		return
	}
	l := v.list.Slice(0, i).Append(c)
	for j := i; j < n; j++ {
		l = l.Append(v.list.Get(j))
	}
	v.list = l
}

// Remove deletes the element at i and returns it.
func (v *Vector[T]) Remove(i int) (T, bool) {
	n := v.Len()
	if !v.inBounds(i) {
		var zero T
		return zero, false
	}
	old := v.list.Get(i).val
	unshare(&old)
	switch {
	case n == 1:
		v.list = immutable.NewList[*cell[T]]()
	case i == 0:
		v.list = v.list.Slice(1, n)
	case i == n-1:
		v.list = v.list.Slice(0, n-1)
	case i < n-1-i:
		l := v.list.Slice(i+1, n)
		for j := i - 1; j >= 0; j-- {
			l = l.Prepend(v.list.Get(j))
		}
		v.list = l
	default:
		l := v.list.Slice(0, i)
		for j := i + 1; j < n; j++ {
			l = l.Append(v.list.Get(j))
		}
		v.list = l
	}
	return old, true
}

// Append moves every element of other onto the end of v, keeping order.
// The elements stay shared with other, so other should be dropped
// afterwards; pass other.Take() when in doubt.
func (v *Vector[T]) Append(other Vector[T]) {
	if other.Len() == 0 {
		return
	}
	v.own()
	l := v.list
	for i := 0; i < other.Len(); i++ {
		l = l.Append(other.list.Get(i))
	}
	v.list = l
}

// Take returns the contents of v and leaves v empty.
func (v *Vector[T]) Take() Vector[T] {
	taken := *v
	*v = Vector[T]{}
	return taken
}

// Clear removes every element.
func (v *Vector[T]) Clear() {
	v.list = nil
}

// Clone returns an independent version of v in O(1). Both v and the clone
// copy shared elements before mutating them from now on.
func (v *Vector[T]) Clone() Vector[T] {
	if v.owner != nil {
		v.owner.frozen = true
	}
	v.owner = nil
	v.borrowed = false
	return *v
}

// View returns a copy of v that shares storage but owns none of it, so
// writes through the copy never reach v. Until v is cloned or next
// structurally modified, the view sees in-place writes made through v.
func (v Vector[T]) View() Vector[T] {
	v.borrowed = true
	return v
}

// Slice copies the elements into a Go slice.
func (v Vector[T]) Slice() []T {
	out := make([]T, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		x, _ := v.Get(i)
		out = append(out, x)
	}
	return out
}

// EqualRange binary-searches a vector sorted under cmp and returns the span
// [start, end) of elements for which cmp reports 0. cmp(x) must return a
// negative number when x sorts before the search key, zero when equal and
// positive when after. When no element matches, start == end is the position
// at which the key would be inserted.
func (v Vector[T]) EqualRange(cmp func(T) int) (start, end int) {
	n := v.Len()
	start = sort.Search(n, func(i int) bool {
		return cmp(v.list.Get(i).val) >= 0
	})
	end = start + sort.Search(n-start, func(i int) bool {
		return cmp(v.list.Get(start+i).val) > 0
	})
	return start, end
}

func unshare[T any](x *T) {
	if s, ok := any(x).(Sharer); ok {
		s.Unshare()
	}
}
