package vector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector_ZeroValue(t *testing.T) {
	var v Vector[int]
	assert.Equal(t, 0, v.Len())
	assert.True(t, v.IsEmpty())

	_, ok := v.Get(0)
	assert.False(t, ok)
	assert.Nil(t, v.GetMut(0))

	v.PushBack(1)
	assert.Equal(t, []int{1}, v.Slice())
}

func TestVector_Insert(t *testing.T) {
	tests := []struct {
		name     string
		start    []int
		index    int
		expected []int
	}{
		{name: "into empty", start: nil, index: 0, expected: []int{99}},
		{name: "front", start: []int{1, 2, 3}, index: 0, expected: []int{99, 1, 2, 3}},
		{name: "back", start: []int{1, 2, 3}, index: 3, expected: []int{1, 2, 3, 99}},
		{name: "near front", start: []int{1, 2, 3, 4, 5}, index: 1, expected: []int{1, 99, 2, 3, 4, 5}},
		{name: "near back", start: []int{1, 2, 3, 4, 5}, index: 4, expected: []int{1, 2, 3, 4, 99, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(tt.start...)
			v.Insert(tt.index, 99)
			assert.Equal(t, tt.expected, v.Slice())
		})
	}
}

func TestVector_InsertOutOfRange(t *testing.T) {
	v := New(1, 2)
	assert.Panics(t, func() { v.Insert(3, 0) })
	assert.Panics(t, func() { v.Insert(-1, 0) })
}

func TestVector_Remove(t *testing.T) {
	tests := []struct {
		name     string
		start    []int
		index    int
		removed  int
		expected []int
	}{
		{name: "only", start: []int{7}, index: 0, removed: 7, expected: []int{}},
		{name: "front", start: []int{1, 2, 3}, index: 0, removed: 1, expected: []int{2, 3}},
		{name: "back", start: []int{1, 2, 3}, index: 2, removed: 3, expected: []int{1, 2}},
		{name: "near front", start: []int{1, 2, 3, 4, 5}, index: 1, removed: 2, expected: []int{1, 3, 4, 5}},
		{name: "near back", start: []int{1, 2, 3, 4, 5}, index: 3, removed: 4, expected: []int{1, 2, 3, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(tt.start...)
			got, ok := v.Remove(tt.index)
			require.True(t, ok)
			assert.Equal(t, tt.removed, got)
			assert.Equal(t, tt.expected, v.Slice())
		})
	}

	v := New(1)
	_, ok := v.Remove(1)
	assert.False(t, ok)
	assert.Equal(t, []int{1}, v.Slice())
}

func TestVector_CloneIsIndependent(t *testing.T) {
	v := New(1, 2, 3)
	c := v.Clone()

	*v.GetMut(0) = 10
	c.PushBack(4)
	*c.GetMut(1) = 20

	assert.Equal(t, []int{10, 2, 3}, v.Slice())
	assert.Equal(t, []int{1, 20, 3, 4}, c.Slice())
}

func TestVector_GetMutIsStable(t *testing.T) {
	v := New("a", "b")
	c := v.Clone()
	_ = c

	p := v.GetMut(1)
	q := v.GetMut(1)
	assert.Same(t, p, q)

	*p = "z"
	got, _ := v.Get(1)
	assert.Equal(t, "z", got)
	got, _ = c.Get(1)
	assert.Equal(t, "b", got)
}

func TestVector_ViewDoesNotWriteThrough(t *testing.T) {
	v := New(1, 2)
	view := v.View()
	*view.GetMut(0) = 100

	assert.Equal(t, []int{1, 2}, v.Slice())
	assert.Equal(t, []int{100, 2}, view.Slice())
}

func TestVector_CloneThroughCopy(t *testing.T) {
	v := New(1, 2, 3)
	alias := v // shares v's ownership
	c := alias.Clone()

	*v.GetMut(0) = 10
	*alias.GetMut(1) = 20

	assert.Equal(t, []int{1, 2, 3}, c.Slice())
	assert.Equal(t, []int{10, 2, 3}, v.Slice())

	// the source stays stable once it has re-owned its cells
	p := v.GetMut(2)
	assert.Same(t, p, v.GetMut(2))
}

func TestVector_CloneOfView(t *testing.T) {
	v := New(1, 2)
	view := v.View()
	c := view.Clone()

	*v.GetMut(0) = 100

	assert.Equal(t, []int{1, 2}, c.Slice())
	assert.Equal(t, []int{100, 2}, v.Slice())
}

func TestVector_ViewSeesSourceWrites(t *testing.T) {
	v := New(1, 2)
	p := v.GetMut(0)
	view := v.View()
	*p = 5

	got, _ := view.Get(0)
	assert.Equal(t, 5, got)
}

func TestVector_AppendAndTake(t *testing.T) {
	a := New(1, 2)
	b := New(3, 4)

	a.Append(b.Take())

	assert.Equal(t, []int{1, 2, 3, 4}, a.Slice())
	assert.True(t, b.IsEmpty())
}

func TestVector_Clear(t *testing.T) {
	v := New(1, 2, 3)
	v.Clear()
	assert.Equal(t, 0, v.Len())
	v.PushBack(5)
	assert.Equal(t, []int{5}, v.Slice())
}

func TestVector_EqualRange(t *testing.T) {
	v := New("b", "d", "d", "f")
	search := func(key string) func(string) int {
		return func(x string) int { return strings.Compare(x, key) }
	}

	tests := []struct {
		key        string
		start, end int
	}{
		{key: "a", start: 0, end: 0},
		{key: "b", start: 0, end: 1},
		{key: "c", start: 1, end: 1},
		{key: "d", start: 1, end: 3},
		{key: "e", start: 3, end: 3},
		{key: "g", start: 4, end: 4},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			start, end := v.EqualRange(search(tt.key))
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}

	var empty Vector[string]
	start, end := empty.EqualRange(search("x"))
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}

func TestDualSort(t *testing.T) {
	keys := New("c", "a", "b", "a")
	values := New(3, 1, 2, 10)

	DualSort(&keys, &values, strings.Compare)

	assert.Equal(t, []string{"a", "a", "b", "c"}, keys.Slice())
	assert.Equal(t, []int{1, 10, 2, 3}, values.Slice())
}

func TestDualSort_LengthMismatch(t *testing.T) {
	keys := New("a", "b")
	values := New(1)
	assert.Panics(t, func() { DualSort(&keys, &values, strings.Compare) })
}

func TestIter_DoubleEnded(t *testing.T) {
	it := New(1, 2, 3, 4).Iter()
	assert.Equal(t, 4, it.Len())

	x, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, 1, x)

	x, ok = it.NextBack()
	assert.True(t, ok)
	assert.Equal(t, 4, x)
	assert.Equal(t, 2, it.Len())

	x, _ = it.NextBack()
	assert.Equal(t, 3, x)
	x, _ = it.Next()
	assert.Equal(t, 2, x)

	for i := 0; i < 3; i++ {
		_, ok = it.Next()
		assert.False(t, ok)
		_, ok = it.NextBack()
		assert.False(t, ok)
	}
	assert.Equal(t, 0, it.Len())
}

func TestIterMut(t *testing.T) {
	v := New(1, 2, 3)
	it := v.IterMut()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		*p *= 10
	}
	assert.Equal(t, []int{10, 20, 30}, v.Slice())
}

func TestAllAndBackward(t *testing.T) {
	v := New("x", "y", "z")

	var forward, backward []string
	for _, s := range v.All() {
		forward = append(forward, s)
	}
	for _, s := range v.Backward() {
		backward = append(backward, s)
	}

	assert.Equal(t, []string{"x", "y", "z"}, forward)
	assert.Equal(t, []string{"z", "y", "x"}, backward)
}

func TestEqualAndCompare(t *testing.T) {
	eq := func(a, b int) bool { return a == b }
	cmp := func(a, b int) int { return a - b }

	assert.True(t, Equal(New(1, 2), New(1, 2), eq))
	assert.False(t, Equal(New(1, 2), New(1, 3), eq))
	assert.False(t, Equal(New(1), New(1, 2), eq))

	assert.Equal(t, 0, Compare(New(1, 2), New(1, 2), cmp))
	assert.Equal(t, -1, Compare(New(1), New(1, 2), cmp))
	assert.Less(t, Compare(New(1, 2), New(1, 3), cmp), 0)
	assert.Greater(t, Compare(New(2), New(1, 9), cmp), 0)
}

type nested struct {
	inner Vector[int]
}

func (n *nested) Unshare() {
	n.inner = n.inner.View()
}

func TestVector_NestedCopyOnWrite(t *testing.T) {
	v := New(nested{inner: New(1, 2)})
	c := v.Clone()

	*v.GetMut(0).inner.GetMut(0) = 100

	got, _ := c.Get(0)
	assert.Equal(t, []int{1, 2}, got.inner.Slice())
	got, _ = v.Get(0)
	assert.Equal(t, []int{100, 2}, got.inner.Slice())
}
