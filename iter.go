package pjson

import "github.com/mcncl/pjson/vector"

// Iter walks the entries of an Object in key order from either end. It
// knows its exact remaining length and, once exhausted, keeps reporting
// false.
type Iter struct {
	keys   *vector.Iter[string]
	values *vector.Iter[Value]
}

// Next returns the entry at the front and advances, or false when done.
func (it *Iter) Next() (string, Value, bool) {
	k, ok := it.keys.Next()
	if !ok {
		return "", Value{}, false
	}
	v, _ := it.values.Next()
	return k, v, true
}

// NextBack returns the entry at the back and retreats, or false when done.
func (it *Iter) NextBack() (string, Value, bool) {
	k, ok := it.keys.NextBack()
	if !ok {
		return "", Value{}, false
	}
	v, _ := it.values.NextBack()
	return k, v, true
}

// Len returns the number of entries not yet yielded.
func (it *Iter) Len() int {
	return it.keys.Len()
}

// IterMut is Iter with mutable access to the values.
type IterMut struct {
	keys   *vector.Iter[string]
	values *vector.IterMut[Value]
}

// Next returns the key and value pointer at the front and advances.
func (it *IterMut) Next() (string, *Value, bool) {
	k, ok := it.keys.Next()
	if !ok {
		return "", nil, false
	}
	v, _ := it.values.Next()
	return k, v, true
}

// NextBack returns the key and value pointer at the back and retreats.
func (it *IterMut) NextBack() (string, *Value, bool) {
	k, ok := it.keys.NextBack()
	if !ok {
		return "", nil, false
	}
	v, _ := it.values.NextBack()
	return k, v, true
}

// Len returns the number of entries not yet yielded.
func (it *IterMut) Len() int {
	return it.keys.Len()
}
