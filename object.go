package pjson

import (
	"iter"
	"strings"

	"github.com/mcncl/pjson/vector"
)

// Object is a map from string keys to values, kept sorted by key.
//
// It is stored as two parallel persistent vectors: keys, strictly
// increasing under byte-wise string order, and values, where values[i]
// belongs to keys[i]. Lookups binary-search keys. The zero value is an
// empty Object.
type Object struct {
	keys   vector.Vector[string]
	values vector.Vector[Value]
}

// NewObject returns an empty Object.
func NewObject() Object {
	return Object{}
}

// Clear removes every entry.
func (o *Object) Clear() {
	o.keys.Clear()
	o.values.Clear()
}

// indexForKey returns the position of key and true, or the position at
// which key would be inserted and false. A key duplicated by Append
// resolves to the first entry of its run.
func (o *Object) indexForKey(key string) (int, bool) {
	start, end := o.keys.EqualRange(func(k string) int {
		return strings.Compare(k, key)
	})
	return start, end > start
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	i, ok := o.indexForKey(key)
	if !ok {
		return Value{}, false
	}
	return o.values.Get(i)
}

// GetMut returns a pointer to the value stored under key, or nil. The
// pointer is valid until o is next cloned or has an entry added or removed.
func (o *Object) GetMut(key string) *Value {
	i, ok := o.indexForKey(key)
	if !ok {
		return nil
	}
	return o.values.GetMut(i)
}

// ContainsKey reports whether key is present.
func (o *Object) ContainsKey(key string) bool {
	_, ok := o.indexForKey(key)
	return ok
}

// Insert stores v under key. If key was present its previous value is
// returned and replaced in place.
func (o *Object) Insert(key string, v Value) (Value, bool) {
	i, ok := o.indexForKey(key)
	if ok {
		return o.values.Set(i, v), true
	}
	o.keys.Insert(i, key)
	o.values.Insert(i, v)
	return Value{}, false
}

// Remove deletes key and returns its value.
func (o *Object) Remove(key string) (Value, bool) {
	i, ok := o.indexForKey(key)
	if !ok {
		return Value{}, false
	}
	o.keys.Remove(i)
	return o.values.Remove(i)
}

// Append moves every entry of other into o and leaves other empty. The
// merged keys are re-sorted stably, but not deduplicated: a key present in
// both objects ends up twice, o's entry first.
func (o *Object) Append(other *Object) {
	keys := other.keys.Take()
	values := other.values.Take()
	o.keys.Append(keys)
	o.values.Append(values)
	vector.DualSort(&o.keys, &o.values, strings.Compare)
}

// Entry looks key up once and returns a handle for inspecting, inserting
// or replacing its value without searching again.
func (o *Object) Entry(key string) Entry {
	i, ok := o.indexForKey(key)
	if ok {
		return &OccupiedEntry{obj: o, key: key, idx: i}
	}
	return &VacantEntry{obj: o, key: key, idx: i}
}

// Len returns the number of entries.
func (o Object) Len() int {
	return o.keys.Len()
}

// IsEmpty reports whether o has no entries.
func (o Object) IsEmpty() bool {
	return o.Len() == 0
}

// Iter returns a double-ended iterator over the entries in key order.
func (o *Object) Iter() *Iter {
	return &Iter{keys: o.keys.Iter(), values: o.values.Iter()}
}

// IterMut is Iter yielding mutable value pointers.
func (o *Object) IterMut() *IterMut {
	return &IterMut{keys: o.keys.Iter(), values: o.values.IterMut()}
}

// Keys iterates over the keys in order.
func (o *Object) Keys() *vector.Iter[string] {
	return o.keys.Iter()
}

// Values iterates over the values in key order.
func (o *Object) Values() *vector.Iter[Value] {
	return o.values.Iter()
}

// ValuesMut iterates over pointers to the values in key order.
func (o *Object) ValuesMut() *vector.IterMut[Value] {
	return o.values.IterMut()
}

// All yields key/value pairs in key order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		it := o.Iter()
		for k, v, ok := it.Next(); ok; k, v, ok = it.Next() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Backward yields key/value pairs in reverse key order.
func (o *Object) Backward() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		it := o.Iter()
		for k, v, ok := it.NextBack(); ok; k, v, ok = it.NextBack() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Clone returns an independent copy of o in O(1).
func (o *Object) Clone() Object {
	return Object{keys: o.keys.Clone(), values: o.values.Clone()}
}

func (o Object) view() Object {
	return Object{keys: o.keys.View(), values: o.values.View()}
}

// Equal reports whether o and other hold the same keys mapped to equal
// values.
func (o Object) Equal(other Object) bool {
	return o.Len() == other.Len() &&
		vector.Equal(o.keys, other.keys, func(a, b string) bool { return a == b }) &&
		vector.Equal(o.values, other.values, Value.Equal)
}

// Compare orders objects by their key sequences, then by their values.
func (o Object) Compare(other Object) int {
	if c := vector.Compare(o.keys, other.keys, strings.Compare); c != 0 {
		return c
	}
	return vector.Compare(o.values, other.values, Value.Compare)
}
