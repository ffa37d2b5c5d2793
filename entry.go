package pjson

import (
	"strconv"

	"github.com/mcncl/pjson/internal/errors"
)

// Entry is the result of a single key lookup in an Object. It is either a
// *VacantEntry or an *OccupiedEntry; switch on the type to use the
// operations specific to each. An Entry must not be used after its Object
// has been modified through any other path.
//
// VacantEntry.Insert, OccupiedEntry.IntoMut, OccupiedEntry.Remove and the Or
// methods consume the entry. Any later call other than Key panics with an
// *AppError wrapping ErrEntryConsumed.
type Entry interface {
	// Key returns the key that was looked up.
	Key() string
	// OrInsert stores def if the key is vacant and returns a pointer to the
	// stored value either way.
	OrInsert(def Value) *Value
	// OrInsertWith is OrInsert with a default that is only computed when
	// the key is vacant.
	OrInsertWith(def func() Value) *Value

	entry()
}

func consumed(key string) *errors.AppError {
	return errors.NewIndexError("entry for key "+strconv.Quote(key)+" was already consumed", errors.ErrEntryConsumed)
}

// VacantEntry is an Entry for a key that is not in the Object. It remembers
// the position at which the key belongs.
type VacantEntry struct {
	obj *Object
	key string
	idx int
}

func (e *VacantEntry) entry() {}

// Key returns the key that was looked up.
func (e *VacantEntry) Key() string {
	return e.key
}

// Insert stores v under the entry's key and returns a pointer to it. The
// entry is consumed.
func (e *VacantEntry) Insert(v Value) *Value {
	o := e.obj
	if o == nil {
		panic(consumed(e.key))
	}
	e.obj = nil
	o.keys.Insert(e.idx, e.key)
	o.values.Insert(e.idx, v)
	return o.values.GetMut(e.idx)
}

// OrInsert stores def and returns a pointer to it.
func (e *VacantEntry) OrInsert(def Value) *Value {
	return e.Insert(def)
}

// OrInsertWith stores the result of def and returns a pointer to it.
func (e *VacantEntry) OrInsertWith(def func() Value) *Value {
	if e.obj == nil {
		panic(consumed(e.key))
	}
	return e.Insert(def())
}

// OccupiedEntry is an Entry for a key present in the Object.
type OccupiedEntry struct {
	obj *Object
	key string
	idx int
}

func (e *OccupiedEntry) entry() {}

func (e *OccupiedEntry) object() *Object {
	if e.obj == nil {
		panic(consumed(e.key))
	}
	return e.obj
}

// Key returns the key that was looked up.
func (e *OccupiedEntry) Key() string {
	return e.key
}

// Get returns the stored value.
func (e *OccupiedEntry) Get() Value {
	v, _ := e.object().values.Get(e.idx)
	return v
}

// GetMut returns a pointer to the stored value.
func (e *OccupiedEntry) GetMut() *Value {
	return e.object().values.GetMut(e.idx)
}

// IntoMut returns a pointer to the stored value and consumes the entry; the
// pointer outlives the handle.
func (e *OccupiedEntry) IntoMut() *Value {
	p := e.GetMut()
	e.obj = nil
	return p
}

// Insert replaces the stored value with v and returns the old one.
func (e *OccupiedEntry) Insert(v Value) Value {
	p := e.GetMut()
	old := *p
	*p = v
	return old
}

// Remove deletes the entry from the Object and returns its value. The
// entry is consumed.
func (e *OccupiedEntry) Remove() Value {
	o := e.object()
	e.obj = nil
	o.keys.Remove(e.idx)
	v, _ := o.values.Remove(e.idx)
	return v
}

// OrInsert returns a pointer to the stored value; def is ignored.
func (e *OccupiedEntry) OrInsert(Value) *Value {
	return e.IntoMut()
}

// OrInsertWith returns a pointer to the stored value without calling def.
func (e *OccupiedEntry) OrInsertWith(func() Value) *Value {
	return e.IntoMut()
}
