package pjson

import (
	"fmt"

	"github.com/mcncl/pjson/internal/errors"
)

// Index addresses into a Value. It is implemented by Pos, for arrays, and
// Key, for objects.
type Index interface {
	indexInto(v Value) (Value, bool)
	indexIntoMut(v *Value) *Value
	indexOrInsert(v *Value) *Value
}

// Pos is a position in an array.
type Pos int

// Key is a key in an object.
type Key string

func (p Pos) indexInto(v Value) (Value, bool) {
	if v.typ != ArrayType {
		return Value{}, false
	}
	return v.arr.Get(int(p))
}

func (p Pos) indexIntoMut(v *Value) *Value {
	if v.typ != ArrayType {
		return nil
	}
	return v.arr.GetMut(int(p))
}

func (p Pos) indexOrInsert(v *Value) *Value {
	if v.typ != ArrayType {
		panic(errors.NewIndexError(fmt.Sprintf("cannot index %s with position %d", v.typ, p), errors.ErrTypeMismatch))
	}
	e := v.arr.GetMut(int(p))
	if e == nil {
		panic(errors.NewIndexError(
			fmt.Sprintf("position %d out of range for array of length %d", p, v.arr.Len()),
			errors.ErrIndexOutOfRange,
		))
	}
	return e
}

func (k Key) indexInto(v Value) (Value, bool) {
	if v.typ != ObjectType {
		return Value{}, false
	}
	return v.obj.Get(string(k))
}

func (k Key) indexIntoMut(v *Value) *Value {
	if v.typ != ObjectType {
		return nil
	}
	return v.obj.GetMut(string(k))
}

func (k Key) indexOrInsert(v *Value) *Value {
	if v.typ != ObjectType {
		panic(errors.NewIndexError(fmt.Sprintf("cannot index %s with key %q", v.typ, string(k)), errors.ErrTypeMismatch))
	}
	return v.obj.Entry(string(k)).OrInsert(Null())
}

// Get looks idx up in v. It reports false when v is not the matching
// container or the position or key is absent.
func (v Value) Get(idx Index) (Value, bool) {
	return idx.indexInto(v)
}

// GetMut is Get returning a pointer for in-place changes, or nil.
func (v *Value) GetMut(idx Index) *Value {
	return idx.indexIntoMut(v)
}

// Index looks idx up in v and returns Null when it is absent, so chained
// reads such as v.Index(Key("a")).Index(Pos(0)) never fail.
func (v Value) Index(idx Index) Value {
	if r, ok := idx.indexInto(v); ok {
		return r
	}
	return nullValue
}

// IndexMut returns a pointer to the slot addressed by idx. A Key missing
// from an object is inserted as Null. IndexMut panics with an *AppError if
// v is not the container idx addresses, or if a Pos is out of range; use
// Get, GetMut or Object.Entry where that must be handled.
func (v *Value) IndexMut(idx Index) *Value {
	return idx.indexOrInsert(v)
}

var nullValue = Value{}
