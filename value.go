package pjson

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/mcncl/pjson/vector"
)

// Type is the variant held by a Value.
type Type uint8

const (
	NullType Type = iota
	NumberType
	StringType
	BoolType
	ArrayType
	ObjectType
)

// String returns the variant name.
func (t Type) String() string {
	switch t {
	case NullType:
		return "Null"
	case NumberType:
		return "Number"
	case StringType:
		return "String"
	case BoolType:
		return "Bool"
	case ArrayType:
		return "Array"
	case ObjectType:
		return "Object"
	}
	return "<unknown type>"
}

// Value is a JSON value. The zero value is Null.
//
// Arrays and objects are persistent: Clone is O(1) and the clone shares all
// storage with v until either side writes. Plain assignment of a Value
// holding an array or object shares its storage like a slice header does.
type Value struct {
	typ Type
	num Number
	str string
	b   bool
	arr vector.Vector[Value]
	obj Object
}

// Null returns the null value.
func Null() Value {
	return Value{}
}

// FromBool returns a boolean value.
func FromBool(b bool) Value {
	return Value{typ: BoolType, b: b}
}

// FromString returns a string value.
func FromString(s string) Value {
	return Value{typ: StringType, str: s}
}

// FromNumber returns a number value.
func FromNumber(n Number) Value {
	return Value{typ: NumberType, num: n}
}

// FromInt64 returns a PosInt or NegInt number value.
func FromInt64(i int64) Value {
	return FromNumber(NumberFromInt64(i))
}

// FromUint64 returns a PosInt number value.
func FromUint64(u uint64) Value {
	return FromNumber(NumberFromUint64(u))
}

// FromFloat64 returns a Float number value, or false if f is not finite.
func FromFloat64(f float64) (Value, bool) {
	n, ok := NumberFromFloat64(f)
	if !ok {
		return Value{}, false
	}
	return FromNumber(n), true
}

// FromArray wraps an existing vector of values.
func FromArray(arr vector.Vector[Value]) Value {
	return Value{typ: ArrayType, arr: arr}
}

// FromSlice builds an array value from vals in order.
func FromSlice(vals ...Value) Value {
	return FromArray(vector.New(vals...))
}

// FromObject wraps an existing object.
func FromObject(o Object) Value {
	return Value{typ: ObjectType, obj: o}
}

// Type returns the variant held by v.
func (v Value) Type() Type {
	return v.typ
}

// IsNull reports whether v is null.
func (v Value) IsNull() bool {
	return v.typ == NullType
}

// AsNull reports whether v is null; it mirrors the other As projections.
func (v Value) AsNull() bool {
	return v.typ == NullType
}

// IsNumber reports whether v is a number.
func (v Value) IsNumber() bool {
	return v.typ == NumberType
}

// AsNumber returns the number held by v.
func (v Value) AsNumber() (Number, bool) {
	if v.typ != NumberType {
		return Number{}, false
	}
	return v.num, true
}

// IsString reports whether v is a string.
func (v Value) IsString() bool {
	return v.typ == StringType
}

// AsStr returns the string held by v.
func (v Value) AsStr() (string, bool) {
	if v.typ != StringType {
		return "", false
	}
	return v.str, true
}

// IsBoolean reports whether v is a boolean.
func (v Value) IsBoolean() bool {
	return v.typ == BoolType
}

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) {
	if v.typ != BoolType {
		return false, false
	}
	return v.b, true
}

// IsArray reports whether v is an array.
func (v Value) IsArray() bool {
	return v.typ == ArrayType
}

// AsArray returns a read view of the array held by v.
func (v Value) AsArray() (vector.Vector[Value], bool) {
	if v.typ != ArrayType {
		return vector.Vector[Value]{}, false
	}
	return v.arr.View(), true
}

// AsArrayMut returns the array held by v for in-place changes, or nil.
func (v *Value) AsArrayMut() *vector.Vector[Value] {
	if v.typ != ArrayType {
		return nil
	}
	return &v.arr
}

// IsObject reports whether v is an object.
func (v Value) IsObject() bool {
	return v.typ == ObjectType
}

// AsObject returns a read view of the object held by v.
func (v Value) AsObject() (Object, bool) {
	if v.typ != ObjectType {
		return Object{}, false
	}
	return v.obj.view(), true
}

// AsObjectMut returns the object held by v for in-place changes, or nil.
func (v *Value) AsObjectMut() *Object {
	if v.typ != ObjectType {
		return nil
	}
	return &v.obj
}

// Clone returns an independent copy of v in O(1).
func (v *Value) Clone() Value {
	switch v.typ {
	case ArrayType:
		return FromArray(v.arr.Clone())
	case ObjectType:
		return FromObject(v.obj.Clone())
	}
	return *v
}

// Unshare implements vector.Sharer. The vector package calls it on values
// copied out of shared storage; it is not meant to be called directly.
// It drops v's claim on the storage of its array or object, so the next
// write through v copies first, and leaves v's contents unchanged.
func (v *Value) Unshare() {
	switch v.typ {
	case ArrayType:
		v.arr = v.arr.View()
	case ObjectType:
		v.obj = v.obj.view()
	}
}

// Equal reports deep equality. Numbers compare by kind and value, so 1 and
// 1.0 differ.
func (v Value) Equal(o Value) bool {
	if v.typ != o.typ {
		return false
	}
	switch v.typ {
	case NumberType:
		return v.num.Equal(o.num)
	case StringType:
		return v.str == o.str
	case BoolType:
		return v.b == o.b
	case ArrayType:
		return vector.Equal(v.arr, o.arr, Value.Equal)
	case ObjectType:
		return v.obj.Equal(o.obj)
	}
	return true
}

// Compare orders values by variant (Null, Number, String, Bool, Array,
// Object) and then by payload. Arrays and objects compare element-wise.
func (v Value) Compare(o Value) int {
	if v.typ != o.typ {
		return cmp.Compare(v.typ, o.typ)
	}
	switch v.typ {
	case NumberType:
		return v.num.Compare(o.num)
	case StringType:
		return strings.Compare(v.str, o.str)
	case BoolType:
		switch {
		case v.b == o.b:
			return 0
		case !v.b:
			return -1
		}
		return 1
	case ArrayType:
		return vector.Compare(v.arr, o.arr, Value.Compare)
	case ObjectType:
		return v.obj.Compare(o.obj)
	}
	return 0
}

// GoString renders v for debugging with %#v.
func (v Value) GoString() string {
	switch v.typ {
	case NumberType:
		return fmt.Sprintf("Number(%s %s)", v.num.kind, v.num)
	case StringType:
		return fmt.Sprintf("String(%q)", v.str)
	case BoolType:
		return fmt.Sprintf("Bool(%t)", v.b)
	case ArrayType:
		return fmt.Sprintf("Array(len=%d)", v.arr.Len())
	case ObjectType:
		return fmt.Sprintf("Object(len=%d)", v.obj.Len())
	}
	return "Null"
}
