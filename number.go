package pjson

import (
	"cmp"
	"math"
	"strconv"
)

// NumberKind identifies which representation a Number uses.
type NumberKind uint8

const (
	// PosInt is a non-negative integer held as uint64.
	PosInt NumberKind = iota
	// NegInt is a strictly negative integer held as int64.
	NegInt
	// Float is a finite float64.
	Float
)

// String returns the kind name.
func (k NumberKind) String() string {
	switch k {
	case PosInt:
		return "PosInt"
	case NegInt:
		return "NegInt"
	case Float:
		return "Float"
	}
	return "<unknown number kind>"
}

// Number is a JSON number. The zero value is PosInt 0.
type Number struct {
	kind NumberKind
	u    uint64
	i    int64
	f    float64
}

// NumberFromUint64 returns a PosInt.
func NumberFromUint64(u uint64) Number {
	return Number{kind: PosInt, u: u}
}

// NumberFromInt64 returns a PosInt for i >= 0 and a NegInt otherwise.
func NumberFromInt64(i int64) Number {
	if i >= 0 {
		return Number{kind: PosInt, u: uint64(i)}
	}
	return Number{kind: NegInt, i: i}
}

// NumberFromFloat64 returns a Float, or false if f is NaN or infinite.
func NumberFromFloat64(f float64) (Number, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Number{}, false
	}
	return Number{kind: Float, f: f}, true
}

// Kind returns the representation of n.
func (n Number) Kind() NumberKind {
	return n.kind
}

// IsI64 reports whether n can be read as an int64 without loss.
func (n Number) IsI64() bool {
	switch n.kind {
	case PosInt:
		return n.u <= math.MaxInt64
	case NegInt:
		return true
	}
	return false
}

// IsU64 reports whether n is a non-negative integer.
func (n Number) IsU64() bool {
	return n.kind == PosInt
}

// IsF64 reports whether n is a float.
func (n Number) IsF64() bool {
	return n.kind == Float
}

// AsI64 returns n as an int64 if it is an integer that fits.
func (n Number) AsI64() (int64, bool) {
	switch n.kind {
	case PosInt:
		if n.u <= math.MaxInt64 {
			return int64(n.u), true
		}
	case NegInt:
		return n.i, true
	}
	return 0, false
}

// AsU64 returns n as a uint64 if it is a PosInt.
func (n Number) AsU64() (uint64, bool) {
	if n.kind == PosInt {
		return n.u, true
	}
	return 0, false
}

// AsF64 converts n to float64. Integers beyond 2^53 lose precision.
func (n Number) AsF64() (float64, bool) {
	switch n.kind {
	case PosInt:
		return float64(n.u), true
	case NegInt:
		return float64(n.i), true
	}
	return n.f, true
}

// String formats integers in base 10 and floats without an exponent.
func (n Number) String() string {
	switch n.kind {
	case PosInt:
		return strconv.FormatUint(n.u, 10)
	case NegInt:
		return strconv.FormatInt(n.i, 10)
	}
	return strconv.FormatFloat(n.f, 'f', -1, 64)
}

// Equal reports whether n and o have the same kind and payload.
func (n Number) Equal(o Number) bool {
	return n.Compare(o) == 0
}

// Compare orders numbers by kind (PosInt, NegInt, Float) and then by value.
func (n Number) Compare(o Number) int {
	if n.kind != o.kind {
		return cmp.Compare(n.kind, o.kind)
	}
	switch n.kind {
	case PosInt:
		return cmp.Compare(n.u, o.u)
	case NegInt:
		return cmp.Compare(n.i, o.i)
	}
	return cmp.Compare(n.f, o.f)
}
