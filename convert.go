package pjson

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mcncl/pjson/internal/errors"
	"github.com/mcncl/pjson/internal/models"
	"github.com/mcncl/pjson/vector"
)

// FromJSON converts an existing mutable JSON representation into a Value.
//
// It accepts what encoding/json produces when decoding into an interface
// (nil, bool, string, float64 or json.Number, []any, map[string]any), the
// ordered models produced by Decoder, and the Go integer types. Objects are
// built by inserting each member, so repeated keys collapse to the last one
// written.
func FromJSON(src any) (Value, error) {
	return convert(src, nil)
}

// collapseFunc is told about every object key that replaced an earlier one.
type collapseFunc func(key string)

func convert(src any, collapsed collapseFunc) (Value, error) {
	switch v := src.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(v), nil
	case string:
		return FromString(v), nil
	case json.Number:
		n, err := parseNumber(string(v))
		if err != nil {
			return Value{}, err
		}
		return FromNumber(n), nil
	case float64:
		return fromFloat(v)
	case float32:
		return fromFloat(float64(v))
	case int:
		return FromInt64(int64(v)), nil
	case int8:
		return FromInt64(int64(v)), nil
	case int16:
		return FromInt64(int64(v)), nil
	case int32:
		return FromInt64(int64(v)), nil
	case int64:
		return FromInt64(v), nil
	case uint:
		return FromUint64(uint64(v)), nil
	case uint8:
		return FromUint64(uint64(v)), nil
	case uint16:
		return FromUint64(uint64(v)), nil
	case uint32:
		return FromUint64(uint64(v)), nil
	case uint64:
		return FromUint64(v), nil
	case Value:
		return v.Clone(), nil
	case []any:
		return convertArray(len(v), func(i int) any { return v[i] }, collapsed)
	case models.JSONArray:
		return convertArray(len(v), func(i int) any { return v[i] }, collapsed)
	case map[string]any:
		var obj Object
		for key, member := range v {
			val, err := convert(member, collapsed)
			if err != nil {
				return Value{}, err
			}
			obj.Insert(key, val)
		}
		return FromObject(obj), nil
	case models.JSONObject:
		var obj Object
		for _, m := range v {
			val, err := convert(m.Value, collapsed)
			if err != nil {
				return Value{}, err
			}
			if _, replaced := obj.Insert(m.Key, val); replaced && collapsed != nil {
				collapsed(m.Key)
			}
		}
		return FromObject(obj), nil
	default:
		return Value{}, errors.NewConversionError(
			fmt.Sprintf("cannot convert %T to a JSON value", src),
			errors.ErrUnsupportedType,
		)
	}
}

func convertArray(n int, at func(int) any, collapsed collapseFunc) (Value, error) {
	elems := vector.New[Value]()
	for i := 0; i < n; i++ {
		val, err := convert(at(i), collapsed)
		if err != nil {
			return Value{}, err
		}
		elems.PushBack(val)
	}
	return FromArray(elems), nil
}

func fromFloat(f float64) (Value, error) {
	v, ok := FromFloat64(f)
	if !ok {
		return Value{}, errors.NewConversionError(
			fmt.Sprintf("cannot represent %v as a JSON number", f),
			errors.ErrNonFiniteNumber,
		)
	}
	return v, nil
}

// parseNumber classifies a JSON number literal. Literals with a fraction or
// exponent are Floats; integers become PosInt when they fit in uint64 and
// NegInt when they fit in int64. "-0" and integers wider than 64 bits are
// read as Floats.
func parseNumber(lit string) (Number, error) {
	if !strings.ContainsAny(lit, ".eE") {
		if u, err := strconv.ParseUint(lit, 10, 64); err == nil {
			return NumberFromUint64(u), nil
		}
		if i, err := strconv.ParseInt(lit, 10, 64); err == nil && i < 0 {
			return NumberFromInt64(i), nil
		}
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil && !stderrors.Is(err, strconv.ErrRange) {
		return Number{}, errors.NewConversionError(
			fmt.Sprintf("invalid number literal %q", lit),
			errors.ErrInvalidJSON,
		)
	}
	n, ok := NumberFromFloat64(f)
	if !ok {
		return Number{}, errors.NewConversionError(
			fmt.Sprintf("number literal %q is out of range", lit),
			errors.ErrNonFiniteNumber,
		)
	}
	return n, nil
}
