package text

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValueKind identifies which field of a Value is set.
type ValueKind uint8

const (
	KindString ValueKind = iota
	KindInteger
	KindFloat
	KindBoolean
)

// String returns a human-readable kind name.
func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindBoolean:
		return "Boolean"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Value is an interpolation value substituted into a {name} placeholder.
// The zero value is the empty string. Values are comparable with ==.
type Value struct {
	kind ValueKind
	s    string
	i    int64
	f    float64
	b    bool
}

// StringValue returns a String value.
func StringValue(s string) Value { return Value{kind: KindString, s: s} }

// IntValue returns an Integer value.
func IntValue(i int64) Value { return Value{kind: KindInteger, i: i} }

// FloatValue returns a Float value.
func FloatValue(f float64) Value { return Value{kind: KindFloat, f: f} }

// BoolValue returns a Boolean value.
func BoolValue(b bool) Value { return Value{kind: KindBoolean, b: b} }

// ValueOf converts a Go scalar into a Value. It accepts strings, booleans,
// every signed and unsigned integer width and both float widths. Unsigned
// values above math.MaxInt64 are rejected with ErrUnsupportedValue.
func ValueOf(v any) (Value, error) {
	switch x := v.(type) {
	case Value:
		return x, nil
	case string:
		return StringValue(x), nil
	case bool:
		return BoolValue(x), nil
	case int:
		return IntValue(int64(x)), nil
	case int8:
		return IntValue(int64(x)), nil
	case int16:
		return IntValue(int64(x)), nil
	case int32:
		return IntValue(int64(x)), nil
	case int64:
		return IntValue(x), nil
	case uint:
		return unsignedValue(uint64(x))
	case uint8:
		return IntValue(int64(x)), nil
	case uint16:
		return IntValue(int64(x)), nil
	case uint32:
		return IntValue(int64(x)), nil
	case uint64:
		return unsignedValue(x)
	case float32:
		return FloatValue(float64(x)), nil
	case float64:
		return FloatValue(x), nil
	case fmt.Stringer:
		return StringValue(x.String()), nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

func unsignedValue(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return Value{}, fmt.Errorf("%w: %d overflows int64", ErrUnsupportedValue, u)
	}
	return IntValue(int64(u)), nil
}

// ParseValue picks the narrowest kind that reads raw back unchanged:
// integer, then float, then the literals "true" and "false", else string.
func ParseValue(raw string) Value {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return IntValue(i)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return FloatValue(f)
	}
	if raw == "true" || raw == "false" {
		return BoolValue(raw == "true")
	}
	return StringValue(raw)
}

// Kind returns the value's kind.
func (v Value) Kind() ValueKind {
	return v.kind
}

// String renders the value the way it appears in interpolated text.
// Floats with no fractional part print without a decimal point; other floats
// are rounded to two decimals with trailing zeros removed (3.10 -> "3.1").
func (v Value) String() string {
	switch v.kind {
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return formatFloat(v.f)
	case KindBoolean:
		return strconv.FormatBool(v.b)
	default:
		return v.s
	}
}

func formatFloat(f float64) string {
	if f == math.Trunc(f) {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	s := strconv.FormatFloat(f, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
