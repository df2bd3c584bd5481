package text

import (
	"errors"
	"math"
	"testing"
)

func TestValueString(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"string", StringValue("hello"), "hello"},
		{"empty string", StringValue(""), ""},
		{"zero value", Value{}, ""},
		{"integer", IntValue(42), "42"},
		{"negative integer", IntValue(-7), "-7"},
		{"float whole", FloatValue(2.0), "2"},
		{"float half", FloatValue(2.5), "2.5"},
		{"float trailing zero", FloatValue(2.50), "2.5"},
		{"float three", FloatValue(3.0), "3"},
		{"float pi", FloatValue(3.14), "3.14"},
		{"float three point one", FloatValue(3.10), "3.1"},
		{"float rounds to two places", FloatValue(1.236), "1.24"},
		{"float rounds to whole", FloatValue(2.001), "2"},
		{"float negative", FloatValue(-0.5), "-0.5"},
		{"bool true", BoolValue(true), "true"},
		{"bool false", BoolValue(false), "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValueOf(t *testing.T) {
	tests := []struct {
		in       any
		wantKind ValueKind
		want     string
	}{
		{"abc", KindString, "abc"},
		{true, KindBoolean, "true"},
		{7, KindInteger, "7"},
		{int32(-3), KindInteger, "-3"},
		{uint16(9), KindInteger, "9"},
		{uint64(math.MaxInt64), KindInteger, "9223372036854775807"},
		{uint(42), KindInteger, "42"},
		{float32(0.25), KindFloat, "0.25"},
		{4.0, KindFloat, "4"},
		{IntValue(5), KindInteger, "5"},
		{KindFloat, KindString, "Float"},
	}

	for _, tt := range tests {
		got, err := ValueOf(tt.in)
		if err != nil {
			t.Fatalf("ValueOf(%v) failed: %v", tt.in, err)
		}
		if got.Kind() != tt.wantKind {
			t.Errorf("ValueOf(%v).Kind() = %v, want %v", tt.in, got.Kind(), tt.wantKind)
		}
		if got.String() != tt.want {
			t.Errorf("ValueOf(%v).String() = %q, want %q", tt.in, got.String(), tt.want)
		}
	}
}

func TestValueOfUnsupported(t *testing.T) {
	_, err := ValueOf([]int{1, 2})
	if !errors.Is(err, ErrUnsupportedValue) {
		t.Errorf("expected ErrUnsupportedValue, got %v", err)
	}
}

func TestValueOfUnsignedOverflow(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{"max uint64", uint64(math.MaxUint64)},
		{"max int64 plus one", uint64(math.MaxInt64) + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValueOf(tt.in)
			if !errors.Is(err, ErrUnsupportedValue) {
				t.Fatalf("ValueOf(%v) = %q, %v, want ErrUnsupportedValue", tt.in, got.String(), err)
			}
		})
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		raw  string
		want Value
	}{
		{"12", IntValue(12)},
		{"-3", IntValue(-3)},
		{"2.5", FloatValue(2.5)},
		{"true", BoolValue(true)},
		{"false", BoolValue(false)},
		{"T", StringValue("T")},
		{"1", IntValue(1)},
		{"Alice", StringValue("Alice")},
		{"", StringValue("")},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := ParseValue(tt.raw); got != tt.want {
				t.Errorf("ParseValue(%q) = %v (%s), want %v (%s)", tt.raw, got, got.Kind(), tt.want, tt.want.Kind())
			}
		})
	}
}

func TestValueEquality(t *testing.T) {
	if IntValue(1) != IntValue(1) {
		t.Error("expected equal integer values to compare equal")
	}
	if IntValue(1) == FloatValue(1) {
		t.Error("did not expect values of different kinds to compare equal")
	}
}
