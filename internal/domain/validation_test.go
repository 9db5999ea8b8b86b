package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_Required(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{name: "empty text", value: "", want: false},
		{name: "whitespace text", value: "   \t\n", want: false},
		{name: "text", value: "Build API", want: true},
		{name: "padded text", value: "  x  ", want: true},
		{name: "zero number", value: 0, want: true},
		{name: "number", value: 3, want: true},
		{name: "nil", value: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(Validatable{Value: tt.value, Required: true})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate_LengthBoundsAreInclusive(t *testing.T) {
	tests := []struct {
		name  string
		value string
		min   *int
		max   *int
		want  bool
	}{
		{name: "below min", value: "abcd", min: IntPtr(5), want: false},
		{name: "equal min", value: "abcde", min: IntPtr(5), want: true},
		{name: "above min", value: "abcdef", min: IntPtr(5), want: true},
		{name: "below max", value: "ab", max: IntPtr(3), want: true},
		{name: "equal max", value: "abc", max: IntPtr(3), want: true},
		{name: "above max", value: "abcd", max: IntPtr(3), want: false},
		{name: "runes not bytes", value: "héllo", min: IntPtr(5), max: IntPtr(5), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(Validatable{Value: tt.value, MinLength: tt.min, MaxLength: tt.max})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate_NumericBoundsAreInclusive(t *testing.T) {
	min := FloatPtr(1)
	max := FloatPtr(10)

	for v := -5; v <= 15; v++ {
		want := v >= 1 && v <= 10
		assert.Equal(t, want, Validate(Validatable{Value: v, Min: min, Max: max}), "value %d", v)
	}

	assert.True(t, Validate(Validatable{Value: int64(1), Min: min}))
	assert.True(t, Validate(Validatable{Value: 1.0, Min: min}))
	assert.False(t, Validate(Validatable{Value: 0.999, Min: min}))
	assert.False(t, Validate(Validatable{Value: math.NaN(), Min: min}))
}

func TestValidate_NumericBoundsCoverEveryKind(t *testing.T) {
	tests := []struct {
		name  string
		below any
		equal any
	}{
		{name: "int8", below: int8(0), equal: int8(1)},
		{name: "int16", below: int16(0), equal: int16(1)},
		{name: "int32", below: int32(0), equal: int32(1)},
		{name: "uint", below: uint(0), equal: uint(1)},
		{name: "uint8", below: uint8(0), equal: uint8(1)},
		{name: "uint16", below: uint16(0), equal: uint16(1)},
		{name: "uint32", below: uint32(0), equal: uint32(1)},
		{name: "uint64", below: uint64(0), equal: uint64(1)},
		{name: "float32", below: float32(0.5), equal: float32(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, Validate(Validatable{Value: tt.below, Min: FloatPtr(1)}))
			assert.True(t, Validate(Validatable{Value: tt.equal, Min: FloatPtr(1)}))
			assert.True(t, Validate(Validatable{Value: tt.equal, Max: FloatPtr(1)}))
		})
	}
}

func TestValidate_NilIsNotNumeric(t *testing.T) {
	assert.True(t, Validate(Validatable{Value: nil, Min: FloatPtr(1)}))
	assert.False(t, Validate(Validatable{Value: nil, Required: true, Min: FloatPtr(1)}))
}

func TestValidate_ConstraintsOnlyApplyToMatchingKind(t *testing.T) {
	// Numeric bounds are ignored for text and length bounds for numbers.
	assert.True(t, Validate(Validatable{Value: "0", Min: FloatPtr(1)}))
	assert.True(t, Validate(Validatable{Value: 12345678, MaxLength: IntPtr(2)}))
}

func TestValidate_NoConstraints(t *testing.T) {
	assert.True(t, Validate(Validatable{Value: ""}))
	assert.True(t, Validate(Validatable{}))
}
