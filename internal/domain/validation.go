package domain

import (
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"
)

// Validatable pairs a value with the constraints that apply to it.
// Value is either textual (string) or numeric (any integer or float kind).
// A nil Value counts as empty.
// Length bounds only apply to text and numeric bounds only to numbers.
type Validatable struct {
	Value     any
	Required  bool
	MinLength *int
	MaxLength *int
	Min       *float64
	Max       *float64
}

// Validate reports whether every applicable constraint holds. Bounds are
// inclusive.
func Validate(v Validatable) bool {
	valid := true

	if v.Required {
		valid = valid && v.Value != nil && strings.TrimSpace(fmt.Sprint(v.Value)) != ""
	}

	if text, ok := v.Value.(string); ok {
		n := utf8.RuneCountInString(text)
		if v.MinLength != nil {
			valid = valid && n >= *v.MinLength
		}
		if v.MaxLength != nil {
			valid = valid && n <= *v.MaxLength
		}
	}

	if num, ok := numeric(v.Value); ok {
		if v.Min != nil {
			valid = valid && num >= *v.Min
		}
		if v.Max != nil {
			valid = valid && num <= *v.Max
		}
	}

	return valid
}

func numeric(value any) (float64, bool) {
	if value == nil {
		return 0, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// IntPtr and FloatPtr build optional constraint values inline.
func IntPtr(n int) *int { return &n }

func FloatPtr(f float64) *float64 { return &f }
