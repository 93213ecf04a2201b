package nums

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"numbind-generator/numeric"
)

// ErrUnsupportedConversion is reported when a bound type cannot represent
// a requested value. Use errors.Is to detect it.
var ErrUnsupportedConversion = errors.New("unsupported conversion")

// ConversionError describes a value the bound type cannot represent.
type ConversionError struct {
	Value  float64
	Target string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("converting %v to %s: %s", e.Value, e.Target, ErrUnsupportedConversion)
}

func (e *ConversionError) Unwrap() error {
	return ErrUnsupportedConversion
}

// TryFrom converts v into T. Float types always succeed, rounding to the
// nearest representable value. Integer types accept only whole numbers
// within their range; anything else returns a *ConversionError. The value
// is never silently truncated.
func TryFrom[T Number](v float64) (T, error) {
	var zero T

	rtype := reflect.TypeOf(zero)
	kind := numeric.FromReflectType(rtype)
	if kind.IsInteger() && (math.Trunc(v) != v || !kind.InRange(v)) {
		return zero, &ConversionError{Value: v, Target: rtype.String()}
	}

	return T(v), nil
}

// From converts v into T, panicking at the call site with a
// *ConversionError when T cannot represent v.
func From[T Number](v float64) T {
	res, err := TryFrom[T](v)
	if err != nil {
		panic(err)
	}

	return res
}
