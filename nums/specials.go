package nums

import (
	"math"
	"reflect"

	"numbind-generator/numeric"
)

// Specials is the special-value subset bound to T. The Float constraint
// keeps these tokens out of scope for integer bindings entirely: a type
// with no NaN has no NaN token to misuse.
type Specials[T Float] struct{}

// bySize picks the value matching T's width. Both candidates travel as
// float64; float32 values embed in float64 exactly, so the narrowing
// conversion on the 32-bit branch is lossless.
func bySize[T Float](v32, v64 float64) T {
	var zero T
	if numeric.FromReflectType(reflect.TypeOf(zero)).Bits() == 32 {
		return T(v32)
	}

	return T(v64)
}

// Inf returns positive infinity.
func (Specials[T]) Inf() T { return T(math.Inf(1)) }

// NegInf returns negative infinity.
func (Specials[T]) NegInf() T { return T(math.Inf(-1)) }

// NaN returns a quiet NaN.
func (Specials[T]) NaN() T { return T(math.NaN()) }

// MinValue returns the smallest finite value of T.
func (Specials[T]) MinValue() T {
	return bySize[T](-math.MaxFloat32, -math.MaxFloat64)
}

// MaxValue returns the largest finite value of T.
func (Specials[T]) MaxValue() T {
	return bySize[T](math.MaxFloat32, math.MaxFloat64)
}

// MinPositive returns the smallest positive normal value of T.
func (Specials[T]) MinPositive() T {
	return bySize[T](0x1p-126, 0x1p-1022)
}

// Epsilon returns the machine epsilon of T, the difference between 1 and
// the next larger representable value.
func (Specials[T]) Epsilon() T {
	return bySize[T](0x1p-23, 0x1p-52)
}

// NegZero returns negative zero.
func (Specials[T]) NegZero() T { return T(math.Copysign(0, -1)) }
