package numeric

import (
	"math"

	"numbind-generator/catalog"
)

// InRange reports whether v lies within kind k's representable range.
// Bounds are exact powers of two, so the comparison is precise even at
// the 64-bit extremes where float64 cannot represent the maximum value
// itself. Float kinds accept any value: conversion to them rounds,
// which is the defined behavior, not a range failure.
func (k KindEnum) InRange(v float64) bool {
	switch {
	default:
		return false
	case k.IsFloat():
		return true
	case k.IsSigned():
		limit := math.Ldexp(1, k.Bits()-1)
		return v >= -limit && v < limit
	case k.IsUnsigned():
		return v >= 0 && v < math.Ldexp(1, k.Bits())
	}
}

// Representable reports whether kind k can hold catalog entry e without
// loss. Special values and fractional values exist only for float kinds;
// whole-number values must fit the integer kind's range. This is the single
// decision point behind every unsupported-conversion failure, at run time
// and at generation time alike.
func Representable(k KindEnum, e catalog.Entry) bool {
	if k == 0 {
		return false
	}

	if e.IsSpecial() {
		return k.IsFloat()
	}

	if k.IsFloat() {
		return true
	}

	return e.Integral() && k.InRange(e.Value)
}
