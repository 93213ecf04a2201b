// Package catalog defines the fixed set of named numeric literals that can
// be bound to a numeric type: plain literals (zero through ten, powers of
// ten, simple fractions), mathematical constants derived from the math
// package, and per-type special values (infinities, NaN, representation
// bounds, machine epsilon, negative zero).
//
// The catalog is static. Entries never change at run time and iteration
// order is fixed, so generated output is deterministic.
package catalog

import "math"

// SpecialEnum identifies a special value whose representation depends on
// the bound type rather than on a fixed float64 value.
type SpecialEnum int

const (
	SpecialNone SpecialEnum = iota

	SpecialInf
	SpecialNegInf
	SpecialNaN
	SpecialMinValue
	SpecialMaxValue
	SpecialMinPositive
	SpecialEpsilon
	SpecialNegZero
)

// Entry is one named literal in the catalog.
type Entry struct {
	// Name is the Go identifier used for the generated token function.
	Name string
	// Subset is the catalog subset this entry belongs to.
	Subset SubsetEnum
	// Value is the exact double-precision value of the literal.
	// Unused when Special is set.
	Value float64
	// Special marks entries whose value is defined per bound type.
	Special SpecialEnum
	// Doc is a one-line description emitted onto generated tokens.
	Doc string
}

// IsSpecial reports whether the entry is a per-type special value.
func (e Entry) IsSpecial() bool {
	return e.Special != SpecialNone
}

// Integral reports whether the entry holds a whole-number value.
func (e Entry) Integral() bool {
	return !e.IsSpecial() && math.Trunc(e.Value) == e.Value
}

// The constant values below are written as constant expressions over the
// math package's high-precision untyped constants, so each Value field
// receives the correctly rounded double, not the result of double-precision
// arithmetic (e.g. math.Pi/3 is 1.0471975511965979, one ulp away from
// float64(math.Pi)/3).
var entries = []Entry{
	{Name: "zero", Subset: SubsetLiteral, Value: 0, Doc: "0"},
	{Name: "one", Subset: SubsetLiteral, Value: 1, Doc: "1"},
	{Name: "two", Subset: SubsetLiteral, Value: 2, Doc: "2"},
	{Name: "three", Subset: SubsetLiteral, Value: 3, Doc: "3"},
	{Name: "four", Subset: SubsetLiteral, Value: 4, Doc: "4"},
	{Name: "five", Subset: SubsetLiteral, Value: 5, Doc: "5"},
	{Name: "six", Subset: SubsetLiteral, Value: 6, Doc: "6"},
	{Name: "seven", Subset: SubsetLiteral, Value: 7, Doc: "7"},
	{Name: "eight", Subset: SubsetLiteral, Value: 8, Doc: "8"},
	{Name: "nine", Subset: SubsetLiteral, Value: 9, Doc: "9"},
	{Name: "ten", Subset: SubsetLiteral, Value: 10, Doc: "10"},
	{Name: "hundred", Subset: SubsetLiteral, Value: 100, Doc: "100"},
	{Name: "thousand", Subset: SubsetLiteral, Value: 1e3, Doc: "1e3"},
	{Name: "million", Subset: SubsetLiteral, Value: 1e6, Doc: "1e6"},
	{Name: "half", Subset: SubsetLiteral, Value: 0.5, Doc: "0.5"},
	{Name: "third", Subset: SubsetLiteral, Value: 1.0 / 3.0, Doc: "1/3"},
	{Name: "quarter", Subset: SubsetLiteral, Value: 0.25, Doc: "0.25"},
	{Name: "tenth", Subset: SubsetLiteral, Value: 0.1, Doc: "0.1"},
	{Name: "hundredth", Subset: SubsetLiteral, Value: 0.01, Doc: "0.01"},
	{Name: "thousandth", Subset: SubsetLiteral, Value: 1e-3, Doc: "1e-3"},
	{Name: "millionth", Subset: SubsetLiteral, Value: 1e-6, Doc: "1e-6"},

	{Name: "pi", Subset: SubsetConstant, Value: math.Pi, Doc: "π = 3.141592653589793"},
	{Name: "piOver2", Subset: SubsetConstant, Value: math.Pi / 2, Doc: "π/2 = 1.5707963267948966"},
	{Name: "piOver3", Subset: SubsetConstant, Value: math.Pi / 3, Doc: "π/3 = 1.0471975511965979"},
	{Name: "oneOverPi", Subset: SubsetConstant, Value: 1 / math.Pi, Doc: "1/π = 0.3183098861837907"},
	{Name: "twoOverPi", Subset: SubsetConstant, Value: 2 / math.Pi, Doc: "2/π = 0.6366197723675814"},
	{Name: "twoOverSqrtPi", Subset: SubsetConstant, Value: 2 / math.SqrtPi, Doc: "2/sqrt(π) = 1.1283791670955126"},
	{Name: "tau", Subset: SubsetConstant, Value: 2 * math.Pi, Doc: "τ = 2π = 6.283185307179586"},
	{Name: "e", Subset: SubsetConstant, Value: math.E, Doc: "Euler's number e = 2.718281828459045"},
	{Name: "ln2", Subset: SubsetConstant, Value: math.Ln2, Doc: "ln(2) = 0.6931471805599453"},
	{Name: "ln10", Subset: SubsetConstant, Value: math.Ln10, Doc: "ln(10) = 2.302585092994046"},
	{Name: "log2Of10", Subset: SubsetConstant, Value: math.Ln10 / math.Ln2, Doc: "log2(10) = 3.321928094887362"},
	{Name: "log2E", Subset: SubsetConstant, Value: math.Log2E, Doc: "log2(e) = 1.4426950408889634"},
	{Name: "log10Of2", Subset: SubsetConstant, Value: math.Ln2 / math.Ln10, Doc: "log10(2) = 0.3010299956639812"},
	{Name: "log10E", Subset: SubsetConstant, Value: math.Log10E, Doc: "log10(e) = 0.4342944819032518"},
	{Name: "sqrt2", Subset: SubsetConstant, Value: math.Sqrt2, Doc: "sqrt(2) = 1.4142135623730951"},
	{Name: "oneOverSqrt2", Subset: SubsetConstant, Value: 1 / math.Sqrt2, Doc: "1/sqrt(2) = 0.7071067811865476"},
	{Name: "phi", Subset: SubsetConstant, Value: math.Phi, Doc: "golden ratio φ = 1.618033988749895"},

	{Name: "inf", Subset: SubsetSpecial, Special: SpecialInf, Doc: "positive infinity"},
	{Name: "negInf", Subset: SubsetSpecial, Special: SpecialNegInf, Doc: "negative infinity"},
	{Name: "nan", Subset: SubsetSpecial, Special: SpecialNaN, Doc: "NaN"},
	{Name: "minValue", Subset: SubsetSpecial, Special: SpecialMinValue, Doc: "smallest finite value of the type"},
	{Name: "maxValue", Subset: SubsetSpecial, Special: SpecialMaxValue, Doc: "largest finite value of the type"},
	{Name: "minPositive", Subset: SubsetSpecial, Special: SpecialMinPositive, Doc: "smallest positive normal value of the type"},
	{Name: "epsilon", Subset: SubsetSpecial, Special: SpecialEpsilon, Doc: "machine epsilon of the type"},
	{Name: "negZero", Subset: SubsetSpecial, Special: SpecialNegZero, Doc: "-0.0"},
}

// Entries returns the catalog entries belonging to the selected subsets,
// in fixed catalog order. The returned slice is a copy.
func Entries(subset SubsetEnum) []Entry {
	var res []Entry
	for _, e := range entries {
		if subset.Has(e.Subset) {
			res = append(res, e)
		}
	}

	return res
}

// Lookup finds a catalog entry by name.
func Lookup(name string) (Entry, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}

	return Entry{}, false
}

// Names returns the names of all entries in the selected subsets.
func Names(subset SubsetEnum) []string {
	var res []string
	for _, e := range entries {
		if subset.Has(e.Subset) {
			res = append(res, e.Name)
		}
	}

	return res
}
