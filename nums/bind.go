// Package nums binds the literal catalog to a generic numeric type.
//
// A binding is a zero-size value whose methods are zero-argument tokens,
// one per catalog entry. Bind a type parameter once per scope and write
// b.Two() or b.Pi() instead of T(2) conversion boilerplate:
//
//	func Circumference[T nums.Float](radius T) T {
//		b := nums.Bind[T]()
//		return b.Two() * b.Pi() * radius
//	}
//
// Literals and Constants bind to any numeric type; a token whose value the
// bound type cannot represent (Half on an integer type, say) panics at the
// call site with a *ConversionError. Specials bind only to float types, so
// a constants-only binding leaves special-value tokens unresolvable at
// compile time rather than failing later.
package nums

// Nums binds the full catalog: literals, constants, and special values.
type Nums[T Float] struct {
	Literals[T]
	Constants[T]
	Specials[T]
}

// Bind binds the full catalog to T.
func Bind[T Float]() Nums[T] {
	return Nums[T]{}
}

// BindLiterals binds only the plain-literal subset to T.
func BindLiterals[T Number]() Literals[T] {
	return Literals[T]{}
}

// BindConstants binds only the mathematical-constant subset to T.
func BindConstants[T Number]() Constants[T] {
	return Constants[T]{}
}

// BindSpecials binds only the special-value subset to T.
func BindSpecials[T Float]() Specials[T] {
	return Specials[T]{}
}
