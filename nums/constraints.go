package nums

// Signed covers the signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned covers the unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer covers all integer types.
type Integer interface {
	Signed | Unsigned
}

// Float covers the floating-point types.
type Float interface {
	~float32 | ~float64
}

// Number covers all integer and floating-point types.
type Number interface {
	Integer | Float
}
