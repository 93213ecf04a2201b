package nums

import "math"

// Constants is the mathematical-constant subset bound to T. Each value is
// the correctly rounded double converted into T; float32 bindings round
// once more to single precision.
type Constants[T Number] struct{}

// Pi returns π = 3.141592653589793.
func (Constants[T]) Pi() T { return From[T](math.Pi) }

// PiOver2 returns π/2 = 1.5707963267948966.
func (Constants[T]) PiOver2() T { return From[T](math.Pi / 2) }

// PiOver3 returns π/3 = 1.0471975511965979.
func (Constants[T]) PiOver3() T { return From[T](math.Pi / 3) }

// OneOverPi returns 1/π = 0.3183098861837907.
func (Constants[T]) OneOverPi() T { return From[T](1 / math.Pi) }

// TwoOverPi returns 2/π = 0.6366197723675814.
func (Constants[T]) TwoOverPi() T { return From[T](2 / math.Pi) }

// TwoOverSqrtPi returns 2/sqrt(π) = 1.1283791670955126.
func (Constants[T]) TwoOverSqrtPi() T { return From[T](2 / math.SqrtPi) }

// Tau returns τ = 2π = 6.283185307179586.
func (Constants[T]) Tau() T { return From[T](2 * math.Pi) }

// E returns Euler's number e = 2.718281828459045.
func (Constants[T]) E() T { return From[T](math.E) }

// Ln2 returns ln(2) = 0.6931471805599453.
func (Constants[T]) Ln2() T { return From[T](math.Ln2) }

// Ln10 returns ln(10) = 2.302585092994046.
func (Constants[T]) Ln10() T { return From[T](math.Ln10) }

// Log2Of10 returns log2(10) = 3.321928094887362.
func (Constants[T]) Log2Of10() T { return From[T](math.Ln10 / math.Ln2) }

// Log2E returns log2(e) = 1.4426950408889634.
func (Constants[T]) Log2E() T { return From[T](math.Log2E) }

// Log10Of2 returns log10(2) = 0.3010299956639812.
func (Constants[T]) Log10Of2() T { return From[T](math.Ln2 / math.Ln10) }

// Log10E returns log10(e) = 0.4342944819032518.
func (Constants[T]) Log10E() T { return From[T](math.Log10E) }

// Sqrt2 returns sqrt(2) = 1.4142135623730951.
func (Constants[T]) Sqrt2() T { return From[T](math.Sqrt2) }

// OneOverSqrt2 returns 1/sqrt(2) = 0.7071067811865476.
func (Constants[T]) OneOverSqrt2() T { return From[T](1 / math.Sqrt2) }

// Phi returns the golden ratio φ = 1.618033988749895.
func (Constants[T]) Phi() T { return From[T](math.Phi) }
