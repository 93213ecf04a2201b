package nums

// Literals is the plain-literal subset bound to T.
type Literals[T Number] struct{}

// Zero returns 0.
func (Literals[T]) Zero() T { return From[T](0) }

// One returns 1.
func (Literals[T]) One() T { return From[T](1) }

// Two returns 2.
func (Literals[T]) Two() T { return From[T](2) }

// Three returns 3.
func (Literals[T]) Three() T { return From[T](3) }

// Four returns 4.
func (Literals[T]) Four() T { return From[T](4) }

// Five returns 5.
func (Literals[T]) Five() T { return From[T](5) }

// Six returns 6.
func (Literals[T]) Six() T { return From[T](6) }

// Seven returns 7.
func (Literals[T]) Seven() T { return From[T](7) }

// Eight returns 8.
func (Literals[T]) Eight() T { return From[T](8) }

// Nine returns 9.
func (Literals[T]) Nine() T { return From[T](9) }

// Ten returns 10.
func (Literals[T]) Ten() T { return From[T](10) }

// Hundred returns 100.
func (Literals[T]) Hundred() T { return From[T](100) }

// Thousand returns 1e3.
func (Literals[T]) Thousand() T { return From[T](1e3) }

// Million returns 1e6.
func (Literals[T]) Million() T { return From[T](1e6) }

// Half returns 0.5.
func (Literals[T]) Half() T { return From[T](0.5) }

// Third returns 1/3.
func (Literals[T]) Third() T { return From[T](1.0 / 3.0) }

// Quarter returns 0.25.
func (Literals[T]) Quarter() T { return From[T](0.25) }

// Tenth returns 0.1.
func (Literals[T]) Tenth() T { return From[T](0.1) }

// Hundredth returns 0.01.
func (Literals[T]) Hundredth() T { return From[T](0.01) }

// Thousandth returns 1e-3.
func (Literals[T]) Thousandth() T { return From[T](1e-3) }

// Millionth returns 1e-6.
func (Literals[T]) Millionth() T { return From[T](1e-6) }
