package nums_test

import (
	"fmt"

	"numbind-generator/nums"
)

// Circumference works for any float type without naming a single literal.
func Circumference[T nums.Float](radius T) T {
	b := nums.Bind[T]()

	return b.Two() * b.Pi() * radius
}

func Example() {
	fmt.Println(Circumference(1.0))
	// Output: 6.283185307179586
}

func ExampleBindLiterals() {
	lit := nums.BindLiterals[int32]()
	fmt.Println(lit.Million() / lit.Thousand())
	// Output: 1000
}
