package nums_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numbind-generator/nums"
)

func checkConstants[T nums.Float](t *testing.T) {
	t.Helper()

	b := nums.Bind[T]()
	assert.Equal(t, T(0), b.Zero())
	assert.Equal(t, T(1), b.One())
	assert.Equal(t, nums.From[T](2.0), b.Two())
	assert.Equal(t, b.PiOver2(), b.Half()*b.Pi())
	assert.Equal(t, nums.From[T](math.E), b.E())
	assert.Equal(t, b.Tau(), b.Two()*b.Pi())
}

func TestConstants(t *testing.T) {
	t.Parallel()

	checkConstants[float64](t)
	checkConstants[float32](t)
}

func checkSpecials[T nums.Float](t *testing.T) {
	t.Helper()

	s := nums.BindSpecials[T]()
	assert.True(t, s.NaN() != s.NaN())
	assert.True(t, s.Inf() > s.MaxValue())
	assert.True(t, s.NegInf() < s.MinValue())
	assert.Equal(t, s.MinValue(), -s.MaxValue())
	assert.Greater(t, s.MinPositive(), T(0))

	// negative zero compares equal to zero but carries the sign bit
	assert.Equal(t, T(0), s.NegZero())
	assert.True(t, math.Signbit(float64(s.NegZero())))

	// epsilon is the gap between 1 and the next representable value
	assert.NotEqual(t, T(1), T(1)+s.Epsilon())
	assert.Equal(t, T(1), T(1)+s.Epsilon()/2)
}

func TestSpecials(t *testing.T) {
	t.Parallel()

	checkSpecials[float64](t)
	checkSpecials[float32](t)
}

func TestSpecialsWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, float32(math.MaxFloat32), nums.BindSpecials[float32]().MaxValue())
	assert.Equal(t, math.MaxFloat64, nums.BindSpecials[float64]().MaxValue())
	assert.Equal(t, float32(0x1p-23), nums.BindSpecials[float32]().Epsilon())
	assert.Equal(t, 0x1p-52, nums.BindSpecials[float64]().Epsilon())

	// smallest positive normal values, one binade above the subnormal range
	assert.Equal(t, float32(1.1754944e-38), nums.BindSpecials[float32]().MinPositive())
	assert.Equal(t, 2.2250738585072014e-308, nums.BindSpecials[float64]().MinPositive())
	assert.Greater(t, nums.BindSpecials[float64]().MinPositive(), math.SmallestNonzeroFloat64)
}

// The original end-to-end scenario: bind float64, multiply the two token
// by the circle-ratio token.
func TestTauEndToEnd(t *testing.T) {
	t.Parallel()

	b := nums.Bind[float64]()
	assert.Equal(t, 6.283185307179586, b.Two()*b.Pi()*1.0)
}

func TestSubsetBindingsFloat32(t *testing.T) {
	t.Parallel()

	// constants-only and literals-only bindings stand on their own;
	// special-value tokens are simply not in scope on these values.
	assert.Equal(t, float32(1.0), nums.BindLiterals[float32]().One())
	assert.Equal(t, float32(math.Pi), nums.BindConstants[float32]().Pi())
}

func TestIntegerLiterals(t *testing.T) {
	t.Parallel()

	b := nums.BindLiterals[int32]()
	assert.Equal(t, int32(10), b.Ten())
	assert.Equal(t, int32(1000000), b.Million())

	c := nums.BindConstants[uint16]()
	assert.Panics(t, func() { c.Pi() })
}

func TestIntegerUnsupportedTokenPanics(t *testing.T) {
	t.Parallel()

	b := nums.BindLiterals[int64]()

	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, nums.ErrUnsupportedConversion)
	}()

	b.Half()
}

func TestIntegerRangePanics(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int8(100), nums.BindLiterals[int8]().Hundred())
	assert.Panics(t, func() { nums.BindLiterals[int8]().Thousand() })
	assert.Panics(t, func() { nums.BindLiterals[uint8]().Thousand() })
	assert.Equal(t, uint16(1000), nums.BindLiterals[uint16]().Thousand())
}

func viaT[T nums.Float]() T {
	b := nums.Bind[T]()
	return b.Two() * b.Pi()
}

func viaF[F nums.Float]() F {
	b := nums.Bind[F]()
	return b.Two() * b.Pi()
}

// Bindings are stateless: the type parameter's name and the binding site
// don't matter, only the bound type does.
func TestBindingIdempotence(t *testing.T) {
	t.Parallel()

	a, b := nums.Bind[float64](), nums.Bind[float64]()
	assert.Equal(t, a, b)
	assert.Equal(t, a.Phi(), b.Phi())
	assert.Equal(t, viaT[float64](), viaF[float64]())
	assert.Equal(t, viaT[float32](), viaF[float32]())
}
