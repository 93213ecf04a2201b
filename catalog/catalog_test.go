package catalog_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numbind-generator/catalog"
)

func TestEntriesSubsets(t *testing.T) {
	t.Parallel()

	t.Run("literal subset", func(t *testing.T) {
		t.Parallel()

		entries := catalog.Entries(catalog.SubsetLiteral)
		assert.Len(t, entries, 21)
		for _, e := range entries {
			assert.Equal(t, catalog.SubsetLiteral, e.Subset)
			assert.False(t, e.IsSpecial())
		}
	})

	t.Run("constant subset", func(t *testing.T) {
		t.Parallel()

		entries := catalog.Entries(catalog.SubsetConstant)
		assert.Len(t, entries, 17)
		for _, e := range entries {
			assert.False(t, e.IsSpecial())
			assert.False(t, e.Integral(), e.Name)
		}
	})

	t.Run("special subset", func(t *testing.T) {
		t.Parallel()

		entries := catalog.Entries(catalog.SubsetSpecial)
		assert.Len(t, entries, 8)
		for _, e := range entries {
			assert.True(t, e.IsSpecial())
		}
	})

	t.Run("subsets do not leak into each other", func(t *testing.T) {
		t.Parallel()

		names := catalog.Names(catalog.SubsetLiteral | catalog.SubsetConstant)
		assert.Contains(t, names, "two")
		assert.Contains(t, names, "pi")
		assert.NotContains(t, names, "nan")
		assert.NotContains(t, names, "inf")
	})

	t.Run("all subsets combined", func(t *testing.T) {
		t.Parallel()

		assert.Len(t, catalog.Entries(catalog.SubsetAll), 46)
		assert.Empty(t, catalog.Entries(catalog.SubsetNone))
	})
}

func TestLookup(t *testing.T) {
	t.Parallel()

	entry, ok := catalog.Lookup("tau")
	require.True(t, ok)
	assert.Equal(t, 6.283185307179586, entry.Value)
	assert.Equal(t, catalog.SubsetConstant, entry.Subset)

	_, ok = catalog.Lookup("bogus")
	assert.False(t, ok)
}

// The constant entries must hold the correctly rounded doubles, matching
// constant-expression arithmetic over the math package, not runtime
// double-precision arithmetic.
func TestConstantValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		want float64
	}{
		{"pi", math.Pi},
		{"piOver2", math.Pi / 2},
		{"piOver3", 1.0471975511965979},
		{"oneOverPi", 0.3183098861837907},
		{"twoOverSqrtPi", 1.1283791670955126},
		{"tau", 2 * math.Pi},
		{"e", math.E},
		{"log2Of10", 3.321928094887362},
		{"log10E", 0.4342944819032518},
		{"oneOverSqrt2", 0.7071067811865476},
		{"sqrt2", math.Sqrt2},
		{"phi", math.Phi},
		{"third", 1.0 / 3.0},
		{"million", 1e6},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			entry, ok := catalog.Lookup(tc.name)
			require.True(t, ok)
			assert.Equal(t, tc.want, entry.Value)
		})
	}
}

func TestIntegral(t *testing.T) {
	t.Parallel()

	ten, ok := catalog.Lookup("ten")
	require.True(t, ok)
	assert.True(t, ten.Integral())

	third, ok := catalog.Lookup("third")
	require.True(t, ok)
	assert.False(t, third.Integral())

	nan, ok := catalog.Lookup("nan")
	require.True(t, ok)
	assert.False(t, nan.Integral())
	assert.True(t, nan.IsSpecial())
}

func TestSubsetMasks(t *testing.T) {
	t.Parallel()

	assert.Equal(t, catalog.SubsetLiteral|catalog.SubsetConstant|catalog.SubsetSpecial, catalog.SubsetAll)
	assert.False(t, catalog.SubsetNone.Has(catalog.SubsetAll))
	assert.Equal(t, "none", catalog.SubsetNone.String())

	subset := catalog.SubsetNone
	subset |= catalog.SubsetSpecial
	assert.Equal(t, "special", subset.String())
}

func TestParseSubset(t *testing.T) {
	t.Parallel()

	subset, err := catalog.ParseSubset("literal,constant")
	require.NoError(t, err)
	assert.Equal(t, catalog.SubsetLiteral|catalog.SubsetConstant, subset)
	assert.Equal(t, "literal|constant", subset.String())

	subset, err = catalog.ParseSubset("all")
	require.NoError(t, err)
	assert.Equal(t, catalog.SubsetAll, subset)

	_, err = catalog.ParseSubset("bogus")
	assert.Error(t, err)

	_, err = catalog.ParseSubset("")
	assert.Error(t, err)
}
