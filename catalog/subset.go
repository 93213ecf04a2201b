package catalog

import (
	"fmt"
	"strings"
)

// SubsetEnum is a bitmask selecting one or more catalog subsets.
type SubsetEnum int

const (
	SubsetLiteral  SubsetEnum = 1 << iota // plain numeric literals: zero..ten, powers of ten, simple fractions
	SubsetConstant                        // well-known mathematical constants
	SubsetSpecial                         // per-type special values: infinities, NaN, bounds, machine epsilon

	SubsetAll  SubsetEnum = (1 << iota) - 1 // all subsets combined
	SubsetNone SubsetEnum = 0               // no subsets selected
)

// Has reports whether s selects any of the subsets in other.
func (s SubsetEnum) Has(other SubsetEnum) bool {
	return s&other != 0
}

// String returns the selected subset names joined by "|".
func (s SubsetEnum) String() string {
	var parts []string
	if s.Has(SubsetLiteral) {
		parts = append(parts, "literal")
	}

	if s.Has(SubsetConstant) {
		parts = append(parts, "constant")
	}

	if s.Has(SubsetSpecial) {
		parts = append(parts, "special")
	}

	if len(parts) == 0 {
		return "none"
	}

	return strings.Join(parts, "|")
}

// ParseSubset parses a comma-separated list of subset names
// ("literal", "constant", "special", or "all") into a mask.
func ParseSubset(names string) (SubsetEnum, error) {
	subset := SubsetNone

	for _, name := range strings.Split(names, ",") {
		switch strings.TrimSpace(name) {
		default:
			return SubsetNone, fmt.Errorf("unknown subset %q", strings.TrimSpace(name))
		case "":
		case "literal":
			subset |= SubsetLiteral
		case "constant":
			subset |= SubsetConstant
		case "special":
			subset |= SubsetSpecial
		case "all":
			subset |= SubsetAll
		}
	}

	if subset == SubsetNone {
		return SubsetNone, fmt.Errorf("no subsets selected in %q", names)
	}

	return subset, nil
}
