package gen

import (
	"fmt"
	"strconv"
	"strings"

	"numbind-generator/catalog"
	"numbind-generator/internal/analyze"
	"numbind-generator/numeric"
)

// templateData holds all data needed for the token file template.
type templateData struct {
	PackageName string
	TypeName    string
	Selection   string
	Tokens      []tokenData
	Imports     []string
	WithNum     bool
	NumName     string
	// NumGuard is the range condition for integer targets; empty for
	// float targets, where conversion always succeeds.
	NumGuard string
}

// tokenData represents a single generated token function.
type tokenData struct {
	FuncName string
	Doc      string
	Expr     string
}

// buildTemplateData constructs the template data for a binding target and
// its selected catalog entries.
func (g *Generator) buildTemplateData(target *analyze.BindingTarget, entries []catalog.Entry) *templateData {
	data := &templateData{
		PackageName: g.config.PackageName,
		TypeName:    target.ID.Name,
		Selection:   g.selectionLabel(entries),
		WithNum:     g.config.WithNum,
		NumName:     g.config.Prefix + "num",
	}

	if data.PackageName == "" {
		data.PackageName = target.PkgName
	}

	for _, e := range entries {
		data.Tokens = append(data.Tokens, tokenData{
			FuncName: g.config.Prefix + e.Name,
			Doc:      e.Doc,
			Expr:     tokenExpr(target.Kind, target.ID.Name, e),
		})
	}

	if data.WithNum && target.Kind.IsInteger() {
		data.NumGuard = numGuard(target.Kind)
	}

	// Collect imports heuristically from the emitted expressions;
	// go/format fixes ordering and spacing later.
	needsMath := strings.Contains(data.NumGuard, "math.")
	for _, tok := range data.Tokens {
		if strings.Contains(tok.Expr, "math.") {
			needsMath = true
		}
	}
	if data.NumGuard != "" {
		// integer num() panics with a formatted message
		data.Imports = append(data.Imports, "fmt")
		needsMath = true // math.Trunc in the guard
	}
	if needsMath {
		data.Imports = append(data.Imports, "math")
	}

	return data
}

// selectionLabel describes the generated selection for the file header.
func (g *Generator) selectionLabel(entries []catalog.Entry) string {
	if len(g.config.Tokens) == 0 {
		return g.config.Subset.String() + " subset"
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}

	return "tokens: " + strings.Join(names, ", ")
}

// tokenExpr returns the Go expression producing entry e as typeName.
func tokenExpr(kind numeric.KindEnum, typeName string, e catalog.Entry) string {
	if !e.IsSpecial() {
		if kind.IsInteger() {
			return fmt.Sprintf("%s(%d)", typeName, int64(e.Value))
		}

		return fmt.Sprintf("%s(%s)", typeName, formatFloat(e.Value))
	}

	wide := kind.Bits() == 64

	switch e.Special {
	default:
		panic("no expression for special value of " + e.Name)
	case catalog.SpecialInf:
		return typeName + "(math.Inf(1))"
	case catalog.SpecialNegInf:
		return typeName + "(math.Inf(-1))"
	case catalog.SpecialNaN:
		return typeName + "(math.NaN())"
	case catalog.SpecialMinValue:
		if wide {
			return typeName + "(-math.MaxFloat64)"
		}
		return typeName + "(-math.MaxFloat32)"
	case catalog.SpecialMaxValue:
		if wide {
			return typeName + "(math.MaxFloat64)"
		}
		return typeName + "(math.MaxFloat32)"
	case catalog.SpecialMinPositive:
		// smallest positive normal value, not the subnormal floor
		if wide {
			return typeName + "(0x1p-1022)"
		}
		return typeName + "(0x1p-126)"
	case catalog.SpecialEpsilon:
		if wide {
			return typeName + "(0x1p-52)"
		}
		return typeName + "(0x1p-23)"
	case catalog.SpecialNegZero:
		return typeName + "(math.Copysign(0, -1))"
	}
}

// numGuard returns the out-of-range condition for an integer kind. Bounds
// are exact powers of two written as hex float literals; the platform-width
// kinds derive theirs from math.MinInt so the generated file stays portable.
func numGuard(kind numeric.KindEnum) string {
	switch kind {
	default:
		panic("no num() guard for kind " + kind.String())
	case numeric.KindInt:
		return "v < math.MinInt || v >= -float64(math.MinInt)"
	case numeric.KindUint:
		return "v < 0 || v >= -2*float64(math.MinInt)"
	case numeric.KindInt8, numeric.KindInt16, numeric.KindInt32, numeric.KindInt64:
		bound := "0x1p" + strconv.Itoa(kind.Bits()-1)
		return fmt.Sprintf("v < -%s || v >= %s", bound, bound)
	case numeric.KindUint8, numeric.KindUint16, numeric.KindUint32, numeric.KindUint64:
		return fmt.Sprintf("v < 0 || v >= 0x1p%d", kind.Bits())
	}
}

// formatFloat renders v as its shortest round-trip Go literal.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
