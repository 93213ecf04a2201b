package analyze

import (
	"go/types"

	"numbind-generator/numeric"
)

// TypeID uniquely identifies a named type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "numbind-generator/examples/measure"
	Name    string // e.g., "Celsius"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// BindingTarget is a named type resolved to its numeric kind, ready for
// token generation.
type BindingTarget struct {
	// ID identifies the target type.
	ID TypeID
	// PkgName is the target package's declared name (for the package clause
	// of generated files).
	PkgName string
	// Kind is the numeric kind of the type's underlying basic type.
	Kind numeric.KindEnum
	// GoType is the original go/types.Type.
	GoType types.Type
}
