package analyze

import (
	"fmt"
	"go/types"

	"golang.org/x/tools/go/packages"

	"numbind-generator/numeric"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Resolver loads Go packages and resolves binding targets in them.
type Resolver struct {
	dir string // working directory for package loading; empty means cwd
}

// NewResolver creates a new Resolver rooted at dir.
func NewResolver(dir string) *Resolver {
	return &Resolver{dir: dir}
}

// Resolve loads the package matching pattern and resolves typeName to a
// binding target. Pattern is a standard Go package pattern (e.g. ".",
// "./examples/measure", "numbind-generator/examples/measure").
func (r *Resolver) Resolve(pattern, typeName string) (*BindingTarget, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  r.dir,
	}

	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to load package %s: %w", pattern, err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		obj := pkg.Types.Scope().Lookup(typeName)
		if obj == nil {
			continue
		}

		return resolveObject(pkg, obj, typeName)
	}

	return nil, fmt.Errorf("type %s not found in %s", typeName, pattern)
}

// resolveObject reduces a scope object to a numeric binding target.
func resolveObject(pkg *packages.Package, obj types.Object, typeName string) (*BindingTarget, error) {
	typeDecl, ok := obj.(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%s.%s is not a type", pkg.PkgPath, typeName)
	}

	basic, ok := typeDecl.Type().Underlying().(*types.Basic)
	if !ok {
		return nil, fmt.Errorf("type %s.%s is not numeric", pkg.PkgPath, typeName)
	}

	kind := numeric.FromBasicKind(basic.Kind())
	if kind == 0 {
		return nil, fmt.Errorf("type %s.%s (%s) is not numeric", pkg.PkgPath, typeName, basic.Name())
	}

	return &BindingTarget{
		ID:      TypeID{PkgPath: pkg.PkgPath, Name: typeName},
		PkgName: pkg.Name,
		Kind:    kind,
		GoType:  typeDecl.Type(),
	}, nil
}
