// Package analyze provides package loading and binding-target resolution.
//
// It uses golang.org/x/tools/go/packages with go/types to reduce a named
// type identifier to its numeric kind.
//
// Key types:
//   - TypeID: package import path + type name
//   - BindingTarget: a named type resolved to a numeric.KindEnum
package analyze
