// Package gen provides deterministic Go code generation for token
// functions.
//
// Generation approach uses text/template + go/format for readable output.
//
// Codegen patterns:
//   - Literal and constant tokens as typed conversion expressions
//   - Special-value tokens as math calls sized to the kind's width
//   - An optional num() conversion helper, guarded for integer targets
//
// Every requested catalog entry is checked against the target kind before
// anything is emitted; an unrepresentable entry aborts generation.
package gen
