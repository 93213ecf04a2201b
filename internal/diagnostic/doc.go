// Package diagnostic provides structured errors and warnings for binding
// validation and token generation.
//
// Key capabilities:
//   - Unsupported-conversion errors naming the offending token
//   - Unknown-token and non-numeric-type errors
//   - Stable codes for scripting against check output
package diagnostic
