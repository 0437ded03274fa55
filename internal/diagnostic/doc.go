// Package diagnostic provides structured configuration errors and
// warnings for the CSV rewriter.
//
// Key capabilities:
//   - Unknown transform / column type errors with stable codes
//   - Per-column context on every message
//   - Folding a validation run into a single error for fail-fast startup
package diagnostic
