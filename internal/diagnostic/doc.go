// Package diagnostic defines the compile error taxonomy and the structured
// diagnostics reported by the linter.
//
// Every compile failure is an *Error carrying one of the Code values. Callers
// branch on the code with errors.Is against the exported sentinels:
//
//	if errors.Is(err, diagnostic.ErrClassResolution) { ... }
package diagnostic
