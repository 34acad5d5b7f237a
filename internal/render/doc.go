// Package render is the presentation sink for solver output.
//
// It turns a jacobi.Result into the iteration table (values, per-variable
// change, max error), machine-readable encodings (CSV, JSON, YAML, TOML)
// and a text convergence chart of the error series. Nothing here
// recomputes solver values; everything reads Trace.Rows and Trace.Errors.
package render
