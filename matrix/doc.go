// Package matrix provides the dense linear-algebra primitives used by the
// iterative solvers in linsolve.
//
// The matrix package provides:
//
//   - Matrix, a small interface over a two-dimensional float64 array with
//     bounds-checked At/Set and deep Clone.
//   - Dense, a row-major implementation backed by one flat slice.
//   - Validators (shape, vector length, finiteness, diagonal checks) that
//     return plain sentinels so callers can wrap them uniformly.
//   - Kernels: MatVec, NormInf, Residual, Doolittle LU and a direct Solve
//     built on LU with forward/backward substitution.
//
// Numeric policy: Dense rejects NaN and ±Inf on Set, so every matrix built
// through this package is finite.
//
// All routines are deterministic (fixed loop orders, no map iteration) and
// never panic on user-triggered conditions.
package matrix
