// Package jacobi solves square linear systems A·x = b with the Jacobi
// iterative method and records every iterate.
//
// 🚀 What is Jacobi iteration?
//
//	Each variable is recomputed from the *previous* iterate of all the others:
//
//	  x'[j] = (b[j] − Σ_{k≠j} A[j][k]·x[k]) / A[j][j]
//
//	All components update simultaneously from one snapshot. That is what
//	separates Jacobi from Gauss–Seidel, which reuses x'[k] as soon as it is
//	computed. Strict row diagonal dominance guarantees convergence.
//
// ✨ Key features:
//   - full trace: iteration 0 is the initial guess, iteration k the k-th update
//   - per-variable change |x'[j] − x[j]| and the max change (∞-norm) per step
//   - stops at the first step whose max change is strictly below tolerance
//   - zero diagonal coefficients are rejected up front (SingularDiagonalError)
//   - row-oriented export (Trace.Rows) and error series (Trace.Errors) for
//     tables and convergence charts
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/linsolve/jacobi"
//
//	a := [][]float64{{4, 1, 1}, {1, 3, 1}, {1, 1, 5}}
//	res, err := jacobi.SolveRows(a, []float64{6, 5, 7}, []float64{0, 0, 0}, 100, 1e-6)
//	if err != nil {
//	  // errors.Is(err, jacobi.ErrInvalidArgument) or jacobi.ErrSingularDiagonal
//	}
//	fmt.Println(res.Converged, res.IterationsRun, res.Solution())
//
// Stopping rule:
//
//	The error of a step is max_j |x'[j] − x[j]|, the change between two
//	consecutive iterates. The residual ‖b − A·x‖ is never consulted; a slow
//	step on an ill-conditioned system can pass the tolerance while the
//	residual is still large. Use matrix.Residual to report it if needed.
//
// Performance:
//
//   - Time:   O(iterations · n²)
//   - Memory: O(iterations · n) for the trace
//
// Solve is a pure function: no I/O, no globals, inputs are never mutated, and
// concurrent calls with independent inputs need no locking.
package jacobi
