package jacobi

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsolve/matrix"
)

// maxPrealloc caps the initial trace capacity so a huge iteration cap does
// not allocate up front.
const maxPrealloc = 1024

// Solve runs Jacobi iteration on A·x = b starting from x0.
//
// Algorithm Outline:
//  1. Validate shapes, scalars and finiteness; reject any A[j][j] == 0.
//  2. Record iteration 0 with values = x0 (no deltas, no error).
//  3. For t = 1..maxIterations:
//     x'[j]   = (b[j] − Σ_{k≠j} A[j][k]·x[k]) / A[j][j]   for every j, from x only
//     δ[j]    = |x'[j] − x[j]|
//     err     = max_j δ[j]
//     append record t; x = x'
//     stop if err < tolerance (Converged = true)
//  4. Converged stays false when the cap is exhausted.
//
// Inputs:
//   - a:             n×n matrix, n ≥ 1, finite, non-zero diagonal.
//   - b, x0:         length-n finite vectors.
//   - maxIterations: ≥ 1, upper bound on update steps.
//   - tolerance:     finite and > 0; compared with strict less-than.
//
// Errors:
//   - *InvalidArgumentError (errors.Is ErrInvalidArgument) for nil/non-square A,
//     length mismatches, NaN/Inf inputs, maxIterations < 1, tolerance ≤ 0.
//   - *SingularDiagonalError (errors.Is ErrSingularDiagonal) naming the first
//     zero diagonal index.
//
// Non-finite iterates produced by a diverging system are not errors; they
// propagate per IEEE-754 and the run ends at the cap (see Result.Finite).
//
// Complexity:
//
//	Time   = O(maxIterations · n²)
//	Memory = O(n²) for the coefficient snapshot + O(iterations · n) for the trace
func Solve(a matrix.Matrix, b, x0 []float64, maxIterations int, tolerance float64) (*Result, error) {
	coeffs, n, err := validate(a, b, x0, maxIterations, tolerance)
	if err != nil {
		return nil, err
	}

	x := cloneVec(x0)
	capHint := maxIterations + 1
	if capHint > maxPrealloc {
		capHint = maxPrealloc
	}
	res := &Result{Trace: Trace{records: make([]Record, 0, capHint)}}
	res.Trace.append(Record{index: 0, values: cloneVec(x)})

	var (
		t, j, k int
		sum     float64
		delta   float64
		stepErr float64
		base    int
	)
	for t = 1; t <= maxIterations; t++ {
		// Every component reads x only; next is never read while it is filled.
		next := make([]float64, n)
		for j = 0; j < n; j++ {
			sum = matrix.ZeroSum
			base = j * n
			for k = 0; k < n; k++ {
				if k == j {
					continue
				}
				sum += coeffs[base+k] * x[k]
			}
			next[j] = (b[j] - sum) / coeffs[base+j]
		}

		deltas := make([]float64, n)
		stepErr = matrix.NormZero
		for j = 0; j < n; j++ {
			delta = math.Abs(next[j] - x[j])
			deltas[j] = delta
			// NaN is sticky: once taken, no later delta compares greater.
			if delta > stepErr || math.IsNaN(delta) {
				stepErr = delta
			}
		}

		res.Trace.append(Record{index: t, values: next, deltas: deltas, maxError: stepErr, hasError: true})
		res.IterationsRun = t
		x = next

		if stepErr < tolerance {
			res.Converged = true
			break
		}
	}

	return res, nil
}

// SolveRows is Solve for a slice-of-rows matrix literal.
// Ragged or empty rows are reported as InvalidArgumentError on "A".
func SolveRows(a [][]float64, b, x0 []float64, maxIterations int, tolerance float64) (*Result, error) {
	m, err := matrix.NewDenseFromRows(a)
	if err != nil {
		return nil, invalidArg("A", "cannot build matrix", err)
	}

	return Solve(m, b, x0, maxIterations, tolerance)
}

// validate checks every precondition and returns a row-major snapshot of A.
// Order: A shape → vector lengths → scalars → finiteness → diagonal.
func validate(a matrix.Matrix, b, x0 []float64, maxIterations int, tolerance float64) ([]float64, int, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, 0, invalidArg("A", "must be a non-nil square matrix", err)
	}
	n := a.Rows()
	if n < 1 {
		return nil, 0, invalidArg("A", "must have at least one row", matrix.ErrInvalidDimensions)
	}
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return nil, 0, invalidArg("B", fmt.Sprintf("must have length %d, got %d", n, len(b)), err)
	}
	if err := matrix.ValidateVecLen(x0, n); err != nil {
		return nil, 0, invalidArg("X0", fmt.Sprintf("must have length %d, got %d", n, len(x0)), err)
	}
	if maxIterations < 1 {
		return nil, 0, invalidArg("maxIterations", fmt.Sprintf("must be >= 1, got %d", maxIterations), nil)
	}
	if math.IsNaN(tolerance) || math.IsInf(tolerance, 0) || tolerance <= 0 {
		return nil, 0, invalidArg("tolerance", fmt.Sprintf("must be finite and > 0, got %g", tolerance), nil)
	}

	coeffs := make([]float64, n*n)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, 0, invalidArg("A", fmt.Sprintf("unreadable entry (%d,%d)", i, j), err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, 0, invalidArg("A", fmt.Sprintf("entry (%d,%d) is not finite", i, j), matrix.ErrNaNInf)
			}
			coeffs[i*n+j] = v
		}
	}
	if err = matrix.ValidateFiniteVec(b); err != nil {
		return nil, 0, invalidArg("B", "must be finite", err)
	}
	if err = matrix.ValidateFiniteVec(x0); err != nil {
		return nil, 0, invalidArg("X0", "must be finite", err)
	}

	idx, zero, err := matrix.ZeroDiagonal(a)
	if err != nil {
		return nil, 0, invalidArg("A", "unreadable diagonal", err)
	}
	if zero {
		return nil, 0, &SingularDiagonalError{Index: idx}
	}

	return coeffs, n, nil
}
