// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used around the
// iterative solvers: matrix-vector product, infinity norm, residual, Doolittle
// LU and a direct solve built on it.
//
// Notes:
//   - All kernels validate through validators.go and wrap failures via matrixErrorf.
//   - *Dense inputs take a flat-slice fast path; other Matrix values go through At.

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU routines.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opMatVec   = "MatVec"
	opLU       = "LU"
	opSolve    = "Solve"
	opSolveLU  = "SolveLU"
	opResidual = "Residual"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// NormInf returns max_i |x[i]|. NaN entries propagate (the result is NaN).
// An empty vector has norm 0.
func NormInf(x []float64) float64 {
	norm := NormZero
	for _, v := range x {
		a := math.Abs(v)
		if math.IsNaN(a) {
			return a
		}
		if a > norm {
			norm = a
		}
	}

	return norm
}

// Residual returns r = b - A*x.
//
// The iterative solvers never use it for their stopping rule; it exists for
// reporting how well an iterate actually satisfies the system.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Residual(a Matrix, x, b []float64) ([]float64, error) {
	ax, err := MatVec(a, x)
	if err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	if err = ValidateVecLen(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	r := make([]float64, len(b))
	for i := range b {
		r[i] = b[i] - ax[i]
	}

	return r, nil
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L (no pivoting).
//
// Implementation:
//   - Stage 1: Validate m (not nil, square); allocate Dense L,U; set diag(L)=1.
//   - Stage 2: For i=0..n-1, build row i of U and column i of L in fixed order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (if U[i,i]==0 during factorization).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - Numerical stability requires pivoting upstream; this kernel trades stability for determinism.
func LU(m Matrix) (*Dense, *Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	n := m.Rows()
	L, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	U, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	for i := 0; i < n; i++ {
		L.data[i*n+i] = 1.0
	}

	// Work on a flat copy so non-Dense inputs share the fast loop below.
	a, err := flatten(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	var i, j, k int
	var sum float64
	for i = 0; i < n; i++ {
		// Row i of U for columns j >= i.
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[i*n+k] * U.data[k*n+j]
			}
			U.data[i*n+j] = a[i*n+j] - sum
		}

		// Zero-pivot guard (deterministic singularity detection).
		if U.data[i*n+i] == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}

		// Column i of L for rows j > i.
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[j*n+k] * U.data[k*n+i]
			}
			L.data[j*n+i] = (a[j*n+i] - sum) / U.data[i*n+i]
		}
	}

	return L, U, nil
}

// SolveLU solves L*U*x = b by forward substitution (L y = b, unit diagonal)
// followed by backward substitution (U x = y).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular (zero on diag(U)).
// Complexity: O(n²).
func SolveLU(L, U *Dense, b []float64) ([]float64, error) {
	if L == nil || U == nil {
		return nil, matrixErrorf(opSolveLU, ErrNilMatrix)
	}
	if err := ValidateSquare(L); err != nil {
		return nil, matrixErrorf(opSolveLU, err)
	}
	if L.r != U.r || L.c != U.c {
		return nil, matrixErrorf(opSolveLU, ErrDimensionMismatch)
	}
	n := L.r
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolveLU, err)
	}

	var i, k int
	var sum float64

	// Forward: L*y = b.
	y := make([]float64, n)
	for i = 0; i < n; i++ {
		sum = ZeroSum
		for k = 0; k < i; k++ {
			sum += L.data[i*n+k] * y[k]
		}
		y[i] = b[i] - sum
	}

	// Backward: U*x = y.
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		for k = i + 1; k < n; k++ {
			sum += U.data[i*n+k] * x[k]
		}
		if U.data[i*n+i] == ZeroPivot {
			return nil, matrixErrorf(opSolveLU, ErrSingular)
		}
		x[i] = (y[i] - sum) / U.data[i*n+i]
	}

	return x, nil
}

// Solve computes x with A*x = b by direct elimination (LU + substitution).
//
// Behavior highlights:
//   - No pivoting: systems whose leading minors vanish return ErrSingular
//     even when A itself is invertible.
//   - Inputs are never mutated.
func Solve(a Matrix, b []float64) ([]float64, error) {
	L, U, err := LU(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x, err := SolveLU(L, U, b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return x, nil
}

// flatten returns the row-major contents of m as a fresh slice.
func flatten(m Matrix) ([]float64, error) {
	if d, ok := m.(*Dense); ok {
		out := make([]float64, len(d.data))
		copy(out, d.data)

		return out, nil
	}
	r, c := m.Rows(), m.Cols()
	out := make([]float64, r*c)
	var i, j int
	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out[i*c+j] = v
		}
	}

	return out, nil
}
