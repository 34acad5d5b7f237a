// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/length/finiteness checks here.
//  - Return sentinel errors wrapped with a validator tag so call sites can match via errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Square).
//  - Each validator states what it assumes (e.g. no nil check).

package matrix

import (
	"fmt"
	"math"
)

// zeroDiag is the exact value treated as a missing diagonal entry.
// Near-zero diagonals are accepted; only exact zero forces a division by zero.
const zeroDiag = 0.0

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	// A typed nil *Dense hidden behind the interface is still nil for us.
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Implementation: assumes m is not nil (caller must ensure).
// Errors: ErrDimensionMismatch if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquareNonNil is the composite NotNil → Square.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and has exactly n entries.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFiniteVec rejects vectors holding NaN or ±Inf.
// Time: O(n). Space: O(1).
func ValidateFiniteVec(x []float64) error {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(fmt.Sprintf("ValidateFiniteVec[%d]", i), ErrNaNInf)
		}
	}

	return nil
}

// ZeroDiagonal scans the main diagonal of a square matrix in index order and
// reports the first index holding exactly zero.
//
// Implementation: assumes m is non-nil and square (see ValidateSquareNonNil).
// Returns (index, true, nil) on the first zero; (-1, false, nil) otherwise.
// An error is only possible through a misbehaving non-Dense At.
// Complexity: O(n).
func ZeroDiagonal(m Matrix) (int, bool, error) {
	n := m.Rows()
	if d, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			if d.data[i*d.c+i] == zeroDiag {
				return i, true, nil
			}
		}

		return -1, false, nil
	}

	var v float64
	var err error
	for i := 0; i < n; i++ {
		if v, err = m.At(i, i); err != nil {
			return -1, false, validatorErrorf("ZeroDiagonal", err)
		}
		if v == zeroDiag {
			return i, true, nil
		}
	}

	return -1, false, nil
}

// IsDiagonallyDominant reports whether every row satisfies
// |a_ii| >= Σ_{j≠i} |a_ij| (or > when strict is true).
//
// Strict row dominance is a sufficient condition for Jacobi convergence.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n²).
func IsDiagonallyDominant(m Matrix, strict bool) (bool, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return false, validatorErrorf("IsDiagonallyDominant", err)
	}

	n := m.Rows()
	var (
		i, j      int
		v, diag   float64
		offDiag   float64
		err       error
		dominates bool
	)
	for i = 0; i < n; i++ {
		offDiag = NormZero
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return false, validatorErrorf("IsDiagonallyDominant", err)
			}
			if i == j {
				diag = math.Abs(v)
				continue
			}
			offDiag += math.Abs(v)
		}
		if strict {
			dominates = diag > offDiag
		} else {
			dominates = diag >= offDiag
		}
		if !dominates {
			return false, nil
		}
	}

	return true, nil
}
