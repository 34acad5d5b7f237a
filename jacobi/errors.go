package jacobi

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates malformed input shape or an out-of-range
	// scalar (maxIterations, tolerance). Reported before any iteration runs.
	ErrInvalidArgument = errors.New("jacobi: invalid argument")

	// ErrSingularDiagonal indicates a zero coefficient on the main diagonal.
	ErrSingularDiagonal = errors.New("jacobi: zero diagonal coefficient")
)

// InvalidArgumentError names the offending argument.
// It matches both ErrInvalidArgument and, when present, the underlying cause
// (e.g. matrix.ErrDimensionMismatch) via errors.Is.
type InvalidArgumentError struct {
	Arg    string // "A", "B", "X0", "maxIterations" or "tolerance"
	Reason string
	Err    error // optional underlying cause
}

func (e *InvalidArgumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %s: %s: %v", ErrInvalidArgument, e.Arg, e.Reason, e.Err)
	}

	return fmt.Sprintf("%v: %s: %s", ErrInvalidArgument, e.Arg, e.Reason)
}

// Unwrap exposes both the package sentinel and the cause.
func (e *InvalidArgumentError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidArgument, e.Err}
	}

	return []error{ErrInvalidArgument}
}

// SingularDiagonalError reports the first row j with A[j][j] == 0.
type SingularDiagonalError struct {
	Index int
}

func (e *SingularDiagonalError) Error() string {
	return fmt.Sprintf("%v: A[%d][%d] = 0", ErrSingularDiagonal, e.Index, e.Index)
}

// Unwrap returns ErrSingularDiagonal.
func (e *SingularDiagonalError) Unwrap() error { return ErrSingularDiagonal }

func invalidArg(arg, reason string, cause error) error {
	return &InvalidArgumentError{Arg: arg, Reason: reason, Err: cause}
}
