// Package matrix: sentinel error set. All solvers and kernels return these
// sentinels, optionally wrapped with an operation tag via opErrorf; callers
// check them with errors.Is. No function panics on user-triggered conditions.
package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a row or column index outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNilMatrix indicates a nil *Dense receiver or argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. MulVec where len(x) != Cols, or ragged rows in FromRows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when elimination finds no usable pivot;
	// the system has no unique solution.
	ErrSingular = errors.New("matrix: singular matrix")
)
