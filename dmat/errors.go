// Package dmat: sentinel error set, matched via errors.Is. These are the
// user-facing failures; internal kernel failures surface from the backend
// wrapping backend.ErrKernel.

package dmat

import "errors"

var (
	// ErrBadShape indicates a requested matrix dimension below 1.
	ErrBadShape = errors.New("dmat: matrix dimensions must be at least 1")

	// ErrShapeMismatch indicates two operands whose global shapes differ.
	ErrShapeMismatch = errors.New("dmat: operand shapes differ")

	// ErrInnerDim indicates a multiply whose inner dimensions disagree after
	// applying the transpose flags.
	ErrInnerDim = errors.New("dmat: inner dimensions disagree")

	// ErrNonSquare indicates a square-only operation on a rectangular matrix.
	ErrNonSquare = errors.New("dmat: operation requires a square matrix")

	// ErrGridNotSquare indicates an eigensolve on a non-square process grid.
	ErrGridNotSquare = errors.New("dmat: eigensolve requires a square process grid")

	// ErrGridMismatch indicates operands bound to different grids (or a grid
	// over a different world than the constructing call).
	ErrGridMismatch = errors.New("dmat: operands bound to different grids")

	// ErrOutOfRange indicates a global coordinate outside the matrix.
	ErrOutOfRange = errors.New("dmat: coordinate outside the matrix")

	// ErrBadBlocks indicates a negative block count, or an elementwise
	// operation between matrices with different blockings.
	ErrBadBlocks = errors.New("dmat: incompatible blocking")

	// ErrNilMatrix indicates a nil operand.
	ErrNilMatrix = errors.New("dmat: nil matrix operand")

	// ErrClosed indicates use of a matrix after Close.
	ErrClosed = errors.New("dmat: matrix is closed")
)
