// Package layout: sentinel error set, matched via errors.Is.

package layout

import "errors"

var (
	// ErrBadShape indicates non-positive global matrix dimensions.
	ErrBadShape = errors.New("layout: matrix dimensions must be > 0")

	// ErrBadBlock indicates a non-positive block size.
	ErrBadBlock = errors.New("layout: block sizes must be > 0")

	// ErrBadGrid indicates a non-positive grid dimension.
	ErrBadGrid = errors.New("layout: grid dimensions must be > 0")

	// ErrBadCoord indicates a worker coordinate outside the grid (and not
	// the (-1,-1) observer coordinate).
	ErrBadCoord = errors.New("layout: worker coordinate outside grid")

	// ErrOutOfRange indicates a local buffer offset outside [0, LocalSize).
	ErrOutOfRange = errors.New("layout: local index out of range")
)
