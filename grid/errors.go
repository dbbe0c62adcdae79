// Package grid: sentinel error set, matched via errors.Is.

package grid

import "errors"

var (
	// ErrNilComm indicates that New was called without a comm world.
	ErrNilComm = errors.New("grid: nil comm")

	// ErrBadShape indicates a non-positive requested grid dimension, or a
	// dimension that does not divide into the world size when its partner
	// must be derived.
	ErrBadShape = errors.New("grid: invalid grid shape")

	// ErrTooManyWorkers is returned when rows*cols exceeds the number of
	// workers in the world.
	ErrTooManyWorkers = errors.New("grid: grid larger than world")

	// ErrWorldNotSquare is returned when no shape was requested and the
	// world size is not a perfect square, so no default square grid exists.
	ErrWorldNotSquare = errors.New("grid: world size is not a perfect square")
)
