// Package comm: sentinel error set.
// All failures surface as these sentinels (possibly wrapped with call-site
// context via fmt.Errorf("...: %w", ...)); callers match with errors.Is.

package comm

import "errors"

var (
	// ErrBadWorldSize is returned by Run when the requested worker count is
	// not positive.
	ErrBadWorldSize = errors.New("comm: world size must be > 0")

	// ErrBadRoot indicates a broadcast root outside [0, Size).
	ErrBadRoot = errors.New("comm: broadcast root out of range")

	// ErrLengthMismatch indicates that ranks passed buffers of different
	// lengths to a collective that requires uniform lengths.
	ErrLengthMismatch = errors.New("comm: collective buffer lengths differ across ranks")
)
