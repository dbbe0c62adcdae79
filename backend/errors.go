// Package backend: sentinel error set, matched via errors.Is.

package backend

import "errors"

var (
	// ErrKernel indicates that a kernel reported a nonzero status. This is
	// an internal (developer-facing) failure: the layer above prepared an
	// inconsistent call, or the kernel itself failed to converge.
	ErrKernel = errors.New("backend: kernel reported nonzero status")

	// ErrBadDescriptor indicates a descriptor inconsistent with the buffer
	// or grid it was presented alongside.
	ErrBadDescriptor = errors.New("backend: descriptor inconsistent with buffer or grid")

	// ErrBadTrans indicates an unknown transpose flag.
	ErrBadTrans = errors.New("backend: unknown transpose flag")

	// ErrWorkspace indicates a workspace smaller than the planned size was
	// handed to an execute call.
	ErrWorkspace = errors.New("backend: workspace smaller than planned")
)
