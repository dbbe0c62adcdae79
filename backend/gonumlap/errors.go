// Package gonumlap: sentinel error set, matched via errors.Is.

package gonumlap

import "errors"

// ErrNilGrid indicates a Solver was requested without a grid to bind to.
var ErrNilGrid = errors.New("gonumlap: nil grid")
