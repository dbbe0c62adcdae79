package dmat

import (
	"fmt"

	"github.com/parlab/parmat/backend"
	"github.com/parlab/parmat/grid"
)

// Defaults for construction options.
const (
	// DefaultBlocks derives the block count from the grid shape: one block
	// per grid row (respectively column), the plain block distribution.
	DefaultBlocks = 0
)

// options collects construction choices; resolved by gatherOptions.
type options struct {
	g          *grid.Grid
	k          backend.Kernels
	blockRows  int // block count along rows; 0 derives from the grid
	blockCols  int // block count along cols; 0 derives from the grid
	scratchDir string
}

// Option customizes matrix construction.
type Option func(*options)

// WithGrid binds the matrix to an existing shared grid instead of creating a
// private one. Matrices must share a grid to interoperate.
func WithGrid(g *grid.Grid) Option {
	if g == nil {
		panic("dmat: WithGrid(nil)")
	}
	return func(o *options) { o.g = g }
}

// WithBackend selects the kernel implementation. The default is the gonum
// reference backend over the matrix's grid.
func WithBackend(k backend.Kernels) Option {
	if k == nil {
		panic("dmat: WithBackend(nil)")
	}
	return func(o *options) { o.k = k }
}

// WithBlocks sets the block counts per dimension. Zero keeps the default
// (one block per grid row/column); counts larger than the dimension clamp to
// one element per block. Negative counts panic.
func WithBlocks(rows, cols int) Option {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("dmat: WithBlocks(%d, %d): negative count", rows, cols))
	}
	return func(o *options) {
		o.blockRows = rows
		o.blockCols = cols
	}
}

// WithScratchDir backs the local panel with a memory-mapped temporary file
// under dir, for matrices whose local panels exceed RAM. Matrices derived
// from this one (Clone, Mul and eigensolve results) inherit the setting.
func WithScratchDir(dir string) Option {
	return func(o *options) { o.scratchDir = dir }
}

func gatherOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// blockSize converts a block count into the block edge length for an n-long
// dimension on a grid of np workers: ceiling division, with the count
// defaulted to np and clamped to n.
func blockSize(n, count, np int) int {
	if count == 0 {
		count = np
	}
	if count > n {
		count = n
	}
	return (n + count - 1) / count
}
