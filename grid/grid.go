package grid

import (
	"fmt"
	"math"

	"github.com/parlab/parmat/comm"
)

// Grid is a 2D arrangement of the world's workers. Ranks map to coordinates
// row-major: rank = row*Cols + col. Ranks beyond Rows*Cols are observers —
// members of the world that own no grid cell (and therefore no matrix
// elements) but still participate in every collective.
type Grid struct {
	c          comm.Comm
	rows, cols int
	myRow      int // -1 for observers
	myCol      int // -1 for observers
	ctx        int
}

// New establishes a process grid over the world c. Collective: every rank of
// the world must call it with the same options.
//
// Shape resolution, in order:
//   - both dimensions requested: used as-is, must fit in the world;
//   - one requested: the other is derived as Size/requested;
//   - neither: the default square grid, Size must be a perfect square.
func New(c comm.Comm, opts ...Option) (*Grid, error) {
	if c == nil {
		return nil, ErrNilComm
	}
	o := gatherOptions(opts...)
	size := c.Size()

	rows, cols := o.rows, o.cols
	switch {
	case rows > 0 && cols == 0:
		cols = size / rows
	case rows == 0 && cols > 0:
		rows = size / cols
	case rows == 0 && cols == 0:
		rows = int(math.Sqrt(float64(size)))
		cols = rows
		if rows*cols != size {
			return nil, fmt.Errorf("New: world size %d: %w", size, ErrWorldNotSquare)
		}
	}
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("New: resolved %dx%d from world of %d: %w", rows, cols, size, ErrBadShape)
	}
	if rows*cols > size {
		return nil, fmt.Errorf("New: %dx%d grid, %d workers: %w", rows, cols, size, ErrTooManyWorkers)
	}

	g := &Grid{c: c, rows: rows, cols: cols, myRow: -1, myCol: -1}
	if rank := c.Rank(); rank < rows*cols {
		g.myRow = rank / cols
		g.myCol = rank % cols
	}
	// Context agreement makes creation collective by construction.
	g.ctx = c.NewContext()
	return g, nil
}

// Rows reports the number of grid rows.
func (g *Grid) Rows() int { return g.rows }

// Cols reports the number of grid columns.
func (g *Grid) Cols() int { return g.cols }

// MyRow reports this worker's grid row, or -1 for observers.
func (g *Grid) MyRow() int { return g.myRow }

// MyCol reports this worker's grid column, or -1 for observers.
func (g *Grid) MyCol() int { return g.myCol }

// InGrid reports whether this worker owns a grid cell.
func (g *Grid) InGrid() bool { return g.myRow >= 0 }

// IsSquare reports whether the grid has as many rows as columns. The
// eigensolver kernels require a square grid.
func (g *Grid) IsSquare() bool { return g.rows == g.cols }

// Context reports the collective-scope identifier stamped into descriptors
// of matrices bound to this grid. Two matrices share a layout universe iff
// they share a context.
func (g *Grid) Context() int { return g.ctx }

// Comm exposes the world this grid is built on.
func (g *Grid) Comm() comm.Comm { return g.c }

// Cells reports the number of grid cells, Rows*Cols.
func (g *Grid) Cells() int { return g.rows * g.cols }

// CoordOf maps a grid-cell rank to its (row, col) coordinate. The mapping is
// row-major, mirroring rank assignment.
func (g *Grid) CoordOf(rank int) (row, col int) {
	return rank / g.cols, rank % g.cols
}
