package gonumlap

import (
	"fmt"

	"github.com/parlab/parmat/backend"
	"github.com/parlab/parmat/grid"
	"github.com/parlab/parmat/layout"
)

// Solver executes the kernel contract for one process grid. All methods are
// collective over the grid's world. The zero value is not usable; construct
// through New.
type Solver struct {
	g *grid.Grid
}

// compile-time contract check
var _ backend.Kernels = (*Solver)(nil)

// New binds a solver to a grid. Every worker of the grid's world must hold a
// solver over the same grid to enter the collective kernel calls.
func New(g *grid.Grid) (*Solver, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	return &Solver{g: g}, nil
}

// Grid exposes the grid this solver is bound to.
func (s *Solver) Grid() *grid.Grid { return s.g }

// layoutFor checks a descriptor against the solver's grid and derives this
// worker's view of the distribution it describes.
func (s *Solver) layoutFor(d backend.Descriptor) (layout.Layout, error) {
	if err := d.Validate(); err != nil {
		return layout.Layout{}, err
	}
	if d.Context != s.g.Context() {
		return layout.Layout{}, fmt.Errorf("gonumlap: descriptor context %d, grid context %d: %w",
			d.Context, s.g.Context(), backend.ErrBadDescriptor)
	}
	lay, err := layout.New(d.M, d.N, d.MB, d.NB,
		s.g.Rows(), s.g.Cols(), s.g.MyRow(), s.g.MyCol())
	if err != nil {
		return layout.Layout{}, fmt.Errorf("gonumlap: %v: %w", err, backend.ErrBadDescriptor)
	}
	if lld := max(lay.LocalRows(), 1); d.LLD < lld {
		return layout.Layout{}, fmt.Errorf("gonumlap: lld %d below local rows %d: %w",
			d.LLD, lld, backend.ErrBadDescriptor)
	}
	return lay, nil
}

func checkLen[T any](what string, x []T, lay layout.Layout) error {
	if len(x) != lay.LocalSize() {
		return fmt.Errorf("gonumlap: %s panel has %d elements, layout wants %d: %w",
			what, len(x), lay.LocalSize(), backend.ErrBadDescriptor)
	}
	return nil
}
