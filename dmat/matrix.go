package dmat

import (
	"fmt"

	"github.com/parlab/parmat/backend"
	"github.com/parlab/parmat/backend/gonumlap"
	"github.com/parlab/parmat/comm"
	"github.com/parlab/parmat/grid"
	"github.com/parlab/parmat/layout"
)

// Matrix is a dense matrix distributed block-cyclically over a process grid.
// Each worker holds the column-major local panel of elements the layout
// assigns to it. Construct through New; plain assignment of Matrix values is
// not a copy discipline — Clone is.
type Matrix[T Scalar] struct {
	g          *grid.Grid
	k          backend.Kernels
	lay        layout.Layout
	data       []T
	buf        *mappedBuf // non-nil when the panel is mmap-backed
	scratchDir string
}

// New creates an all-zero rows×cols matrix. Collective over the world c:
// without WithGrid it establishes a private default (square) grid, with
// WithGrid it binds to the shared one. The same options on every worker.
func New[T Scalar](c comm.Comm, rows, cols int, opts ...Option) (*Matrix[T], error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("New(%dx%d): %w", rows, cols, ErrBadShape)
	}
	o := gatherOptions(opts...)
	g := o.g
	if g == nil {
		var err error
		if g, err = grid.New(c); err != nil {
			return nil, err
		}
	} else if g.Comm() != c {
		return nil, fmt.Errorf("New: grid bound to a different world: %w", ErrGridMismatch)
	}
	k := o.k
	if k == nil {
		var err error
		if k, err = gonumlap.New(g); err != nil {
			return nil, err
		}
	}
	mb := blockSize(rows, o.blockRows, g.Rows())
	nb := blockSize(cols, o.blockCols, g.Cols())
	return newFromParts[T](g, k, rows, cols, mb, nb, o.scratchDir)
}

// newFromParts builds a zeroed matrix from resolved parts; block arguments
// are edge lengths, not counts. Shared by New and by every operation that
// allocates a result.
func newFromParts[T Scalar](g *grid.Grid, k backend.Kernels,
	rows, cols, mb, nb int, scratchDir string) (*Matrix[T], error) {

	lay, err := layout.New(rows, cols, mb, nb, g.Rows(), g.Cols(), g.MyRow(), g.MyCol())
	if err != nil {
		return nil, err
	}
	data, buf, err := allocLocal[T](lay.LocalSize(), scratchDir)
	if err != nil {
		return nil, err
	}
	return &Matrix[T]{g: g, k: k, lay: lay, data: data, buf: buf, scratchDir: scratchDir}, nil
}

// Rows reports the global row count.
func (m *Matrix[T]) Rows() int { return m.lay.Rows() }

// Cols reports the global column count.
func (m *Matrix[T]) Cols() int { return m.lay.Cols() }

// Size reports the global element count.
func (m *Matrix[T]) Size() int { return m.lay.Rows() * m.lay.Cols() }

// LocalRows reports how many matrix rows this worker stores.
func (m *Matrix[T]) LocalRows() int { return m.lay.LocalRows() }

// LocalCols reports how many matrix columns this worker stores.
func (m *Matrix[T]) LocalCols() int { return m.lay.LocalCols() }

// BlockRows reports the tile height.
func (m *Matrix[T]) BlockRows() int { return m.lay.BlockRows() }

// BlockCols reports the tile width.
func (m *Matrix[T]) BlockCols() int { return m.lay.BlockCols() }

// Grid exposes the grid the matrix is bound to.
func (m *Matrix[T]) Grid() *grid.Grid { return m.g }

// Layout exposes this worker's view of the distribution.
func (m *Matrix[T]) Layout() layout.Layout { return m.lay }

// Backend exposes the kernel implementation behind computing operations.
func (m *Matrix[T]) Backend() backend.Kernels { return m.k }

// Desc summarizes the matrix for kernel calls. LLD is max(LocalRows, 1) so
// workers with an empty panel still present a legal leading dimension.
func (m *Matrix[T]) Desc() backend.Descriptor {
	return backend.Descriptor{
		DType:   backend.DTypeDense,
		Context: m.g.Context(),
		M:       m.lay.Rows(),
		N:       m.lay.Cols(),
		MB:      m.lay.BlockRows(),
		NB:      m.lay.BlockCols(),
		LLD:     max(m.lay.LocalRows(), 1),
	}
}

// LocalData exposes the live column-major local panel: element (lr, lc) sits
// at lr + lc*LocalRows. Mutations are visible to the matrix.
func (m *Matrix[T]) LocalData() []T { return m.data }

// Owned reports whether this worker stores the element; false for elements
// stored elsewhere and for coordinates outside the matrix.
func (m *Matrix[T]) Owned(row, col int) bool {
	_, ok := m.lay.GlobalToLocal(row, col)
	return ok
}

// OwnedRows lists the global row indices stored here, ascending.
func (m *Matrix[T]) OwnedRows() []int { return m.lay.OwnedRows() }

// OwnedCols lists the global column indices stored here, ascending.
func (m *Matrix[T]) OwnedCols() []int { return m.lay.OwnedCols() }

// OwnedElements lists the global coordinates stored here in local-panel
// order: OwnedElements()[k] is the coordinate behind LocalData()[k].
func (m *Matrix[T]) OwnedElements() []layout.Coord { return m.lay.OwnedElements() }

// At reads an element. Elements stored on another worker read as the zero
// value; coordinates outside the matrix are ErrOutOfRange.
func (m *Matrix[T]) At(row, col int) (T, error) {
	var zero T
	if m.closed() {
		return zero, ErrClosed
	}
	idx, owned, err := m.lay.GlobalToLocalChecked(row, col)
	if err != nil {
		return zero, fmt.Errorf("At(%d,%d) in %dx%d: %w", row, col, m.Rows(), m.Cols(), ErrOutOfRange)
	}
	if !owned {
		return zero, nil
	}
	return m.data[idx], nil
}

// Set writes an element and reports whether this worker owns it; writes to
// elements stored elsewhere change nothing and report false.
func (m *Matrix[T]) Set(row, col int, v T) (bool, error) {
	if m.closed() {
		return false, ErrClosed
	}
	idx, owned, err := m.lay.GlobalToLocalChecked(row, col)
	if err != nil {
		return false, fmt.Errorf("Set(%d,%d) in %dx%d: %w", row, col, m.Rows(), m.Cols(), ErrOutOfRange)
	}
	if owned {
		m.data[idx] = v
	}
	return owned, nil
}

// Clone allocates an independent deep copy sharing the grid, backend,
// blocking and scratch policy.
func (m *Matrix[T]) Clone() (*Matrix[T], error) {
	if m.closed() {
		return nil, ErrClosed
	}
	out, err := newFromParts[T](m.g, m.k, m.Rows(), m.Cols(),
		m.lay.BlockRows(), m.lay.BlockCols(), m.scratchDir)
	if err != nil {
		return nil, err
	}
	copy(out.data, m.data)
	return out, nil
}

// Close releases the local panel; for mmap-backed matrices this unmaps and
// removes the scratch file. The matrix is unusable afterwards. Safe to call
// more than once.
func (m *Matrix[T]) Close() error {
	buf := m.buf
	m.buf = nil
	m.data = nil
	return buf.release()
}

func (m *Matrix[T]) closed() bool { return m.data == nil && m.lay.LocalSize() > 0 }

// alignCheck validates an elementwise partner: same grid context, global
// shape and blocking, so the two local panels are index-compatible.
func (m *Matrix[T]) alignCheck(that *Matrix[T]) error {
	switch {
	case that == nil:
		return ErrNilMatrix
	case m.closed() || that.closed():
		return ErrClosed
	case m.g.Context() != that.g.Context():
		return fmt.Errorf("contexts %d and %d: %w", m.g.Context(), that.g.Context(), ErrGridMismatch)
	case m.Rows() != that.Rows() || m.Cols() != that.Cols():
		return fmt.Errorf("%dx%d and %dx%d: %w", m.Rows(), m.Cols(), that.Rows(), that.Cols(), ErrShapeMismatch)
	case m.lay.BlockRows() != that.lay.BlockRows() || m.lay.BlockCols() != that.lay.BlockCols():
		return fmt.Errorf("blocking %dx%d and %dx%d: %w",
			m.lay.BlockRows(), m.lay.BlockCols(), that.lay.BlockRows(), that.lay.BlockCols(), ErrBadBlocks)
	}
	return nil
}
