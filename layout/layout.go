package layout

import "fmt"

// Coord is a global matrix coordinate.
type Coord struct {
	Row int
	Col int
}

// Layout is one worker's view of a block-cyclic distribution. The zero value
// is not usable; construct through New. Layout values are immutable and safe
// to copy and share.
type Layout struct {
	rows, cols           int // global matrix shape
	blockRows, blockCols int // tile shape
	gridRows, gridCols   int // grid shape
	myRow, myCol         int // this worker's grid coordinate; (-1,-1) = observer
	localRows, localCols int // derived local panel shape
}

// New validates the distribution parameters and derives the local shape.
// Block sizes must be at least 1 (callers clamp block *counts* to the matrix
// dimension before converting to sizes). The coordinate (-1,-1) denotes an
// observer: a worker outside the grid that owns nothing.
func New(rows, cols, blockRows, blockCols, gridRows, gridCols, myRow, myCol int) (Layout, error) {
	switch {
	case rows < 1 || cols < 1:
		return Layout{}, fmt.Errorf("New(%dx%d): %w", rows, cols, ErrBadShape)
	case blockRows < 1 || blockCols < 1:
		return Layout{}, fmt.Errorf("New(block %dx%d): %w", blockRows, blockCols, ErrBadBlock)
	case gridRows < 1 || gridCols < 1:
		return Layout{}, fmt.Errorf("New(grid %dx%d): %w", gridRows, gridCols, ErrBadGrid)
	}
	observer := myRow == -1 && myCol == -1
	if !observer && (myRow < 0 || myRow >= gridRows || myCol < 0 || myCol >= gridCols) {
		return Layout{}, fmt.Errorf("New(coord (%d,%d) in %dx%d): %w",
			myRow, myCol, gridRows, gridCols, ErrBadCoord)
	}
	l := Layout{
		rows: rows, cols: cols,
		blockRows: blockRows, blockCols: blockCols,
		gridRows: gridRows, gridCols: gridCols,
		myRow: myRow, myCol: myCol,
	}
	l.localRows = LocalCount(rows, blockRows, myRow, gridRows)
	l.localCols = LocalCount(cols, blockCols, myCol, gridCols)
	return l, nil
}

// LocalCount computes the number of rows (or columns) of an n-long dimension,
// dealt in nb-sized blocks over np workers, that land on worker p. A negative
// p (observer) owns zero. This is the classic numroc computation: whole
// rounds of np blocks contribute nb each, and worker p takes one extra block
// — full or partial — depending on where it sits relative to the leftover.
func LocalCount(n, nb, p, np int) int {
	if p < 0 {
		return 0
	}
	nblocks := n / nb
	count := (nblocks / np) * nb
	switch extra := nblocks % np; {
	case p < extra:
		count += nb
	case p == extra:
		count += n % nb
	}
	return count
}

// Rows reports the global row count.
func (l Layout) Rows() int { return l.rows }

// Cols reports the global column count.
func (l Layout) Cols() int { return l.cols }

// BlockRows reports the tile height.
func (l Layout) BlockRows() int { return l.blockRows }

// BlockCols reports the tile width.
func (l Layout) BlockCols() int { return l.blockCols }

// GridRows reports the process-grid row count.
func (l Layout) GridRows() int { return l.gridRows }

// GridCols reports the process-grid column count.
func (l Layout) GridCols() int { return l.gridCols }

// LocalRows reports how many matrix rows this worker stores.
func (l Layout) LocalRows() int { return l.localRows }

// LocalCols reports how many matrix columns this worker stores.
func (l Layout) LocalCols() int { return l.localCols }

// LocalSize reports the local buffer length, LocalRows*LocalCols.
func (l Layout) LocalSize() int { return l.localRows * l.localCols }

// GlobalToLocal maps a global coordinate to an offset into this worker's
// column-major local buffer. The second result reports ownership: (_, false)
// means the element lives on some other worker (or the coordinate is outside
// the matrix — callers that need to distinguish must bounds-check first).
func (l Layout) GlobalToLocal(row, col int) (int, bool) {
	if row < 0 || row >= l.rows || col < 0 || col >= l.cols {
		return 0, false
	}
	lr, ok := localIndex(row, l.blockRows, l.myRow, l.gridRows)
	if !ok {
		return 0, false
	}
	lc, ok := localIndex(col, l.blockCols, l.myCol, l.gridCols)
	if !ok {
		return 0, false
	}
	return lr + lc*l.localRows, true
}

// localIndex maps one global index to its local counterpart along a single
// dimension: find the block, check the block's round-robin owner, then count
// the whole blocks this worker already holds plus the in-block residue.
func localIndex(g, nb, p, np int) (int, bool) {
	if p < 0 {
		return 0, false
	}
	block := g / nb
	if block%np != p {
		return 0, false
	}
	return (block/np)*nb + g%nb, true
}

// GlobalToLocalChecked is GlobalToLocal with the out-of-matrix case split
// out: coordinates outside the matrix return ErrOutOfRange, while in-range
// coordinates stored on another worker return (0, false, nil).
func (l Layout) GlobalToLocalChecked(row, col int) (int, bool, error) {
	if row < 0 || row >= l.rows || col < 0 || col >= l.cols {
		return 0, false, fmt.Errorf("GlobalToLocalChecked(%d,%d) in %dx%d: %w",
			row, col, l.rows, l.cols, ErrOutOfRange)
	}
	k, ok := l.GlobalToLocal(row, col)
	return k, ok, nil
}

// LocalToGlobal inverts GlobalToLocal: it maps an offset into this worker's
// column-major buffer back to the global coordinate stored there. Offsets
// outside [0, LocalSize) — including any offset on an observer — return
// ErrOutOfRange.
func (l Layout) LocalToGlobal(k int) (row, col int, err error) {
	if k < 0 || k >= l.LocalSize() {
		return 0, 0, fmt.Errorf("LocalToGlobal(%d) with %d local elements: %w",
			k, l.LocalSize(), ErrOutOfRange)
	}
	lc := k / l.localRows
	lr := k % l.localRows
	return globalIndex(lr, l.blockRows, l.myRow, l.gridRows),
		globalIndex(lc, l.blockCols, l.myCol, l.gridCols), nil
}

// globalIndex maps a local index back to global along one dimension: the
// local block index fans back out across the grid round-robin.
func globalIndex(loc, nb, p, np int) int {
	block := loc / nb
	return (block*np+p)*nb + loc%nb
}

// OwnedRows returns the ascending sequence of global row indices stored by
// this worker. Handy for filling a matrix without per-element ownership
// checks.
func (l Layout) OwnedRows() []int {
	out := make([]int, l.localRows)
	for lr := range out {
		out[lr] = globalIndex(lr, l.blockRows, l.myRow, l.gridRows)
	}
	return out
}

// OwnedCols returns the ascending sequence of global column indices stored by
// this worker.
func (l Layout) OwnedCols() []int {
	out := make([]int, l.localCols)
	for lc := range out {
		out[lc] = globalIndex(lc, l.blockCols, l.myCol, l.gridCols)
	}
	return out
}

// OwnedElements enumerates the global coordinates stored by this worker in
// local-buffer order: OwnedElements()[k] is the coordinate behind buffer
// offset k.
func (l Layout) OwnedElements() []Coord {
	size := l.LocalSize()
	out := make([]Coord, size)
	for k := 0; k < size; k++ {
		row, col, _ := l.LocalToGlobal(k)
		out[k] = Coord{Row: row, Col: col}
	}
	return out
}
