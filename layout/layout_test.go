// Package layout_test verifies the block-cyclic bookkeeping: the ownership
// partition invariant, global/local round-trips and the owned-index
// enumerations, across square, rectangular, and partial-block shapes.
package layout_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parlab/parmat/layout"
)

// distCase is one distribution shape; tests sweep every worker coordinate.
type distCase struct {
	rows, cols           int
	blockRows, blockCols int
	gridRows, gridCols   int
}

// cases covers even splits, partial trailing blocks, single-element blocks,
// one-worker grids and rectangular grids.
var cases = []distCase{
	{8, 8, 2, 2, 2, 2},
	{8, 8, 4, 4, 1, 1},
	{7, 5, 2, 2, 2, 2},  // partial blocks in both dimensions
	{10, 3, 3, 1, 2, 3}, // rectangular grid, single-column blocks
	{5, 8, 2, 3, 3, 2},  // more grid rows than whole blocks
	{1, 1, 1, 1, 2, 2},  // matrix smaller than the grid
	{9, 4, 2, 2, 2, 1},
}

func mustNew(t *testing.T, d distCase, p, q int) layout.Layout {
	t.Helper()
	l, err := layout.New(d.rows, d.cols, d.blockRows, d.blockCols, d.gridRows, d.gridCols, p, q)
	require.NoError(t, err)
	return l
}

func TestNewValidation(t *testing.T) {
	_, err := layout.New(0, 4, 1, 1, 2, 2, 0, 0)
	require.ErrorIs(t, err, layout.ErrBadShape)

	_, err = layout.New(4, 4, 0, 1, 2, 2, 0, 0)
	require.ErrorIs(t, err, layout.ErrBadBlock)

	_, err = layout.New(4, 4, 1, 1, 0, 2, 0, 0)
	require.ErrorIs(t, err, layout.ErrBadGrid)

	_, err = layout.New(4, 4, 1, 1, 2, 2, 2, 0)
	require.ErrorIs(t, err, layout.ErrBadCoord)

	_, err = layout.New(4, 4, 1, 1, 2, 2, -1, 0)
	require.ErrorIs(t, err, layout.ErrBadCoord)
}

// TestOwnershipPartition checks the core invariant: every global coordinate
// is owned by exactly one worker, and local sizes sum to the global size.
func TestOwnershipPartition(t *testing.T) {
	for _, d := range cases {
		total := 0
		owners := make([]int, d.rows*d.cols) // ownership count per coordinate
		for p := 0; p < d.gridRows; p++ {
			for q := 0; q < d.gridCols; q++ {
				l := mustNew(t, d, p, q)
				total += l.LocalSize()
				for r := 0; r < d.rows; r++ {
					for c := 0; c < d.cols; c++ {
						if _, ok := l.GlobalToLocal(r, c); ok {
							owners[r*d.cols+c]++
						}
					}
				}
			}
		}
		require.Equal(t, d.rows*d.cols, total, "local sizes must partition %+v", d)
		for i, n := range owners {
			require.Equal(t, 1, n, "coordinate (%d,%d) of %+v owned %d times",
				i/d.cols, i%d.cols, d, n)
		}
	}
}

// TestRoundTrip checks LocalToGlobal and GlobalToLocal are mutual inverses
// on every worker of every case.
func TestRoundTrip(t *testing.T) {
	for _, d := range cases {
		for p := 0; p < d.gridRows; p++ {
			for q := 0; q < d.gridCols; q++ {
				l := mustNew(t, d, p, q)
				for k := 0; k < l.LocalSize(); k++ {
					row, col, err := l.LocalToGlobal(k)
					require.NoError(t, err)
					back, ok := l.GlobalToLocal(row, col)
					require.True(t, ok, "(%d,%d) must be owned by (%d,%d) in %+v", row, col, p, q, d)
					require.Equal(t, k, back)
				}
			}
		}
	}
}

func TestLocalToGlobalOutOfRange(t *testing.T) {
	l := mustNew(t, cases[0], 0, 0)
	_, _, err := l.LocalToGlobal(-1)
	require.ErrorIs(t, err, layout.ErrOutOfRange)
	_, _, err = l.LocalToGlobal(l.LocalSize())
	require.ErrorIs(t, err, layout.ErrOutOfRange)
}

func TestOwnedIndicesAscendingAndConsistent(t *testing.T) {
	for _, d := range cases {
		for p := 0; p < d.gridRows; p++ {
			for q := 0; q < d.gridCols; q++ {
				l := mustNew(t, d, p, q)

				rowsSeen := l.OwnedRows()
				require.Len(t, rowsSeen, l.LocalRows())
				for i := 1; i < len(rowsSeen); i++ {
					require.Less(t, rowsSeen[i-1], rowsSeen[i])
				}

				colsSeen := l.OwnedCols()
				require.Len(t, colsSeen, l.LocalCols())
				for i := 1; i < len(colsSeen); i++ {
					require.Less(t, colsSeen[i-1], colsSeen[i])
				}

				// Every owned row index must map back onto this worker.
				for _, r := range rowsSeen {
					for _, c := range colsSeen {
						_, ok := l.GlobalToLocal(r, c)
						require.True(t, ok)
					}
				}
			}
		}
	}
}

func TestOwnedElementsMatchesBufferOrder(t *testing.T) {
	l := mustNew(t, distCase{7, 5, 2, 2, 2, 2}, 1, 0)
	elems := l.OwnedElements()
	require.Len(t, elems, l.LocalSize())
	for k, e := range elems {
		idx, ok := l.GlobalToLocal(e.Row, e.Col)
		require.True(t, ok)
		require.Equal(t, k, idx)
	}
}

func TestObserverOwnsNothing(t *testing.T) {
	l, err := layout.New(8, 8, 2, 2, 2, 2, -1, -1)
	require.NoError(t, err)
	require.Zero(t, l.LocalRows())
	require.Zero(t, l.LocalCols())
	require.Zero(t, l.LocalSize())
	require.Empty(t, l.OwnedRows())
	require.Empty(t, l.OwnedElements())
	_, ok := l.GlobalToLocal(0, 0)
	require.False(t, ok)
}

func TestGlobalToLocalRejectsOutsideMatrix(t *testing.T) {
	l := mustNew(t, cases[0], 0, 0)
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}} {
		_, ok := l.GlobalToLocal(rc[0], rc[1])
		require.False(t, ok, "coordinate %v must not be owned", rc)
	}
}

func TestGlobalToLocalChecked(t *testing.T) {
	l := mustNew(t, cases[0], 0, 0) // 8x8, blocks 2x2, grid 2x2, worker (0,0)

	idx, owned, err := l.GlobalToLocalChecked(0, 0)
	require.NoError(t, err)
	require.True(t, owned)
	require.Zero(t, idx)

	// In range but stored on worker (1,1).
	_, owned, err = l.GlobalToLocalChecked(2, 2)
	require.NoError(t, err)
	require.False(t, owned)

	_, _, err = l.GlobalToLocalChecked(8, 0)
	require.ErrorIs(t, err, layout.ErrOutOfRange)
	_, _, err = l.GlobalToLocalChecked(0, -1)
	require.ErrorIs(t, err, layout.ErrOutOfRange)
}

// TestLocalCountPartialBlock pins the numroc arithmetic on a hand-checked
// shape: 7 rows in blocks of 2 over 2 workers deal blocks 0 and 2 to worker
// 0 (rows 0,1,4,5) and blocks 1 and 3 — the last one partial — to worker 1
// (rows 2,3,6).
func TestLocalCountPartialBlock(t *testing.T) {
	require.Equal(t, 4, layout.LocalCount(7, 2, 0, 2)) // blocks 0 (2), 2 (2)
	require.Equal(t, 3, layout.LocalCount(7, 2, 1, 2)) // blocks 1 (2), 3 (1, partial)
	require.Equal(t, 7, layout.LocalCount(7, 2, 0, 1))
	require.Equal(t, 0, layout.LocalCount(7, 2, -1, 2)) // observer
	require.Equal(t, 1, layout.LocalCount(1, 4, 0, 3))  // block larger than dimension
	require.Equal(t, 0, layout.LocalCount(1, 4, 1, 3))
}
