//go:build mpi

package mpicomm

import (
	"fmt"

	mpi "github.com/sbromberger/gompi"

	"github.com/parlab/parmat/comm"
)

// World implements comm.Comm over an MPI communicator. One World per
// process; construct through Run.
type World struct {
	c   *mpi.Communicator
	ctx int
}

var _ comm.Comm = (*World)(nil)

// Run initializes MPI, hands the world communicator to fn and finalizes on
// the way out. The process count comes from the launcher.
func Run(fn func(comm.Comm) error) error {
	mpi.Start(true)
	defer mpi.Stop()
	return fn(&World{c: mpi.NewCommunicator(nil)})
}

// Rank reports this process's rank in the world.
func (w *World) Rank() int { return w.c.Rank() }

// Size reports the world size.
func (w *World) Size() int { return w.c.Size() }

// Barrier blocks until every process has entered it.
func (w *World) Barrier() { w.c.Barrier() }

// NewContext allocates a fresh context identifier. Agreement follows from
// the collective-call discipline: every process makes the same sequence of
// NewContext calls, so the per-process counters advance in lockstep; the
// barrier keeps allocation synchronous like the rest of the collectives.
func (w *World) NewContext() int {
	w.c.Barrier()
	w.ctx++
	return w.ctx
}

// AllGatherFloat64s gathers every process's slice onto every process.
// Lengths may differ per rank; each round broadcasts rank r's length and
// then its payload.
func (w *World) AllGatherFloat64s(x []float64) ([][]float64, error) {
	size := w.c.Size()
	out := make([][]float64, size)
	for r := 0; r < size; r++ {
		ln := []int32{0}
		if w.c.Rank() == r {
			ln[0] = int32(len(x))
		}
		w.c.BcastInt32s(ln, r)
		buf := make([]float64, ln[0])
		if w.c.Rank() == r {
			copy(buf, x)
		}
		if ln[0] > 0 {
			w.c.BcastFloat64s(buf, r)
		}
		out[r] = buf
	}
	return out, nil
}

// AllReduceFloat64s sums x elementwise across the world in place. The sum
// runs in ascending rank order on every process, so all processes hold the
// bit-identical result afterwards.
func (w *World) AllReduceFloat64s(x []float64) error {
	parts, err := w.AllGatherFloat64s(x)
	if err != nil {
		return err
	}
	for r, p := range parts {
		if len(p) != len(x) {
			return fmt.Errorf("AllReduceFloat64s: rank %d sent %d elements, want %d: %w",
				r, len(p), len(x), comm.ErrLengthMismatch)
		}
	}
	for i := range x {
		x[i] = 0
	}
	for _, p := range parts {
		for i, v := range p {
			x[i] += v
		}
	}
	return nil
}

// BcastFloat64s replaces x with root's copy on every process. All processes
// must pass equal-length slices.
func (w *World) BcastFloat64s(x []float64, root int) error {
	if root < 0 || root >= w.c.Size() {
		return fmt.Errorf("BcastFloat64s(root=%d): %w", root, comm.ErrBadRoot)
	}
	if len(x) > 0 {
		w.c.BcastFloat64s(x, root)
	}
	return nil
}
