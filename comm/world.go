package comm

import (
	"errors"
	"fmt"
	"sync"
)

// world is the shared state behind an in-process run: a reusable barrier plus
// one exchange slot per rank. Slots are written between two barrier phases of
// a collective, so no additional locking is needed on the slot array itself.
type world struct {
	size    int
	barrier cyclicBarrier
	slots   [][]float64
	ctx     int // bumped by rank 0 inside NewContext
}

func newWorld(size int) *world {
	w := &world{
		size:  size,
		slots: make([][]float64, size),
	}
	w.barrier.init(size)
	return w
}

// rankComm is one goroutine's view of a world; it implements Comm.
type rankComm struct {
	w    *world
	rank int
}

// Run spawns one goroutine per rank over a fresh in-process world and waits
// for all of them. Each worker receives its own Comm handle. The joined error
// of all workers is returned; a nil result means every worker returned nil.
//
// Run is the in-process analogue of launching the program under a process
// manager: collectives inside fn follow the usual all-ranks discipline.
func Run(workers int, fn func(Comm) error) error {
	if workers <= 0 {
		return fmt.Errorf("Run(%d): %w", workers, ErrBadWorldSize)
	}
	w := newWorld(workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for r := 0; r < workers; r++ {
		go func(rank int) {
			defer wg.Done()
			errs[rank] = fn(&rankComm{w: w, rank: rank})
		}(r)
	}
	wg.Wait()
	return errors.Join(errs...)
}

func (c *rankComm) Rank() int { return c.rank }
func (c *rankComm) Size() int { return c.w.size }

func (c *rankComm) Barrier() { c.w.barrier.await() }

func (c *rankComm) NewContext() int {
	c.w.barrier.await()
	if c.rank == 0 {
		c.w.ctx++
	}
	c.w.barrier.await()
	// Visible to all ranks: the increment is ordered before this read by the
	// barrier's internal mutex.
	return c.w.ctx
}

func (c *rankComm) AllGatherFloat64s(x []float64) ([][]float64, error) {
	c.w.slots[c.rank] = x
	c.w.barrier.await()
	out := make([][]float64, c.w.size)
	for r, s := range c.w.slots {
		out[r] = append([]float64(nil), s...)
	}
	// Second phase: nobody reuses the slot array until everyone has copied.
	c.w.barrier.await()
	return out, nil
}

func (c *rankComm) AllReduceFloat64s(x []float64) error {
	parts, err := c.AllGatherFloat64s(x)
	if err != nil {
		return err
	}
	for r, p := range parts {
		if len(p) != len(x) {
			return fmt.Errorf("AllReduceFloat64s: rank %d sent %d elements, want %d: %w",
				r, len(p), len(x), ErrLengthMismatch)
		}
	}
	for i := range x {
		x[i] = 0
	}
	// Fixed ascending-rank order: bit-identical result on every rank.
	for _, p := range parts {
		for i, v := range p {
			x[i] += v
		}
	}
	return nil
}

func (c *rankComm) BcastFloat64s(x []float64, root int) error {
	if root < 0 || root >= c.w.size {
		return fmt.Errorf("BcastFloat64s(root=%d): %w", root, ErrBadRoot)
	}
	parts, err := c.AllGatherFloat64s(x)
	if err != nil {
		return err
	}
	if len(parts[root]) != len(x) {
		return fmt.Errorf("BcastFloat64s: root sent %d elements, want %d: %w",
			len(parts[root]), len(x), ErrLengthMismatch)
	}
	copy(x, parts[root])
	return nil
}

// cyclicBarrier is a reusable counting barrier. Generations distinguish
// consecutive uses so a fast rank cannot lap a slow one.
type cyclicBarrier struct {
	mu    sync.Mutex
	cond  *sync.Cond
	size  int
	count int
	gen   uint64
}

func (b *cyclicBarrier) init(size int) {
	b.size = size
	b.cond = sync.NewCond(&b.mu)
}

func (b *cyclicBarrier) await() {
	b.mu.Lock()
	defer b.mu.Unlock()
	gen := b.gen
	b.count++
	if b.count == b.size {
		b.count = 0
		b.gen++
		b.cond.Broadcast()
		return
	}
	for gen == b.gen {
		b.cond.Wait()
	}
}
