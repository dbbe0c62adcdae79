package comm

// Comm is one worker's handle onto a world of cooperating ranks.
//
// Rank and Size are purely local queries. Everything else is a collective:
// every rank of the world must call it, in the same order, or the world
// deadlocks. Implementations guarantee that a collective returns the same
// result on every rank where a result is defined to be world-wide (NewContext,
// AllReduceFloat64s).
type Comm interface {
	// Rank reports this worker's index in [0, Size).
	Rank() int

	// Size reports the number of workers in the world.
	Size() int

	// Barrier blocks until every rank of the world has entered it.
	// Collective.
	Barrier()

	// NewContext allocates a fresh world-unique context identifier and
	// returns the same value on every rank. Contexts scope the collective
	// operations of a process grid. Collective.
	NewContext() int

	// AllReduceFloat64s sums x elementwise across all ranks and stores the
	// result back into x on every rank. The reduction order is fixed
	// (ascending rank), so all ranks observe bit-identical sums. All ranks
	// must pass equal-length buffers. Collective.
	AllReduceFloat64s(x []float64) error

	// AllGatherFloat64s delivers every rank's buffer to every rank, indexed
	// by rank. Buffers may have different lengths (including zero); the
	// returned slices are private copies. Collective.
	AllGatherFloat64s(x []float64) ([][]float64, error)

	// BcastFloat64s overwrites x on every rank with the root rank's buffer.
	// All ranks must pass equal-length buffers. Collective.
	BcastFloat64s(x []float64, root int) error
}
