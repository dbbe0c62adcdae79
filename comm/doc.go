// Package comm is the worker runtime underneath grids and distributed
// matrices: it tells a worker its rank and the world size, and provides the
// collective primitives (barrier, all-reduce, all-gather, broadcast, context
// allocation) that grid construction and matrix algebra are built from.
//
// The default world is in-process: Run spawns one goroutine per rank over a
// shared exchange area, which keeps the whole library testable with plain
// `go test`. An MPI-backed world for multi-node runs lives in comm/mpicomm
// behind the `mpi` build tag; both satisfy the same Comm interface.
//
// Collective discipline: every method documented as collective must be
// invoked by every rank of the world, in the same order. There is no timeout
// and no cancellation — a rank that skips a collective blocks its peers
// forever. This mirrors the semantics of the parallel runtimes the library
// targets.
//
// Scalars wider than float64 travel as interleaved float64 pairs; the
// float64-typed surface keeps the interface implementable 1:1 on MPI
// bindings.
package comm
