// Package parmat is a distributed dense matrix library for simulation codes
// whose matrices do not fit in a single process's memory.
//
// A matrix is dealt out block-cyclically over a 2D grid of cooperating
// workers; every worker stores only the interleaved blocks it owns and all
// heavy algebra (multiply, transpose-accumulate, symmetric/Hermitian
// eigendecomposition) is delegated to a pluggable parallel kernel backend.
//
// The module is organized leaf-first:
//
//	comm/            — worker runtime: ranks, barriers, reductions, gathers
//	                   (in-process goroutine world; optional MPI transport
//	                   behind the `mpi` build tag)
//	grid/            — 2D process grid and collective context allocation
//	layout/          — pure block-cyclic bookkeeping: ownership, global/local
//	                   index maps, owned row/column enumeration
//	backend/         — kernel contract: descriptors, transpose flags,
//	                   two-phase plan/execute workspace protocol
//	backend/gonumlap — reference backend over gonum (blas64/cblas128/lapack64)
//	dmat/            — the distributed matrix itself: element access,
//	                   arithmetic, multiply, symmetrize, diagonalize
//
// Quick sketch (four workers on a 2x2 grid):
//
//	comm.Run(4, func(c comm.Comm) error {
//		A, err := dmat.New[float64](c, 1024, 1024)
//		if err != nil {
//			return comm.Fail(c, err)
//		}
//		defer A.Close()
//		for _, e := range A.OwnedElements() {
//			A.Set(e.Row, e.Col, fill(e.Row, e.Col))
//		}
//		vals, vecs, err := A.Eig()
//		...
//	})
//
// Every operation that reaches beyond local memory is a collective: all
// workers bound to the grid must call it, in the same order, with the same
// shapes. A worker that skips a collective deadlocks the world.
package parmat
