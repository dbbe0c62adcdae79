// Package dmat provides dense matrices distributed over a process grid in
// the 2D block-cyclic layout, with element access, in-place arithmetic,
// parallel multiply, symmetrization and symmetric/Hermitian eigensolves.
//
// A Matrix is generic over its scalar (float64 or complex128). Each worker
// owns a column-major local panel holding exactly the elements the layout
// assigns to it; globally indexed access routes through the layout, so reads
// of elements stored elsewhere yield the zero value and writes elsewhere
// report false instead of touching anything.
//
// Construction and every operation that computes (Mul, Symmetrize, Eig,
// EigRange, Dot, Norm) are collective: every worker of the world must make
// the same call with the same arguments. Purely local operations (At, Set,
// Add, Scale, ...) are not.
//
//	err := comm.Run(4, func(c comm.Comm) error {
//		a, err := dmat.New[float64](c, n, n)
//		if err != nil {
//			return err
//		}
//		defer a.Close()
//		for k, at := range a.OwnedElements() {
//			a.LocalData()[k] = f(at.Row, at.Col)
//		}
//		w, z, err := a.Eig()
//		...
//	})
//
// Matrices too large for memory can back their local panels with a
// memory-mapped scratch file via WithScratchDir; Close releases the mapping.
package dmat
