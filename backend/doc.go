// Package backend defines the contract between distributed matrices and the
// parallel dense linear-algebra kernels that do the actual floating-point
// work: general multiply, transpose-accumulate, and symmetric/Hermitian
// eigensolvers (full spectrum and smallest-K range).
//
// A matrix never hands a kernel its shape objects — it hands a Descriptor, a
// compact nine-field summary of global shape, blocking, and grid binding,
// plus its raw local buffer. Kernels come in real/complex pairs, mirroring
// the pd*/pz* routine families of the parallel LAPACK lineage this layer is
// shaped after.
//
// Eigensolvers follow an explicit two-phase protocol: Plan* reports the
// workspace sizes the real call will need (by querying the kernel or by a
// documented sizing formula), and the Eig* call executes with a workspace of
// at least that size. Keeping the phases in the type signature makes the
// query-then-call pattern checkable instead of a calling convention.
//
// Every kernel call is collective across the grid named by the descriptors.
// A nonzero kernel status is unrecoverable and surfaces as an error wrapping
// ErrKernel.
package backend
