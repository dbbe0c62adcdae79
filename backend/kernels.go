package backend

// Trans selects how a kernel reads an operand, so transposition is never
// materialized on the stored values.
type Trans byte

const (
	// NoTrans uses the operand as stored.
	NoTrans Trans = 'N'
	// Transpose uses the operand transposed.
	Transpose Trans = 'T'
	// ConjTrans uses the conjugate transpose (adjoint); identical to
	// Transpose for real operands.
	ConjTrans Trans = 'C'
)

// Valid reports whether t is one of the three defined flags.
func (t Trans) Valid() bool {
	return t == NoTrans || t == Transpose || t == ConjTrans
}

// Workspace carries the scratch sizes an eigensolver execute call needs,
// as reported by the matching Plan call. Fields a given kernel does not use
// are zero.
type Workspace struct {
	Work  int // main scratch array elements
	IWork int // integer scratch elements
	RWork int // real scratch elements (complex drivers only)
}

// Covers reports whether w is at least as large as need in every dimension.
func (w Workspace) Covers(need Workspace) bool {
	return w.Work >= need.Work && w.IWork >= need.IWork && w.RWork >= need.RWork
}

// Kernels is the parallel dense linear-algebra surface distributed matrices
// delegate to. All buffers are the callers' column-major local panels; all
// shapes travel in descriptors. Every call is collective across the grid
// named by the descriptors and must be entered by every worker of that
// world with the same scalar arguments.
//
// Eigensolvers read only the upper triangle of the source and destroy its
// contents; eigenvalues come back ascending. The Plan/Eig split is the
// workspace-query protocol: callers plan, allocate, then execute with the
// planned sizes.
type Kernels interface {
	// GemmFloat64 computes c = alpha*op(a)*op(b) + beta*c with op chosen by
	// the transpose flags; (m, n, k) are the effective dimensions after op.
	GemmFloat64(transA, transB Trans, m, n, k int, alpha float64,
		a []float64, da Descriptor, b []float64, db Descriptor,
		beta float64, c []float64, dc Descriptor) error

	// GemmComplex128 is the complex counterpart of GemmFloat64; ConjTrans
	// conjugates.
	GemmComplex128(transA, transB Trans, m, n, k int, alpha complex128,
		a []complex128, da Descriptor, b []complex128, db Descriptor,
		beta complex128, c []complex128, dc Descriptor) error

	// TransposeAddFloat64 computes c = beta*c + alpha*op(a)ᵀ, the
	// transpose-accumulate primitive behind symmetrization. op(a)ᵀ is aᵀ
	// for Transpose (ConjTrans is identical for real data).
	TransposeAddFloat64(trans Trans, alpha float64, a []float64, da Descriptor,
		beta float64, c []float64, dc Descriptor) error

	// TransposeAddComplex128 is the complex counterpart; ConjTrans
	// accumulates the adjoint instead of the plain transpose.
	TransposeAddComplex128(trans Trans, alpha complex128, a []complex128, da Descriptor,
		beta complex128, c []complex128, dc Descriptor) error

	// PlanEigFloat64 reports the workspace for a full symmetric
	// eigendecomposition of the n×n matrix described by da.
	PlanEigFloat64(n int, da Descriptor) (Workspace, error)

	// EigFloat64 decomposes the symmetric matrix in a: all n eigenvalues
	// into w (ascending) and eigenvectors as columns of the matrix behind
	// (z, dz). a is consumed.
	EigFloat64(ws Workspace, n int, a []float64, da Descriptor,
		w []float64, z []float64, dz Descriptor) error

	// PlanEigComplex128 reports the workspace for a full Hermitian
	// eigendecomposition.
	PlanEigComplex128(n int, da Descriptor) (Workspace, error)

	// EigComplex128 decomposes the Hermitian matrix in a; eigenvalues are
	// real and ascending.
	EigComplex128(ws Workspace, n int, a []complex128, da Descriptor,
		w []float64, z []complex128, dz Descriptor) error

	// PlanEigRangeFloat64 reports the workspace for computing the k
	// smallest eigenpairs.
	PlanEigRangeFloat64(n, k int, da Descriptor) (Workspace, error)

	// EigRangeFloat64 computes the k smallest eigenvalues into w (length
	// k, ascending) and the matching eigenvectors into the first k columns
	// of (z, dz); the remaining columns are zero. The destination matrix
	// must still be full n×n — the kernel family cannot shrink it.
	EigRangeFloat64(ws Workspace, n, k int, a []float64, da Descriptor,
		w []float64, z []float64, dz Descriptor) error

	// PlanEigRangeComplex128 reports the workspace for the complex range
	// driver.
	PlanEigRangeComplex128(n, k int, da Descriptor) (Workspace, error)

	// EigRangeComplex128 is the complex counterpart of EigRangeFloat64.
	EigRangeComplex128(ws Workspace, n, k int, a []complex128, da Descriptor,
		w []float64, z []complex128, dz Descriptor) error
}
