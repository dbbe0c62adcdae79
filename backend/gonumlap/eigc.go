package gonumlap

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/parlab/parmat/backend"
	"github.com/parlab/parmat/layout"
)

// The Hermitian drivers route through the real symmetric solver via the
// standard order-2n embedding
//
//	E = | Re(H)  -Im(H) |
//	    | Im(H)   Re(H) |
//
// which is symmetric exactly when H is Hermitian. Each eigenvalue of H
// appears twice in E's ascending spectrum, and folding the upper/lower
// halves of an embedded eigenvector back together as p+iq recovers a unit
// eigenvector of H.

// rworkHermitian is the real scratch bound of the embedding route at order
// n: the embedded matrix plus its eigenvalue vector.
func rworkHermitian(n int) int {
	return 4*n*n + 2*n
}

// embedHermitian expands an n×n row-major complex global into the order-2n
// real symmetric embedding.
func embedHermitian(n int, gh []complex128) []float64 {
	m := 2 * n
	e := make([]float64, m*m)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			h := gh[i*n+j]
			e[i*m+j] = real(h)
			e[i*m+n+j] = -imag(h)
			e[(n+i)*m+j] = imag(h)
			e[(n+i)*m+n+j] = real(h)
		}
	}
	return e
}

// foldSpectrum collapses the doubled embedded spectrum back to order n.
// Eigenvalue j of H is entry 2j of the ascending embedded eigenvalues.
//
// Eigenvectors need more care than a per-column fold: inside a repeated
// eigenvalue the embedded eigenspace contains both the (p;q) and the
// (-q;p) folds of the same complex vector — the latter is i times the
// former — and the real solver is free to return exactly that pair as its
// basis, which would fold into linearly dependent columns. Within a cluster
// of k equal eigenvalues the folds of all 2k embedded columns span the
// k-dimensional complex eigenspace, so folding them greedily and
// orthogonalizing against the vectors already accepted for the cluster
// always recovers an orthonormal basis.
func foldSpectrum(n int, we, ev []float64) ([]float64, []complex128) {
	w := make([]float64, n)
	for j := 0; j < n; j++ {
		w[j] = we[2*j]
	}
	gz := make([]complex128, n*n)
	for start := 0; start < n; {
		end := start + 1
		for end < n && sameCluster(w[start], w[end]) {
			end++
		}
		vecs := make([][]complex128, 0, end-start)
		for col := 2 * start; col < 2*end && len(vecs) < end-start; col++ {
			v := foldColumn(n, ev, col)
			for _, u := range vecs {
				projectOut(v, u)
			}
			if normalizeVec(v) {
				vecs = append(vecs, v)
			}
		}
		for idx, v := range vecs {
			for i := 0; i < n; i++ {
				gz[i*n+(start+idx)] = v[i]
			}
		}
		start = end
	}
	return w, gz
}

// sameCluster reports whether two ascending folded eigenvalues belong to
// the same degenerate cluster.
func sameCluster(a, b float64) bool {
	scale := math.Max(math.Max(math.Abs(a), math.Abs(b)), 1)
	return math.Abs(a-b) <= 1e-10*scale
}

// foldColumn folds embedded column col back to a complex n-vector: upper
// half real parts, lower half imaginary parts.
func foldColumn(n int, ev []float64, col int) []complex128 {
	m := 2 * n
	v := make([]complex128, n)
	for i := 0; i < n; i++ {
		v[i] = complex(ev[i*m+col], ev[(n+i)*m+col])
	}
	return v
}

// projectOut removes from v its component along the unit vector u.
func projectOut(v, u []complex128) {
	dot := complex(0, 0)
	for i := range v {
		dot += cmplx.Conj(u[i]) * v[i]
	}
	for i := range v {
		v[i] -= dot * u[i]
	}
}

// normalizeVec scales v to unit norm; a numerically vanished residual (a
// fold that collapsed into the span of the accepted vectors) reports false
// and is skipped by the caller.
func normalizeVec(v []complex128) bool {
	norm := 0.0
	for _, x := range v {
		norm += real(x)*real(x) + imag(x)*imag(x)
	}
	if norm <= 1e-12 {
		return false
	}
	scale := complex(1/math.Sqrt(norm), 0)
	for i := range v {
		v[i] *= scale
	}
	return true
}

func (s *Solver) PlanEigComplex128(n int, da backend.Descriptor) (backend.Workspace, error) {
	if err := s.checkEigGrid(); err != nil {
		return backend.Workspace{}, err
	}
	if _, err := s.layoutFor(da); err != nil {
		return backend.Workspace{}, err
	}
	if da.M != n || da.N != n {
		return backend.Workspace{}, fmt.Errorf("gonumlap: eig order %d over %dx%d: %w",
			n, da.M, da.N, backend.ErrBadDescriptor)
	}
	return backend.Workspace{
		Work:  syevWork(2 * n),
		IWork: s.iworkFull(2 * n),
		RWork: rworkHermitian(n),
	}, nil
}

// eigComplex128 runs the replicated Hermitian solve shared by the full and
// range drivers, returning the ascending eigenvalues and the row-major
// global eigenvector matrix. The source panel is overwritten with its slice
// of the eigenvector matrix.
func (s *Solver) eigComplex128(n int, a []complex128, la layout.Layout, work []float64) ([]float64, []complex128, error) {
	gh, err := s.assembleComplex128(la, a)
	if err != nil {
		return nil, nil, err
	}
	e := embedHermitian(n, gh)
	we, ev, err := syevDense(2*n, e, work)
	if err != nil {
		return nil, nil, err
	}
	w, gz := foldSpectrum(n, we, ev)
	extractComplex128(la, gz, a)
	return w, gz, nil
}

func (s *Solver) EigComplex128(ws backend.Workspace, n int, a []complex128, da backend.Descriptor,
	w []float64, z []complex128, dz backend.Descriptor) error {

	need, err := s.PlanEigComplex128(n, da)
	if err != nil {
		return err
	}
	if !ws.Covers(need) {
		return fmt.Errorf("gonumlap: eig workspace %+v below planned %+v: %w", ws, need, backend.ErrWorkspace)
	}
	la, err := s.layoutFor(da)
	if err != nil {
		return err
	}
	lz, err := s.layoutFor(dz)
	if err != nil {
		return err
	}
	if err := checkEigShapes(n, n, len(w), da, dz); err != nil {
		return err
	}
	if err := checkLen("a", a, la); err != nil {
		return err
	}
	if err := checkLen("z", z, lz); err != nil {
		return err
	}

	we, gz, err := s.eigComplex128(n, a, la, make([]float64, ws.Work))
	if err != nil {
		return err
	}
	copy(w, we)
	extractComplex128(lz, gz, z)
	return nil
}

func (s *Solver) PlanEigRangeComplex128(n, k int, da backend.Descriptor) (backend.Workspace, error) {
	if err := s.checkEigGrid(); err != nil {
		return backend.Workspace{}, err
	}
	if _, err := s.layoutFor(da); err != nil {
		return backend.Workspace{}, err
	}
	if da.M != n || da.N != n || k < 1 || k > n {
		return backend.Workspace{}, fmt.Errorf("gonumlap: eig range %d of order %d over %dx%d: %w",
			k, n, da.M, da.N, backend.ErrBadDescriptor)
	}
	return backend.Workspace{
		Work:  syevWork(2 * n),
		IWork: s.iworkRange(2 * n),
		RWork: rworkHermitian(n),
	}, nil
}

func (s *Solver) EigRangeComplex128(ws backend.Workspace, n, k int, a []complex128, da backend.Descriptor,
	w []float64, z []complex128, dz backend.Descriptor) error {

	need, err := s.PlanEigRangeComplex128(n, k, da)
	if err != nil {
		return err
	}
	if !ws.Covers(need) {
		return fmt.Errorf("gonumlap: eig workspace %+v below planned %+v: %w", ws, need, backend.ErrWorkspace)
	}
	la, err := s.layoutFor(da)
	if err != nil {
		return err
	}
	lz, err := s.layoutFor(dz)
	if err != nil {
		return err
	}
	if err := checkEigShapes(n, k, len(w), da, dz); err != nil {
		return err
	}
	if err := checkLen("a", a, la); err != nil {
		return err
	}
	if err := checkLen("z", z, lz); err != nil {
		return err
	}

	we, gz, err := s.eigComplex128(n, a, la, make([]float64, ws.Work))
	if err != nil {
		return err
	}
	copy(w, we[:k])
	for i := 0; i < n; i++ {
		for j := k; j < n; j++ {
			gz[i*n+j] = 0
		}
	}
	extractComplex128(lz, gz, z)
	return nil
}
