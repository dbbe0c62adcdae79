package gonumlap

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack"
	"gonum.org/v1/gonum/lapack/lapack64"

	"github.com/parlab/parmat/backend"
	"github.com/parlab/parmat/layout"
)

// checkEigGrid rejects non-square grids up front; the parallel eigensolver
// family this contract mirrors is only defined on square grids.
func (s *Solver) checkEigGrid() error {
	if !s.g.IsSquare() {
		return fmt.Errorf("gonumlap: eigensolve on %dx%d grid: %w",
			s.g.Rows(), s.g.Cols(), backend.ErrBadDescriptor)
	}
	return nil
}

// syevWork asks the symmetric driver for its optimal scratch size at order n.
// The query never reads matrix values, so a zero buffer suffices.
func syevWork(n int) int {
	var query [1]float64
	a := blas64.Symmetric{Uplo: blas.Upper, N: n, Stride: n, Data: make([]float64, n*n)}
	w := make([]float64, n)
	lapack64.Syev(lapack.EVCompute, a, w, query[:], -1)
	return int(query[0])
}

// iworkFull is the integer scratch bound of the full-spectrum divide and
// conquer driver on a p×q grid.
func (s *Solver) iworkFull(n int) int {
	return 7*n + 8*s.g.Cols() + 2
}

// iworkRange is the integer scratch bound of the range driver.
func (s *Solver) iworkRange(n int) int {
	nnp := max(n, s.g.Cells()+1, 4)
	return 12*nnp + 2*n
}

// checkEigShapes verifies both descriptors cover an order-n problem and the
// eigenvalue buffer holds nvals entries.
func checkEigShapes(n, nvals, wlen int, da, dz backend.Descriptor) error {
	if da.M != n || da.N != n || dz.M != n || dz.N != n {
		return fmt.Errorf("gonumlap: eig order %d over a=%dx%d z=%dx%d: %w",
			n, da.M, da.N, dz.M, dz.N, backend.ErrBadDescriptor)
	}
	if wlen != nvals {
		return fmt.Errorf("gonumlap: eigenvalue buffer has %d entries, want %d: %w",
			wlen, nvals, backend.ErrBadDescriptor)
	}
	return nil
}

func (s *Solver) PlanEigFloat64(n int, da backend.Descriptor) (backend.Workspace, error) {
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
	return backend.Workspace{Work: syevWork(n), IWork: s.iworkFull(n)}, nil
}

// syevDense decomposes a replicated order-n row-major symmetric matrix in
// place: ascending eigenvalues come back alongside the buffer, whose column
// j now holds eigenvector j.
func syevDense(n int, data, work []float64) (we, ev []float64, err error) {
	we = make([]float64, n)
	sym := blas64.Symmetric{Uplo: blas.Upper, N: n, Stride: n, Data: data}
	if !lapack64.Syev(lapack.EVCompute, sym, we, work, len(work)) {
		return nil, nil, fmt.Errorf("gonumlap: symmetric eigensolve order %d failed to converge: %w",
			n, backend.ErrKernel)
	}
	return we, data, nil
}

// eigFloat64 runs the replicated symmetric solve shared by the full and
// range drivers, and overwrites the source panel with its slice of the
// eigenvector matrix.
func (s *Solver) eigFloat64(n int, a []float64, la layout.Layout, work []float64) ([]float64, []float64, error) {
	ga, err := s.assembleFloat64(la, a)
	if err != nil {
		return nil, nil, err
	}
	we, gz, err := syevDense(n, ga, work)
	if err != nil {
		return nil, nil, err
	}
	extractFloat64(la, gz, a)
	return we, gz, nil
}

func (s *Solver) EigFloat64(ws backend.Workspace, n int, a []float64, da backend.Descriptor,
	w []float64, z []float64, dz backend.Descriptor) error {

	need, err := s.PlanEigFloat64(n, da)
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

	we, gz, err := s.eigFloat64(n, a, la, make([]float64, ws.Work))
	if err != nil {
		return err
	}
	copy(w, we)
	extractFloat64(lz, gz, z)
	return nil
}

func (s *Solver) PlanEigRangeFloat64(n, k int, da backend.Descriptor) (backend.Workspace, error) {
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
	return backend.Workspace{Work: syevWork(n), IWork: s.iworkRange(n)}, nil
}

func (s *Solver) EigRangeFloat64(ws backend.Workspace, n, k int, a []float64, da backend.Descriptor,
	w []float64, z []float64, dz backend.Descriptor) error {

	need, err := s.PlanEigRangeFloat64(n, k, da)
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

	we, gz, err := s.eigFloat64(n, a, la, make([]float64, ws.Work))
	if err != nil {
		return err
	}
	copy(w, we[:k])
	// Only the leading k columns carry eigenvectors; the rest are cleared.
	for i := 0; i < n; i++ {
		for j := k; j < n; j++ {
			gz[i*n+j] = 0
		}
	}
	extractFloat64(lz, gz, z)
	return nil
}
