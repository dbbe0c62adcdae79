package dmat

import (
	"fmt"
)

// eigChecks gates both eigensolve entry points: square matrix, square grid,
// open receiver.
func (m *Matrix[T]) eigChecks() error {
	switch {
	case m.closed():
		return ErrClosed
	case m.Rows() != m.Cols():
		return fmt.Errorf("eigensolve on %dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare)
	case !m.g.IsSquare():
		return fmt.Errorf("eigensolve on %dx%d grid: %w", m.g.Rows(), m.g.Cols(), ErrGridNotSquare)
	}
	return nil
}

// Eig computes the full symmetric (Hermitian for complex scalars) spectrum:
// ascending eigenvalues, replicated on every worker, and a fresh distributed
// matrix whose column j is the eigenvector of eigenvalue j. Only the upper
// triangle of the receiver is read, and its contents are consumed by the
// decomposition. Collective; the process grid must be square.
func (m *Matrix[T]) Eig() ([]float64, *Matrix[T], error) {
	if err := m.eigChecks(); err != nil {
		return nil, nil, err
	}
	n := m.Rows()
	z, err := newFromParts[T](m.g, m.k, n, n, m.lay.BlockRows(), m.lay.BlockCols(), m.scratchDir)
	if err != nil {
		return nil, nil, err
	}
	w := make([]float64, n)

	switch a := any(m.data).(type) {
	case []float64:
		ws, perr := m.k.PlanEigFloat64(n, m.Desc())
		if perr == nil {
			perr = m.k.EigFloat64(ws, n, a, m.Desc(), w, any(z.data).([]float64), z.Desc())
		}
		err = perr
	case []complex128:
		ws, perr := m.k.PlanEigComplex128(n, m.Desc())
		if perr == nil {
			perr = m.k.EigComplex128(ws, n, a, m.Desc(), w, any(z.data).([]complex128), z.Desc())
		}
		err = perr
	}
	if err != nil {
		z.Close()
		return nil, nil, err
	}
	return w, z, nil
}

// EigRange computes the k smallest eigenvalues (ascending, length k) and
// their eigenvectors in the leading k columns of the returned matrix; the
// remaining columns are zero. The eigenvector matrix stays full n×n — the
// kernel family cannot allocate a narrower distributed result. k above n
// clamps to n. Same consumption and collectivity rules as Eig.
func (m *Matrix[T]) EigRange(k int) ([]float64, *Matrix[T], error) {
	if err := m.eigChecks(); err != nil {
		return nil, nil, err
	}
	n := m.Rows()
	if k > n {
		k = n
	}
	if k < 1 {
		return nil, nil, fmt.Errorf("EigRange(%d): %w", k, ErrOutOfRange)
	}
	z, err := newFromParts[T](m.g, m.k, n, n, m.lay.BlockRows(), m.lay.BlockCols(), m.scratchDir)
	if err != nil {
		return nil, nil, err
	}
	w := make([]float64, k)

	switch a := any(m.data).(type) {
	case []float64:
		ws, perr := m.k.PlanEigRangeFloat64(n, k, m.Desc())
		if perr == nil {
			perr = m.k.EigRangeFloat64(ws, n, k, a, m.Desc(), w, any(z.data).([]float64), z.Desc())
		}
		err = perr
	case []complex128:
		ws, perr := m.k.PlanEigRangeComplex128(n, k, m.Desc())
		if perr == nil {
			perr = m.k.EigRangeComplex128(ws, n, k, a, m.Desc(), w, any(z.data).([]complex128), z.Desc())
		}
		err = perr
	}
	if err != nil {
		z.Close()
		return nil, nil, err
	}
	return w, z, nil
}
