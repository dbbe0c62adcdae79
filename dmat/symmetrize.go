package dmat

import (
	"fmt"

	"github.com/parlab/parmat/backend"
)

// Symmetrize replaces the matrix with its symmetric part (m + mᵀ)/2; for
// complex scalars the Hermitian part (m + mᴴ)/2, so a Hermitian matrix is a
// fixed point. Square matrices only. Collective: the update runs through the
// transpose-accumulate kernel against a snapshot of the current contents.
func (m *Matrix[T]) Symmetrize() error {
	if m.closed() {
		return ErrClosed
	}
	if m.Rows() != m.Cols() {
		return fmt.Errorf("Symmetrize on %dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare)
	}
	snap, err := m.Clone()
	if err != nil {
		return err
	}
	defer snap.Close()

	switch a := any(snap.data).(type) {
	case []float64:
		return m.k.TransposeAddFloat64(backend.Transpose, 0.5, a, snap.Desc(),
			0.5, any(m.data).([]float64), m.Desc())
	case []complex128:
		return m.k.TransposeAddComplex128(backend.ConjTrans, 0.5, a, snap.Desc(),
			0.5, any(m.data).([]complex128), m.Desc())
	}
	return nil
}
