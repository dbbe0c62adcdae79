package dmat

import (
	"fmt"

	"github.com/parlab/parmat/backend"
)

// opDims reports the effective shape of op(m) under a transpose flag.
func opDims[T Scalar](m *Matrix[T], t backend.Trans) (rows, cols int) {
	if t == backend.NoTrans {
		return m.Rows(), m.Cols()
	}
	return m.Cols(), m.Rows()
}

// Mul computes op(m)·op(that) into a freshly allocated zero matrix and
// returns it. The result lives on the shared grid; its row blocking follows
// op(m)'s rows and its column blocking op(that)'s columns — one allocation
// policy for both scalar types. Collective.
func (m *Matrix[T]) Mul(that *Matrix[T], transA, transB backend.Trans) (*Matrix[T], error) {
	if that == nil {
		return nil, ErrNilMatrix
	}
	if m.closed() || that.closed() {
		return nil, ErrClosed
	}
	if !transA.Valid() || !transB.Valid() {
		return nil, fmt.Errorf("Mul trans %q,%q: %w", byte(transA), byte(transB), backend.ErrBadTrans)
	}
	if m.g.Context() != that.g.Context() {
		return nil, fmt.Errorf("Mul across contexts %d and %d: %w",
			m.g.Context(), that.g.Context(), ErrGridMismatch)
	}
	ar, ak := opDims(m, transA)
	bk, bn := opDims(that, transB)
	if ak != bk {
		return nil, fmt.Errorf("Mul: op(a) is %dx%d, op(b) is %dx%d: %w", ar, ak, bk, bn, ErrInnerDim)
	}

	mb, nb := m.lay.BlockRows(), that.lay.BlockCols()
	if transA != backend.NoTrans {
		mb = m.lay.BlockCols()
	}
	if transB != backend.NoTrans {
		nb = that.lay.BlockRows()
	}
	out, err := newFromParts[T](m.g, m.k, ar, bn, mb, nb, m.scratchDir)
	if err != nil {
		return nil, err
	}

	switch a := any(m.data).(type) {
	case []float64:
		err = m.k.GemmFloat64(transA, transB, ar, bn, ak, 1,
			a, m.Desc(),
			any(that.data).([]float64), that.Desc(),
			0, any(out.data).([]float64), out.Desc())
	case []complex128:
		err = m.k.GemmComplex128(transA, transB, ar, bn, ak, 1,
			a, m.Desc(),
			any(that.data).([]complex128), that.Desc(),
			0, any(out.data).([]complex128), out.Desc())
	}
	if err != nil {
		out.Close()
		return nil, err
	}
	return out, nil
}
