package gonumlap

import (
	"fmt"
	"math/cmplx"

	"github.com/parlab/parmat/backend"
)

// checkTransposeDims verifies c is shaped like aᵀ.
func checkTransposeDims(da, dc backend.Descriptor) error {
	if dc.M != da.N || dc.N != da.M {
		return fmt.Errorf("gonumlap: transpose-add %dx%d into %dx%d: %w",
			da.M, da.N, dc.M, dc.N, backend.ErrBadDescriptor)
	}
	return nil
}

func (s *Solver) TransposeAddFloat64(trans backend.Trans, alpha float64,
	a []float64, da backend.Descriptor,
	beta float64, c []float64, dc backend.Descriptor) error {

	if trans != backend.Transpose && trans != backend.ConjTrans {
		return fmt.Errorf("gonumlap: transpose-add trans %q: %w", byte(trans), backend.ErrBadTrans)
	}
	la, err := s.layoutFor(da)
	if err != nil {
		return err
	}
	lc, err := s.layoutFor(dc)
	if err != nil {
		return err
	}
	if err := checkTransposeDims(da, dc); err != nil {
		return err
	}
	if err := checkLen("a", a, la); err != nil {
		return err
	}
	if err := checkLen("c", c, lc); err != nil {
		return err
	}

	ga, err := s.assembleFloat64(la, a)
	if err != nil {
		return err
	}
	gc, err := s.assembleFloat64(lc, c)
	if err != nil {
		return err
	}
	for i := 0; i < dc.M; i++ {
		for j := 0; j < dc.N; j++ {
			gc[i*dc.N+j] = beta*gc[i*dc.N+j] + alpha*ga[j*da.N+i]
		}
	}
	extractFloat64(lc, gc, c)
	return nil
}

func (s *Solver) TransposeAddComplex128(trans backend.Trans, alpha complex128,
	a []complex128, da backend.Descriptor,
	beta complex128, c []complex128, dc backend.Descriptor) error {

	if trans != backend.Transpose && trans != backend.ConjTrans {
		return fmt.Errorf("gonumlap: transpose-add trans %q: %w", byte(trans), backend.ErrBadTrans)
	}
	la, err := s.layoutFor(da)
	if err != nil {
		return err
	}
	lc, err := s.layoutFor(dc)
	if err != nil {
		return err
	}
	if err := checkTransposeDims(da, dc); err != nil {
		return err
	}
	if err := checkLen("a", a, la); err != nil {
		return err
	}
	if err := checkLen("c", c, lc); err != nil {
		return err
	}

	ga, err := s.assembleComplex128(la, a)
	if err != nil {
		return err
	}
	gc, err := s.assembleComplex128(lc, c)
	if err != nil {
		return err
	}
	conj := trans == backend.ConjTrans
	for i := 0; i < dc.M; i++ {
		for j := 0; j < dc.N; j++ {
			v := ga[j*da.N+i]
			if conj {
				v = cmplx.Conj(v)
			}
			gc[i*dc.N+j] = beta*gc[i*dc.N+j] + alpha*v
		}
	}
	extractComplex128(lc, gc, c)
	return nil
}
