package gonumlap

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/blas/cblas128"

	"github.com/parlab/parmat/backend"
)

// transBlas maps a kernel transpose flag onto the BLAS enum. For real data
// the adjoint degenerates to the plain transpose.
func transBlas(t backend.Trans, conjugates bool) (blas.Transpose, error) {
	switch t {
	case backend.NoTrans:
		return blas.NoTrans, nil
	case backend.Transpose:
		return blas.Trans, nil
	case backend.ConjTrans:
		if conjugates {
			return blas.ConjTrans, nil
		}
		return blas.Trans, nil
	}
	return 0, fmt.Errorf("gonumlap: trans %q: %w", byte(t), backend.ErrBadTrans)
}

// opShape reports the effective (rows, cols) of op(x) for a stored shape.
func opShape(d backend.Descriptor, t backend.Trans) (rows, cols int) {
	if t == backend.NoTrans {
		return d.M, d.N
	}
	return d.N, d.M
}

// checkGemmDims verifies the effective shapes against the dimension triple.
func checkGemmDims(transA, transB backend.Trans, m, n, k int, da, db, dc backend.Descriptor) error {
	ar, ac := opShape(da, transA)
	br, bc := opShape(db, transB)
	if ar != m || ac != k || br != k || bc != n || dc.M != m || dc.N != n {
		return fmt.Errorf("gonumlap: gemm %dx%dx%d over op(a)=%dx%d op(b)=%dx%d c=%dx%d: %w",
			m, n, k, ar, ac, br, bc, dc.M, dc.N, backend.ErrBadDescriptor)
	}
	return nil
}

func (s *Solver) GemmFloat64(transA, transB backend.Trans, m, n, k int, alpha float64,
	a []float64, da backend.Descriptor, b []float64, db backend.Descriptor,
	beta float64, c []float64, dc backend.Descriptor) error {

	tA, err := transBlas(transA, false)
	if err != nil {
		return err
	}
	tB, err := transBlas(transB, false)
	if err != nil {
		return err
	}
	la, err := s.layoutFor(da)
	if err != nil {
		return err
	}
	lb, err := s.layoutFor(db)
	if err != nil {
		return err
	}
	lc, err := s.layoutFor(dc)
	if err != nil {
		return err
	}
	if err := checkGemmDims(transA, transB, m, n, k, da, db, dc); err != nil {
		return err
	}
	for _, chk := range []error{checkLen("a", a, la), checkLen("b", b, lb), checkLen("c", c, lc)} {
		if chk != nil {
			return chk
		}
	}

	ga, err := s.assembleFloat64(la, a)
	if err != nil {
		return err
	}
	gb, err := s.assembleFloat64(lb, b)
	if err != nil {
		return err
	}
	gc, err := s.assembleFloat64(lc, c)
	if err != nil {
		return err
	}

	blas64.Gemm(tA, tB, alpha,
		blas64.General{Rows: da.M, Cols: da.N, Stride: da.N, Data: ga},
		blas64.General{Rows: db.M, Cols: db.N, Stride: db.N, Data: gb},
		beta,
		blas64.General{Rows: dc.M, Cols: dc.N, Stride: dc.N, Data: gc})

	extractFloat64(lc, gc, c)
	return nil
}

func (s *Solver) GemmComplex128(transA, transB backend.Trans, m, n, k int, alpha complex128,
	a []complex128, da backend.Descriptor, b []complex128, db backend.Descriptor,
	beta complex128, c []complex128, dc backend.Descriptor) error {

	tA, err := transBlas(transA, true)
	if err != nil {
		return err
	}
	tB, err := transBlas(transB, true)
	if err != nil {
		return err
	}
	la, err := s.layoutFor(da)
	if err != nil {
		return err
	}
	lb, err := s.layoutFor(db)
	if err != nil {
		return err
	}
	lc, err := s.layoutFor(dc)
	if err != nil {
		return err
	}
	if err := checkGemmDims(transA, transB, m, n, k, da, db, dc); err != nil {
		return err
	}
	for _, chk := range []error{checkLen("a", a, la), checkLen("b", b, lb), checkLen("c", c, lc)} {
		if chk != nil {
			return chk
		}
	}

	ga, err := s.assembleComplex128(la, a)
	if err != nil {
		return err
	}
	gb, err := s.assembleComplex128(lb, b)
	if err != nil {
		return err
	}
	gc, err := s.assembleComplex128(lc, c)
	if err != nil {
		return err
	}

	cblas128.Gemm(tA, tB, alpha,
		cblas128.General{Rows: da.M, Cols: da.N, Stride: da.N, Data: ga},
		cblas128.General{Rows: db.M, Cols: db.N, Stride: db.N, Data: gb},
		beta,
		cblas128.General{Rows: dc.M, Cols: dc.N, Stride: dc.N, Data: gc})

	extractComplex128(lc, gc, c)
	return nil
}
