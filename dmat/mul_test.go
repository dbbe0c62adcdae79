package dmat_test

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parlab/parmat/backend"
	"github.com/parlab/parmat/comm"
	"github.com/parlab/parmat/dmat"
	"github.com/parlab/parmat/grid"
)

// refMul multiplies two row-major globals with optional transposes.
func refMul(transA, transB bool, a []float64, am, an int, b []float64, bm, bn int) []float64 {
	get := func(x []float64, cols, i, j int, t bool) float64 {
		if t {
			i, j = j, i
		}
		return x[i*cols+j]
	}
	m, k := am, an
	if transA {
		m, k = an, am
	}
	n := bn
	if transB {
		n = bm
	}
	out := make([]float64, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for l := 0; l < k; l++ {
				sum += get(a, an, i, l, transA) * get(b, bn, l, j, transB)
			}
			out[i*n+j] = sum
		}
	}
	return out
}

func TestMulAllTransposeCombos(t *testing.T) {
	ga := seq(12) // 3x4 (or 4x3 transposed)
	gb := seq(12) // 4x3
	cases := []struct {
		name           string
		transA, transB backend.Trans
		am, an, bm, bn int
	}{
		{"NN", backend.NoTrans, backend.NoTrans, 3, 4, 4, 3},
		{"TN", backend.Transpose, backend.NoTrans, 4, 3, 4, 3},
		{"NT", backend.NoTrans, backend.Transpose, 3, 4, 3, 4},
		{"TT", backend.Transpose, backend.Transpose, 4, 3, 3, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			want := refMul(tc.transA != backend.NoTrans, tc.transB != backend.NoTrans,
				ga, tc.am, tc.an, gb, tc.bm, tc.bn)
			err := comm.Run(4, func(c comm.Comm) error {
				g, err := grid.New(c)
				if err != nil {
					return err
				}
				a, err := dmat.New[float64](c, tc.am, tc.an, dmat.WithGrid(g))
				if err != nil {
					return err
				}
				defer a.Close()
				b, err := dmat.New[float64](c, tc.bm, tc.bn, dmat.WithGrid(g))
				if err != nil {
					return err
				}
				defer b.Close()
				fillFrom(a, ga)
				fillFrom(b, gb)

				p, err := a.Mul(b, tc.transA, tc.transB)
				if err != nil {
					return err
				}
				defer p.Close()
				if p.Rows()*p.Cols() != len(want) {
					return fmt.Errorf("result %dx%d", p.Rows(), p.Cols())
				}
				got, err := gather(c, p)
				if err != nil {
					return err
				}
				for i := range want {
					if math.Abs(got[i]-want[i]) > 1e-12 {
						return fmt.Errorf("rank %d: [%d] = %g, want %g", c.Rank(), i, got[i], want[i])
					}
				}
				return nil
			})
			require.NoError(t, err)
		})
	}
}

func TestMulByIdentity(t *testing.T) {
	ga := seq(16)
	err := comm.Run(4, func(c comm.Comm) error {
		g, err := grid.New(c)
		if err != nil {
			return err
		}
		a, err := dmat.New[float64](c, 4, 4, dmat.WithGrid(g))
		if err != nil {
			return err
		}
		defer a.Close()
		fillFrom(a, ga)
		id, err := dmat.New[float64](c, 4, 4, dmat.WithGrid(g))
		if err != nil {
			return err
		}
		defer id.Close()
		if err := id.Eye(); err != nil {
			return err
		}
		p, err := a.Mul(id, backend.NoTrans, backend.NoTrans)
		if err != nil {
			return err
		}
		defer p.Close()
		got, err := gather(c, p)
		if err != nil {
			return err
		}
		for i := range ga {
			if got[i] != ga[i] {
				return fmt.Errorf("identity multiply changed [%d]: %g", i, got[i])
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestMulComplexHermitianProduct(t *testing.T) {
	ga := []complex128{1 + 1i, 2 - 1i, 0, 3i} // 2x2
	err := comm.Run(4, func(c comm.Comm) error {
		g, err := grid.New(c)
		if err != nil {
			return err
		}
		a, err := dmat.New[complex128](c, 2, 2, dmat.WithGrid(g))
		if err != nil {
			return err
		}
		defer a.Close()
		fillFromC(a, ga)
		p, err := a.Mul(a, backend.ConjTrans, backend.NoTrans)
		if err != nil {
			return err
		}
		defer p.Close()
		got, err := gatherC(c, p)
		if err != nil {
			return err
		}
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				want := complex(0, 0)
				for l := 0; l < 2; l++ {
					want += cmplx.Conj(ga[l*2+i]) * ga[l*2+j]
				}
				if cmplx.Abs(got[i*2+j]-want) > 1e-12 {
					return fmt.Errorf("rank %d: [%d,%d] = %v, want %v", c.Rank(), i, j, got[i*2+j], want)
				}
			}
		}
		// aᴴ·a is Hermitian; check against its own adjoint.
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				if cmplx.Abs(got[i*2+j]-cmplx.Conj(got[j*2+i])) > 1e-12 {
					return fmt.Errorf("rank %d: product not Hermitian", c.Rank())
				}
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestMulSentinels(t *testing.T) {
	err := comm.Run(4, func(c comm.Comm) error {
		g, err := grid.New(c)
		if err != nil {
			return err
		}
		a, err := dmat.New[float64](c, 3, 4, dmat.WithGrid(g))
		if err != nil {
			return err
		}
		defer a.Close()
		b, err := dmat.New[float64](c, 3, 4, dmat.WithGrid(g))
		if err != nil {
			return err
		}
		defer b.Close()

		if _, err := a.Mul(nil, backend.NoTrans, backend.NoTrans); !errors.Is(err, dmat.ErrNilMatrix) {
			return fmt.Errorf("nil operand: %v", err)
		}
		// 3x4 · 3x4 has no matching inner dimension untransposed.
		if _, err := a.Mul(b, backend.NoTrans, backend.NoTrans); !errors.Is(err, dmat.ErrInnerDim) {
			return fmt.Errorf("inner mismatch: %v", err)
		}
		if _, err := a.Mul(b, 'Q', backend.NoTrans); !errors.Is(err, backend.ErrBadTrans) {
			return fmt.Errorf("bad trans: %v", err)
		}
		// The transposed pairing is fine: op(a)=4x3, op(b)=3x4.
		p, err := a.Mul(b, backend.Transpose, backend.NoTrans)
		if err != nil {
			return err
		}
		defer p.Close()
		if p.Rows() != 4 || p.Cols() != 4 {
			return fmt.Errorf("result %dx%d, want 4x4", p.Rows(), p.Cols())
		}
		return nil
	})
	require.NoError(t, err)
}

func TestSymmetrize(t *testing.T) {
	ga := seq(16)
	err := comm.Run(4, func(c comm.Comm) error {
		m, err := dmat.New[float64](c, 4, 4)
		if err != nil {
			return err
		}
		defer m.Close()
		fillFrom(m, ga)
		if err := m.Symmetrize(); err != nil {
			return err
		}
		got, err := gather(c, m)
		if err != nil {
			return err
		}
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				want := 0.5 * (ga[i*4+j] + ga[j*4+i])
				if math.Abs(got[i*4+j]-want) > 1e-12 {
					return fmt.Errorf("[%d,%d] = %g, want %g", i, j, got[i*4+j], want)
				}
			}
		}
		// Idempotent: symmetrizing a symmetric matrix changes nothing.
		if err := m.Symmetrize(); err != nil {
			return err
		}
		again, err := gather(c, m)
		if err != nil {
			return err
		}
		for i := range got {
			if math.Abs(again[i]-got[i]) > 1e-12 {
				return fmt.Errorf("second symmetrize moved [%d]", i)
			}
		}

		rect, err := dmat.New[float64](c, 2, 3)
		if err != nil {
			return err
		}
		defer rect.Close()
		if err := rect.Symmetrize(); !errors.Is(err, dmat.ErrNonSquare) {
			return fmt.Errorf("rectangular symmetrize: %v", err)
		}
		return nil
	})
	require.NoError(t, err)
}

func TestSymmetrizeHermitian(t *testing.T) {
	ga := []complex128{1 + 2i, 3 - 1i, 5i, 2} // 2x2, arbitrary
	err := comm.Run(4, func(c comm.Comm) error {
		m, err := dmat.New[complex128](c, 2, 2)
		if err != nil {
			return err
		}
		defer m.Close()
		fillFromC(m, ga)
		if err := m.Symmetrize(); err != nil {
			return err
		}
		got, err := gatherC(c, m)
		if err != nil {
			return err
		}
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				want := 0.5 * (ga[i*2+j] + cmplx.Conj(ga[j*2+i]))
				if cmplx.Abs(got[i*2+j]-want) > 1e-12 {
					return fmt.Errorf("[%d,%d] = %v, want %v", i, j, got[i*2+j], want)
				}
			}
		}
		// The Hermitian part has a real diagonal.
		for i := 0; i < 2; i++ {
			if imag(got[i*2+i]) != 0 {
				return fmt.Errorf("diagonal [%d] not real: %v", i, got[i*2+i])
			}
		}
		return nil
	})
	require.NoError(t, err)
}
