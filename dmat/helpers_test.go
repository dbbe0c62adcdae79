package dmat_test

import (
	"github.com/parlab/parmat/comm"
	"github.com/parlab/parmat/dmat"
)

// gather replicates a distributed real matrix as a row-major global slice:
// every worker deposits its owned elements and the single-owner sum across
// the world assembles the matrix on every rank.
func gather(c comm.Comm, m *dmat.Matrix[float64]) ([]float64, error) {
	global := make([]float64, m.Rows()*m.Cols())
	for _, at := range m.OwnedElements() {
		v, err := m.At(at.Row, at.Col)
		if err != nil {
			return nil, err
		}
		global[at.Row*m.Cols()+at.Col] = v
	}
	return global, c.AllReduceFloat64s(global)
}

func gatherC(c comm.Comm, m *dmat.Matrix[complex128]) ([]complex128, error) {
	packed := make([]float64, 2*m.Rows()*m.Cols())
	for _, at := range m.OwnedElements() {
		v, err := m.At(at.Row, at.Col)
		if err != nil {
			return nil, err
		}
		idx := 2 * (at.Row*m.Cols() + at.Col)
		packed[idx], packed[idx+1] = real(v), imag(v)
	}
	if err := c.AllReduceFloat64s(packed); err != nil {
		return nil, err
	}
	global := make([]complex128, m.Rows()*m.Cols())
	for i := range global {
		global[i] = complex(packed[2*i], packed[2*i+1])
	}
	return global, nil
}

// fillFrom loads a row-major global into the owned elements of m.
func fillFrom(m *dmat.Matrix[float64], global []float64) {
	data := m.LocalData()
	for k, at := range m.OwnedElements() {
		data[k] = global[at.Row*m.Cols()+at.Col]
	}
}

func fillFromC(m *dmat.Matrix[complex128], global []complex128) {
	data := m.LocalData()
	for k, at := range m.OwnedElements() {
		data[k] = global[at.Row*m.Cols()+at.Col]
	}
}
