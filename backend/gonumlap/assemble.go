package gonumlap

import "github.com/parlab/parmat/layout"

// assembleFloat64 gathers a distributed matrix into a replicated row-major
// global buffer. Each worker deposits only the elements it owns; because
// ownership partitions the matrix, the element-wise sum across the world is
// the assembled matrix. Observers contribute nothing and receive the full
// result like everyone else.
func (s *Solver) assembleFloat64(lay layout.Layout, x []float64) ([]float64, error) {
	cols := lay.Cols()
	global := make([]float64, lay.Rows()*cols)
	for k, c := range lay.OwnedElements() {
		global[c.Row*cols+c.Col] = x[k]
	}
	if err := s.g.Comm().AllReduceFloat64s(global); err != nil {
		return nil, err
	}
	return global, nil
}

// extractFloat64 writes this worker's slice of a replicated row-major global
// buffer back into its local panel.
func extractFloat64(lay layout.Layout, global, x []float64) {
	cols := lay.Cols()
	for k, c := range lay.OwnedElements() {
		x[k] = global[c.Row*cols+c.Col]
	}
}

// assembleComplex128 is the complex counterpart of assembleFloat64; values
// travel through the real all-reduce as interleaved (re, im) pairs.
func (s *Solver) assembleComplex128(lay layout.Layout, x []complex128) ([]complex128, error) {
	cols := lay.Cols()
	packed := make([]float64, 2*lay.Rows()*cols)
	for k, c := range lay.OwnedElements() {
		at := 2 * (c.Row*cols + c.Col)
		packed[at] = real(x[k])
		packed[at+1] = imag(x[k])
	}
	if err := s.g.Comm().AllReduceFloat64s(packed); err != nil {
		return nil, err
	}
	global := make([]complex128, lay.Rows()*cols)
	for i := range global {
		global[i] = complex(packed[2*i], packed[2*i+1])
	}
	return global, nil
}

func extractComplex128(lay layout.Layout, global, x []complex128) {
	cols := lay.Cols()
	for k, c := range lay.OwnedElements() {
		x[k] = global[c.Row*cols+c.Col]
	}
}
