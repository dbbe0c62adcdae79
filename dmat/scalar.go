package dmat

import (
	"math"

	"github.com/parlab/parmat/comm"
)

// Scalar is the element-type set matrices are generic over. The set is
// closed on the two exact machine scalars: the backend dispatches real
// versus complex kernels with a type switch on the element slice, so named
// scalar types have no kernel to land on.
type Scalar interface {
	float64 | complex128
}

// absSq reports |v|² as a real number for either scalar.
func absSq[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float64:
		return x * x
	case complex128:
		return real(x)*real(x) + imag(x)*imag(x)
	}
	return 0
}

// allReduceScalar sums one scalar across the world; complex values travel as
// a (re, im) pair through the real reduce.
func allReduceScalar[T Scalar](c comm.Comm, v T) (T, error) {
	switch x := any(v).(type) {
	case float64:
		buf := []float64{x}
		if err := c.AllReduceFloat64s(buf); err != nil {
			return v, err
		}
		return any(buf[0]).(T), nil
	case complex128:
		buf := []float64{real(x), imag(x)}
		if err := c.AllReduceFloat64s(buf); err != nil {
			return v, err
		}
		return any(complex(buf[0], buf[1])).(T), nil
	}
	return v, nil
}

// allReduceFloat is allReduceScalar for plain real accumulators (norms).
func allReduceFloat(c comm.Comm, v float64) (float64, error) {
	buf := []float64{v}
	if err := c.AllReduceFloat64s(buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func sqrtPos(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Sqrt(v)
}
