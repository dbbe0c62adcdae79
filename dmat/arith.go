package dmat

import "fmt"

// Add accumulates that into the receiver elementwise. Local: no
// communication, both panels are index-compatible after alignCheck.
func (m *Matrix[T]) Add(that *Matrix[T]) error {
	if err := m.alignCheck(that); err != nil {
		return err
	}
	for i := range m.data {
		m.data[i] += that.data[i]
	}
	return nil
}

// Sub subtracts that from the receiver elementwise.
func (m *Matrix[T]) Sub(that *Matrix[T]) error {
	if err := m.alignCheck(that); err != nil {
		return err
	}
	for i := range m.data {
		m.data[i] -= that.data[i]
	}
	return nil
}

// Scale multiplies every element by alpha.
func (m *Matrix[T]) Scale(alpha T) {
	for i := range m.data {
		m.data[i] *= alpha
	}
}

// Unscale divides every element by alpha. Division by zero follows the
// scalar type's semantics, as with any Go division.
func (m *Matrix[T]) Unscale(alpha T) {
	for i := range m.data {
		m.data[i] /= alpha
	}
}

// Neg negates every element and returns the receiver.
func (m *Matrix[T]) Neg() *Matrix[T] {
	for i := range m.data {
		m.data[i] = -m.data[i]
	}
	return m
}

// Zero clears every element.
func (m *Matrix[T]) Zero() {
	for i := range m.data {
		m.data[i] = 0
	}
}

// Eye overwrites the matrix with the identity. Square matrices only.
func (m *Matrix[T]) Eye() error {
	if m.closed() {
		return ErrClosed
	}
	if m.Rows() != m.Cols() {
		return fmt.Errorf("Eye on %dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare)
	}
	m.Zero()
	for i := 0; i < m.Rows(); i++ {
		if idx, owned := m.lay.GlobalToLocal(i, i); owned {
			m.data[idx] = 1
		}
	}
	return nil
}

// Dot reports the sum over all elements of m[i,j]*that[i,j] (no conjugation
// for complex scalars). In particular m.Dot(m) is the bilinear self-product,
// which for complex matrices can be complex and is not SquaredNorm.
// Collective: the local partial sums are reduced across the world, and every
// worker receives the identical total.
func (m *Matrix[T]) Dot(that *Matrix[T]) (T, error) {
	var sum T
	if err := m.alignCheck(that); err != nil {
		return sum, err
	}
	for i := range m.data {
		sum += m.data[i] * that.data[i]
	}
	return allReduceScalar(m.g.Comm(), sum)
}

// SquaredNorm reports the squared Frobenius norm, the sum of |m[i,j]|² over
// all elements. For complex matrices this conjugates each element against
// itself and so differs from Dot applied to the receiver. Collective.
func (m *Matrix[T]) SquaredNorm() (float64, error) {
	if m.closed() {
		return 0, ErrClosed
	}
	local := 0.0
	for _, v := range m.data {
		local += absSq(v)
	}
	return allReduceFloat(m.g.Comm(), local)
}

// Norm reports the Frobenius norm. Collective.
func (m *Matrix[T]) Norm() (float64, error) {
	sq, err := m.SquaredNorm()
	if err != nil {
		return 0, err
	}
	return sqrtPos(sq), nil
}
