package backend

import "fmt"

// DTypeDense tags descriptors of dense block-cyclic matrices, the only
// matrix class this layer distributes.
const DTypeDense = 1

// Descriptor is the nine-field summary of a distributed matrix that kernel
// routines consume instead of a full shape object: global shape, tile shape,
// distribution origin, grid binding, and the local leading dimension.
type Descriptor struct {
	DType   int // matrix class; always DTypeDense here
	Context int // grid context scoping the collective
	M       int // global rows
	N       int // global cols
	MB      int // tile height
	NB      int // tile width
	RowSrc  int // grid row owning the first tile row (always 0 here)
	ColSrc  int // grid col owning the first tile col (always 0 here)
	LLD     int // leading dimension of the column-major local buffer, >= 1
}

// Validate checks the descriptor's internal consistency.
func (d Descriptor) Validate() error {
	switch {
	case d.DType != DTypeDense:
		return fmt.Errorf("descriptor dtype %d: %w", d.DType, ErrBadDescriptor)
	case d.M < 1 || d.N < 1:
		return fmt.Errorf("descriptor shape %dx%d: %w", d.M, d.N, ErrBadDescriptor)
	case d.MB < 1 || d.NB < 1:
		return fmt.Errorf("descriptor blocking %dx%d: %w", d.MB, d.NB, ErrBadDescriptor)
	case d.RowSrc != 0 || d.ColSrc != 0:
		return fmt.Errorf("descriptor source (%d,%d): %w", d.RowSrc, d.ColSrc, ErrBadDescriptor)
	case d.LLD < 1:
		return fmt.Errorf("descriptor lld %d: %w", d.LLD, ErrBadDescriptor)
	}
	return nil
}
