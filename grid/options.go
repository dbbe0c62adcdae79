// Package grid: functional configuration for grid construction.
// Option constructors panic only on nonsensical values (programmer error);
// shape feasibility against the world size is validated in New, where the
// world is known.

package grid

// Default* document the zero-value behavior of the options: an unspecified
// dimension (0) is derived in New — from the partner dimension when one is
// given, or as the square root of the world size when neither is.
const (
	// DefaultRows means "derive the number of grid rows".
	DefaultRows = 0

	// DefaultCols means "derive the number of grid columns".
	DefaultCols = 0
)

const panicNegativeDim = "grid: negative grid dimension"

// Option mutates grid construction parameters. Safe to apply repeatedly;
// last writer wins.
type Option func(*options)

type options struct {
	rows int // requested grid rows; 0 = derive
	cols int // requested grid cols; 0 = derive
}

// WithRows requests n grid rows. When columns are left unspecified they are
// derived as worldSize/n. Panics if n is negative.
func WithRows(n int) Option {
	if n < 0 {
		panic(panicNegativeDim)
	}
	return func(o *options) { o.rows = n }
}

// WithCols requests n grid columns. When rows are left unspecified they are
// derived as worldSize/n. Panics if n is negative.
func WithCols(n int) Option {
	if n < 0 {
		panic(panicNegativeDim)
	}
	return func(o *options) { o.cols = n }
}

// WithShape requests an explicit rows×cols grid. Panics if either dimension
// is negative.
func WithShape(rows, cols int) Option {
	if rows < 0 || cols < 0 {
		panic(panicNegativeDim)
	}
	return func(o *options) {
		o.rows = rows
		o.cols = cols
	}
}

func gatherOptions(user ...Option) options {
	o := options{rows: DefaultRows, cols: DefaultCols}
	for _, set := range user {
		set(&o)
	}
	return o
}
