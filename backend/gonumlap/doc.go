// Package gonumlap implements the backend kernel contract on top of gonum's
// dense BLAS and LAPACK routines, turning any comm world into a working
// linear-algebra backend without cgo or an external runtime.
//
// The strategy is assemble-replicated: every worker contributes its local
// panel to an element-wise all-reduce (each element has exactly one owner,
// so the sum IS the assembled global matrix), runs the identical serial
// computation, and keeps the slice of the result it owns. The reduce order
// is fixed, so every worker sees bit-identical inputs and produces
// bit-identical results — no further agreement step is needed.
//
// This trades memory and redundant flops for simplicity and determinism; it
// is the reference backend for correctness work and modest problem sizes.
// A distributed-kernel backend plugs in behind the same interface.
package gonumlap
