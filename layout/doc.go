// Package layout implements pure block-cyclic bookkeeping: given global
// matrix dimensions, block sizes, a grid shape and one worker's coordinate,
// it answers how many rows and columns that worker stores and maps between
// global (row, col) coordinates and offsets into the worker's column-major
// local buffer.
//
// Block-cyclic distribution cuts the matrix into blockRows×blockCols tiles
// and deals them round-robin across the grid, so each worker owns interleaved
// tiles rather than one contiguous panel. The invariant everything else rests
// on: the local element counts of all workers exactly partition the global
// element set — every global coordinate is owned by exactly one worker, with
// no overlap and no gap. Trailing partial blocks (dimension not divisible by
// the block size) fall out of the same formulas; no special-casing.
//
// Everything here is a pure function of the constructor arguments, computable
// independently and identically on every worker — which is what lets a kernel
// backend reconstruct any peer's coordinate mapping without communication.
package layout
