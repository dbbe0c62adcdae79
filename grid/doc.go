// Package grid arranges the workers of a comm world into a logical 2D
// process grid, the coordinate system that block-cyclic matrix layouts are
// defined against.
//
// A *Grid is an explicit shared handle: matrices that must cooperate in one
// operation are laid out compatibly by binding them to the same *Grid value.
// The integer context carried by a grid exists only to stamp kernel
// descriptors; it is allocated collectively so that every rank agrees on it.
//
// Construction is collective — every rank of the world must call New with the
// same options, or the world deadlocks. Grids are never torn down
// mid-computation; they live until the world ends.
package grid
