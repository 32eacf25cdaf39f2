// SPDX-License-Identifier: MIT

// Package bond derives the undirected bond graph of an atom structure purely
// from pairwise distances.
//
// Rules, applied to every ordered pair (i, j), i ascending, j ascending, j != i:
//
//	d ≤ min          → *OverlapError{I, J}   (non-physical input, abort)
//	min < d < max    → j is appended to i's neighbour list
//	5th neighbour    → *OverflowError{Atom}  (coordination cap exceeded, abort)
//
// The first failing pair in that order is the one reported, so a dense scan
// and a cell-index scan fail identically.
//
// Neighbour lists keep discovery order. The flattened Bonds() list holds every
// bond once, taken from the lower-indexed atom's list.
//
// Options:
//
//	– WithBounds(min, max)  bond length window; panics unless 0 < min < max.
//	– WithDenseTable()      always use the O(n²) distance table.
//	– WithCellIndex()       always use 3D spatial bins.
//	By default structures above DenseLimit atoms use the cell index.
//
// Errors:
//
//	ErrOverlap  – matched by *OverlapError via errors.Is.
//	ErrOverflow – matched by *OverflowError via errors.Is.
package bond
