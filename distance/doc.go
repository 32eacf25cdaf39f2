// SPDX-License-Identifier: MIT

// Package distance answers "how far apart are atoms i and j" for the bond
// graph builder, in two interchangeable ways.
//
// What:
//
//   - Table: a dense, row-major n×n table of Euclidean distances. It is the
//     reference implementation and what small structures use.
//   - CellIndex: uniform 3D bins of a fixed edge length. Within(i, cutoff)
//     only inspects the 27 bins around atom i, so neighbour search over a
//     large sheet costs O(n) instead of O(n²).
//
// Both report neighbours in ascending atom index, so a bond graph built from
// either one is identical.
//
// Complexity:
//
//   - NewTable:       O(n²) time and memory.
//   - NewCellIndex:   O(n) time and memory.
//   - Within:         O(k) for k atoms in the 27 surrounding bins (+ sort).
//
// Errors:
//
//   - ErrEmptyStructure:   nil or zero-length structure.
//   - ErrIndexOutOfBounds: At(i,j) outside [0,n).
//   - ErrBadCellSize:      non-positive or non-finite bin edge.
package distance
