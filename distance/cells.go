// SPDX-License-Identifier: MIT
// Package: atommesh/distance
//
// cells.go - uniform grid index for near-neighbour queries.
//
// Contract:
//   • Bins are cubes of edge Size keyed by floor(p/Size) per axis.
//   • Within answers exactly what Table.Within answers for the same cutoff.

package distance

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/atommesh/atom"
)

// cell addresses one bin of the index.
type cell [3]int

// CellIndex buckets atoms into cubic bins of edge Size. It is immutable once built.
// neighborOffsets is precomputed for the 3×3×3 block around a bin.
type CellIndex struct {
	Size            float64
	structure       *atom.Structure
	cellOf          []cell
	bins            map[cell][]int
	neighborOffsets []cell
}

// NewCellIndex bins every atom of s into cubes of edge size.
// Atoms are appended to their bin in index order.
// Returns ErrEmptyStructure or ErrBadCellSize on invalid input.
// Complexity: O(n) time and memory.
func NewCellIndex(s *atom.Structure, size float64) (*CellIndex, error) {
	// Validate inputs
	if s.Len() == 0 {
		return nil, fmt.Errorf("NewCellIndex: %w", ErrEmptyStructure)
	}
	if !(size > 0) || math.IsInf(size, 0) {
		return nil, fmt.Errorf("NewCellIndex(%g): %w", size, ErrBadCellSize)
	}

	// Precompute the 3×3×3 neighbourhood
	offsets := make([]cell, 0, 27)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				offsets = append(offsets, cell{dx, dy, dz})
			}
		}
	}

	ci := &CellIndex{
		Size:            size,
		structure:       s,
		cellOf:          make([]cell, s.Len()),
		bins:            make(map[cell][]int),
		neighborOffsets: offsets,
	}
	// Bin atoms in index order
	for i := 0; i < s.Len(); i++ {
		c := ci.locate(i)
		ci.cellOf[i] = c
		ci.bins[c] = append(ci.bins[c], i)
	}

	return ci, nil
}

// locate maps atom i to its bin.
func (ci *CellIndex) locate(i int) cell {
	p := ci.structure.Pos(i)

	return cell{
		int(math.Floor(p.X / ci.Size)),
		int(math.Floor(p.Y / ci.Size)),
		int(math.Floor(p.Z / ci.Size)),
	}
}

// Len returns the number of indexed atoms.
func (ci *CellIndex) Len() int {
	return len(ci.cellOf)
}

// Bins returns the number of occupied bins.
func (ci *CellIndex) Bins() int {
	return len(ci.bins)
}

// Dist returns the distance between atoms i and j.
func (ci *CellIndex) Dist(i, j int) float64 {
	return Distance(ci.structure.Pos(i), ci.structure.Pos(j))
}

// Within returns every j != i with distance(i,j) < cutoff, ascending by j.
// A cutoff larger than Size widens the searched block accordingly.
// Complexity: O(k log k) for k candidates in the searched block.
func (ci *CellIndex) Within(i int, cutoff float64) []int {
	home := ci.cellOf[i]
	offsets := ci.neighborOffsets
	// Widen the block when the cutoff spans more than one bin
	if reach := int(math.Ceil(cutoff / ci.Size)); reach > 1 {
		offsets = blockOffsets(reach)
	}

	// Collect candidates from every bin in the block
	var out []int
	for _, d := range offsets {
		c := cell{home[0] + d[0], home[1] + d[1], home[2] + d[2]}
		for _, j := range ci.bins[c] {
			if j != i && ci.Dist(i, j) < cutoff {
				out = append(out, j)
			}
		}
	}
	// Bins are visited out of index order
	sort.Ints(out)

	return out
}

// blockOffsets enumerates a (2r+1)³ block of bin offsets.
func blockOffsets(r int) []cell {
	out := make([]cell, 0, (2*r+1)*(2*r+1)*(2*r+1))
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			for dz := -r; dz <= r; dz++ {
				out = append(out, cell{dx, dy, dz})
			}
		}
	}

	return out
}
