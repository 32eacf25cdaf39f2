// SPDX-License-Identifier: MIT
// Package: atommesh/bond
//
// build.go - distance thresholding into a bond graph.
//
// Contract:
//   • A pair is bonded iff min < d < max; d ≤ min is an overlap error.
//   • At most MaxCoordination bonds per atom; the next one is an overflow error.
//   • The first failure in (i ascending, j ascending) order is reported.

package bond

import (
	"fmt"

	"github.com/katalvlaran/atommesh/atom"
)

// Build thresholds the pairwise distances of s into a bond graph.
//
// Implementation:
//   - Stage 1: pick the distance source (dense table or cell index).
//   - Stage 2: for each atom i, walk its candidates j < max in ascending order,
//     failing on the first overlap or overflow.
//   - Stage 3: flatten neighbour lists into the bond list (j > i only).
//
// Returns *OverlapError or *OverflowError on invalid geometry; an empty
// structure yields an empty graph.
//
// Complexity: O(n²) dense, O(n) with the cell index (bounded density).
func Build(s *atom.Structure, opts ...Option) (*Graph, error) {
	// Resolve options and allocate neighbour lists
	cfg := newConfig(opts...)
	n := s.Len()
	g := &Graph{
		min:       cfg.min,
		max:       cfg.max,
		neighbors: make([][]int, n),
	}
	// Nothing to bond
	if n == 0 {
		return g, nil
	}

	// Stage 1: distance source
	src, err := cfg.finder(s)
	if err != nil {
		return nil, fmt.Errorf("bond: Build: %w", err)
	}

	// Stage 2: threshold candidates of each atom
	for i := 0; i < n; i++ {
		for _, j := range src.Within(i, cfg.max) {
			d := src.Dist(i, j)
			// Too close to be a bond
			if d <= cfg.min {
				return nil, &OverlapError{I: i, J: j, Distance: d, Min: cfg.min}
			}
			// A fifth bond on i
			if len(g.neighbors[i]) == MaxCoordination {
				return nil, &OverflowError{Atom: i}
			}
			g.neighbors[i] = append(g.neighbors[i], j)
		}
	}

	// Stage 3: flatten, each bond once as i < j
	for i, nbrs := range g.neighbors {
		for _, j := range nbrs {
			if j > i {
				g.bonds = append(g.bonds, Bond{I: i, J: j})
			}
		}
	}

	return g, nil
}
