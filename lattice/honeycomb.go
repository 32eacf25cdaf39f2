// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	methodHoneycomb = "Honeycomb"
	minCells        = 1

	// snap is the coordinate quantum used to merge vertices shared by
	// neighbouring cells.
	snap = 1e-6
)

// Honeycomb returns a Constructor for a rows x cols patch of flat-topped
// hexagonal cells with side equal to the bond length. Odd columns are
// shifted up by half a cell, so adjacent cells share exactly one edge.
// Shared vertices are emitted once, in first-seen order (cell by cell,
// column-major, corners counter-clockwise from +X).
//
// Honeycomb(1, 2) is the naphthalene skeleton (10 atoms, 11 bonds).
func Honeycomb(rows, cols int) Constructor {
	return func(cfg config) ([]r3.Vec, error) {
		if rows < minCells || cols < minCells {
			return nil, fmt.Errorf("%s: rows=%d cols=%d, need >= %d: %w", methodHoneycomb, rows, cols, minCells, ErrBadSize)
		}
		b := cfg.bond
		h := math.Sqrt(3) * b // vertical distance between cell centres

		type key [2]int64
		seen := make(map[key]struct{}, 2*(rows+1)*(cols+1))
		var ps []r3.Vec
		for c := 0; c < cols; c++ {
			for r := 0; r < rows; r++ {
				cx := 1.5 * b * float64(c)
				cy := h * float64(r)
				if c%2 == 1 {
					cy += h / 2
				}
				for k := 0; k < 6; k++ {
					theta := math.Pi / 3 * float64(k)
					p := r3.Vec{X: cx + b*math.Cos(theta), Y: cy + b*math.Sin(theta)}
					id := key{int64(math.Round(p.X / snap)), int64(math.Round(p.Y / snap))}
					if _, dup := seen[id]; dup {
						continue
					}
					seen[id] = struct{}{}
					ps = append(ps, p)
				}
			}
		}

		return ps, nil
	}
}

// Naphthalene is Honeycomb(1, 2).
func Naphthalene() Constructor { return Honeycomb(1, 2) }
