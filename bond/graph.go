// SPDX-License-Identifier: MIT

package bond

import "fmt"

// MaxCoordination is the most bonds any atom may carry.
const MaxCoordination = 4

// Bond is an unordered atom pair stored with I < J.
type Bond struct {
	I, J int
}

// String renders the bond as "I-J".
func (b Bond) String() string {
	return fmt.Sprintf("%d-%d", b.I, b.J)
}

// Graph is the immutable bond graph of one structure.
type Graph struct {
	min, max  float64
	neighbors [][]int // per atom, discovery order, len ≤ MaxCoordination
	bonds     []Bond  // each bond once, lower index first
}

// Len returns the number of atoms (vertices), bonded or not.
func (g *Graph) Len() int {
	return len(g.neighbors)
}

// Bounds returns the bond length window the graph was built with.
func (g *Graph) Bounds() (min, max float64) {
	return g.min, g.max
}

// Neighbors returns a copy of atom i's neighbour list in discovery order.
// An out-of-range i yields nil.
func (g *Graph) Neighbors(i int) []int {
	if i < 0 || i >= len(g.neighbors) {
		return nil
	}

	return append([]int(nil), g.neighbors[i]...)
}

// Degree returns the number of bonds of atom i (0 when out of range).
func (g *Graph) Degree(i int) int {
	if i < 0 || i >= len(g.neighbors) {
		return 0
	}

	return len(g.neighbors[i])
}

// Bonded reports whether atoms i and j share a bond.
func (g *Graph) Bonded(i, j int) bool {
	if i < 0 || i >= len(g.neighbors) {
		return false
	}
	for _, k := range g.neighbors[i] {
		if k == j {
			return true
		}
	}

	return false
}

// Bonds returns a copy of the flattened bond list.
func (g *Graph) Bonds() []Bond {
	return append([]Bond(nil), g.bonds...)
}

// NumBonds returns len(Bonds()) without copying.
func (g *Graph) NumBonds() int {
	return len(g.bonds)
}
