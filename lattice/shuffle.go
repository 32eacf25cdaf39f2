// SPDX-License-Identifier: MIT

package lattice

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/atommesh/atom"
)

// Shuffle returns a copy of s with atoms reordered by a seeded permutation,
// together with perm where new atom i is old atom perm[i]. Labels travel
// with their positions.
func Shuffle(s *atom.Structure, seed int64) (*atom.Structure, []int) {
	n := s.Len()
	perm := rand.New(rand.NewSource(seed)).Perm(n)

	labels := make([]string, n)
	positions := make([]r3.Vec, n)
	atoms := s.Atoms()
	for i, old := range perm {
		labels[i] = atoms[old].Label
		positions[i] = atoms[old].Pos
	}
	out, _ := atom.NewLabeled(labels, positions) // lengths match by construction

	return out, perm
}
