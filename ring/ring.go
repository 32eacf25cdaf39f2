// SPDX-License-Identifier: MIT

package ring

import (
	"slices"
	"strconv"
	"strings"
)

// Ring size bounds.
const (
	MinSize = 3
	MaxSize = 7
)

// Ring is a cyclic sequence of distinct atoms; consecutive atoms, including
// last→first, are bonded.
type Ring []int

// Size returns the number of atoms in the ring.
func (r Ring) Size() int { return len(r) }

// Key returns the canonical vertex-set signature: ascending atoms joined by commas.
func (r Ring) Key() string {
	sorted := slices.Clone([]int(r))
	slices.Sort(sorted)

	return joinSig(sorted)
}

// Contains reports whether atom a is on the ring.
func (r Ring) Contains(a int) bool {
	return slices.Contains(r, a)
}

// String renders the ring in its stored order, e.g. "0-1-2-3".
func (r Ring) String() string {
	parts := make([]string, len(r))
	for i, a := range r {
		parts[i] = strconv.Itoa(a)
	}

	return strings.Join(parts, "-")
}

// joinSig concatenates atom indices with commas.
func joinSig(c []int) string {
	var sb strings.Builder
	for i, a := range c {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(a))
	}

	return sb.String()
}

// distinct reports whether all atoms of vs are pairwise different.
func distinct(vs ...int) bool {
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			if vs[i] == vs[j] {
				return false
			}
		}
	}

	return true
}
