// SPDX-License-Identifier: MIT

package walk

import (
	"strconv"
	"strings"
)

// Walk is an ordered sequence of atom indices; consecutive atoms are bonded.
type Walk []int

// Size returns the number of atoms in the walk.
func (w Walk) Size() int { return len(w) }

// First returns the starting atom.
func (w Walk) First() int { return w[0] }

// Last returns the final atom.
func (w Walk) Last() int { return w[len(w)-1] }

// Closed reports whether the walk returns to its start.
func (w Walk) Closed() bool { return len(w) > 1 && w[0] == w[len(w)-1] }

// String renders the walk as "a-b-c".
func (w Walk) String() string {
	parts := make([]string, len(w))
	for i, a := range w {
		parts[i] = strconv.Itoa(a)
	}

	return strings.Join(parts, "-")
}

// join builds a new walk from an optional head atom, a body and an optional tail atom.
// head/tail < 0 mean "absent".
func join(head int, body Walk, tail int) Walk {
	out := make(Walk, 0, len(body)+1)
	if head >= 0 {
		out = append(out, head)
	}
	out = append(out, body...)
	if tail >= 0 {
		out = append(out, tail)
	}

	return out
}

// reversed returns a reversed copy of w.
func reversed(w Walk) Walk {
	out := make(Walk, len(w))
	for i, a := range w {
		out[len(w)-1-i] = a
	}

	return out
}
