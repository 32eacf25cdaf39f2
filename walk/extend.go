// SPDX-License-Identifier: MIT
// Package: atommesh/walk
//
// extend.go - growing walks one atom at a time.
//
// Contract:
//   • Size k+1 walks come only from pairs of size k walks, i < j.
//   • Join cases are tried in a fixed order; the first match wins.
//   • Emission order depends only on the bond list order.

package walk

import (
	"github.com/katalvlaran/atommesh/bond"
)

// Size bounds for enumerated walks.
const (
	MinSize = 2
	MaxSize = 5
)

// FromBonds returns the size 2 walks: one per bond, oriented I→J.
func FromBonds(bonds []bond.Bond) *List {
	l := newList(MinSize)
	// One walk per bond, in bond order
	for _, b := range bonds {
		l.add(Walk{b.I, b.J})
	}

	return l
}

// Extend returns every size k+1 walk formed by joining two size k walks of prev.
//
// Implementation:
//   - Stage 1: for walk a (index i), gather candidate walks sharing an endpoint
//     with a's overlap window, ascending.
//   - Stage 2: for each candidate j > i, try the join cases in fixed order; the
//     first match is emitted.
//
// Complexity: O(w · c log c) for w walks and c candidates each.
func Extend(prev *List) *List {
	next := newList(prev.size + 1)
	for i, a := range prev.walks {
		// Stage 1: candidates sharing a window atom
		for _, j := range prev.touchingAny(window(a)...) {
			// Each unordered pair once
			if j <= i {
				continue
			}
			// Stage 2: first matching join case
			if w, ok := joinPair(a, prev.walks[j]); ok {
				next.add(w)
			}
		}
	}

	return next
}

// window lists the atoms of a that a partner walk must start or end on.
func window(a Walk) []int {
	k := len(a)
	// A bond joins on either atom
	if k == MinSize {
		return []int{a[0], a[1]}
	}
	// Size 3: a[1] and a[k-2] are the same centre atom
	if k == MinSize+1 {
		return []int{a[1]}
	}

	return []int{a[1], a[k-2]}
}

// joinPair tries the join cases in their fixed order.
func joinPair(a, b Walk) (Walk, bool) {
	if len(a) == MinSize {
		return joinBonds(a, b)
	}
	k := len(a)
	switch {
	case overlaps(a[1:], b[:k-1]): // b continues a's tail
		return join(-1, a, b[k-1]), true
	case overlaps(a[:k-1], b[1:]): // b leads into a's head
		return join(b[0], a, -1), true
	case overlaps(a[1:], reversed(b)[:k-1]): // reversed b continues a's tail
		return join(-1, a, b[0]), true
	case overlaps(a[:k-1], reversed(b)[1:]): // reversed b leads into a's head
		return join(b[k-1], a, -1), true
	}

	return nil, false
}

// joinBonds joins two bonds sharing one atom into a 3-walk centred on it.
func joinBonds(a, b Walk) (Walk, bool) {
	switch {
	case a[0] == b[0]:
		return Walk{a[1], a[0], b[1]}, true
	case a[1] == b[0]:
		return Walk{a[0], a[1], b[1]}, true
	case a[1] == b[1]:
		return Walk{a[0], a[1], b[0]}, true
	case a[0] == b[1]:
		return Walk{a[1], a[0], b[0]}, true
	}

	return nil, false
}

func overlaps(x, y []int) bool {
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}

	return true
}
