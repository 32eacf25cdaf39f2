// SPDX-License-Identifier: MIT
// Package: atommesh/walk
//
// list.go - walks of one size with an endpoint index.
//
// Contract:
//   • Walks keep insertion order; indices are stable.
//   • ends[v] is ascending because walks are only appended.

package walk

import "sort"

// List is an ordered collection of walks of one size with an endpoint index.
// It is immutable once returned by FromBonds or Extend.
type List struct {
	size  int
	walks []Walk
	ends  map[int][]int // atom → ascending indices of walks starting or ending there
}

func newList(size int) *List {
	return &List{size: size, ends: make(map[int][]int)}
}

// add appends w and indexes both endpoints (once when the walk is closed).
func (l *List) add(w Walk) {
	idx := len(l.walks)
	l.walks = append(l.walks, w)
	// Index both endpoints
	l.ends[w.First()] = append(l.ends[w.First()], idx)
	if w.Last() != w.First() {
		l.ends[w.Last()] = append(l.ends[w.Last()], idx)
	}
}

// Size returns the atom count shared by every walk in the list.
func (l *List) Size() int {
	return l.size
}

// Len returns the number of walks.
func (l *List) Len() int {
	if l == nil {
		return 0
	}

	return len(l.walks)
}

// At returns walk i. The returned slice must not be modified.
func (l *List) At(i int) Walk {
	return l.walks[i]
}

// Walks returns copies of all walks in emission order.
func (l *List) Walks() []Walk {
	out := make([]Walk, len(l.walks))
	for i, w := range l.walks {
		out[i] = append(Walk(nil), w...)
	}

	return out
}

// Touching returns the ascending indices of walks that start or end at atom v.
func (l *List) Touching(v int) []int {
	return l.ends[v]
}

// touchingAny merges Touching over several atoms into one ascending, duplicate-free slice.
func (l *List) touchingAny(vs ...int) []int {
	if len(vs) == 1 {
		return l.ends[vs[0]]
	}
	// Merge the per-atom lists
	var out []int
	for _, v := range vs {
		out = append(out, l.ends[v]...)
	}
	sort.Ints(out)

	// Drop walks touching more than one of vs
	uniq := out[:0]
	for i, x := range out {
		if i == 0 || x != out[i-1] {
			uniq = append(uniq, x)
		}
	}

	return uniq
}
