// SPDX-License-Identifier: MIT
// Package: atommesh/ring
//
// extract.go - ring closure over enumerated walks.
//
// Contract:
//   • 3-ring: closed size 4 walk.  4-ring: two size 3 walks.
//   • 5-ring: size 4 + size 3 walk. 6-ring: two size 4 walks.
//   • 7-ring: size 5 + size 4 walk.
//   • Every candidate must have distinct atoms; the first ring per vertex
//     set is kept.

package ring

import (
	"github.com/katalvlaran/atommesh/walk"
)

// Rings groups the deduplicated ring sets of sizes 3..7.
type Rings struct {
	bySize [MaxSize + 1]*Set
}

// Of returns the set for size (3..7); nil for other sizes.
func (rs *Rings) Of(size int) *Set {
	if size < MinSize || size > MaxSize {
		return nil
	}

	return rs.bySize[size]
}

// Counts returns the number of rings per size.
func (rs *Rings) Counts() map[int]int {
	out := make(map[int]int, MaxSize-MinSize+1)
	for size := MinSize; size <= MaxSize; size++ {
		out[size] = rs.bySize[size].Len()
	}

	return out
}

// Extract runs every closure finder over ws, smallest ring size first.
func Extract(ws *walk.Walks) *Rings {
	rs := &Rings{}
	rs.bySize[3] = Triangles(ws.W4)
	rs.bySize[4] = Squares(ws.W3)
	rs.bySize[5] = Pentagons(ws.W4, ws.W3)
	rs.bySize[6] = Hexagons(ws.W4)
	rs.bySize[7] = Heptagons(ws.W5, ws.W4)

	return rs
}

// Triangles returns the 3-rings: size 4 walks that come back to their start.
func Triangles(w4 *walk.List) *Set {
	s := NewSet(3)
	for i := 0; i < w4.Len(); i++ {
		a := w4.At(i)
		// a-b-c-a: drop the repeated start
		if a.Closed() {
			s.accept(Ring{a[0], a[1], a[2]})
		}
	}

	return s
}

// Squares returns the 4-rings: pairs of size 3 walks with shared endpoints.
func Squares(w3 *walk.List) *Set {
	s := NewSet(4)
	for i := 0; i < w3.Len(); i++ {
		a := w3.At(i)
		// Partners share a's first atom as an endpoint
		for _, j := range w3.Touching(a.First()) {
			if j <= i {
				continue
			}
			b := w3.At(j)
			// Same endpoints in either orientation, different middles
			sameEnds := (a[0] == b[0] && a[2] == b[2]) || (a[0] == b[2] && a[2] == b[0])
			if sameEnds && a[1] != b[1] {
				s.accept(Ring{a[0], a[1], a[2], b[1]})
			}
		}
	}

	return s
}

// Pentagons returns the 5-rings: a size 4 walk closed by a size 3 walk.
func Pentagons(w4, w3 *walk.List) *Set {
	s := NewSet(5)
	for i := 0; i < w4.Len(); i++ {
		a := w4.At(i)
		for _, j := range w3.Touching(a.First()) {
			b := w3.At(j)
			// b bridges a's two ends through one new atom
			sameEnds := (a[0] == b[0] && a[3] == b[2]) || (a[3] == b[0] && a[0] == b[2])
			if sameEnds && distinct(a[1], a[2], b[1]) {
				s.accept(Ring{a[0], a[1], a[2], a[3], b[1]})
			}
		}
	}

	return s
}

// Hexagons returns the 6-rings: pairs of size 4 walks with shared endpoints.
func Hexagons(w4 *walk.List) *Set {
	s := NewSet(6)
	for i := 0; i < w4.Len(); i++ {
		a := w4.At(i)
		for _, j := range w4.Touching(a.First()) {
			if j <= i {
				continue
			}
			b := w4.At(j)
			switch {
			// Parallel: come back along b reversed
			case a[0] == b[0] && a[3] == b[3]:
				if distinct(a[1], a[2], b[1], b[2]) {
					s.accept(Ring{a[0], a[1], a[2], a[3], b[2], b[1]})
				}
			// Antiparallel: b continues from a's end
			case a[0] == b[3] && a[3] == b[0]:
				if distinct(a[1], a[2], b[1], b[2]) {
					s.accept(Ring{a[0], a[1], a[2], a[3], b[1], b[2]})
				}
			}
		}
	}

	return s
}

// Heptagons returns the 7-rings: a size 5 walk closed by a size 4 walk.
func Heptagons(w5, w4 *walk.List) *Set {
	s := NewSet(7)
	for i := 0; i < w5.Len(); i++ {
		a := w5.At(i)
		for _, j := range w4.Touching(a.First()) {
			b := w4.At(j)
			switch {
			case a[0] == b[0] && a[4] == b[3]:
				if distinct(a[1], a[2], a[3], b[1], b[2]) {
					s.accept(Ring{a[0], a[1], a[2], a[3], a[4], b[2], b[1]})
				}
			case a[0] == b[3] && a[4] == b[0]:
				if distinct(a[1], a[2], a[3], b[1], b[2]) {
					s.accept(Ring{a[0], a[1], a[2], a[3], a[4], b[1], b[2]})
				}
			}
		}
	}

	return s
}
