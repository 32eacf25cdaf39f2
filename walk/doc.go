// SPDX-License-Identifier: MIT

// Package walk enumerates fixed-length walks over a bond graph.
//
// A Walk of size k is an ordered run of k atoms (k−1 bonds). Size 2 walks are
// the bonds themselves; a size k+1 walk is made by joining two size k walks
// that overlap on k−1 consecutive atoms, one step at a time:
//
//	bonds ─▶ W2 ─Extend─▶ W3 ─Extend─▶ W4 ─Extend─▶ W5
//
// Walks are not filtered for revisits: a size 4 walk may start and end on the
// same atom. The ring package relies on exactly that to find triangles.
//
// Pairs (i < j) are tested with a fixed, first-match-wins case order, so
// every path is emitted once and always in the same orientation. Candidates
// for j come from an endpoint index instead of a full scan, visited in
// ascending order, so the output order equals the quadratic scan's.
//
// Complexity (b = bonds, w_k = walks of size k, d ≤ 4):
//
//   - FromBonds: O(b).
//   - Extend:    O(w_k · c · log c), c = candidates per walk (bounded by d^k).
package walk
