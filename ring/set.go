// SPDX-License-Identifier: MIT
// Package: atommesh/ring
//
// set.go - per-size ring store keyed by vertex set.
//
// Contract:
//   • Insertion order is kept (gods linkedhashmap).
//   • Two rings with the same atoms are one ring, whatever their order.

package ring

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Set holds accepted rings of one size, in first-seen order, keyed by vertex set.
type Set struct {
	size int
	m    *linkedhashmap.Map // Key() → Ring
}

// NewSet returns an empty set for rings of the given size.
func NewSet(size int) *Set {
	return &Set{size: size, m: linkedhashmap.New()}
}

// Size returns the ring size this set holds.
func (s *Set) Size() int {
	return s.size
}

// Add appends r unless a ring with the same vertex set is already present.
// Reports whether r was added. Rings of the wrong size are refused.
func (s *Set) Add(r Ring) bool {
	// Wrong size
	if len(r) != s.size {
		return false
	}
	// Already seen under another orientation or start
	key := r.Key()
	if _, found := s.m.Get(key); found {
		return false
	}
	// Store a private copy
	s.m.Put(key, append(Ring(nil), r...))

	return true
}

// Has reports whether a ring with r's vertex set is present.
func (s *Set) Has(r Ring) bool {
	_, found := s.m.Get(r.Key())

	return found
}

// Len returns the number of accepted rings.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return s.m.Size()
}

// Rings returns the accepted rings in insertion order.
func (s *Set) Rings() []Ring {
	if s == nil {
		return nil
	}
	values := s.m.Values()
	out := make([]Ring, len(values))
	for i, v := range values {
		out[i] = append(Ring(nil), v.(Ring)...)
	}

	return out
}

// Keys returns the canonical keys in insertion order.
func (s *Set) Keys() []string {
	keys := s.m.Keys()
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.(string)
	}

	return out
}

// accept adds candidate if its atoms are distinct.
func (s *Set) accept(candidate Ring) {
	if distinct(candidate...) {
		s.Add(candidate)
	}
}
