// SPDX-License-Identifier: MIT

// Package lattice builds deterministic atom geometries for tests, examples
// and benchmarks: regular polygons, coordination stars and honeycomb
// (graphene-like) patches.
//
// A fixture is assembled by Build from one or more Constructors. Each
// constructor emits positions in its own local frame; Build concatenates
// them in call order, shifts them by the configured origin and, when a
// seeded RNG and a jitter amplitude are both set, perturbs every coordinate
// by a uniform offset in [-jitter, +jitter).
//
// Option constructors panic on meaningless input (a non-positive bond
// length, a negative jitter). Constructors never panic; they return the
// sentinel errors declared in errors.go wrapped with the constructor name.
//
//	s, err := lattice.Build([]lattice.Option{lattice.WithBondLength(1.4)},
//		lattice.Polygon(6))
//
// Same constructors, same options and same seed always produce the same
// Structure.
package lattice
