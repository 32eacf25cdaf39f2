// SPDX-License-Identifier: MIT

// Package triangulate turns rings into mesh triangles with a fixed fan.
//
// A ring v0..v(r−1) becomes (v0,v1,v2), (v0,v2,v3), …, (v0,v(r−2),v(r−1)):
// r−2 triangles sharing v0. 3-rings pass through as a single triangle. The
// fan assumes near-planar, locally convex rings, which is what bonded sp2
// networks produce; no general polygon triangulation is attempted.
//
// Output order is all 3-rings, then the fans of 4-, 5- and 6-rings, each in
// ring order. 7-rings are detected upstream but skipped here unless
// WithHeptagons is given.
package triangulate
