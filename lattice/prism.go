// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	methodPrism = "Prism"
	methodFused = "Fused"
)

// Prism returns a Constructor for a right n-gonal prism with every edge equal
// to the bond length. Atoms 0..n-1 form the base at z=0 in Polygon order;
// atom n+i sits directly above atom i.
func Prism(n int) Constructor {
	return func(cfg config) ([]r3.Vec, error) {
		if n < minPolygon {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPrism, n, minPolygon, ErrTooFewAtoms)
		}
		base, err := Polygon(n)(cfg)
		if err != nil {
			return nil, err
		}
		ps := make([]r3.Vec, 0, 2*n)
		ps = append(ps, base...)
		for _, p := range base {
			ps = append(ps, r3.Vec{X: p.X, Y: p.Y, Z: cfg.bond})
		}

		return ps, nil
	}
}

// Fused returns a Constructor for a planar a-gon and b-gon sharing one edge.
// Atoms 0 and 1 are the shared edge, 2..a-1 complete the a-gon (below the
// edge) and the next b-2 atoms complete the b-gon (above it). Each ring is
// listed in bond order.
func Fused(a, b int) Constructor {
	return func(cfg config) ([]r3.Vec, error) {
		if a < minPolygon || b < minPolygon {
			return nil, fmt.Errorf("%s: a=%d b=%d, min=%d: %w", methodFused, a, b, minPolygon, ErrTooFewAtoms)
		}
		p0, p1 := r3.Vec{}, r3.Vec{X: cfg.bond}

		// a-gon walks 1→0 so it turns into y<0; b-gon walks 0→1 into y>0.
		lower := trace(p1, p0, a, cfg.bond)
		upper := trace(p0, p1, b, cfg.bond)

		ps := make([]r3.Vec, 0, a+b-2)
		ps = append(ps, p0, p1)
		ps = append(ps, lower...)
		ps = append(ps, upper...)

		return ps, nil
	}
}

// trace walks a regular n-gon counter-clockwise from the edge from→to and
// returns the n-2 vertices after to.
func trace(from, to r3.Vec, n int, side float64) []r3.Vec {
	heading := math.Atan2(to.Y-from.Y, to.X-from.X)
	turn := 2 * math.Pi / float64(n)
	out := make([]r3.Vec, 0, n-2)
	cur := to
	for i := 0; i < n-2; i++ {
		heading += turn
		cur = r3.Vec{X: cur.X + side*math.Cos(heading), Y: cur.Y + side*math.Sin(heading)}
		out = append(out, cur)
	}

	return out
}
