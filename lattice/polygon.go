// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	methodPolygon = "Polygon"
	minPolygon    = 3
)

// Polygon returns a Constructor for a regular n-gon in the XY plane with
// side length equal to the bond length. Vertex 0 lies on +X and the rest
// follow counter-clockwise, so consecutive indices are bonded.
func Polygon(n int) Constructor {
	return func(cfg config) ([]r3.Vec, error) {
		if n < minPolygon {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPolygon, n, minPolygon, ErrTooFewAtoms)
		}
		// circumradius of a regular n-gon with side b
		radius := cfg.bond / (2 * math.Sin(math.Pi/float64(n)))
		ps := make([]r3.Vec, n)
		for i := range ps {
			theta := 2 * math.Pi * float64(i) / float64(n)
			ps[i] = r3.Vec{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)}
		}

		return ps, nil
	}
}
