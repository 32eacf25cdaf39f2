// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	methodStar = "Star"
	minArms    = 1
	maxArms    = 6
)

// starAxes are the arm directions in emission order. Any two arms are at
// least bond*sqrt(2) apart.
var starAxes = [maxArms]r3.Vec{
	{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
}

// Star returns a Constructor for a centre atom (index 0 of the piece) with
// arms leaves at bond length along +X, -X, +Y, -Y, +Z, -Z in that order.
func Star(arms int) Constructor {
	return func(cfg config) ([]r3.Vec, error) {
		if arms < minArms || arms > maxArms {
			return nil, fmt.Errorf("%s: arms=%d outside [%d, %d]: %w", methodStar, arms, minArms, maxArms, ErrBadSize)
		}
		ps := make([]r3.Vec, 0, arms+1)
		ps = append(ps, r3.Vec{})
		for _, axis := range starAxes[:arms] {
			ps = append(ps, r3.Scale(cfg.bond, axis))
		}

		return ps, nil
	}
}
