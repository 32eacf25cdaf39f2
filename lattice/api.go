// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/atommesh/atom"
)

// Constructor emits positions for one fixture piece in its local frame.
type Constructor func(cfg config) ([]r3.Vec, error)

// Build resolves opts, runs cons in order and returns the combined Structure.
// Constructor errors are wrapped with "Build: %w" and returned immediately.
func Build(opts []Option, cons ...Constructor) (*atom.Structure, error) {
	cfg := newConfig(opts...)

	var positions []r3.Vec
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		ps, err := fn(cfg)
		if err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		positions = append(positions, ps...)
	}

	labels := make([]string, len(positions))
	for i, p := range positions {
		p = r3.Add(p, cfg.origin)
		if cfg.rng != nil && cfg.jitter > 0 {
			p = r3.Add(p, r3.Vec{X: cfg.shake(), Y: cfg.shake(), Z: cfg.shake()})
		}
		positions[i] = p
		labels[i] = cfg.label
	}

	return atom.NewLabeled(labels, positions)
}

// shake draws one uniform offset in [-jitter, +jitter).
func (c config) shake() float64 {
	return (2*c.rng.Float64() - 1) * c.jitter
}

// MustBuild is Build for package-level fixtures; it panics on error.
func MustBuild(opts []Option, cons ...Constructor) *atom.Structure {
	s, err := Build(opts, cons...)
	if err != nil {
		panic(err)
	}

	return s
}
