// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultBondLength is the nearest-neighbour distance used when no
// WithBondLength option is given. It sits inside the default bond window.
const DefaultBondLength = 1.4

// Option customizes a fixture before construction.
type Option func(*config)

type config struct {
	bond   float64
	origin r3.Vec
	rng    *rand.Rand
	jitter float64
	label  string
}

func newConfig(opts ...Option) config {
	cfg := config{bond: DefaultBondLength, label: "C"}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithBondLength sets the nearest-neighbour distance. Panics if l <= 0.
func WithBondLength(l float64) Option {
	if !(l > 0) {
		panic(fmt.Sprintf("lattice: WithBondLength(%g): need l > 0", l))
	}
	return func(c *config) { c.bond = l }
}

// WithOrigin shifts every emitted position by o.
func WithOrigin(o r3.Vec) Option {
	return func(c *config) { c.origin = o }
}

// WithSeed attaches a seeded RNG. Only jitter consumes it.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand attaches an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("lattice: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithJitter sets the per-coordinate perturbation amplitude. It has no
// effect without WithSeed or WithRand. Panics if amp < 0.
func WithJitter(amp float64) Option {
	if amp < 0 {
		panic(fmt.Sprintf("lattice: WithJitter(%g): need amp >= 0", amp))
	}
	return func(c *config) { c.jitter = amp }
}

// WithLabel sets the label given to every emitted atom (default "C").
func WithLabel(label string) Option {
	return func(c *config) { c.label = label }
}
