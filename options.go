// SPDX-License-Identifier: MIT

package atommesh

import (
	"fmt"

	"github.com/katalvlaran/atommesh/bond"
	"github.com/katalvlaran/atommesh/mesh"
	"github.com/katalvlaran/atommesh/triangulate"
)

// Option customizes Run.
type Option func(*options)

type options struct {
	bond  []bond.Option
	tri   []triangulate.Option
	scale float64
}

func newOptions(opts ...Option) options {
	o := options{scale: mesh.DefaultScale}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithBondBounds sets the open bond-length window (min, max).
// Panics unless 0 < min < max.
func WithBondBounds(min, max float64) Option {
	b := bond.WithBounds(min, max)
	return func(o *options) { o.bond = append(o.bond, b) }
}

// WithScale sets the vertex scale factor of the mesh. Panics if f <= 0.
func WithScale(f float64) Option {
	if !(f > 0) {
		panic(fmt.Sprintf("atommesh: WithScale(%g): need f > 0", f))
	}
	return func(o *options) { o.scale = f }
}

// WithHeptagons makes 7-rings part of the mesh. They are detected either way.
func WithHeptagons() Option {
	return func(o *options) { o.tri = append(o.tri, triangulate.WithHeptagons()) }
}

// WithCellIndex forces the cell-index neighbour search.
func WithCellIndex() Option {
	return func(o *options) { o.bond = append(o.bond, bond.WithCellIndex()) }
}

// WithDenseTable forces the dense pairwise distance table.
func WithDenseTable() Option {
	return func(o *options) { o.bond = append(o.bond, bond.WithDenseTable()) }
}
