// SPDX-License-Identifier: MIT

package bond

import (
	"fmt"

	"github.com/katalvlaran/atommesh/atom"
	"github.com/katalvlaran/atommesh/distance"
)

// Defaults for the bond length window (Å).
const (
	DefaultMinLength = 1.0
	DefaultMaxLength = 1.7

	// DenseLimit is the largest structure that uses the dense table by default.
	DenseLimit = 512
)

type strategy int

const (
	strategyAuto strategy = iota
	strategyDense
	strategyCells
)

// Option customizes Build.
type Option func(*config)

type config struct {
	min, max float64
	strategy strategy
}

func newConfig(opts ...Option) config {
	cfg := config{min: DefaultMinLength, max: DefaultMaxLength}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithBounds sets the bond length window. Panics unless 0 < min < max.
func WithBounds(min, max float64) Option {
	if !(min > 0) || !(min < max) {
		panic(fmt.Sprintf("bond: WithBounds(%g, %g): need 0 < min < max", min, max))
	}
	return func(c *config) {
		c.min, c.max = min, max
	}
}

// WithDenseTable forces the O(n²) distance table.
func WithDenseTable() Option {
	return func(c *config) { c.strategy = strategyDense }
}

// WithCellIndex forces spatial binning.
func WithCellIndex() Option {
	return func(c *config) { c.strategy = strategyCells }
}

// finder is what Build needs from a distance source.
type finder interface {
	Within(i int, cutoff float64) []int
	Dist(i, j int) float64
}

func (c config) finder(s *atom.Structure) (finder, error) {
	useCells := c.strategy == strategyCells || (c.strategy == strategyAuto && s.Len() > DenseLimit)
	if useCells {
		return distance.NewCellIndex(s, c.max)
	}

	return distance.NewTable(s)
}
