// SPDX-License-Identifier: MIT

package bond_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/atommesh/atom"
	"github.com/katalvlaran/atommesh/bond"
	"github.com/katalvlaran/atommesh/lattice"
)

func TestBuild_Hexagon(t *testing.T) {
	s := lattice.MustBuild(nil, lattice.Polygon(6))
	g, err := bond.Build(s)
	require.NoError(t, err)

	require.Equal(t, 6, g.Len())
	assert.Equal(t, []bond.Bond{{0, 1}, {0, 5}, {1, 2}, {2, 3}, {3, 4}, {4, 5}}, g.Bonds())
	for i := 0; i < 6; i++ {
		assert.Equal(t, 2, g.Degree(i))
	}
	assert.Equal(t, []int{1, 5}, g.Neighbors(0))
	assert.True(t, g.Bonded(5, 0))
	assert.False(t, g.Bonded(0, 3))
}

func TestBuild_Triangle(t *testing.T) {
	s := lattice.MustBuild([]lattice.Option{lattice.WithBondLength(1.5)}, lattice.Polygon(3))
	g, err := bond.Build(s)
	require.NoError(t, err)
	assert.Equal(t, 3, g.NumBonds())
}

func TestBuild_OpenWindow(t *testing.T) {
	// exactly max apart: no bond, no error
	g, err := bond.Build(atom.New([]r3.Vec{{}, {X: 1.7}}))
	require.NoError(t, err)
	assert.Zero(t, g.NumBonds())

	// exactly min apart: overlap
	_, err = bond.Build(atom.New([]r3.Vec{{}, {X: 1.0}}))
	require.ErrorIs(t, err, bond.ErrOverlap)
}

func TestBuild_Overlap(t *testing.T) {
	_, err := bond.Build(atom.New([]r3.Vec{{}, {X: 0.5}}))
	require.ErrorIs(t, err, bond.ErrOverlap)

	var oe *bond.OverlapError
	require.True(t, errors.As(err, &oe))
	assert.Equal(t, 0, oe.I)
	assert.Equal(t, 1, oe.J)
	assert.InDelta(t, 0.5, oe.Distance, 1e-12)
	assert.Contains(t, err.Error(), "atoms 0 and 1")
}

func TestBuild_Overflow(t *testing.T) {
	_, err := bond.Build(lattice.MustBuild(nil, lattice.Star(5)))
	require.ErrorIs(t, err, bond.ErrOverflow)

	var oe *bond.OverflowError
	require.True(t, errors.As(err, &oe))
	assert.Equal(t, 0, oe.Atom)
	assert.Contains(t, err.Error(), "atom 0 has more than 4 bonds")
}

func TestBuild_FourBondsAllowed(t *testing.T) {
	g, err := bond.Build(lattice.MustBuild(nil, lattice.Star(4)))
	require.NoError(t, err)
	assert.Equal(t, 4, g.Degree(0))
	assert.Equal(t, 4, g.NumBonds())
}

func TestBuild_CustomBounds(t *testing.T) {
	s := atom.New([]r3.Vec{{}, {X: 2}, {X: 4}})

	g, err := bond.Build(s)
	require.NoError(t, err)
	assert.Zero(t, g.NumBonds())

	g, err = bond.Build(s, bond.WithBounds(1.5, 2.5))
	require.NoError(t, err)
	assert.Equal(t, []bond.Bond{{0, 1}, {1, 2}}, g.Bonds())
	min, max := g.Bounds()
	assert.Equal(t, 1.5, min)
	assert.Equal(t, 2.5, max)
}

func TestBuild_Empty(t *testing.T) {
	g, err := bond.Build(atom.New(nil))
	require.NoError(t, err)
	assert.Zero(t, g.Len())
	assert.Empty(t, g.Bonds())
}

func TestBuild_StrategiesAgree(t *testing.T) {
	s := lattice.MustBuild(
		[]lattice.Option{lattice.WithSeed(3), lattice.WithJitter(0.02)},
		lattice.Honeycomb(16, 16),
	)
	require.Greater(t, s.Len(), bond.DenseLimit)

	dense, err := bond.Build(s, bond.WithDenseTable())
	require.NoError(t, err)
	cells, err := bond.Build(s, bond.WithCellIndex())
	require.NoError(t, err)
	auto, err := bond.Build(s)
	require.NoError(t, err)

	assert.Equal(t, dense.Bonds(), cells.Bonds())
	assert.Equal(t, dense.Bonds(), auto.Bonds())
	for i := 0; i < s.Len(); i++ {
		require.LessOrEqual(t, dense.Degree(i), 3)
		require.Equal(t, dense.Neighbors(i), cells.Neighbors(i))
	}
}

func TestBuild_StrategiesFailAlike(t *testing.T) {
	s := atom.New([]r3.Vec{{}, {X: 5}, {X: 5.3}})
	_, errDense := bond.Build(s, bond.WithDenseTable())
	_, errCells := bond.Build(s, bond.WithCellIndex())
	require.ErrorIs(t, errDense, bond.ErrOverlap)
	assert.Equal(t, errDense.Error(), errCells.Error())
}

func TestWithBounds_Panics(t *testing.T) {
	assert.Panics(t, func() { bond.WithBounds(0, 1) })
	assert.Panics(t, func() { bond.WithBounds(2, 1) })
	assert.Panics(t, func() { bond.WithBounds(1, 1) })
	assert.NotPanics(t, func() { bond.WithBounds(0.5, 1) })
}
