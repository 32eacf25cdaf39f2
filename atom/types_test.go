// SPDX-License-Identifier: MIT

package atom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/atommesh/atom"
)

func TestNew_IndicesFollowInputOrder(t *testing.T) {
	s := atom.New([]r3.Vec{{X: 1}, {Y: 2}, {Z: 3}})
	require.Equal(t, 3, s.Len())

	for i, a := range s.Atoms() {
		assert.Equal(t, i, a.Index)
		assert.Empty(t, a.Label)
	}
	assert.Equal(t, r3.Vec{Y: 2}, s.Pos(1))
}

func TestNewLabeled(t *testing.T) {
	s, err := atom.NewLabeled([]string{"C", "H"}, []r3.Vec{{}, {X: 1.1}})
	require.NoError(t, err)

	a, err := s.At(1)
	require.NoError(t, err)
	assert.Equal(t, "H", a.Label)
	assert.Equal(t, "H#1(1.1,0,0)", a.String())

	_, err = atom.NewLabeled([]string{"C"}, []r3.Vec{{}, {}})
	require.Error(t, err)
}

func TestAt_OutOfRange(t *testing.T) {
	s := atom.New([]r3.Vec{{}})
	_, err := s.At(1)
	require.ErrorIs(t, err, atom.ErrIndexOutOfRange)
	_, err = s.At(-1)
	require.ErrorIs(t, err, atom.ErrIndexOutOfRange)
}

func TestNilStructure(t *testing.T) {
	var s *atom.Structure
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Atoms())
	assert.Empty(t, s.Positions())
	assert.Empty(t, s.Scaled(0.1))
	assert.Equal(t, r3.Box{}, s.Bounds())
}

func TestCopiesAreIndependent(t *testing.T) {
	s := atom.New([]r3.Vec{{X: 1}})
	ps := s.Positions()
	ps[0].X = 99
	atoms := s.Atoms()
	atoms[0].Pos.X = 42

	assert.Equal(t, 1.0, s.Pos(0).X)
}

func TestScaledAndBounds(t *testing.T) {
	s := atom.New([]r3.Vec{{X: 10, Y: -20, Z: 5}, {X: -10, Y: 20, Z: 0}})

	assert.Equal(t, []r3.Vec{{X: 1, Y: -2, Z: 0.5}, {X: -1, Y: 2, Z: 0}}, s.Scaled(0.1))
	assert.Equal(t, r3.Box{Min: r3.Vec{X: -10, Y: -20}, Max: r3.Vec{X: 10, Y: 20, Z: 5}}, s.Bounds())
}
