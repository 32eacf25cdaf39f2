// SPDX-License-Identifier: MIT

package atom

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrIndexOutOfRange indicates an atom index outside [0, Len()).
var ErrIndexOutOfRange = errors.New("atom: index out of range")

// Atom is one input atom. Index is stable and equals its position in the
// owning Structure.
type Atom struct {
	// Index is the 0-based input order.
	Index int

	// Label is the free-form first field of the input record ("C", "C12", ...).
	// It never takes part in bonding.
	Label string

	// Pos is the Cartesian position.
	Pos r3.Vec
}

// String renders the atom as "label#index(x,y,z)".
func (a Atom) String() string {
	return fmt.Sprintf("%s#%d(%g,%g,%g)", a.Label, a.Index, a.Pos.X, a.Pos.Y, a.Pos.Z)
}

// Structure is an immutable ordered set of atoms.
type Structure struct {
	atoms []Atom
}

// New builds a Structure from positions. Atom i gets Index i and an empty label.
// Complexity: O(n).
func New(positions []r3.Vec) *Structure {
	atoms := make([]Atom, len(positions))
	for i, p := range positions {
		atoms[i] = Atom{Index: i, Pos: p}
	}

	return &Structure{atoms: atoms}
}

// NewLabeled builds a Structure from labels and positions of equal length.
// Returns an error when the lengths differ.
func NewLabeled(labels []string, positions []r3.Vec) (*Structure, error) {
	if len(labels) != len(positions) {
		return nil, fmt.Errorf("atom: NewLabeled: %d labels for %d positions", len(labels), len(positions))
	}
	s := New(positions)
	for i := range s.atoms {
		s.atoms[i].Label = labels[i]
	}

	return s, nil
}

// Len returns the number of atoms. A nil Structure has length 0.
func (s *Structure) Len() int {
	if s == nil {
		return 0
	}

	return len(s.atoms)
}

// At returns atom i.
func (s *Structure) At(i int) (Atom, error) {
	if i < 0 || i >= s.Len() {
		return Atom{}, fmt.Errorf("atom: At(%d): %w", i, ErrIndexOutOfRange)
	}

	return s.atoms[i], nil
}

// Pos returns the position of atom i without bounds reporting; callers in the
// pipeline only pass indices they obtained from this Structure.
func (s *Structure) Pos(i int) r3.Vec {
	return s.atoms[i].Pos
}

// Atoms returns a copy of the atom list.
func (s *Structure) Atoms() []Atom {
	out := make([]Atom, s.Len())
	if s != nil {
		copy(out, s.atoms)
	}

	return out
}

// Positions returns a copy of all positions in index order.
func (s *Structure) Positions() []r3.Vec {
	out := make([]r3.Vec, s.Len())
	for i := range out {
		out[i] = s.atoms[i].Pos
	}

	return out
}

// Scaled returns every position multiplied by f, in index order.
func (s *Structure) Scaled(f float64) []r3.Vec {
	out := make([]r3.Vec, s.Len())
	for i := range out {
		out[i] = r3.Scale(f, s.atoms[i].Pos)
	}

	return out
}

// Bounds returns the axis-aligned bounding box of the structure.
// An empty structure yields the zero box.
func (s *Structure) Bounds() r3.Box {
	if s.Len() == 0 {
		return r3.Box{}
	}
	lo, hi := s.atoms[0].Pos, s.atoms[0].Pos
	for _, a := range s.atoms[1:] {
		lo = r3.Vec{X: min(lo.X, a.Pos.X), Y: min(lo.Y, a.Pos.Y), Z: min(lo.Z, a.Pos.Z)}
		hi = r3.Vec{X: max(hi.X, a.Pos.X), Y: max(hi.Y, a.Pos.Y), Z: max(hi.Z, a.Pos.Z)}
	}

	return r3.Box{Min: lo, Max: hi}
}
