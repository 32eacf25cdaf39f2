// SPDX-License-Identifier: MIT

package bond

import (
	"errors"
	"fmt"
)

var (
	// ErrOverlap indicates two atoms closer than the minimum bond length.
	ErrOverlap = errors.New("bond: atoms overlap")

	// ErrOverflow indicates an atom that would need more than MaxCoordination bonds.
	ErrOverflow = errors.New("bond: coordination overflow")
)

// OverlapError reports the offending pair of an overlap.
type OverlapError struct {
	I, J     int
	Distance float64
	Min      float64
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("bond: atoms %d and %d closer than min bond length (%g <= %g)", e.I, e.J, e.Distance, e.Min)
}

// Unwrap lets errors.Is(err, ErrOverlap) match.
func (e *OverlapError) Unwrap() error { return ErrOverlap }

// OverflowError reports the atom that exceeded the coordination cap.
type OverflowError struct {
	Atom int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("bond: atom %d has more than %d bonds", e.Atom, MaxCoordination)
}

// Unwrap lets errors.Is(err, ErrOverflow) match.
func (e *OverflowError) Unwrap() error { return ErrOverflow }
