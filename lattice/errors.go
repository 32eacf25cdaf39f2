// SPDX-License-Identifier: MIT

package lattice

import "errors"

var (
	// ErrTooFewAtoms is returned when a constructor parameter is below its minimum.
	ErrTooFewAtoms = errors.New("lattice: too few atoms")

	// ErrBadSize is returned for a dimension outside the supported domain.
	ErrBadSize = errors.New("lattice: size out of range")

	// ErrConstructFailed is returned for a nil constructor.
	ErrConstructFailed = errors.New("lattice: construction failed")
)
