// SPDX-License-Identifier: MIT

package distance

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyStructure indicates a nil or empty atom structure.
	ErrEmptyStructure = errors.New("distance: structure is empty")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("distance: index out of bounds")

	// ErrBadCellSize indicates a bin edge that is not a positive finite number.
	ErrBadCellSize = errors.New("distance: cell size must be positive and finite")
)

// tableErrorf wraps an underlying error with Table method context.
func tableErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Table.%s(%d,%d): %w", method, row, col, err)
}
