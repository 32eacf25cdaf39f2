// SPDX-License-Identifier: MIT
// Package: atommesh/distance
//
// table.go - dense pairwise distance matrix.
//
// Contract:
//   • Row-major, symmetric, zero diagonal; immutable once built.
//   • Within lists neighbours ascending by index, like CellIndex.Within.

package distance

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/atommesh/atom"
)

// Distance returns the Euclidean distance between a and b.
func Distance(a, b r3.Vec) float64 {
	return r3.Norm(r3.Sub(a, b))
}

// Table is a symmetric row-major matrix of pairwise atom distances.
// n is the atom count and data holds n*n elements; the diagonal is zero.
type Table struct {
	n    int       // number of atoms (rows == cols)
	data []float64 // flat backing storage, length == n*n
}

// NewTable computes every pairwise distance of s.
// Stage 1 (Validate): s must hold at least one atom.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Fill): compute the upper triangle once and mirror it.
// Complexity: O(n²) time and memory.
func NewTable(s *atom.Structure) (*Table, error) {
	// Validate size
	n := s.Len()
	if n == 0 {
		return nil, fmt.Errorf("NewTable: %w", ErrEmptyStructure)
	}
	// Allocate flat slice
	t := &Table{n: n, data: make([]float64, n*n)}

	// Fill upper triangle and mirror
	for i := 0; i < n; i++ {
		pi := s.Pos(i)
		for j := i + 1; j < n; j++ {
			d := Distance(pi, s.Pos(j))
			t.data[i*n+j] = d // upper
			t.data[j*n+i] = d // mirror
		}
	}

	return t, nil
}

// Len returns the number of atoms covered by the table.
// Complexity: O(1).
func (t *Table) Len() int {
	return t.n // return stored atom count
}

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
func (t *Table) indexOf(row, col int) (int, error) {
	// Validate both indices
	if row < 0 || row >= t.n || col < 0 || col >= t.n {
		return 0, tableErrorf("At", row, col, ErrIndexOutOfBounds)
	}

	// Compute flat offset
	return row*t.n + col, nil
}

// At retrieves the distance between atoms row and col.
// Complexity: O(1).
func (t *Table) At(row, col int) (float64, error) {
	idx, err := t.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return t.data[idx], nil
}

// Within returns every j != i with distance(i,j) < cutoff, ascending by j.
// It mirrors CellIndex.Within so the two are interchangeable.
// Complexity: O(n).
func (t *Table) Within(i int, cutoff float64) []int {
	var out []int
	// Scan row i; ascending j falls out of the layout
	row := t.data[i*t.n : (i+1)*t.n]
	for j, d := range row {
		if j != i && d < cutoff {
			out = append(out, j)
		}
	}

	return out
}

// Dist returns the distance between atoms i and j without bounds reporting.
func (t *Table) Dist(i, j int) float64 {
	return t.data[i*t.n+j] // caller guarantees 0 ≤ i,j < n
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(n²).
func (t *Table) String() string {
	var sb strings.Builder
	for i := 0; i < t.n; i++ {
		sb.WriteByte('[')
		for j := 0; j < t.n; j++ {
			fmt.Fprintf(&sb, "%g", t.data[i*t.n+j])
			if j < t.n-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
