// SPDX-License-Identifier: MIT

package mesh

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/atommesh/atom"
	"github.com/katalvlaran/atommesh/triangulate"
)

// Defaults for emitted meshes.
const (
	DefaultScale = 0.1
	DefaultName  = "gmesh"
)

// Mesh is the emitted vertex/face set.
type Mesh struct {
	// Vertices holds atom positions multiplied by the mesh scale, in atom order.
	Vertices []r3.Vec

	// Triangles holds 0-based atom indices in pipeline order.
	Triangles []triangulate.Triangle
}

// New scales every atom of s by scale and attaches a copy of tris.
// Complexity: O(n + t).
func New(s *atom.Structure, tris []triangulate.Triangle, scale float64) *Mesh {
	return &Mesh{
		Vertices:  s.Scaled(scale),
		Triangles: append([]triangulate.Triangle(nil), tris...),
	}
}

// Faces returns the triangles with 1-based indices, as OBJ expects.
func (m *Mesh) Faces() [][3]int {
	out := make([][3]int, len(m.Triangles))
	for i, t := range m.Triangles {
		out[i] = [3]int{t[0] + 1, t[1] + 1, t[2] + 1}
	}

	return out
}

// Area returns the total surface area of all faces.
func (m *Mesh) Area() float64 {
	total := 0.0
	for _, t := range m.Triangles {
		a, b, c := m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
		total += r3.Norm(r3.Cross(r3.Sub(b, a), r3.Sub(c, a))) / 2
	}

	return total
}
