// SPDX-License-Identifier: MIT

package atommesh_test

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/atommesh"
	"github.com/katalvlaran/atommesh/bond"
	"github.com/katalvlaran/atommesh/lattice"
	"github.com/katalvlaran/atommesh/mesh"
	"github.com/katalvlaran/atommesh/xyz"
)

// ExampleRun meshes a naphthalene skeleton: two fused hexagons, eight faces.
func ExampleRun() {
	s := lattice.MustBuild(nil, lattice.Naphthalene())

	res, err := atommesh.Run(s)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("atoms:", res.Stats.Atoms)
	fmt.Println("bonds:", res.Stats.Bonds)
	fmt.Println("6-rings:", res.Stats.Rings[6])
	fmt.Println("triangles:", res.Stats.Triangles)
	// Output:
	// atoms: 10
	// bonds: 11
	// 6-rings: 2
	// triangles: 8
}

// ExampleRun_overflow shows the coordination cap: a fifth neighbour aborts the run.
func ExampleRun_overflow() {
	_, err := atommesh.Run(lattice.MustBuild(nil, lattice.Star(5)))

	var oe *bond.OverflowError
	if errors.As(err, &oe) {
		fmt.Println("overflow at atom", oe.Atom)
	}
	// Output:
	// overflow at atom 0
}

// Example_xyzToOBJ runs the whole chain on an XYZ triangle and prints the OBJ.
func Example_xyzToOBJ() {
	in := strings.NewReader(`3
triangle
C 0 0 0
C 15 0 0
C 7.5 12.5 0
`)
	s, err := xyz.Read(in)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := atommesh.Run(s, atommesh.WithBondBounds(10, 16))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := mesh.WriteOBJ(os.Stdout, res.Mesh, "tri"); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// # File created by atom2mesh
	// o tri
	// v 0 0 0
	// v 1.5 0 0
	// v 0.75 1.25 0
	// f 3 2 1
}
