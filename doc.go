// Package atommesh turns a set of atom positions into a triangle mesh
// whose faces span the small rings (3 to 7 atoms) of the bond graph.
//
// The pipeline is strictly linear; every stage consumes the previous
// stage's complete output:
//
//	positions ─► bond.Build ─► walk.Enumerate ─► ring.Extract ─► triangulate ─► mesh
//	             (graph)       (W2..W5)          (dedup sets)    (fans)         (OBJ / PNG)
//
// Under the hood, everything is organized under small packages:
//
//	atom/        Atom and the immutable Structure
//	distance/    dense pairwise table and the uniform cell index
//	bond/        distance-window bonding, OverlapError / OverflowError
//	walk/        walk lists of 2..5 atoms, endpoint-indexed joins
//	ring/        triangles, squares, pentagons, hexagons, heptagons; dedup
//	triangulate/ fan triangulation from each ring's first atom
//	mesh/        scaled vertices, OBJ writer, PNG wireframe preview
//	xyz/         XYZ structure reader
//	config/      defaults, TOML file, command-line flags
//	converters/  bond graph to gonum, connected fragments
//	lattice/     deterministic fixtures (polygons, stars, honeycomb patches)
//
// Quick example, a benzene-like hexagon:
//
//	s := lattice.MustBuild(nil, lattice.Polygon(6))
//	res, err := atommesh.Run(s)
//	// res.Stats.Bonds == 6, res.Stats.Rings[6] == 1, res.Stats.Triangles == 4
//
// Structures whose atoms sit closer than the minimum bond length, or whose
// atoms would take a fifth bond, are rejected before any ring is searched.
package atommesh
