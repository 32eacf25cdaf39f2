// SPDX-License-Identifier: MIT

package atommesh

import (
	"fmt"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/atommesh/atom"
	"github.com/katalvlaran/atommesh/bond"
	"github.com/katalvlaran/atommesh/converters"
	"github.com/katalvlaran/atommesh/mesh"
	"github.com/katalvlaran/atommesh/ring"
	"github.com/katalvlaran/atommesh/triangulate"
	"github.com/katalvlaran/atommesh/walk"
)

// Stats summarizes one Run.
type Stats struct {
	Atoms     int
	Bonds     int
	Walks     map[int]int // walk size (atoms) → count
	Rings     map[int]int // ring size → count
	Triangles int
	Fragments int // connected components of the bond graph
}

// Result carries every stage output of one Run.
type Result struct {
	Graph     *bond.Graph
	Walks     *walk.Walks
	Rings     *ring.Rings
	Triangles []triangulate.Triangle
	Mesh      *mesh.Mesh
	Stats     Stats
}

// Run executes the whole pipeline on s.
//
// A bonding failure (*bond.OverlapError, *bond.OverflowError) aborts the run;
// the error is wrapped with "Run: %w" and no partial Result is returned.
// Walk enumeration, ring extraction and triangulation cannot fail.
func Run(s *atom.Structure, opts ...Option) (*Result, error) {
	o := newOptions(opts...)

	// Stage 1: bond graph.
	g, err := bond.Build(s, o.bond...)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	klog.V(2).Infof("atommesh: %d atoms, %d bonds", g.Len(), g.NumBonds())

	// Stage 2: walks of 2..5 atoms.
	ws := walk.Enumerate(g)
	klog.V(2).Infof("atommesh: walks %v", ws.Counts())

	// Stage 3: rings with per-size dedup.
	rs := ring.Extract(ws)
	klog.V(2).Infof("atommesh: rings %v", rs.Counts())

	// Stage 4: triangles, then the scaled mesh.
	tris := triangulate.Triangulate(rs, o.tri...)
	m := mesh.New(s, tris, o.scale)
	klog.V(2).Infof("atommesh: %d triangles", len(tris))

	return &Result{
		Graph:     g,
		Walks:     ws,
		Rings:     rs,
		Triangles: tris,
		Mesh:      m,
		Stats: Stats{
			Atoms:     g.Len(),
			Bonds:     g.NumBonds(),
			Walks:     ws.Counts(),
			Rings:     rs.Counts(),
			Triangles: len(tris),
			Fragments: len(converters.Fragments(g)),
		},
	}, nil
}
