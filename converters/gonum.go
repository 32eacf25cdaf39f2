// SPDX-License-Identifier: MIT

package converters

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/atommesh/bond"
)

// ToGonum copies g into a gonum undirected graph. Every atom becomes a node,
// bonded or not, so isolated atoms count as their own fragment.
// Complexity: O(V + E).
func ToGonum(g *bond.Graph) *simple.UndirectedGraph {
	out := simple.NewUndirectedGraph()
	for i := 0; i < g.Len(); i++ {
		out.AddNode(simple.Node(i))
	}
	for _, b := range g.Bonds() {
		out.SetEdge(simple.Edge{F: simple.Node(b.I), T: simple.Node(b.J)})
	}

	return out
}

// Fragments returns the connected components of g as ascending atom lists,
// ordered by their first atom.
// Complexity: O(V + E + V log V).
func Fragments(g *bond.Graph) [][]int {
	comps := topo.ConnectedComponents(ToGonum(g))
	out := make([][]int, len(comps))
	for i, comp := range comps {
		ids := make([]int, len(comp))
		for k, n := range comp {
			ids[k] = int(n.ID())
		}
		sort.Ints(ids)
		out[i] = ids
	}
	sort.Slice(out, func(a, b int) bool { return out[a][0] < out[b][0] })

	return out
}
