// SPDX-License-Identifier: MIT

// Package converters provides adapters between the bond graph and
// gonum/graph, so standard graph algorithms can run on a structure:
//
//   - ToGonum:   bond.Graph → *simple.UndirectedGraph (node ID = atom index).
//   - Fragments: connected components (molecules / disjoint flakes), each
//     sorted ascending, ordered by their smallest atom.
package converters
