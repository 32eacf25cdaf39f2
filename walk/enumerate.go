// SPDX-License-Identifier: MIT

package walk

import "github.com/katalvlaran/atommesh/bond"

// Walks holds the walk lists of sizes 2 through 5 for one bond graph.
type Walks struct {
	W2, W3, W4, W5 *List
}

// Enumerate builds W2..W5 from g, each stage from the previous one only.
func Enumerate(g *bond.Graph) *Walks {
	w2 := FromBonds(g.Bonds())
	w3 := Extend(w2)
	w4 := Extend(w3)
	w5 := Extend(w4)

	return &Walks{W2: w2, W3: w3, W4: w4, W5: w5}
}

// Counts returns the number of walks per size, keyed by atom count.
func (ws *Walks) Counts() map[int]int {
	return map[int]int{
		2: ws.W2.Len(),
		3: ws.W3.Len(),
		4: ws.W4.Len(),
		5: ws.W5.Len(),
	}
}
