// SPDX-License-Identifier: MIT

package triangulate

import (
	"fmt"

	"github.com/katalvlaran/atommesh/ring"
)

// Triangle is an ordered triple of atom indices forming one face.
type Triangle [3]int

// String renders the triangle as "a-b-c".
func (t Triangle) String() string {
	return fmt.Sprintf("%d-%d-%d", t[0], t[1], t[2])
}

// Option customizes Triangulate.
type Option func(*config)

type config struct {
	maxSize int
}

// WithHeptagons also fans 7-rings, appended after the 6-ring triangles.
func WithHeptagons() Option {
	return func(c *config) { c.maxSize = 7 }
}

// Fan decomposes r into r−2 triangles sharing r[0]. Rings under 3 atoms yield nil.
// Complexity: O(r).
func Fan(r ring.Ring) []Triangle {
	if len(r) < ring.MinSize {
		return nil
	}
	out := make([]Triangle, 0, len(r)-2)
	for i := 1; i+1 < len(r); i++ {
		out = append(out, Triangle{r[0], r[i], r[i+1]})
	}

	return out
}

// Triangulate fans every ring of rs in size order (3, 4, 5, 6 and optionally 7).
// Complexity: O(total ring atoms).
func Triangulate(rs *ring.Rings, opts ...Option) []Triangle {
	cfg := config{maxSize: 6}
	for _, opt := range opts {
		opt(&cfg)
	}

	var out []Triangle
	for size := ring.MinSize; size <= cfg.maxSize; size++ {
		for _, r := range rs.Of(size).Rings() {
			out = append(out, Fan(r)...)
		}
	}

	return out
}
