// SPDX-License-Identifier: MIT

package mesh

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Header is the comment line opening every OBJ file written here.
const Header = "# File created by atom2mesh"

// WriteOBJ serializes m as Wavefront OBJ under object name (DefaultName if empty).
func WriteOBJ(w io.Writer, m *Mesh, name string) error {
	if name == "" {
		name = DefaultName
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, Header)
	fmt.Fprintf(bw, "o %s\n", name)
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %s %s %s\n", formatCoord(v.X), formatCoord(v.Y), formatCoord(v.Z))
	}
	for _, f := range m.Faces() {
		fmt.Fprintf(bw, "f %d %d %d\n", f[0], f[1], f[2])
	}

	return bw.Flush()
}

func formatCoord(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
