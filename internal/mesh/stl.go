package mesh

import (
	"bufio"
	"fmt"
	"io"
)

// WriteASCII serializes a solid to ASCII STL.
//
// Vertices are written with 6 decimal places. Facet normals are emitted
// as an explicit zero vector: slicers recompute normals on import, and
// the triangulation here does not maintain outward-consistent winding,
// so a placeholder is more honest than a possibly wrong unit normal.
func WriteASCII(w io.Writer, s *Solid) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "solid %s\n", s.Name)
	for _, t := range s.Triangles {
		bw.WriteString("facet normal 0 0 0\n  outer loop\n")
		for _, p := range t {
			fmt.Fprintf(bw, "    vertex %.6f %.6f %.6f\n", p.X, p.Y, p.Z)
		}
		bw.WriteString("  endloop\nendfacet\n")
	}
	fmt.Fprintf(bw, "endsolid %s\n", s.Name)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write STL for %s: %w", s.Name, err)
	}
	return nil
}
