// Package vector renders the 2D half of the fabrication plan: an SVG
// drawing of colored dots over a background rectangle, in millimeter
// units, for import into CAD tooling.
package vector

import (
	"fmt"
	"strings"

	"pointil/internal/hexgrid"
	"pointil/internal/palette"
)

// backgroundName is the palette entry used for the background fill when
// present. It matches the darkest filament in the reference palettes;
// palettes without it fall back to black.
const backgroundName = "charcoal"

// Document renders a coordinate set as an SVG document string.
//
// The root element is sized to the given used extents in millimeters
// with a matching viewBox, so the drawing imports at true physical
// scale. After the background rectangle, each palette entry with at
// least one dot contributes one group, in palette order, identified by
// the entry's slug and filled with its hex color; every dot is a filled
// circle with 3-decimal coordinate precision. Colors with no dots are
// omitted entirely.
//
// Document does not mutate its inputs and performs no I/O; the caller
// persists the returned string.
func Document(set *hexgrid.CoordinateSet, pal palette.Palette, widthMM, heightMM float64) string {
	radius := set.Layout.Radius()

	background := "#000000"
	if e, ok := pal.Find(backgroundName); ok {
		background = e.Color.Hex()
	}

	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%gmm\" height=\"%gmm\" viewBox=\"0 0 %g %g\">\n",
		widthMM, heightMM, widthMM, heightMM)
	fmt.Fprintf(&b, "<rect x=\"0\" y=\"0\" width=\"%g\" height=\"%g\" fill=\"%s\" />\n",
		widthMM, heightMM, background)

	for _, e := range pal {
		points := set.Points[e.Name]
		if len(points) == 0 {
			continue
		}
		fmt.Fprintf(&b, "<g id=\"%s\" fill=\"%s\">\n", palette.Slugify(e.Name), e.Color.Hex())
		for _, p := range points {
			fmt.Fprintf(&b, "<circle cx=\"%.3f\" cy=\"%.3f\" r=\"%.3f\" />\n", p.X, p.Y, radius)
		}
		b.WriteString("</g>\n")
	}

	b.WriteString("</svg>\n")
	return b.String()
}
