package vector

import (
	"strings"
	"testing"

	"pointil/internal/hexgrid"
	"pointil/internal/imaging"
	"pointil/internal/palette"
)

var testPalette = palette.Palette{
	{Name: "Sky Blue", Color: palette.Color{R: 135, G: 206, B: 235}},
	{Name: "Charcoal", Color: palette.Color{R: 64, G: 64, B: 64}},
	{Name: "Lemon Yellow", Color: palette.Color{R: 255, G: 244, B: 79}},
}

func testSet(t *testing.T) *hexgrid.CoordinateSet {
	t.Helper()
	grid := imaging.IdentGrid{
		{"Sky Blue", "Charcoal"},
		{"Sky Blue", "Sky Blue"},
	}
	layout := hexgrid.Layout{SpacingMM: 1.0, DotDiameterMM: 1.0}
	return hexgrid.Map(grid, layout)
}

func TestDocument_Structure(t *testing.T) {
	set := testSet(t)
	doc := Document(set, testPalette, set.UsedWidth(), set.UsedHeight())

	if !strings.HasPrefix(doc, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n") {
		t.Error("missing XML declaration")
	}
	if !strings.Contains(doc, "width=\"2mm\"") {
		t.Errorf("missing mm width attribute:\n%s", doc)
	}
	if !strings.Contains(doc, "viewBox=\"0 0 2 ") {
		t.Errorf("viewBox does not match width:\n%s", doc)
	}
	if !strings.HasSuffix(doc, "</svg>\n") {
		t.Error("document not closed")
	}
}

func TestDocument_BackgroundUsesCharcoal(t *testing.T) {
	set := testSet(t)
	doc := Document(set, testPalette, set.UsedWidth(), set.UsedHeight())

	if !strings.Contains(doc, "<rect x=\"0\" y=\"0\"") {
		t.Error("missing background rect")
	}
	if !strings.Contains(doc, "fill=\"#404040\"") {
		t.Error("background not filled with charcoal")
	}
}

func TestDocument_BackgroundFallsBackToBlack(t *testing.T) {
	set := testSet(t)
	noCharcoal := testPalette[:1]
	doc := Document(set, noCharcoal, set.UsedWidth(), set.UsedHeight())

	if !strings.Contains(doc, "fill=\"#000000\"") {
		t.Error("background did not fall back to black")
	}
}

func TestDocument_GroupsAndCircles(t *testing.T) {
	set := testSet(t)
	doc := Document(set, testPalette, set.UsedWidth(), set.UsedHeight())

	if !strings.Contains(doc, "<g id=\"sky-blue\" fill=\"#87ceeb\">") {
		t.Errorf("missing sky-blue group:\n%s", doc)
	}
	if !strings.Contains(doc, "<g id=\"charcoal\" fill=\"#404040\">") {
		t.Errorf("missing charcoal group:\n%s", doc)
	}
	// Colors with zero dots are omitted entirely.
	if strings.Contains(doc, "lemon-yellow") {
		t.Error("empty color emitted a group")
	}

	// 3-decimal coordinates, radius = diameter/2.
	if !strings.Contains(doc, "<circle cx=\"0.500\" cy=\"0.500\" r=\"0.500\" />") {
		t.Errorf("missing 3-decimal circle for grid (0,0):\n%s", doc)
	}
	// Staggered row: grid (0,1) is offset to x = 1.0.
	if !strings.Contains(doc, "<circle cx=\"1.000\" cy=\"1.366\" r=\"0.500\" />") {
		t.Errorf("missing staggered circle for grid (0,1):\n%s", doc)
	}

	// Groups appear in palette order.
	if strings.Index(doc, "id=\"sky-blue\"") > strings.Index(doc, "id=\"charcoal\"") {
		t.Error("groups not in palette order")
	}
}

func TestDocument_CircleCountMatchesDots(t *testing.T) {
	set := testSet(t)
	doc := Document(set, testPalette, set.UsedWidth(), set.UsedHeight())

	if got := strings.Count(doc, "<circle"); got != set.TotalDots() {
		t.Errorf("%d circles, want %d", got, set.TotalDots())
	}
}
