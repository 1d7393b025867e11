package hexgrid

import (
	"math"

	"pointil/internal/imaging"
)

// Layout describes the physical dot lattice in millimeters.
type Layout struct {
	SpacingMM     float64 // horizontal center-to-center dot spacing
	DotDiameterMM float64 // diameter of each printed dot
}

// Pitch returns the vertical row-to-row distance: spacing * sqrt(3)/2,
// the height of an equilateral triangle with the spacing as its side.
func (l Layout) Pitch() float64 {
	return l.SpacingMM * math.Sqrt(3) / 2
}

// Radius returns half the dot diameter.
func (l Layout) Radius() float64 {
	return l.DotDiameterMM / 2
}

// Point is a dot center position in millimeters.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// CoordinateSet holds the physical dot positions produced from an
// identifier grid, keyed by palette entry name.
//
// Per-name point slices are in scan order (top-to-bottom, left-to-right
// within a row). The set also records how many staggered-row dots were
// trimmed and the maximum extents actually reached, which exporters use
// for the true bounding box.
type CoordinateSet struct {
	Layout  Layout
	Points  map[string][]Point
	Trimmed int // dots dropped by the trim-to-rectangle policy

	gridWidth  int
	gridHeight int
	maxX       float64
	maxY       float64
}

// Map converts an identifier grid into physical dot coordinates on a
// staggered hexagonal lattice.
//
// A cell at grid position (x, y) maps to:
//
//	x_mm = radius + x*spacing + offset
//	y_mm = radius + y*pitch
//
// where offset is spacing/2 on odd rows (hex stagger) and zero
// otherwise. Dots whose center exceeds widthLimit - radius, with
// widthLimit = (gridWidth-1)*spacing + diameter, are dropped entirely
// rather than clamped; the stagger only ever pushes odd rows past the
// limit, so at most the last dot of each odd row is affected. This
// trim-to-rectangle policy is intentional: an overhanging dot would
// print outside the base slab.
func Map(grid imaging.IdentGrid, layout Layout) *CoordinateSet {
	set := &CoordinateSet{
		Layout: layout,
		Points: make(map[string][]Point),
	}
	if len(grid) == 0 || len(grid[0]) == 0 {
		return set
	}

	set.gridHeight = len(grid)
	set.gridWidth = len(grid[0])

	spacing := layout.SpacingMM
	pitch := layout.Pitch()
	radius := layout.Radius()
	widthLimit := set.WidthLimit()

	for y, row := range grid {
		xOff := 0.0
		if y%2 == 1 {
			xOff = spacing / 2
		}
		yMM := radius + float64(y)*pitch

		for x, name := range row {
			xMM := radius + float64(x)*spacing + xOff
			if xMM > widthLimit-radius {
				set.Trimmed++
				continue
			}
			set.Points[name] = append(set.Points[name], Point{X: xMM, Y: yMM})
			if xMM > set.maxX {
				set.maxX = xMM
			}
			if yMM > set.maxY {
				set.maxY = yMM
			}
		}
	}
	return set
}

// WidthLimit returns the nominal rectangle width the grid was laid out
// for: (gridWidth-1)*spacing + diameter.
func (s *CoordinateSet) WidthLimit() float64 {
	if s.gridWidth == 0 {
		return 0
	}
	return float64(s.gridWidth-1)*s.Layout.SpacingMM + s.Layout.DotDiameterMM
}

// GridWidth returns the identifier grid width in cells.
func (s *CoordinateSet) GridWidth() int { return s.gridWidth }

// GridHeight returns the identifier grid height in cells.
func (s *CoordinateSet) GridHeight() int { return s.gridHeight }

// UsedWidth returns the actual print width in millimeters: the larger
// of the nominal width limit and the rightmost dot edge. Stagger and
// trimming can shift the true bounding box, so exporters size
// backgrounds and base slabs from this, not the requested width.
func (s *CoordinateSet) UsedWidth() float64 {
	return math.Max(s.WidthLimit(), s.maxX+s.Layout.Radius())
}

// UsedHeight returns the actual print height in millimeters: the
// bottommost dot edge.
func (s *CoordinateSet) UsedHeight() float64 {
	return s.maxY + s.Layout.Radius()
}

// TotalDots returns the number of emitted dot centers across all
// colors. It is at most gridWidth*gridHeight, with equality exactly
// when nothing was trimmed.
func (s *CoordinateSet) TotalDots() int {
	n := 0
	for _, pts := range s.Points {
		n += len(pts)
	}
	return n
}
