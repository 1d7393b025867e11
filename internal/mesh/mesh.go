package mesh

import "math"

// Point3 is a position in 3D space, in millimeters.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

// Triangle is one facet of a triangulated solid. Winding follows the
// reference layouts below; facet orientation is best-effort and not
// guaranteed outward-consistent.
type Triangle [3]Point3

// Solid is a named, ordered triangle list representing one printable
// part: the shared base slab or one per-color dot assembly.
type Solid struct {
	Name      string
	Triangles []Triangle
}

// NewSolid creates an empty solid with the given part name.
func NewSolid(name string) *Solid {
	return &Solid{Name: name}
}

func (s *Solid) add(a, b, c Point3) {
	s.Triangles = append(s.Triangles, Triangle{a, b, c})
}

// AddBox appends the 12 triangles of a closed rectangular prism with
// opposite corners (x0, y0, z0) and (x1, y1, z1): two triangles each
// for the bottom, top, and four side faces.
func (s *Solid) AddBox(x0, y0, x1, y1, z0, z1 float64) {
	// Bottom
	s.add(Point3{x0, y0, z0}, Point3{x1, y0, z0}, Point3{x1, y1, z0})
	s.add(Point3{x0, y0, z0}, Point3{x1, y1, z0}, Point3{x0, y1, z0})
	// Top
	s.add(Point3{x0, y0, z1}, Point3{x1, y1, z1}, Point3{x1, y0, z1})
	s.add(Point3{x0, y0, z1}, Point3{x0, y1, z1}, Point3{x1, y1, z1})
	// Sides
	s.add(Point3{x0, y0, z0}, Point3{x0, y0, z1}, Point3{x1, y0, z1})
	s.add(Point3{x0, y0, z0}, Point3{x1, y0, z1}, Point3{x1, y0, z0})

	s.add(Point3{x1, y0, z0}, Point3{x1, y0, z1}, Point3{x1, y1, z1})
	s.add(Point3{x1, y0, z0}, Point3{x1, y1, z1}, Point3{x1, y1, z0})

	s.add(Point3{x1, y1, z0}, Point3{x1, y1, z1}, Point3{x0, y1, z1})
	s.add(Point3{x1, y1, z0}, Point3{x0, y1, z1}, Point3{x0, y1, z0})

	s.add(Point3{x0, y1, z0}, Point3{x0, y1, z1}, Point3{x0, y0, z1})
	s.add(Point3{x0, y1, z0}, Point3{x0, y0, z1}, Point3{x0, y0, z0})
}

// AddCylinder appends a vertical cylinder centered at (cx, cy) with the
// given radius, spanning z0 to z1, approximated by the given number of
// angular segments.
//
// Each segment contributes four triangles: a side quad split in two, a
// top fan triangle, and a bottom fan triangle, so the cylinder totals
// 4*segments triangles. Segments must be at least 3 for the rims to
// enclose any area; configuration validation enforces this before
// geometry work starts.
func (s *Solid) AddCylinder(cx, cy, radius, z0, z1 float64, segments int) {
	twoPi := 2 * math.Pi
	for i := 0; i < segments; i++ {
		a0 := twoPi * float64(i) / float64(segments)
		a1 := twoPi * float64(i+1) / float64(segments)
		x0 := cx + radius*math.Cos(a0)
		y0 := cy + radius*math.Sin(a0)
		x1 := cx + radius*math.Cos(a1)
		y1 := cy + radius*math.Sin(a1)

		// Side quad split into two triangles
		s.add(Point3{x0, y0, z0}, Point3{x1, y1, z0}, Point3{x1, y1, z1})
		s.add(Point3{x0, y0, z0}, Point3{x1, y1, z1}, Point3{x0, y0, z1})

		// Top fan
		s.add(Point3{cx, cy, z1}, Point3{x1, y1, z1}, Point3{x0, y0, z1})
		// Bottom fan
		s.add(Point3{cx, cy, z0}, Point3{x0, y0, z0}, Point3{x1, y1, z0})
	}
}
