// Package hexgrid maps dithered pixel grids onto a staggered hexagonal
// dot lattice measured in millimeters.
//
// Odd rows are offset by half the horizontal spacing and rows are
// packed at spacing*sqrt(3)/2 vertical pitch, giving a triangular
// packing. Staggered dots that would overhang the nominal rectangle are
// trimmed, so the actual extents can differ from the requested width;
// UsedWidth and UsedHeight report the true bounding box.
package hexgrid
