// Package imaging provides the raster half of the fabrication pipeline:
// image decoding, grid-resolution resampling, and palette-constrained
// error-diffusion dithering.
//
// The central type is Buffer, a mutable row-major RGB pixel grid.
// Images are resampled with ResizeToGrid so that one pixel maps to one
// physical dot, then quantized with Dither, which returns both the
// palettized pixels and an IdentGrid naming the palette entry chosen
// for each position.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left:
// X increases rightward, Y increases downward. IdentGrid is indexed
// [y][x] to match row-major scan order.
//
// # Determinism
//
// Dithering involves no randomness. The scan order and tie-breaking
// rules are fixed, so a given image and palette always produce
// identical output, which downstream geometry depends on for
// reproducible fabrication plans.
package imaging
