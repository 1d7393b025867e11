// Package pipeline orchestrates a full fabrication-plan run: palette
// loading, grid-resolution resize, error-diffusion dithering, hex
// lattice mapping, and artifact export (PNG, SVG, STL, JSON metadata).
//
// The stages form a strict sequential dependency chain; each completes
// fully before the next begins. Per-color mesh generation is the one
// concurrent step, since each color's triangles depend only on its own
// dot positions.
package pipeline
