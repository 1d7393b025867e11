package imaging

import (
	"fmt"

	"pointil/internal/palette"
)

// IdentGrid records which palette entry each pixel was assigned to.
// It is indexed [y][x] and has the same dimensions as the buffer that
// produced it; every cell holds a name from the palette used to dither.
type IdentGrid [][]string

// Dither quantizes a buffer to a palette using Floyd-Steinberg error
// diffusion.
//
// The source buffer is not modified. The returned buffer has every
// pixel equal to exactly one palette color, and the returned grid
// records the chosen entry name per pixel.
//
// Returns an error if the palette is empty.
//
// # Algorithm
//
// Pixels are visited in row-major order, top row first, left to right.
// The scan order is load-bearing: error diffusion is directional, and
// each match must see the corrections already written by its
// neighbors. For each pixel:
//
//  1. Match the current (error-adjusted) color to the nearest palette
//     entry by squared RGB distance; ties go to the earliest entry.
//  2. Overwrite the pixel with the matched color and record the name.
//  3. Compute the per-channel quantization error from the value the
//     pixel held before the overwrite.
//  4. Diffuse the error to unvisited neighbors with the classic
//     weights: east 7/16, southwest 3/16, south 5/16, southeast 1/16.
//     Neighbors outside the buffer are skipped; error lost at the
//     edges is expected and not redistributed.
//
// Every diffusion write clamps each channel into [0, 255] so repeated
// corrections cannot overflow or underflow.
//
// Dithering is fully deterministic: the same buffer and palette always
// yield byte-identical output.
func Dither(src *Buffer, pal palette.Palette) (*Buffer, IdentGrid, error) {
	if len(pal) == 0 {
		return nil, nil, fmt.Errorf("cannot dither: %w", palette.ErrEmpty)
	}

	out := src.Clone()
	width, height := out.Width(), out.Height()

	grid := make(IdentGrid, height)
	for y := range grid {
		grid[y] = make([]string, width)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			old := out.At(x, y)
			match := pal.Nearest(old)
			out.Set(x, y, match.Color)
			grid[y][x] = match.Name

			errR := float64(int(old.R) - int(match.Color.R))
			errG := float64(int(old.G) - int(match.Color.G))
			errB := float64(int(old.B) - int(match.Color.B))

			addError(out, x+1, y, errR*7/16, errG*7/16, errB*7/16)
			addError(out, x-1, y+1, errR*3/16, errG*3/16, errB*3/16)
			addError(out, x, y+1, errR*5/16, errG*5/16, errB*5/16)
			addError(out, x+1, y+1, errR*1/16, errG*1/16, errB*1/16)
		}
	}

	return out, grid, nil
}

// addError adds a diffused error term to the pixel at (x, y), clamping
// each resulting channel into [0, 255]. Out-of-bounds targets are
// skipped.
func addError(b *Buffer, x, y int, dr, dg, db float64) {
	if x < 0 || x >= b.Width() || y < 0 || y >= b.Height() {
		return
	}
	c := b.At(x, y)
	c.R = uint8(clamp(int(float64(c.R)+dr), 0, 255))
	c.G = uint8(clamp(int(float64(c.G)+dg), 0, 255))
	c.B = uint8(clamp(int(float64(c.B)+db), 0, 255))
	b.Set(x, y, c)
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
