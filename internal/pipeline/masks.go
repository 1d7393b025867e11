package pipeline

import (
	"image"
	"image/color"
	"math"
	"path/filepath"

	"pointil/internal/hexgrid"
	"pointil/internal/imaging"
	"pointil/internal/palette"
)

// writeMasks emits one binary mask image per palette color: white where
// that color has a dot, black elsewhere, at grid resolution.
//
// The mask maps each dot center back to its nearest grid cell. The
// reverse mapping ignores the stagger offset, which can round an odd-row
// dot into the neighboring column; the masks are reference overlays,
// not fabrication geometry, so nearest-cell accuracy is sufficient.
func writeMasks(set *hexgrid.CoordinateSet, pal palette.Palette, outDir string) error {
	width := set.GridWidth()
	height := set.GridHeight()
	if width == 0 || height == 0 {
		return nil
	}

	spacing := set.Layout.SpacingMM
	pitch := set.Layout.Pitch()
	radius := set.Layout.Radius()

	for _, e := range pal {
		mask := image.NewGray(image.Rect(0, 0, width, height))
		for _, p := range set.Points[e.Name] {
			px := clampInt(int(math.Round((p.X-radius)/spacing)), 0, width-1)
			py := clampInt(int(math.Round((p.Y-radius)/pitch)), 0, height-1)
			mask.SetGray(px, py, color.Gray{Y: 255})
		}

		name := "mask_" + palette.Slugify(e.Name) + ".png"
		if err := imaging.SavePNG(filepath.Join(outDir, name), mask); err != nil {
			return err
		}
	}
	return nil
}

func clampInt(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
