package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"pointil/internal/hexgrid"
	"pointil/internal/palette"
)

// Metadata is the machine-readable record of a run, written alongside
// the geometry artifacts so a plan can be reproduced or audited.
type Metadata struct {
	Image          string   `json:"image"`
	PaletteFile    string   `json:"palette_file"`
	SelectedColors []string `json:"selected_colors,omitempty"`

	WidthMM         float64 `json:"width_mm"`
	SpacingMM       float64 `json:"spacing_mm"`
	DotDiameterMM   float64 `json:"dot_diameter_mm"`
	DotHeightMM     float64 `json:"dot_height_mm"`
	BaseThicknessMM float64 `json:"base_thickness_mm"`
	Segments        int     `json:"segments"`

	PixelDimensions PixelDimensions   `json:"pixel_dimensions"`
	Grid            GridMetadata      `json:"grid"`
	Coverage        hexgrid.Coverage  `json:"coverage"`
	Palette         []PaletteMetadata `json:"palette"`
	STLFiles        map[string]string `json:"stl_files"`
}

// PixelDimensions records the post-resize raster size, one pixel per
// grid cell.
type PixelDimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GridMetadata describes the physical lattice the dots were placed on.
// TrimmedDots counts staggered-row dots dropped by the
// trim-to-rectangle policy; a nonzero value means the plan is lossy
// relative to the dithered image.
type GridMetadata struct {
	Type            string  `json:"type"`
	VerticalPitchMM float64 `json:"vertical_pitch_mm"`
	WidthMM         float64 `json:"width_mm"`
	HeightMM        float64 `json:"height_mm"`
	TrimmedDots     int     `json:"trimmed_dots"`
}

// PaletteMetadata is one palette entry in the metadata record.
type PaletteMetadata struct {
	Name string   `json:"name"`
	RGB  [3]uint8 `json:"rgb"`
}

func writeMetadata(opts Options, pal palette.Palette, set *hexgrid.CoordinateSet, result *Result) error {
	palMeta := make([]PaletteMetadata, len(pal))
	for i, e := range pal {
		palMeta[i] = PaletteMetadata{
			Name: e.Name,
			RGB:  [3]uint8{e.Color.R, e.Color.G, e.Color.B},
		}
	}

	meta := Metadata{
		Image:           opts.ImagePath,
		PaletteFile:     opts.PalettePath,
		SelectedColors:  opts.Colors,
		WidthMM:         opts.WidthMM,
		SpacingMM:       opts.SpacingMM,
		DotDiameterMM:   opts.DotDiameterMM,
		DotHeightMM:     opts.DotHeightMM,
		BaseThicknessMM: opts.BaseThicknessMM,
		Segments:        opts.Segments,
		PixelDimensions: PixelDimensions{
			Width:  result.PixelWidth,
			Height: result.PixelHeight,
		},
		Grid: GridMetadata{
			Type:            "hex_staggered",
			VerticalPitchMM: set.Layout.Pitch(),
			WidthMM:         result.UsedWidthMM,
			HeightMM:        result.UsedHeightMM,
			TrimmedDots:     result.TrimmedDots,
		},
		Coverage: result.Coverage,
		Palette:  palMeta,
		STLFiles: result.MeshFiles,
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	path := filepath.Join(opts.OutDir, "metadata.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write metadata.json: %w", err)
	}
	return nil
}
