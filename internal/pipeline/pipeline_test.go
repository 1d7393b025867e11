package pipeline

import (
	"encoding/json"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pointil/internal/imaging"
)

func validOptions() Options {
	return Options{
		WidthMM:         180,
		SpacingMM:       0.8,
		DotDiameterMM:   0.8,
		DotHeightMM:     0.4,
		BaseThicknessMM: 0.6,
		Segments:        12,
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr bool
	}{
		{"defaults are valid", func(o *Options) {}, false},
		{"zero width", func(o *Options) { o.WidthMM = 0 }, true},
		{"negative spacing", func(o *Options) { o.SpacingMM = -1 }, true},
		{"zero diameter", func(o *Options) { o.DotDiameterMM = 0 }, true},
		{"zero dot height", func(o *Options) { o.DotHeightMM = 0 }, true},
		{"zero base", func(o *Options) { o.BaseThicknessMM = 0 }, true},
		{"two segments", func(o *Options) { o.Segments = 2 }, true},
		{"three segments ok", func(o *Options) { o.Segments = 3 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := validOptions()
			tt.mutate(&opts)
			err := opts.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

// writeTestInputs creates a 2x2 red/blue image and a two-color palette
// in a temp dir, returning their paths.
func writeTestInputs(t *testing.T) (imagePath, palettePath string) {
	t.Helper()
	dir := t.TempDir()

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{0, 0, 255, 255})
	img.SetNRGBA(0, 1, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(1, 1, color.NRGBA{0, 0, 255, 255})

	imagePath = filepath.Join(dir, "input.png")
	if err := imaging.SavePNG(imagePath, img); err != nil {
		t.Fatalf("failed to write test image: %v", err)
	}

	palettePath = filepath.Join(dir, "palette.json")
	palJSON := `[{"name": "Red", "hex": "#FF0000"}, {"name": "Blue", "hex": "#0000FF"}]`
	if err := os.WriteFile(palettePath, []byte(palJSON), 0o644); err != nil {
		t.Fatalf("failed to write test palette: %v", err)
	}
	return imagePath, palettePath
}

func TestRun_EndToEnd(t *testing.T) {
	imagePath, palettePath := writeTestInputs(t)
	outDir := filepath.Join(t.TempDir(), "out")

	opts := Options{
		ImagePath:       imagePath,
		PalettePath:     palettePath,
		OutDir:          outDir,
		WidthMM:         2.0,
		SpacingMM:       1.0,
		DotDiameterMM:   1.0,
		DotHeightMM:     0.4,
		BaseThicknessMM: 0.6,
		Segments:        12,
	}

	result, err := Run(opts)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// 2mm wide at 1mm spacing resizes to a 2x2 grid; the bottom-right
	// staggered dot overhangs and is trimmed.
	if result.PixelWidth != 2 || result.PixelHeight != 2 {
		t.Errorf("pixel dimensions: got %dx%d, want 2x2", result.PixelWidth, result.PixelHeight)
	}
	if result.TotalDots != 3 {
		t.Errorf("TotalDots = %d, want 3", result.TotalDots)
	}
	if result.TrimmedDots != 1 {
		t.Errorf("TrimmedDots = %d, want 1", result.TrimmedDots)
	}
	if result.UsedWidthMM != 2.0 {
		t.Errorf("UsedWidthMM = %g, want 2.0", result.UsedWidthMM)
	}

	wantFiles := []string{
		"dithered.png",
		"mask_red.png",
		"mask_blue.png",
		"dots.svg",
		"base.stl",
		"red.stl",
		"blue.stl",
		"metadata.json",
	}
	for _, name := range wantFiles {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("missing artifact %s: %v", name, err)
		}
	}

	if result.MeshFiles["base"] != "base.stl" || result.MeshFiles["red"] != "red.stl" {
		t.Errorf("MeshFiles = %v, want base/red/blue entries", result.MeshFiles)
	}
}

func TestRun_MeshContents(t *testing.T) {
	imagePath, palettePath := writeTestInputs(t)
	outDir := filepath.Join(t.TempDir(), "out")

	opts := Options{
		ImagePath:       imagePath,
		PalettePath:     palettePath,
		OutDir:          outDir,
		WidthMM:         2.0,
		SpacingMM:       1.0,
		DotDiameterMM:   1.0,
		DotHeightMM:     0.4,
		BaseThicknessMM: 0.6,
		Segments:        12,
	}
	if _, err := Run(opts); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	tests := []struct {
		file       string
		wantFacets int
	}{
		{"base.stl", 12},  // closed slab
		{"red.stl", 96},   // two dots at 4*12 triangles each
		{"blue.stl", 48},  // one surviving dot
	}
	for _, tt := range tests {
		data, err := os.ReadFile(filepath.Join(outDir, tt.file))
		if err != nil {
			t.Fatalf("failed to read %s: %v", tt.file, err)
		}
		if got := strings.Count(string(data), "facet normal"); got != tt.wantFacets {
			t.Errorf("%s: %d facets, want %d", tt.file, got, tt.wantFacets)
		}
	}
}

func TestRun_MetadataContents(t *testing.T) {
	imagePath, palettePath := writeTestInputs(t)
	outDir := filepath.Join(t.TempDir(), "out")

	opts := Options{
		ImagePath:       imagePath,
		PalettePath:     palettePath,
		OutDir:          outDir,
		Colors:          []string{"red", "blue"},
		WidthMM:         2.0,
		SpacingMM:       1.0,
		DotDiameterMM:   1.0,
		DotHeightMM:     0.4,
		BaseThicknessMM: 0.6,
		Segments:        12,
	}
	if _, err := Run(opts); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "metadata.json"))
	if err != nil {
		t.Fatalf("failed to read metadata.json: %v", err)
	}
	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		t.Fatalf("metadata.json is not valid JSON: %v", err)
	}

	if meta.Grid.Type != "hex_staggered" {
		t.Errorf("grid type = %q, want hex_staggered", meta.Grid.Type)
	}
	if meta.Grid.TrimmedDots != 1 {
		t.Errorf("trimmed_dots = %d, want 1", meta.Grid.TrimmedDots)
	}
	if meta.Coverage.TotalDots != 3 {
		t.Errorf("coverage.total_dots = %d, want 3", meta.Coverage.TotalDots)
	}
	if len(meta.Palette) != 2 || meta.Palette[0].Name != "Red" {
		t.Errorf("palette metadata = %+v, want Red then Blue", meta.Palette)
	}
	if meta.Palette[0].RGB != [3]uint8{255, 0, 0} {
		t.Errorf("Red rgb = %v, want [255 0 0]", meta.Palette[0].RGB)
	}
	if len(meta.STLFiles) != 3 {
		t.Errorf("stl_files has %d entries, want 3", len(meta.STLFiles))
	}
}

func TestRun_InvalidOptionsFailFast(t *testing.T) {
	opts := validOptions()
	opts.Segments = 1
	opts.ImagePath = "nonexistent.png"
	opts.PalettePath = "nonexistent.json"
	opts.OutDir = t.TempDir()

	_, err := Run(opts)
	if err == nil || !strings.Contains(err.Error(), "segments") {
		t.Errorf("error = %v, want segments validation before any file access", err)
	}
}

func TestRun_UnknownColorSelection(t *testing.T) {
	imagePath, palettePath := writeTestInputs(t)

	opts := validOptions()
	opts.ImagePath = imagePath
	opts.PalettePath = palettePath
	opts.OutDir = t.TempDir()
	opts.Colors = []string{"Chartreuse"}

	if _, err := Run(opts); err == nil {
		t.Error("expected error when selection matches no palette entries")
	}
}
