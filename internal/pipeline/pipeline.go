package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"pointil/internal/hexgrid"
	"pointil/internal/imaging"
	"pointil/internal/mesh"
	"pointil/internal/palette"
	"pointil/internal/vector"
)

// Options holds everything a run needs. All physical dimensions are in
// millimeters.
type Options struct {
	ImagePath   string
	PalettePath string
	OutDir      string

	// Colors selects palette entries by name (case-insensitive).
	// Empty means the whole palette.
	Colors []string

	WidthMM         float64 // target physical print width
	SpacingMM       float64 // horizontal dot center-to-center spacing
	DotDiameterMM   float64 // printed dot diameter
	DotHeightMM     float64 // dot extrusion height above the base
	BaseThicknessMM float64 // base slab thickness
	Segments        int     // angular segments per dot cylinder
}

// Validate rejects configurations that would produce degenerate
// geometry. It runs before any file or image work so bad input fails
// fast.
func (o *Options) Validate() error {
	switch {
	case o.WidthMM <= 0:
		return fmt.Errorf("width must be positive, got %g", o.WidthMM)
	case o.SpacingMM <= 0:
		return fmt.Errorf("spacing must be positive, got %g", o.SpacingMM)
	case o.DotDiameterMM <= 0:
		return fmt.Errorf("dot diameter must be positive, got %g", o.DotDiameterMM)
	case o.DotHeightMM <= 0:
		return fmt.Errorf("dot height must be positive, got %g", o.DotHeightMM)
	case o.BaseThicknessMM <= 0:
		return fmt.Errorf("base thickness must be positive, got %g", o.BaseThicknessMM)
	case o.Segments < 3:
		return fmt.Errorf("segments must be at least 3, got %d", o.Segments)
	}
	return nil
}

// Result summarizes a completed run for callers that want to report
// progress without re-reading metadata.json.
type Result struct {
	PixelWidth   int
	PixelHeight  int
	TotalDots    int
	TrimmedDots  int
	UsedWidthMM  float64
	UsedHeightMM float64
	Coverage     hexgrid.Coverage
	// MeshFiles maps part name (base or color slug) to the STL
	// filename written in OutDir.
	MeshFiles map[string]string
}

// Run executes the full pipeline: load palette and image, resize to
// grid resolution, dither, map to the hex lattice, and write every
// artifact into opts.OutDir:
//
//   - dithered.png: the palette-quantized image
//   - mask_<slug>.png: per-color binary reference masks
//   - dots.svg: the 2D drawing
//   - base.stl and <slug>.stl: the printable solids
//   - metadata.json: parameters, extents, coverage, and file map
//
// The pipeline is a strict sequential chain; only per-color mesh
// generation runs concurrently, since each color's triangles depend
// solely on its own points.
func Run(opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	pal, err := palette.LoadFile(opts.PalettePath)
	if err != nil {
		return nil, err
	}
	pal, err = pal.Filter(opts.Colors)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	img, err := imaging.Open(opts.ImagePath)
	if err != nil {
		return nil, err
	}

	buf := imaging.ResizeToGrid(img, opts.WidthMM, opts.SpacingMM)
	quantized, grid, err := imaging.Dither(buf, pal)
	if err != nil {
		return nil, err
	}

	if err := imaging.SavePNG(filepath.Join(opts.OutDir, "dithered.png"), quantized.Image()); err != nil {
		return nil, err
	}

	layout := hexgrid.Layout{SpacingMM: opts.SpacingMM, DotDiameterMM: opts.DotDiameterMM}
	set := hexgrid.Map(grid, layout)

	if err := writeMasks(set, pal, opts.OutDir); err != nil {
		return nil, err
	}

	usedW := set.UsedWidth()
	usedH := set.UsedHeight()

	svg := vector.Document(set, pal, usedW, usedH)
	if err := os.WriteFile(filepath.Join(opts.OutDir, "dots.svg"), []byte(svg), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write dots.svg: %w", err)
	}

	meshFiles, err := writeMeshes(set, pal, usedW, usedH, opts)
	if err != nil {
		return nil, err
	}

	coverage := hexgrid.ComputeCoverage(set.TotalDots(), opts.DotDiameterMM, usedW, usedH)

	result := &Result{
		PixelWidth:   quantized.Width(),
		PixelHeight:  quantized.Height(),
		TotalDots:    set.TotalDots(),
		TrimmedDots:  set.Trimmed,
		UsedWidthMM:  usedW,
		UsedHeightMM: usedH,
		Coverage:     coverage,
		MeshFiles:    meshFiles,
	}

	if err := writeMetadata(opts, pal, set, result); err != nil {
		return nil, err
	}
	return result, nil
}

// writeMeshes builds and writes the base slab plus one dot solid per
// palette color. Solids are built concurrently; files are written
// sequentially afterwards so failures surface in a stable order.
func writeMeshes(set *hexgrid.CoordinateSet, pal palette.Palette, usedW, usedH float64, opts Options) (map[string]string, error) {
	base := mesh.NewSolid("base")
	base.AddBox(0, 0, usedW, usedH, 0, opts.BaseThicknessMM)

	z0 := opts.BaseThicknessMM
	z1 := opts.BaseThicknessMM + opts.DotHeightMM
	radius := set.Layout.Radius()

	solids := make([]*mesh.Solid, len(pal))
	var wg sync.WaitGroup
	for i, e := range pal {
		wg.Add(1)
		go func(i int, e palette.Entry) {
			defer wg.Done()
			s := mesh.NewSolid(palette.Slugify(e.Name))
			for _, p := range set.Points[e.Name] {
				s.AddCylinder(p.X, p.Y, radius, z0, z1, opts.Segments)
			}
			solids[i] = s
		}(i, e)
	}
	wg.Wait()

	files := make(map[string]string, len(solids)+1)
	for _, s := range append([]*mesh.Solid{base}, solids...) {
		filename := s.Name + ".stl"
		f, err := os.Create(filepath.Join(opts.OutDir, filename))
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", filename, err)
		}
		if err := mesh.WriteASCII(f, s); err != nil {
			f.Close()
			return nil, err
		}
		if err := f.Close(); err != nil {
			return nil, fmt.Errorf("failed to close %s: %w", filename, err)
		}
		files[s.Name] = filename
	}
	return files, nil
}
