package main

import (
	"fmt"
	"os"
	"strings"

	"pointil/internal/pipeline"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Version is set by ldflags during release builds.
var Version = "dev"

var (
	widthMM         float64
	spacingMM       float64
	dotMM           float64
	dotHeightMM     float64
	baseThicknessMM float64
	segments        int
	colors          string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pointil [image] [palette] [out-dir]",
		Short: "Generate a pointillist dot-pattern fabrication plan from an image",
		Long: "pointil quantizes an image to a filament palette with error-diffusion\n" +
			"dithering, lays the dots out on a staggered hexagonal grid in millimeters,\n" +
			"and writes SVG, STL, and metadata artifacts for CAD/slicer tooling.\n\n" +
			"The palette file is either a JSON array of {name, hex} objects or a\n" +
			"Markdown table with Name and Hex columns.",
		Args: cobra.MaximumNArgs(3),
		Run:  run,
	}

	rootCmd.Flags().Float64Var(&widthMM, "width-mm", 180.0, "Physical width of the print in mm")
	rootCmd.Flags().Float64Var(&spacingMM, "spacing-mm", 0.8, "Dot center-to-center spacing in mm")
	rootCmd.Flags().Float64Var(&dotMM, "dot-mm", 0.8, "Dot diameter in mm")
	rootCmd.Flags().Float64Var(&dotHeightMM, "dot-height-mm", 0.4, "Dot height above the base in mm")
	rootCmd.Flags().Float64Var(&baseThicknessMM, "base-thickness-mm", 0.6, "Base tile thickness in mm")
	rootCmd.Flags().IntVar(&segments, "segments", 12, "Angular segments per dot cylinder (min 3; lower = fewer triangles)")
	rootCmd.Flags().StringVar(&colors, "colors", "Sky Blue,Scarlet Red,Lemon Yellow,Charcoal",
		"Comma-separated palette color names to use (case-insensitive, empty = all)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("pointil version %s\n", Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	imagePath := "sailboat.jpg"
	palettePath := "bambu-pla-matte-hex-codes.md"
	outDir := "out"
	if len(args) > 0 {
		imagePath = args[0]
	}
	if len(args) > 1 {
		palettePath = args[1]
	}
	if len(args) > 2 {
		outDir = args[2]
	}

	var selected []string
	for _, c := range strings.Split(colors, ",") {
		if c = strings.TrimSpace(c); c != "" {
			selected = append(selected, c)
		}
	}

	opts := pipeline.Options{
		ImagePath:       imagePath,
		PalettePath:     palettePath,
		OutDir:          outDir,
		Colors:          selected,
		WidthMM:         widthMM,
		SpacingMM:       spacingMM,
		DotDiameterMM:   dotMM,
		DotHeightMM:     dotHeightMM,
		BaseThicknessMM: baseThicknessMM,
		Segments:        segments,
	}

	cyan.Println("pointil — pointillist fabrication plan")
	fmt.Printf("  image:   %s\n", imagePath)
	fmt.Printf("  palette: %s\n", palettePath)
	fmt.Printf("  output:  %s\n", outDir)

	result, err := pipeline.Run(opts)
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("  grid:     %d x %d cells\n", result.PixelWidth, result.PixelHeight)
	fmt.Printf("  extents:  %.1f x %.1f mm\n", result.UsedWidthMM, result.UsedHeightMM)
	fmt.Printf("  dots:     %d (%d trimmed at edges)\n", result.TotalDots, result.TrimmedDots)
	fmt.Printf("  coverage: %.2f%%\n", result.Coverage.Percent)
	fmt.Printf("  parts:    %d STL files\n", len(result.MeshFiles))

	green.Printf("Wrote artifacts to %s\n", outDir)
}
