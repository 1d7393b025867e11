package hexgrid

import "math"

// Coverage summarizes how much of the used print area the dots occupy.
// The fraction is a proxy for visual density and filament usage.
type Coverage struct {
	TotalDots       int     `json:"total_dots"`
	DotAreaMM2      float64 `json:"dot_area_mm2"`
	CoverageAreaMM2 float64 `json:"coverage_area_mm2"`
	Fraction        float64 `json:"coverage_fraction"`
	Percent         float64 `json:"coverage_percent"`
}

// ComputeCoverage derives coverage statistics for totalDots dots of the
// given diameter over a usedWidth x usedHeight millimeter area.
//
// The fraction is totalDots * pi * r^2 divided by the used area. A
// degenerate (zero or negative) area counts as 1 mm^2 so the result
// stays finite.
func ComputeCoverage(totalDots int, dotDiameterMM, usedWidthMM, usedHeightMM float64) Coverage {
	radius := dotDiameterMM / 2
	dotArea := math.Pi * radius * radius

	totalArea := usedWidthMM * usedHeightMM
	if totalArea <= 0 {
		totalArea = 1
	}

	covered := float64(totalDots) * dotArea
	fraction := covered / totalArea

	return Coverage{
		TotalDots:       totalDots,
		DotAreaMM2:      dotArea,
		CoverageAreaMM2: covered,
		Fraction:        fraction,
		Percent:         fraction * 100,
	}
}
