package imaging

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// ResizeToGrid resamples an image so that one pixel corresponds to one
// dot on the physical grid.
//
// The target pixel width is round(widthMM / spacingMM), so horizontal
// center-to-center dot spacing equals spacingMM. Height follows the
// source aspect ratio, rounded. Both dimensions are at least 1.
// Resampling uses a Lanczos filter.
//
// Spacing must be positive; the configuration layer validates this
// before any geometry work begins.
func ResizeToGrid(img image.Image, widthMM, spacingMM float64) *Buffer {
	bounds := img.Bounds()

	targetW := int(math.Round(widthMM / spacingMM))
	if targetW < 1 {
		targetW = 1
	}
	aspect := float64(bounds.Dy()) / float64(bounds.Dx())
	targetH := int(math.Round(float64(targetW) * aspect))
	if targetH < 1 {
		targetH = 1
	}

	return FromImage(imaging.Resize(img, targetW, targetH, imaging.Lanczos))
}
