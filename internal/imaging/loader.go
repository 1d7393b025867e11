package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
)

// Open decodes an image file from disk. PNG and JPEG are supported.
func Open(path string) (image.Image, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	return img, nil
}

// SavePNG writes an image to disk as PNG.
func SavePNG(path string, img image.Image) error {
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
