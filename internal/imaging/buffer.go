package imaging

import (
	"fmt"
	"image"

	"pointil/internal/palette"
)

// Buffer is a mutable, row-major grid of RGB pixels.
//
// It is the working representation for the dithering pass: pixels are
// read, overwritten with their palette match, and adjusted by diffused
// quantization error, all in place. Dimensions are fixed at creation
// and are always at least 1x1.
type Buffer struct {
	width  int
	height int
	pix    []palette.Color
}

// NewBuffer creates a zeroed (black) buffer of the given dimensions.
func NewBuffer(width, height int) (*Buffer, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("buffer dimensions must be at least 1x1, got %dx%d", width, height)
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]palette.Color, width*height),
	}, nil
}

// FromImage converts a decoded image into a Buffer, discarding alpha.
//
// Native 16-bit channels are scaled down to 8 bits by right-shifting,
// matching the rest of the pipeline's 8-bit color model.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	b := &Buffer{
		width:  bounds.Dx(),
		height: bounds.Dy(),
		pix:    make([]palette.Color, bounds.Dx()*bounds.Dy()),
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			b.pix[i] = palette.Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8)}
			i++
		}
	}
	return b
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// At returns the pixel at (x, y). Coordinates are 0-based with the
// origin at the top-left; callers must stay in bounds.
func (b *Buffer) At(x, y int) palette.Color {
	return b.pix[y*b.width+x]
}

// Set overwrites the pixel at (x, y).
func (b *Buffer) Set(x, y int, c palette.Color) {
	b.pix[y*b.width+x] = c
}

// Clone returns an independent copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	pix := make([]palette.Color, len(b.pix))
	copy(pix, b.pix)
	return &Buffer{width: b.width, height: b.height, pix: pix}
}

// Image renders the buffer as a fully opaque NRGBA image, ready for
// PNG encoding.
func (b *Buffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.At(x, y)
			off := img.PixOffset(x, y)
			img.Pix[off] = c.R
			img.Pix[off+1] = c.G
			img.Pix[off+2] = c.B
			img.Pix[off+3] = 0xFF
		}
	}
	return img
}
