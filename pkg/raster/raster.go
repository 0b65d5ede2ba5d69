// Package raster holds the decoded pixel buffer and the region sampler
// that averages brightness over rectangular blocks of it.
package raster

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/eddieibarra4242/ascii-image/pkg/luma"
)

// Pixel is an 8-bit RGB triple. Alpha is dropped at buffer construction.
type Pixel struct {
	R uint8
	G uint8
	B uint8
}

// Buffer is an immutable row-major pixel grid with explicit dimensions.
// Pixels are indexed as x + y*Width.
type Buffer struct {
	Pix    []Pixel
	Width  int
	Height int
}

// Quad is an axis-aligned sample rectangle over image coordinates.
// Bounds may be fractional and may extend past the buffer edges.
type Quad struct {
	X float64
	Y float64
	W float64
	H float64
}

// FromImage flattens any decoded image into an owned RGB buffer.
// imaging.Clone normalizes the source to a zero-origin NRGBA grid, so the
// conversion is a straight copy dropping the alpha channel.
func FromImage(img image.Image) *Buffer {
	nrgba := imaging.Clone(img)
	bounds := nrgba.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	buf := &Buffer{
		Pix:    make([]Pixel, w*h),
		Width:  w,
		Height: h,
	}
	for i := range buf.Pix {
		buf.Pix[i] = Pixel{
			R: nrgba.Pix[i*4],
			G: nrgba.Pix[i*4+1],
			B: nrgba.Pix[i*4+2],
		}
	}
	return buf
}

// At returns the pixel at (x, y). The caller must keep coordinates in bounds.
func (b *Buffer) At(x, y int) Pixel {
	return b.Pix[x+y*b.Width]
}

// AverageBrightness averages per-pixel brightness under the model over the
// pixels whose integer coordinates fall inside the quad intersected with
// the buffer. Quad bounds are truncated to integers, not rounded. A quad
// covering no pixels yields 0 rather than an error.
func (b *Buffer) AverageBrightness(q Quad, model luma.Model) float64 {
	x0 := int(q.X)
	y0 := int(q.Y)
	x1 := int(q.X + q.W)
	y1 := int(q.Y + q.H)

	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > b.Width {
		x1 = b.Width
	}
	if y1 > b.Height {
		y1 = b.Height
	}

	sum := 0.0
	count := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p := b.Pix[x+y*b.Width]
			sum += model.Brightness(p.R, p.G, p.B)
			count++
		}
	}

	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
