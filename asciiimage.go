// Package asciiimage converts raster images into ASCII art.
//
// An image is partitioned into a grid of sample cells; each cell's average
// brightness under a selectable luminance model is quantized into a glyph
// from a fixed density ramp, producing one character per cell and one line
// per row.
//
// Basic usage:
//
//	package main
//
//	import (
//		"log"
//		"os"
//
//		asciiimage "github.com/eddieibarra4242/ascii-image"
//		"github.com/eddieibarra4242/ascii-image/pkg/render"
//	)
//
//	func main() {
//		opts := render.Options{
//			Columns:        80,
//			TrailingSpaces: render.DefaultTrailingSpaces,
//		}
//		if err := asciiimage.ConvertFile("photo.jpg", os.Stdout, opts); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// The package consists of four components:
//
// 1. Luminance models (pkg/luma): per-pixel brightness formulas
// 2. Raster buffer and sampler (pkg/raster): block brightness averaging
// 3. Renderer (pkg/render): grid walking, quantization and output
// 4. Decoding (pkg/imgio): image file loading with WebP support
package asciiimage

import (
	"fmt"
	"image"
	"io"

	"github.com/eddieibarra4242/ascii-image/pkg/imgio"
	"github.com/eddieibarra4242/ascii-image/pkg/raster"
	"github.com/eddieibarra4242/ascii-image/pkg/render"
)

// Version of the ascii-image library
const Version = "1.0.0"

// Convert renders a decoded image to ASCII art and returns it as a string.
func Convert(img image.Image, opts render.Options) string {
	return render.Render(raster.FromImage(img), opts)
}

// ConvertTo renders a decoded image to ASCII art, writing it to w.
func ConvertTo(w io.Writer, img image.Image, opts render.Options) error {
	return render.RenderTo(w, raster.FromImage(img), opts)
}

// ConvertFile loads the image at path, renders it and writes the art to w.
func ConvertFile(path string, w io.Writer, opts render.Options) error {
	img, err := imgio.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	return ConvertTo(w, img, opts)
}

// ConvertReader decodes image data from r, renders it and writes the art
// to w.
func ConvertReader(r io.Reader, w io.Writer, opts render.Options) error {
	img, err := imgio.Decode(r)
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}
	return ConvertTo(w, img, opts)
}
