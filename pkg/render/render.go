// Package render drives the sampler and quantizer across an image grid,
// producing one glyph per cell and one line per output row.
package render

import (
	"io"
	"math"
	"strings"

	"github.com/eddieibarra4242/ascii-image/pkg/luma"
	"github.com/eddieibarra4242/ascii-image/pkg/raster"
)

// DefaultTrailingSpaces is the default number of virtual blank slots
// appended to the ramp index space.
const DefaultTrailingSpaces = 9

// DefaultFontRatio is the default width:height correction for monospace
// character cells, 1:2.
const DefaultFontRatio = 0.5

// Options holds the resolved rendering parameters.
type Options struct {
	// Model is the brightness model applied per pixel.
	Model luma.Model

	// Invert skips the brightness complement, so dark source regions map
	// to the dense end of the ramp.
	Invert bool

	// TrailingSpaces is the number of virtual blank slots past the ramp.
	TrailingSpaces int

	// Columns and Rows select the target output grid. When both are zero
	// the renderer steps by fixed pixel increments instead; when one is
	// zero it is derived from the image aspect ratio with ceiling
	// rounding, so every source pixel stays covered.
	Columns int
	Rows    int

	// FontRatio is the character cell width:height correction applied to
	// cell height in grid mode. Zero means DefaultFontRatio.
	FontRatio float64

	// StepX and StepY are the pixel increments used in fixed-step mode.
	// Zero means 1, one output cell per source pixel.
	StepX int
	StepY int

	// Ramp overrides the built-in density ramp when non-empty.
	Ramp Ramp
}

// normalized returns a copy of the options with zero values replaced by
// their defaults.
func (o Options) normalized() Options {
	if o.Ramp == "" {
		o.Ramp = DefaultRamp
	}
	if o.FontRatio <= 0 {
		o.FontRatio = DefaultFontRatio
	}
	if o.StepX <= 0 {
		o.StepX = 1
	}
	if o.StepY <= 0 {
		o.StepY = 1
	}
	if o.TrailingSpaces < 0 {
		o.TrailingSpaces = 0
	}
	return o
}

// ResolveGrid derives concrete positive column and row counts from the
// requested grid and the image dimensions. A zero count is derived from
// the other via the image aspect ratio, rounded up; with both zero the
// grid is one cell per source pixel.
func ResolveGrid(columns, rows, width, height int) (int, int) {
	switch {
	case columns == 0 && rows == 0:
		return width, height
	case columns == 0:
		return int(math.Ceil(float64(rows) * float64(width) / float64(height))), rows
	case rows == 0:
		return columns, int(math.Ceil(float64(columns) * float64(height) / float64(width)))
	default:
		return columns, rows
	}
}

// Render converts the buffer to ASCII art and returns it as a string.
func Render(buf *raster.Buffer, opts Options) string {
	var sb strings.Builder
	// strings.Builder writes cannot fail
	_ = RenderTo(&sb, buf, opts)
	return sb.String()
}

// RenderTo writes ASCII art for the buffer directly to the writer, one
// line per output row. With an explicit column or row target it walks a
// real-valued cell grid; otherwise it steps by fixed pixel increments.
func RenderTo(w io.Writer, buf *raster.Buffer, opts Options) error {
	opts = opts.normalized()
	if opts.Columns > 0 || opts.Rows > 0 {
		return renderGrid(w, buf, opts)
	}
	return renderFixed(w, buf, opts)
}

// renderFixed samples integer-aligned rectangles of a constant step size.
func renderFixed(w io.Writer, buf *raster.Buffer, opts Options) error {
	stepW := float64(opts.StepX)
	stepH := float64(opts.StepY)

	line := make([]byte, 0, buf.Width/opts.StepX+2)
	for y := 0; y < buf.Height; y += opts.StepY {
		line = line[:0]
		for x := 0; x < buf.Width; x += opts.StepX {
			quad := raster.Quad{X: float64(x), Y: float64(y), W: stepW, H: stepH}
			brightness := buf.AverageBrightness(quad, opts.Model)
			line = append(line, opts.Ramp.Glyph(brightness, opts.TrailingSpaces, opts.Invert))
		}
		line = append(line, '\n')
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}

// renderGrid emits exactly the resolved number of cells per axis. Cell
// origins advance by repeated real-valued addition of the cell size;
// trailing cells clamp against the image edge inside the sampler, so
// rounding in the division can neither drop coverage nor add cells.
func renderGrid(w io.Writer, buf *raster.Buffer, opts Options) error {
	columns, rows := ResolveGrid(opts.Columns, opts.Rows, buf.Width, buf.Height)

	cellW := float64(buf.Width) / float64(columns)
	cellH := float64(buf.Height) / (float64(rows) * opts.FontRatio)

	line := make([]byte, 0, columns+1)
	y := 0.0
	for row := 0; row < rows; row++ {
		line = line[:0]
		x := 0.0
		for col := 0; col < columns; col++ {
			quad := raster.Quad{X: x, Y: y, W: cellW, H: cellH}
			brightness := buf.AverageBrightness(quad, opts.Model)
			line = append(line, opts.Ramp.Glyph(brightness, opts.TrailingSpaces, opts.Invert))
			x += cellW
		}
		line = append(line, '\n')
		if _, err := w.Write(line); err != nil {
			return err
		}
		y += cellH
	}
	return nil
}
