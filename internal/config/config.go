// Package config resolves the effective conversion configuration from
// command-line input.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eddieibarra4242/ascii-image/pkg/luma"
	"github.com/eddieibarra4242/ascii-image/pkg/render"
)

// Config holds the resolved conversion settings. It is built once and
// never mutated afterwards.
type Config struct {
	// InputPath is the image to convert.
	InputPath string

	// OutputPath is the destination file. Empty means standard output.
	OutputPath string

	// Model is the brightness model.
	Model luma.Model

	// Invert skips the brightness complement in the quantizer.
	Invert bool

	// TrailingSpaces is the number of virtual blank slots past the ramp.
	TrailingSpaces int

	// Columns and Rows are the requested output grid. Zero means not
	// requested; the renderer derives or falls back to fixed stepping.
	Columns int
	Rows    int

	// FontRatio is the character cell width:height correction.
	FontRatio float64
}

// Default returns a configuration with default values.
func Default() *Config {
	return &Config{
		Model:          luma.Standard,
		TrailingSpaces: render.DefaultTrailingSpaces,
		FontRatio:      render.DefaultFontRatio,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("input path is required")
	}

	if c.TrailingSpaces < 0 {
		return fmt.Errorf("trailing space count must not be negative")
	}

	if c.Columns < 0 || c.Rows < 0 {
		return fmt.Errorf("grid size must not be negative")
	}

	if c.FontRatio <= 0 {
		return fmt.Errorf("font ratio must be positive")
	}

	return nil
}

// Options returns the render options for the configuration.
func (c *Config) Options() render.Options {
	return render.Options{
		Model:          c.Model,
		Invert:         c.Invert,
		TrailingSpaces: c.TrailingSpaces,
		Columns:        c.Columns,
		Rows:           c.Rows,
		FontRatio:      c.FontRatio,
	}
}

// ParseRatio parses a font aspect ratio literal in "W:H" or "W/H" form
// and returns the ratio W/H. The second return value reports whether the
// literal was well formed; callers keep their prior default otherwise.
func ParseRatio(s string) (float64, bool) {
	sep := strings.IndexAny(s, ":/")
	if sep < 0 {
		return 0, false
	}

	w, werr := strconv.ParseFloat(s[:sep], 64)
	h, herr := strconv.ParseFloat(s[sep+1:], 64)
	if werr != nil || herr != nil || w <= 0 || h <= 0 {
		return 0, false
	}

	return w / h, true
}

// ParseCount parses a non-negative integer argument, falling back to def
// when the value is empty, malformed or negative.
func ParseCount(s string, def int) int {
	if s == "" {
		return def
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return def
	}
	return n
}
