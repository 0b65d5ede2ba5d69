// Package luma implements the brightness models used to turn RGB pixels
// into a single luminance value in [0, 1].
package luma

import "math"

// Model selects the brightness weighting formula applied to a pixel.
type Model int

const (
	// Standard is a Rec. 709 style linear weighted sum.
	Standard Model = iota
	// PerceivedFast is a linear weighted sum with perceptual weights,
	// cheaper to compute than Perceived.
	PerceivedFast
	// Perceived is the root-sum-of-squares perceptual approximation.
	Perceived
)

// Rec. 709 style channel weights
const (
	redWeight   = 0.2126
	greenWeight = 0.7152
	blueWeight  = 0.0722
)

// Perceptual channel weights, shared by PerceivedFast and Perceived
const (
	redWeightPerc   = 0.299
	greenWeightPerc = 0.587
	blueWeightPerc  = 0.114
)

const lumaMax = 255

// Select resolves the model from the CLI flags. The fast perceived flag
// takes priority over the perceived flag; with neither set the standard
// model is used. Conflicting flags are not an error.
func Select(fast, perceived bool) Model {
	switch {
	case fast:
		return PerceivedFast
	case perceived:
		return Perceived
	default:
		return Standard
	}
}

// Brightness computes the luminance of an RGB pixel under the model.
// The result is in [0, 1] for any channel values.
func (m Model) Brightness(r, g, b uint8) float64 {
	rf := float64(r)
	gf := float64(g)
	bf := float64(b)

	switch m {
	case PerceivedFast:
		return (redWeightPerc*rf + greenWeightPerc*gf + blueWeightPerc*bf) / lumaMax
	case Perceived:
		return math.Sqrt(redWeightPerc*rf*rf+greenWeightPerc*gf*gf+blueWeightPerc*bf*bf) / lumaMax
	default:
		return (redWeight*rf + greenWeight*gf + blueWeight*bf) / lumaMax
	}
}

// String returns the model name.
func (m Model) String() string {
	switch m {
	case PerceivedFast:
		return "perceived-fast"
	case Perceived:
		return "perceived"
	default:
		return "standard"
	}
}
