package luma

import (
	"math"
	"testing"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name      string
		fast      bool
		perceived bool
		want      Model
	}{
		{"neither", false, false, Standard},
		{"perceived only", false, true, Perceived},
		{"fast only", true, false, PerceivedFast},
		{"fast wins over perceived", true, true, PerceivedFast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Select(tt.fast, tt.perceived); got != tt.want {
				t.Errorf("Select(%v, %v) = %v, want %v", tt.fast, tt.perceived, got, tt.want)
			}
		})
	}
}

func TestBrightnessExtremes(t *testing.T) {
	models := []Model{Standard, PerceivedFast, Perceived}

	for _, m := range models {
		if got := m.Brightness(0, 0, 0); got != 0 {
			t.Errorf("%v black brightness = %f, want 0", m, got)
		}

		if got := m.Brightness(255, 255, 255); math.Abs(got-1) > 1e-9 {
			t.Errorf("%v white brightness = %f, want 1", m, got)
		}
	}
}

func TestStandardWeights(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    float64
	}{
		{"pure red", 255, 0, 0, 0.2126},
		{"pure green", 0, 255, 0, 0.7152},
		{"pure blue", 0, 0, 255, 0.0722},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Standard.Brightness(tt.r, tt.g, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Brightness(%d, %d, %d) = %f, want %f", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestPerceivedWeights(t *testing.T) {
	got := PerceivedFast.Brightness(255, 0, 0)
	if math.Abs(got-0.299) > 1e-9 {
		t.Errorf("PerceivedFast pure red = %f, want 0.299", got)
	}

	// The exact form uses the same weight set, so sqrt(0.299) on pure red.
	got = Perceived.Brightness(255, 0, 0)
	if math.Abs(got-math.Sqrt(0.299)) > 1e-9 {
		t.Errorf("Perceived pure red = %f, want %f", got, math.Sqrt(0.299))
	}
}

func TestPerceivedAgreesOnGrey(t *testing.T) {
	// For grey pixels the root-sum-of-squares form collapses to the linear one.
	for _, v := range []uint8{0, 1, 77, 128, 200, 255} {
		fast := PerceivedFast.Brightness(v, v, v)
		exact := Perceived.Brightness(v, v, v)
		if math.Abs(fast-exact) > 1e-9 {
			t.Errorf("grey %d: fast = %f, exact = %f", v, fast, exact)
		}
	}
}

func TestBrightnessRange(t *testing.T) {
	models := []Model{Standard, PerceivedFast, Perceived}

	for _, m := range models {
		for _, px := range [][3]uint8{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}, {13, 200, 99}} {
			got := m.Brightness(px[0], px[1], px[2])
			if got < 0 || got > 1 {
				t.Errorf("%v brightness of %v = %f, outside [0, 1]", m, px, got)
			}
		}
	}
}
