package render

// Ramp is an ordered sequence of glyphs from most to least ink-dense,
// indexed by quantized brightness.
type Ramp string

// DefaultRamp is the built-in density ramp. Trailing blank output comes
// from the virtual index space past the end, never from the ramp itself.
const DefaultRamp Ramp = "@QB#NgWM8RDHdOKq9$6khEPXwmeZaoS2yjufF]}{tx1zv7lciL/\\|?*>r^;:_\"~,'.-`"

// Glyph quantizes a brightness value into a ramp character. Unless invert
// is set the brightness is complemented first. The index space is the ramp
// length extended by trailing virtual blank slots, using the inclusive
// L+T-1 multiplier; indexes past the ramp produce a space.
func (r Ramp) Glyph(brightness float64, trailing int, invert bool) byte {
	if !invert {
		brightness = 1 - brightness
	}

	index := int(brightness * float64(len(r)+trailing-1))
	if index < 0 {
		index = 0
	}
	if index >= len(r) {
		return ' '
	}
	return r[index]
}
