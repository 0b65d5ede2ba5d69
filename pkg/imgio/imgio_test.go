package imgio

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// encodeTestPNG builds a small image and returns it PNG-encoded
func encodeTestPNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.NRGBA{uint8(x * 40), uint8(y * 40), 128, 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.png")
	if err := os.WriteFile(path, encodeTestPNG(t, 6, 4), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 6 || bounds.Dy() != 4 {
		t.Errorf("Expected 6x4 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadUndecodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error for undecodable data")
	}
}

func TestDecode(t *testing.T) {
	img, err := Decode(bytes.NewReader(encodeTestPNG(t, 3, 3)))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if img.Bounds().Dx() != 3 {
		t.Errorf("Expected width 3, got %d", img.Bounds().Dx())
	}
}

func TestDecodeBytesUnknownFormat(t *testing.T) {
	if _, err := DecodeBytes([]byte{0x00, 0x01, 0x02}); err == nil {
		t.Error("Expected error for unknown format")
	}
}
