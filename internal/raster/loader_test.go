package raster

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG writes a gradient PNG and returns its path.
func writeTestPNG(t *testing.T, width, height int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create temp image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode temp image: %v", err)
	}
	return path
}

func TestOpen(t *testing.T) {
	path := writeTestPNG(t, 80, 60)

	r, err := Open(path, 0)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if r.Width != 80 || r.Height != 60 {
		t.Errorf("dimensions: got %dx%d, want 80x60", r.Width, r.Height)
	}
	if err := r.Validate(); err != nil {
		t.Errorf("loaded raster invalid: %v", err)
	}
}

func TestOpen_FitDownscales(t *testing.T) {
	path := writeTestPNG(t, 200, 100)

	r, err := Open(path, 50)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if r.Width != 50 {
		t.Errorf("width = %d, want 50 after fitting the longest side", r.Width)
	}
	if r.Height != 25 {
		t.Errorf("height = %d, want 25 to preserve aspect ratio", r.Height)
	}
}

func TestOpen_FitLeavesSmallImagesAlone(t *testing.T) {
	path := writeTestPNG(t, 40, 30)

	r, err := Open(path, 100)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if r.Width != 40 || r.Height != 30 {
		t.Errorf("dimensions changed: got %dx%d, want 40x30", r.Width, r.Height)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.png"), 0); err == nil {
		t.Error("Open succeeded on a missing file")
	}
}
