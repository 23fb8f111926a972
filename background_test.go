package chroma

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadBackgroundScalesToFrameSize(t *testing.T) {
	path := writeTestPlate(t, 8, 8, color.NRGBA{R: 200, G: 40, B: 40, A: 255})

	pm, err := LoadBackground(path, 4, 2)
	if err != nil {
		t.Fatalf("LoadBackground() = %v", err)
	}
	if pm.Width() != 4 || pm.Height() != 2 {
		t.Errorf("plate size = %dx%d, want 4x2", pm.Width(), pm.Height())
	}

	// A solid plate stays solid through the resampler.
	r, _, _, a := pm.Pixel(2, 1)
	if r < 190 || a != 255 {
		t.Errorf("pixel = r%d a%d, want solid red", r, a)
	}
}

func TestLoadBackgroundMissingFile(t *testing.T) {
	if _, err := LoadBackground(filepath.Join(t.TempDir(), "nope.png"), 4, 4); err == nil {
		t.Error("LoadBackground on a missing file should fail")
	}
}

func TestLoadBackgroundBadImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBackground(path, 4, 4); err == nil {
		t.Error("LoadBackground on a non-image should fail")
	}
}

func writeTestPlate(t *testing.T, w, h int, c color.NRGBA) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	path := filepath.Join(t.TempDir(), "plate.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}
