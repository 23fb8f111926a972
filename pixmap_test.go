package chroma

import (
	"image"
	"os"
	"path/filepath"
	"testing"
)

func TestFromFrameRGB(t *testing.T) {
	// 2x1 RGB frame: red pixel, blue pixel.
	data := []uint8{255, 0, 0, 0, 0, 255}
	pm := FromFrame(data, 2, 1, 3)

	r, g, b, a := pm.Pixel(0, 0)
	if r != 255 || g != 0 || b != 0 || a != 255 {
		t.Errorf("pixel (0,0) = %d,%d,%d,%d, want opaque red", r, g, b, a)
	}
	r, g, b, a = pm.Pixel(1, 0)
	if r != 0 || g != 0 || b != 255 || a != 255 {
		t.Errorf("pixel (1,0) = %d,%d,%d,%d, want opaque blue", r, g, b, a)
	}
}

func TestFromFrameRGBA(t *testing.T) {
	data := []uint8{10, 20, 30, 40}
	pm := FromFrame(data, 1, 1, 4)

	r, g, b, a := pm.Pixel(0, 0)
	if r != 10 || g != 20 || b != 30 || a != 40 {
		t.Errorf("pixel = %d,%d,%d,%d, want 10,20,30,40", r, g, b, a)
	}
}

// A marker written at the last row (the GPU's bottom-to-top readback
// places source row 0 there) must land on row 0 after the flip.
func TestFlipVerticalMarker(t *testing.T) {
	pm := NewPixmap(4, 3)
	pm.SetPixel(2, 2, 255, 255, 255, 255)

	pm.FlipVertical()

	if _, _, _, a := pm.Pixel(2, 0); a != 255 {
		t.Error("marker did not move to row 0 after flip")
	}
	if _, _, _, a := pm.Pixel(2, 2); a != 0 {
		t.Error("marker still present at the last row after flip")
	}
}

func TestFlipVerticalTwiceRestores(t *testing.T) {
	pm := NewPixmap(2, 4)
	for y := 0; y < 4; y++ {
		pm.SetPixel(0, y, uint8(y), 0, 0, 255)
	}
	orig := make([]uint8, len(pm.Data()))
	copy(orig, pm.Data())

	pm.FlipVertical()
	pm.FlipVertical()

	for i, v := range pm.Data() {
		if v != orig[i] {
			t.Fatalf("byte %d changed after double flip: %d != %d", i, v, orig[i])
		}
	}
}

func TestAlphaRange(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.SetPixel(0, 0, 0, 0, 0, 10)
	pm.SetPixel(1, 1, 0, 0, 0, 200)

	min, max := pm.AlphaRange()
	if min != 0 || max != 200 {
		t.Errorf("AlphaRange() = %d,%d, want 0,200", min, max)
	}
}

func TestPixelOutOfBounds(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.SetPixel(-1, 0, 1, 1, 1, 1) // must not panic
	pm.SetPixel(0, 5, 1, 1, 1, 1)

	if r, g, b, a := pm.Pixel(9, 9); r|g|b|a != 0 {
		t.Error("out-of-bounds Pixel should return zeros")
	}
}

func TestSavePNGPreservesAlpha(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.SetPixel(0, 0, 100, 150, 200, 128)

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open saved png: %v", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		t.Fatalf("decode saved png: %v", err)
	}
	_, _, _, a := img.At(0, 0).RGBA()
	if a == 0 || a == 0xffff {
		t.Errorf("alpha = %d, want partial alpha preserved", a)
	}
}

func TestPixmapBounds(t *testing.T) {
	pm := NewPixmap(3, 2)
	if got := pm.Bounds(); got != image.Rect(0, 0, 3, 2) {
		t.Errorf("Bounds() = %v", got)
	}
}
