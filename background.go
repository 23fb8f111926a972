package chroma

import (
	"fmt"
	"image"
	_ "image/jpeg" // background plate decoding
	_ "image/png"  // background plate decoding
	"os"

	"golang.org/x/image/draw"
)

// LoadBackground reads a background plate image (PNG or JPEG) and
// scales it to the given frame dimensions. The plate is uploaded to
// the GPU once per run and composited behind the keyed subject.
func LoadBackground(path string, width, height int) (*Pixmap, error) {
	f, err := os.Open(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("chroma: open background %q: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("chroma: decode background %q: %w", path, err)
	}

	return scaleToPixmap(img, width, height), nil
}

// scaleToPixmap resamples img to width x height. Bilinear matches the
// linear texture filtering the GPU would otherwise apply.
func scaleToPixmap(img image.Image, width, height int) *Pixmap {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	pm := NewPixmap(width, height)
	copy(pm.data, dst.Pix)
	return pm
}
