package chroma

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap is a rectangular RGBA pixel buffer, 4 bytes per pixel, rows
// stored top-to-bottom. Decoded frames are converted into a Pixmap
// before GPU upload, and rendered frames come back as a Pixmap.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a zeroed (fully transparent) pixmap.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// FromFrame builds a pixmap from packed decoder output. Decoders
// supply either 3-channel RGB or 4-channel RGBA; 3-channel input is
// expanded to RGBA with opaque alpha. The buffer length must be
// width*height*depth.
func FromFrame(data []uint8, width, height, depth int) *Pixmap {
	pm := NewPixmap(width, height)
	switch depth {
	case 4:
		copy(pm.data, data)
	case 3:
		for src, dst := 0, 0; src+2 < len(data); src, dst = src+3, dst+4 {
			pm.data[dst+0] = data[src+0]
			pm.data[dst+1] = data[src+1]
			pm.data[dst+2] = data[src+2]
			pm.data[dst+3] = 0xff
		}
	}
	return pm
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the RGBA value of a single pixel. Out-of-bounds
// coordinates are ignored.
func (p *Pixmap) SetPixel(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = r
	p.data[i+1] = g
	p.data[i+2] = b
	p.data[i+3] = a
}

// Pixel returns the RGBA value of a single pixel. Out-of-bounds
// coordinates return zero.
func (p *Pixmap) Pixel(x, y int) (r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0, 0, 0, 0
	}
	i := (y*p.width + x) * 4
	return p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3]
}

// FlipVertical reverses the row order in place. GPU readback arrives
// bottom-to-top; flipping restores the conventional top-left origin.
func (p *Pixmap) FlipVertical() {
	stride := p.width * 4
	tmp := make([]uint8, stride)
	for top, bot := 0, p.height-1; top < bot; top, bot = top+1, bot-1 {
		a := p.data[top*stride : (top+1)*stride]
		b := p.data[bot*stride : (bot+1)*stride]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}

// AlphaRange returns the minimum and maximum alpha value in the
// pixmap. Used for first-frame diagnostics.
func (p *Pixmap) AlphaRange() (min, max uint8) {
	if len(p.data) == 0 {
		return 0, 0
	}
	min, max = 0xff, 0
	for i := 3; i < len(p.data); i += 4 {
		a := p.data[i]
		if a < min {
			min = a
		}
		if a > max {
			max = a
		}
	}
	return min, max
}

// ToImage converts the pixmap to an image.NRGBA sharing no storage
// with the pixmap.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// SavePNG writes the pixmap to a PNG file, preserving alpha.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	r, g, b, a := p.Pixel(x, y)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

// Verify at compile time that Pixmap implements image.Image.
var _ image.Image = (*Pixmap)(nil)
