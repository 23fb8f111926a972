package render

import "github.com/go-gl/gl/v3.3-core/gl"

// TextureSlot identifies one of the pipeline's textures. A fixed enum
// mapped to array slots keeps resource lookup well-typed; a missing
// texture is a compile-time impossibility.
type TextureSlot int

const (
	// TextureVideo holds the current frame, re-uploaded every frame.
	TextureVideo TextureSlot = iota

	// TextureBackground holds the optional background plate,
	// uploaded at most once per run.
	TextureBackground

	textureSlotCount
)

// String returns the slot name.
func (s TextureSlot) String() string {
	switch s {
	case TextureVideo:
		return "video"
	case TextureBackground:
		return "background"
	default:
		return "unknown"
	}
}

// TexturePool owns the pipeline's 2D texture handles, created lazily
// and reused across frames.
type TexturePool struct {
	handles [textureSlotCount]uint32
}

// NewTexturePool returns an empty pool; textures are allocated on
// first use.
func NewTexturePool() *TexturePool {
	return &TexturePool{}
}

// getOrCreate returns the slot's texture handle, allocating a 2D
// texture with clamp-to-edge wrapping and linear filtering on first
// use.
func (tp *TexturePool) getOrCreate(slot TextureSlot) uint32 {
	if tp.handles[slot] != 0 {
		return tp.handles[slot]
	}

	var handle uint32
	gl.GenTextures(1, &handle)
	gl.BindTexture(gl.TEXTURE_2D, handle)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	tp.handles[slot] = handle
	return handle
}

// Upload replaces the slot texture's full image content with the
// given RGBA/8-bit pixel buffer. Callers supply data already in RGBA
// order; the pool performs no channel reordering.
func (tp *TexturePool) Upload(slot TextureSlot, pixels []uint8, width, height int) {
	handle := tp.getOrCreate(slot)
	gl.BindTexture(gl.TEXTURE_2D, handle)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(width), int32(height),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
}

// BindUnit binds the slot's texture to the given texture unit.
func (tp *TexturePool) BindUnit(slot TextureSlot, unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, tp.handles[slot])
}

// Allocated reports whether the slot's texture exists yet.
func (tp *TexturePool) Allocated(slot TextureSlot) bool {
	return tp.handles[slot] != 0
}

// Destroy releases every allocated texture. Idempotent.
func (tp *TexturePool) Destroy() {
	for i := range tp.handles {
		if tp.handles[i] != 0 {
			gl.DeleteTextures(1, &tp.handles[i])
			tp.handles[i] = 0
		}
	}
}
