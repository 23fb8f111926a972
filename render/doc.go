// Package render implements the GPU side of the keying pipeline on an
// OpenGL 3.3 core profile context.
//
// Resource ownership is strict: Context owns the offscreen surface,
// Program owns the shader pair and its uniform locations, Quad owns
// the full-screen geometry, and TexturePool owns the per-slot texture
// handles. Pipeline composes the four and is the only type callers
// need; it implements chroma.Renderer.
//
// All of this package is single-threaded GL: create a Pipeline from a
// goroutine pinned with runtime.LockOSThread and keep every call on
// that thread.
package render
