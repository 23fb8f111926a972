package chroma

// SourceMeta describes a decoded video stream.
type SourceMeta struct {
	// Width and Height are the frame dimensions in pixels.
	Width  int
	Height int

	// FrameRate is the stream frame rate in frames per second.
	FrameRate float64

	// FrameCount is the advertised number of frames. It is advisory
	// and used only for progress reporting; decoding continues until
	// the source reports no further frames.
	FrameCount int

	// Depth is the number of channels per pixel the source delivers
	// (3 for packed RGB, 4 for RGBA).
	Depth int
}

// Source is the decode boundary: a sequence of fixed-size packed
// color frames plus stream metadata. The vidio-backed implementation
// lives in video/; tests use synthetic sources.
type Source interface {
	// Meta returns the stream metadata.
	Meta() SourceMeta

	// ReadFrame returns the next frame's packed pixel data in source
	// order, or ok=false when the stream is exhausted. The returned
	// slice is only valid until the next ReadFrame call.
	ReadFrame() (data []uint8, ok bool)

	// Close releases decoder resources.
	Close() error
}
