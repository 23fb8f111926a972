package chroma

import "strings"

// Encoder assembles staged frame files into the final alpha-capable
// video container. The ffmpeg-backed implementation lives in export/;
// tests inject a fake so the core never spawns real processes.
type Encoder interface {
	// Encode consumes the staged frame sequence in framesDir (one
	// file per frame, named by zero-padded index) and writes the
	// container to outputPath. A non-nil error is a hard failure
	// for the run.
	Encode(framesDir string, frameRate float64, outputPath string) error
}

// ProbeInfo is the advisory result of inspecting the produced
// container's first video stream.
type ProbeInfo struct {
	// PixelFormat is the stream pixel format name (e.g. "yuva444p10le").
	PixelFormat string

	// CodecName is the stream codec name (e.g. "prores").
	CodecName string

	// Width and Height are the stream dimensions.
	Width  int
	Height int
}

// HasAlpha reports whether the pixel format name indicates an alpha
// channel. The check string-matches probe output and is advisory,
// not authoritative: a negative result produces a warning, never a
// run failure.
func (p ProbeInfo) HasAlpha() bool {
	return strings.Contains(p.PixelFormat, "yuva")
}

// Prober inspects an encoded container. The ffprobe-backed
// implementation lives in export/.
type Prober interface {
	Probe(outputPath string) (ProbeInfo, error)
}
