// Package video implements the decode boundary over vidio, which
// streams frames out of ffmpeg through a pipe.
package video

import (
	"fmt"

	vidio "github.com/AlexEidt/Vidio"

	"github.com/gokey/chroma"
)

// SourceOpenError reports that the input video could not be opened.
// It is raised before any GPU context exists.
type SourceOpenError struct {
	Path string
	Err  error
}

func (e *SourceOpenError) Error() string {
	return fmt.Sprintf("video: cannot open %q: %v", e.Path, e.Err)
}

func (e *SourceOpenError) Unwrap() error { return e.Err }

// FileSource decodes a video file frame by frame.
type FileSource struct {
	video *vidio.Video
	meta  chroma.SourceMeta
}

// Verify at compile time that FileSource implements chroma.Source.
var _ chroma.Source = (*FileSource)(nil)

// Open opens the input video and reads its stream metadata. A failure
// returns *SourceOpenError.
func Open(path string) (*FileSource, error) {
	v, err := vidio.NewVideo(path)
	if err != nil {
		return nil, &SourceOpenError{Path: path, Err: err}
	}

	s := &FileSource{
		video: v,
		meta: chroma.SourceMeta{
			Width:      v.Width(),
			Height:     v.Height(),
			FrameRate:  v.FPS(),
			FrameCount: v.Frames(),
			Depth:      v.Depth(),
		},
	}
	chroma.Logger().Info("source opened",
		"path", path,
		"size", []int{s.meta.Width, s.meta.Height},
		"fps", s.meta.FrameRate,
		"frames", s.meta.FrameCount)
	return s, nil
}

// Meta returns the stream metadata. The frame count is advisory;
// decoding continues until ReadFrame reports exhaustion.
func (s *FileSource) Meta() chroma.SourceMeta {
	return s.meta
}

// ReadFrame decodes the next frame in source order. The returned
// buffer is reused by the decoder and valid only until the next call.
func (s *FileSource) ReadFrame() ([]uint8, bool) {
	if !s.video.Read() {
		return nil, false
	}
	return s.video.FrameBuffer(), true
}

// Close releases the decoder.
func (s *FileSource) Close() error {
	s.video.Close()
	return nil
}
