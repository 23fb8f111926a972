package pipeline

import (
	"github.com/gokey/chroma"
	"github.com/gokey/chroma/export"
	"github.com/gokey/chroma/render"
	"github.com/gokey/chroma/video"
)

// Option configures a processing run. Use functional options to
// override the keying parameters or swap collaborators.
//
// Example:
//
//	// Default green-screen run:
//	stats, err := pipeline.Process("in.mp4", "out.mov")
//
//	// Custom parameters, keep the staged frames:
//	params := chroma.DefaultKeyParams()
//	params.Tolerance = 70
//	stats, err := pipeline.Process("in.mp4", "out.mov",
//	    pipeline.WithKeyParams(params),
//	    pipeline.WithKeepFrames(),
//	)
type Option func(*options)

type options struct {
	params         chroma.KeyParams
	backgroundPath string
	keepFrames     bool

	openSource  func(path string) (chroma.Source, error)
	newRenderer func(width, height int) (chroma.Renderer, error)
	encoder     chroma.Encoder
	prober      chroma.Prober
}

// defaultOptions wires the real collaborators: vidio decode, GL
// rendering, ffmpeg encode, ffprobe verification.
func defaultOptions() options {
	return options{
		params: chroma.DefaultKeyParams(),
		openSource: func(path string) (chroma.Source, error) {
			return video.Open(path)
		},
		newRenderer: func(width, height int) (chroma.Renderer, error) {
			return render.NewPipeline(width, height)
		},
		encoder: &export.FFmpegEncoder{},
		prober:  &export.FFprobeProber{},
	}
}

// WithKeyParams sets the keying parameter set for the run. The set is
// clamped to its documented ranges once, before processing starts.
func WithKeyParams(p chroma.KeyParams) Option {
	return func(o *options) {
		o.params = p
	}
}

// WithBackground composites the keyed subject over the given plate
// image (PNG or JPEG, scaled to the video resolution).
func WithBackground(path string) Option {
	return func(o *options) {
		o.backgroundPath = path
	}
}

// WithKeepFrames preserves the staged PNG frames after the run by
// moving the staging directory to a "frames" directory next to the
// output file.
func WithKeepFrames() Option {
	return func(o *options) {
		o.keepFrames = true
	}
}

// WithSourceOpener replaces the decode boundary. Used by tests to
// feed synthetic frames without ffmpeg.
func WithSourceOpener(open func(path string) (chroma.Source, error)) Option {
	return func(o *options) {
		o.openSource = open
	}
}

// WithRenderer replaces the GPU boundary. Used by tests to key frames
// without a GL context.
func WithRenderer(factory func(width, height int) (chroma.Renderer, error)) Option {
	return func(o *options) {
		o.newRenderer = factory
	}
}

// WithEncoder replaces the encode boundary.
func WithEncoder(e chroma.Encoder) Option {
	return func(o *options) {
		o.encoder = e
	}
}

// WithProber replaces the verification boundary.
func WithProber(p chroma.Prober) Option {
	return func(o *options) {
		o.prober = p
	}
}
