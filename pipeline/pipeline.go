// Package pipeline orchestrates one chroma-key run: decode, GPU
// render, frame staging, container encode, and verification.
//
// The run is single-threaded and synchronous. GL contexts are not
// safely shared across threads, so one pinned OS thread owns context,
// program, textures and draw calls end to end; the only concurrency
// is the external encoder subprocess, which starts only after every
// frame has been staged.
package pipeline

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gokey/chroma"
)

// progressInterval is the frame-count spacing of progress log lines.
const progressInterval = 30

// Process keys inputPath and writes an alpha-capable container to
// outputPath. Returns statistics for the run; on error the returned
// stats cover the work done before the failure.
//
// The caller's goroutine must be pinned with runtime.LockOSThread
// before calling (GL main-thread requirement).
//
// Failure at any stage aborts the whole run; there is no partial
// resume. GPU resources and the staging directory are released on
// every exit path.
func Process(inputPath, outputPath string, opts ...Option) (*chroma.RunStats, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	log := chroma.Logger()
	params := o.params.Clamp()
	stats := &chroma.RunStats{}
	start := time.Now()
	defer func() {
		stats.TotalTime = time.Since(start)
	}()

	// The source must open before any GPU work begins.
	src, err := o.openSource(inputPath)
	if err != nil {
		return stats, err
	}
	defer func() {
		_ = src.Close()
	}()
	meta := src.Meta()

	initStart := time.Now()
	renderer, err := o.newRenderer(meta.Width, meta.Height)
	if err != nil {
		return stats, err
	}
	defer renderer.Close()

	if o.backgroundPath != "" {
		plate, err := chroma.LoadBackground(o.backgroundPath, meta.Width, meta.Height)
		if err != nil {
			return stats, err
		}
		if err := renderer.SetBackground(plate); err != nil {
			return stats, err
		}
	}
	stats.InitTime = time.Since(initStart)

	stager, err := chroma.NewStager()
	if err != nil {
		return stats, err
	}
	// The staging directory is either promoted intact or deleted
	// entirely, on every exit path.
	defer func() {
		if o.keepFrames {
			if err := stager.Promote(framesDirFor(outputPath)); err != nil {
				log.Warn("staging promote failed", "error", err)
			}
			return
		}
		stager.Cleanup()
	}()

	log.Info("processing started",
		"input", inputPath,
		"output", outputPath,
		"params", params,
		"advertisedFrames", meta.FrameCount)

	loopStart := time.Now()
	index := 0
	for {
		data, ok := src.ReadFrame()
		if !ok {
			break
		}
		frameStart := time.Now()

		frame := chroma.FromFrame(data, meta.Width, meta.Height, meta.Depth)
		keyed, err := renderer.Render(frame, params)
		if err != nil {
			return stats, err
		}
		if err := stager.WriteFrame(index, keyed); err != nil {
			return stats, err
		}
		stats.FrameTimes = append(stats.FrameTimes, time.Since(frameStart))

		if index == 0 {
			min, max := keyed.AlphaRange()
			log.Debug("first frame rendered", "alphaMin", min, "alphaMax", max)
		}
		index++
		if index%progressInterval == 0 {
			logProgress(log, index, meta.FrameCount, loopStart)
		}
	}

	log.Info("frames rendered",
		"frames", index,
		"avgFrameTime", stats.AvgFrameTime(),
		"renderFPS", stats.RenderFPS())

	encodeStart := time.Now()
	if err := o.encoder.Encode(stager.Dir(), meta.FrameRate, outputPath); err != nil {
		return stats, err
	}
	stats.EncodeTime = time.Since(encodeStart)

	verify(log, o.prober, outputPath)

	stats.TotalTime = time.Since(start)
	log.Info("run complete",
		"frames", stats.Frames(),
		"initTime", stats.InitTime,
		"encodeTime", stats.EncodeTime,
		"totalTime", stats.TotalTime,
		"throughputFPS", stats.Throughput())
	return stats, nil
}

// framesDirFor is the fixed output-adjacent location the staging
// directory is promoted to under the keep flag.
func framesDirFor(outputPath string) string {
	return filepath.Join(filepath.Dir(outputPath), "frames")
}

// logProgress reports loop progress. The advertised frame count is
// advisory only, so the percentage is omitted when it is unknown or
// already exceeded.
func logProgress(log *slog.Logger, done, advertised int, loopStart time.Time) {
	fps := float64(done) / time.Since(loopStart).Seconds()
	if advertised > 0 && done <= advertised {
		log.Info("progress",
			"frames", done,
			"of", advertised,
			"percent", float64(done)/float64(advertised)*100,
			"fps", fps)
		return
	}
	log.Info("progress", "frames", done, "fps", fps)
}

// verify runs the advisory alpha check. Probe failures and missing
// alpha formats warn; they never fail the run.
func verify(log *slog.Logger, prober chroma.Prober, outputPath string) {
	info, err := prober.Probe(outputPath)
	if err != nil {
		log.Warn("verification skipped", "error", err)
		return
	}
	if !info.HasAlpha() {
		log.Warn("alpha channel not detected in output",
			"pixelFormat", info.PixelFormat,
			"codec", info.CodecName)
		return
	}
	log.Info("alpha channel verified",
		"pixelFormat", info.PixelFormat,
		"codec", info.CodecName,
		"size", []int{info.Width, info.Height})
}
