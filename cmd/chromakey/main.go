// Command chromakey removes a key color from a video on the GPU and
// writes a ProRes 4444 container with a real alpha channel.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/gokey/chroma"
	"github.com/gokey/chroma/pipeline"
)

func init() {
	// The GL context must live on the main thread.
	runtime.LockOSThread()
}

func main() {
	var (
		input      = flag.String("input", "", "input video file (required)")
		output     = flag.String("output", "", "output video file, .mov for ProRes (required)")
		keyColor   = flag.String("key-color", "0.157,0.576,0.129", "key color as r,g,b in 0-1 range")
		trans      = flag.Float64("transparency", 50, "keying threshold strength (0-100)")
		tolerance  = flag.Float64("tolerance", 50, "color-distance acceptance band (0-100)")
		highlight  = flag.Float64("highlight", 50, "bright-region transparency bias (0-100)")
		shadow     = flag.Float64("shadow", 50, "dark-region transparency bias (0-100)")
		pedestal   = flag.Float64("pedestal", 0, "uniform alpha-range shift (0-100)")
		spill      = flag.Float64("spill-suppression", 30, "key-color spill removal (0-100)")
		contrast   = flag.Float64("contrast", 0, "matte contrast (0-200)")
		midPoint   = flag.Float64("mid-point", 50, "contrast pivot (0-100)")
		choke      = flag.Float64("choke", 0, "matte edge erosion(+)/dilation(-) (-20 to 20)")
		soften     = flag.Float64("soften", 0, "edge blur radius (0-20)")
		outputMode = flag.Int("output-mode", 0, "0=composite, 1=alpha channel, 2=status view")
		background = flag.String("background", "", "optional background plate image (PNG or JPEG)")
		keepFrames = flag.Bool("keep-frames", false, "preserve staged PNG frames next to the output")
		verbose    = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	if *input == "" || *output == "" {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	chroma.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	color, err := parseKeyColor(*keyColor)
	if err != nil {
		log.Fatalf("invalid -key-color: %v", err)
	}

	params := chroma.KeyParams{
		KeyColor:         color,
		Transparency:     *trans,
		Tolerance:        *tolerance,
		Highlight:        *highlight,
		Shadow:           *shadow,
		Pedestal:         *pedestal,
		SpillSuppression: *spill,
		Contrast:         *contrast,
		MidPoint:         *midPoint,
		Choke:            *choke,
		Soften:           *soften,
		Output:           chroma.OutputMode(*outputMode),
	}

	opts := []pipeline.Option{pipeline.WithKeyParams(params)}
	if *background != "" {
		opts = append(opts, pipeline.WithBackground(*background))
	}
	if *keepFrames {
		opts = append(opts, pipeline.WithKeepFrames())
	}

	stats, err := pipeline.Process(*input, *output, opts...)
	if err != nil {
		log.Fatalf("processing failed: %v", err)
	}

	fmt.Printf("done: %s -> %s\n", stats.Summary(), *output)
}

// parseKeyColor reads "r,g,b" with each channel in [0, 1].
func parseKeyColor(s string) ([3]float64, error) {
	var color [3]float64
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return color, fmt.Errorf("want 3 comma-separated values, got %d", len(parts))
	}
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return color, err
		}
		color[i] = v
	}
	return color, nil
}
