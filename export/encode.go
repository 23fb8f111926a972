// Package export drives the external encoder and stream-probe tools
// that turn the staged frame sequence into a verified alpha-capable
// container. Both tools run as subprocesses behind the chroma.Encoder
// and chroma.Prober interfaces so the core pipeline never spawns real
// processes in tests.
package export

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/gokey/chroma"
)

// framePattern must match the staging layout: zero-padded frame index,
// PNG extension.
const framePattern = "frame_%06d.png"

// EncodeError reports a failed encoder invocation. It is a hard
// failure for the run.
type EncodeError struct {
	// Cmd is the encoder binary name.
	Cmd string

	// Err is the subprocess error, including the exit status.
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("export: %s failed: %v", e.Cmd, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// FFmpegEncoder encodes the staged frame sequence to ProRes 4444 with
// a 10-bit YUV-with-alpha pixel format, the container the rest of the
// toolchain expects for transparency.
type FFmpegEncoder struct {
	// Binary overrides the ffmpeg executable name. Empty means
	// "ffmpeg" from PATH.
	Binary string
}

// Verify at compile time that FFmpegEncoder implements chroma.Encoder.
var _ chroma.Encoder = (*FFmpegEncoder)(nil)

// Encode invokes ffmpeg once, non-interactively. The staged frames
// are consumed in index order via the frame_%06d.png pattern. A
// non-zero exit status returns *EncodeError.
func (e *FFmpegEncoder) Encode(framesDir string, frameRate float64, outputPath string) error {
	binary := e.Binary
	if binary == "" {
		binary = "ffmpeg"
	}

	args := encodeArgs(framesDir, frameRate, outputPath)
	chroma.Logger().Info("encoding", "cmd", binary, "fps", frameRate, "output", outputPath)

	cmd := exec.Command(binary, args...) //nolint:gosec // fixed arg set, paths are caller-provided
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return &EncodeError{Cmd: binary, Err: err}
	}
	return nil
}

// encodeArgs builds the fixed, non-interactive ffmpeg invocation:
// image sequence in, ProRes 4444 with 10-bit YUV-plus-alpha out.
func encodeArgs(framesDir string, frameRate float64, outputPath string) []string {
	return []string{
		"-y",
		"-framerate", fmt.Sprintf("%g", frameRate),
		"-i", filepath.Join(framesDir, framePattern),
		"-c:v", "prores_ks",
		"-profile:v", "4", // ProRes 4444, carries alpha
		"-pix_fmt", "yuva444p10le",
		"-vendor", "apl0",
		outputPath,
	}
}
