package export

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/gokey/chroma"
)

// FFprobeProber inspects the produced container's first video stream
// with ffprobe. The result is advisory text used for the alpha check.
type FFprobeProber struct {
	// Binary overrides the ffprobe executable name. Empty means
	// "ffprobe" from PATH.
	Binary string
}

// Verify at compile time that FFprobeProber implements chroma.Prober.
var _ chroma.Prober = (*FFprobeProber)(nil)

// Probe requests pixel format, codec name and dimensions for the
// first video stream of outputPath.
func (p *FFprobeProber) Probe(outputPath string) (chroma.ProbeInfo, error) {
	binary := p.Binary
	if binary == "" {
		binary = "ffprobe"
	}

	args := []string{
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=pix_fmt,codec_name,width,height",
		"-of", "default=noprint_wrappers=1",
		outputPath,
	}

	out, err := exec.Command(binary, args...).Output() //nolint:gosec // fixed arg set
	if err != nil {
		return chroma.ProbeInfo{}, fmt.Errorf("export: %s failed: %w", binary, err)
	}
	return parseProbeOutput(string(out)), nil
}

// parseProbeOutput reads ffprobe's key=value lines. Unknown keys and
// malformed lines are ignored; the probe is advisory.
func parseProbeOutput(out string) chroma.ProbeInfo {
	var info chroma.ProbeInfo
	for _, line := range strings.Split(out, "\n") {
		key, value, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok {
			continue
		}
		switch key {
		case "pix_fmt":
			info.PixelFormat = value
		case "codec_name":
			info.CodecName = value
		case "width":
			info.Width, _ = strconv.Atoi(value)
		case "height":
			info.Height, _ = strconv.Atoi(value)
		}
	}
	return info
}
