package export

import (
	"testing"

	"github.com/gokey/chroma"
)

func TestParseProbeOutput(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want chroma.ProbeInfo
	}{
		{
			name: "prores with alpha",
			out:  "codec_name=prores\nwidth=1920\nheight=1080\npix_fmt=yuva444p10le\n",
			want: chroma.ProbeInfo{
				CodecName:   "prores",
				Width:       1920,
				Height:      1080,
				PixelFormat: "yuva444p10le",
			},
		},
		{
			name: "windows line endings",
			out:  "codec_name=prores\r\npix_fmt=yuva444p10le\r\n",
			want: chroma.ProbeInfo{CodecName: "prores", PixelFormat: "yuva444p10le"},
		},
		{
			name: "unknown keys ignored",
			out:  "codec_name=h264\nprofile=High\npix_fmt=yuv420p\n",
			want: chroma.ProbeInfo{CodecName: "h264", PixelFormat: "yuv420p"},
		},
		{
			name: "malformed lines ignored",
			out:  "garbage\n\nwidth=64\n",
			want: chroma.ProbeInfo{Width: 64},
		},
		{
			name: "empty output",
			out:  "",
			want: chroma.ProbeInfo{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseProbeOutput(tt.out); got != tt.want {
				t.Errorf("parseProbeOutput() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProbeMissingBinary(t *testing.T) {
	p := &FFprobeProber{Binary: "definitely-not-ffprobe-zz"}
	if _, err := p.Probe("out.mov"); err == nil {
		t.Error("Probe with a missing binary should fail")
	}
}
