package chroma

import "testing"

func TestProbeInfoHasAlpha(t *testing.T) {
	tests := []struct {
		name string
		info ProbeInfo
		want bool
	}{
		{"prores 4444 with alpha", ProbeInfo{PixelFormat: "yuva444p10le"}, true},
		{"8-bit yuva", ProbeInfo{PixelFormat: "yuva420p"}, true},
		{"no alpha", ProbeInfo{PixelFormat: "yuv420p"}, false},
		{"rgb without alpha", ProbeInfo{PixelFormat: "rgb24"}, false},
		{"empty", ProbeInfo{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.HasAlpha(); got != tt.want {
				t.Errorf("HasAlpha() = %v, want %v (pix_fmt %q)", got, tt.want, tt.info.PixelFormat)
			}
		})
	}
}
