package chroma

import (
	"strings"
	"testing"
	"time"
)

func TestRunStatsEmpty(t *testing.T) {
	s := &RunStats{}
	if s.Frames() != 0 {
		t.Errorf("Frames() = %d, want 0", s.Frames())
	}
	if s.MinFrameTime() != 0 || s.MaxFrameTime() != 0 || s.AvgFrameTime() != 0 {
		t.Error("empty stats should report zero durations")
	}
	if s.RenderFPS() != 0 || s.Throughput() != 0 {
		t.Error("empty stats should report zero rates")
	}
}

func TestRunStatsAggregates(t *testing.T) {
	s := &RunStats{
		FrameTimes: []time.Duration{
			10 * time.Millisecond,
			30 * time.Millisecond,
			20 * time.Millisecond,
		},
		TotalTime: 120 * time.Millisecond,
	}

	if got := s.Frames(); got != 3 {
		t.Errorf("Frames() = %d, want 3", got)
	}
	if got := s.MinFrameTime(); got != 10*time.Millisecond {
		t.Errorf("MinFrameTime() = %v, want 10ms", got)
	}
	if got := s.MaxFrameTime(); got != 30*time.Millisecond {
		t.Errorf("MaxFrameTime() = %v, want 30ms", got)
	}
	if got := s.AvgFrameTime(); got != 20*time.Millisecond {
		t.Errorf("AvgFrameTime() = %v, want 20ms", got)
	}

	// 3 frames over 60ms of render time = 50 fps.
	if got := s.RenderFPS(); got < 49.9 || got > 50.1 {
		t.Errorf("RenderFPS() = %v, want ~50", got)
	}
	// 3 frames over 120ms end to end = 25 fps.
	if got := s.Throughput(); got < 24.9 || got > 25.1 {
		t.Errorf("Throughput() = %v, want ~25", got)
	}
}

func TestRunStatsSummary(t *testing.T) {
	s := &RunStats{
		InitTime:   100 * time.Millisecond,
		FrameTimes: []time.Duration{20 * time.Millisecond, 20 * time.Millisecond},
		EncodeTime: 300 * time.Millisecond,
		TotalTime:  500 * time.Millisecond,
	}

	got := s.Summary()
	for _, want := range []string{"2 frames", "init 100ms", "20ms/20ms/20ms", "encode 300ms", "total 500ms"} {
		if !strings.Contains(got, want) {
			t.Errorf("Summary() = %q, missing %q", got, want)
		}
	}
}
