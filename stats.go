package chroma

import (
	"fmt"
	"time"
)

// RunStats accumulates timing for one processing run. It is written
// by the run loop only and read for reporting after the run ends; it
// is not persisted anywhere.
type RunStats struct {
	// InitTime is the time spent creating the GL context, geometry
	// and shader program.
	InitTime time.Duration

	// FrameTimes holds the upload+render+readback+stage duration of
	// each frame, in source order.
	FrameTimes []time.Duration

	// EncodeTime is the external encoder's wall-clock time.
	EncodeTime time.Duration

	// TotalTime is the end-to-end wall-clock time of the run.
	TotalTime time.Duration
}

// Frames returns the number of frames processed.
func (s *RunStats) Frames() int {
	return len(s.FrameTimes)
}

// MinFrameTime returns the shortest per-frame duration, or zero if no
// frames were processed.
func (s *RunStats) MinFrameTime() time.Duration {
	var min time.Duration
	for i, t := range s.FrameTimes {
		if i == 0 || t < min {
			min = t
		}
	}
	return min
}

// MaxFrameTime returns the longest per-frame duration, or zero if no
// frames were processed.
func (s *RunStats) MaxFrameTime() time.Duration {
	var max time.Duration
	for _, t := range s.FrameTimes {
		if t > max {
			max = t
		}
	}
	return max
}

// AvgFrameTime returns the mean per-frame duration, or zero if no
// frames were processed.
func (s *RunStats) AvgFrameTime() time.Duration {
	if len(s.FrameTimes) == 0 {
		return 0
	}
	var sum time.Duration
	for _, t := range s.FrameTimes {
		sum += t
	}
	return sum / time.Duration(len(s.FrameTimes))
}

// RenderFPS returns the average frames per second over the render
// loop, excluding init and encode time.
func (s *RunStats) RenderFPS() float64 {
	var sum time.Duration
	for _, t := range s.FrameTimes {
		sum += t
	}
	if sum <= 0 {
		return 0
	}
	return float64(len(s.FrameTimes)) / sum.Seconds()
}

// Throughput returns end-to-end frames per second, including init and
// encode time.
func (s *RunStats) Throughput() float64 {
	if s.TotalTime <= 0 {
		return 0
	}
	return float64(len(s.FrameTimes)) / s.TotalTime.Seconds()
}

// Summary returns a one-line human-readable report of the run.
func (s *RunStats) Summary() string {
	return fmt.Sprintf(
		"%d frames | init %s | frame min/avg/max %s/%s/%s (%.1f fps) | encode %s | total %s (%.1f fps end-to-end)",
		s.Frames(),
		s.InitTime.Round(time.Millisecond),
		s.MinFrameTime().Round(time.Millisecond),
		s.AvgFrameTime().Round(time.Millisecond),
		s.MaxFrameTime().Round(time.Millisecond),
		s.RenderFPS(),
		s.EncodeTime.Round(time.Millisecond),
		s.TotalTime.Round(time.Millisecond),
		s.Throughput())
}
