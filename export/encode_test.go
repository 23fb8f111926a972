package export

import (
	"errors"
	"os/exec"
	"slices"
	"testing"
)

func TestEncodeArgs(t *testing.T) {
	args := encodeArgs("/tmp/stage", 29.97, "/out/result.mov")

	want := []string{
		"-y",
		"-framerate", "29.97",
		"-i", "/tmp/stage/frame_%06d.png",
		"-c:v", "prores_ks",
		"-profile:v", "4",
		"-pix_fmt", "yuva444p10le",
		"-vendor", "apl0",
		"/out/result.mov",
	}
	if !slices.Equal(args, want) {
		t.Errorf("encodeArgs() =\n%v\nwant\n%v", args, want)
	}
}

func TestEncodeArgsIntegerRate(t *testing.T) {
	args := encodeArgs("d", 30, "o.mov")
	if args[2] != "30" {
		t.Errorf("frame rate formatted as %q, want \"30\"", args[2])
	}
}

func TestEncodeMissingBinary(t *testing.T) {
	e := &FFmpegEncoder{Binary: "definitely-not-ffmpeg-zz"}

	err := e.Encode(t.TempDir(), 30, "out.mov")
	if err == nil {
		t.Fatal("Encode with a missing binary should fail")
	}

	var encErr *EncodeError
	if !errors.As(err, &encErr) {
		t.Fatalf("error type = %T, want *EncodeError", err)
	}
	if encErr.Cmd != "definitely-not-ffmpeg-zz" {
		t.Errorf("EncodeError.Cmd = %q", encErr.Cmd)
	}
	if !errors.Is(err, exec.ErrNotFound) {
		t.Errorf("EncodeError should wrap the exec error, got %v", encErr.Err)
	}
}

func TestEncodeErrorMessage(t *testing.T) {
	err := &EncodeError{Cmd: "ffmpeg", Err: errors.New("exit status 1")}
	if got := err.Error(); got != "export: ffmpeg failed: exit status 1" {
		t.Errorf("Error() = %q", got)
	}
}
