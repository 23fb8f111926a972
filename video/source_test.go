package video

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSourceOpenError(t *testing.T) {
	cause := errors.New("no such file or directory")
	err := &SourceOpenError{Path: "clips/take1.mp4", Err: cause}

	msg := err.Error()
	if !strings.Contains(msg, `"clips/take1.mp4"`) {
		t.Errorf("Error() = %q, want the quoted path", msg)
	}
	if !strings.Contains(msg, cause.Error()) {
		t.Errorf("Error() = %q, want the underlying cause", msg)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}
}

func TestOpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.mp4")

	src, err := Open(path)
	if src != nil {
		t.Error("Open() returned a source for a missing file")
	}
	var openErr *SourceOpenError
	if !errors.As(err, &openErr) {
		t.Fatalf("Open() error = %T, want *SourceOpenError", err)
	}
	if openErr.Path != path {
		t.Errorf("SourceOpenError.Path = %q, want %q", openErr.Path, path)
	}
}

func TestOpenNotAVideo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.mp4")
	if err := os.WriteFile(path, []byte("not a container"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Open(path); err == nil {
		t.Error("Open() should fail on a file that is not a video")
	}
}
