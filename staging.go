package chroma

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrFrameOrder is returned when a frame is staged with an index that
// breaks the strictly increasing write order.
var ErrFrameOrder = errors.New("chroma: frame staged out of order")

// framePattern names staged frames by zero-padded source index so any
// consumer (including the external encoder) can recover frame order
// purely from the file names.
const framePattern = "frame_%06d.png"

// Stager owns one run's staging directory: a private temporary
// directory holding one lossless PNG per rendered frame. At run end
// the directory is either promoted intact next to the output file or
// deleted entirely, never partially cleaned.
type Stager struct {
	dir      string
	count    int
	promoted bool
	removed  bool
}

// NewStager creates the staging directory.
func NewStager() (*Stager, error) {
	dir, err := os.MkdirTemp("", "chroma-key-")
	if err != nil {
		return nil, fmt.Errorf("chroma: create staging dir: %w", err)
	}
	return &Stager{dir: dir}, nil
}

// Dir returns the staging directory path.
func (s *Stager) Dir() string {
	return s.dir
}

// Count returns the number of frames staged so far.
func (s *Stager) Count() int {
	return s.count
}

// FramePath returns the staged file path for a frame index.
func (s *Stager) FramePath(index int) string {
	return filepath.Join(s.dir, fmt.Sprintf(framePattern, index))
}

// Pattern returns the printf-style pattern matching staged frames in
// index order, suitable for the encoder's image-sequence input.
func (s *Stager) Pattern() string {
	return filepath.Join(s.dir, framePattern)
}

// WriteFrame stages one rendered frame. Frames must be written with
// strictly increasing indices starting at zero.
func (s *Stager) WriteFrame(index int, frame *Pixmap) error {
	if index != s.count {
		return fmt.Errorf("%w: got %d, want %d", ErrFrameOrder, index, s.count)
	}
	if err := frame.SavePNG(s.FramePath(index)); err != nil {
		return fmt.Errorf("chroma: stage frame %d: %w", index, err)
	}
	s.count++
	return nil
}

// Promote moves the staging directory, intact, to destDir. After a
// successful promote, Cleanup becomes a no-op.
func (s *Stager) Promote(destDir string) error {
	if s.removed || s.promoted {
		return nil
	}
	if err := moveDir(s.dir, destDir); err != nil {
		return fmt.Errorf("chroma: promote staging dir: %w", err)
	}
	s.promoted = true
	return nil
}

// Cleanup deletes the staging directory and everything in it.
// It is idempotent and a no-op after Promote.
func (s *Stager) Cleanup() {
	if s.removed || s.promoted {
		return
	}
	if err := os.RemoveAll(s.dir); err != nil {
		Logger().Warn("staging cleanup failed", "dir", s.dir, "error", err)
		return
	}
	s.removed = true
}

// moveDir renames src to dst, falling back to copy+remove when the
// two live on different filesystems (temp dirs usually do).
func moveDir(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := copyDir(src, dst); err != nil {
		return err
	}
	return os.RemoveAll(src)
}

func copyDir(src, dst string) error {
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return err
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() {
			// staging holds a flat frame sequence
			continue
		}
		if err := copyFile(filepath.Join(src, e.Name()), filepath.Join(dst, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // staging-internal path
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := os.Create(dst) //nolint:gosec // staging-internal path
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
