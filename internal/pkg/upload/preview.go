package upload

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// Preview is a displayable handle for an accepted image, backed by a spooled
// temp file. It is a scoped resource: the owner must Release it when the file
// is superseded or the form goes away, on every exit path.
type Preview struct {
	path string

	once sync.Once
}

// NewPreview spools an accepted image to disk and returns its handle. Only
// image files carry previews; anything else returns (nil, nil).
func NewPreview(a *Accepted, dir string) (*Preview, error) {
	if a == nil || !a.IsImage() {
		return nil, nil
	}
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, fmt.Sprintf("preview_%s%s", uuid.New().String(), filepath.Ext(a.Filename)))
	if err := os.WriteFile(path, a.Content, 0o600); err != nil {
		return nil, fmt.Errorf("write preview: %w", err)
	}
	return &Preview{path: path}, nil
}

// Path returns the preview's file path for serving.
func (p *Preview) Path() string { return p.path }

// Release removes the underlying file. Safe to call more than once.
func (p *Preview) Release() {
	if p == nil {
		return
	}
	p.once.Do(func() {
		_ = os.Remove(p.path)
	})
}

// Slot holds the currently accepted file for one file input. A rejected file
// never replaces the previous accepted one, and replacing or clearing an
// accepted image releases its preview.
type Slot struct {
	guard Guard
	dir   string

	file    *Accepted
	preview *Preview
	reason  string
}

func NewSlot(guard Guard, previewDir string) *Slot {
	return &Slot{guard: guard, dir: previewDir}
}

// Select runs the guard over a newly chosen file. On rejection the previous
// accepted file stays in place and the rejection reason is recorded.
func (s *Slot) Select(a *Accepted, err error) error {
	if err != nil {
		s.reason = err.Error()
		return err
	}
	s.reason = ""

	prev := s.preview
	preview, perr := NewPreview(a, s.dir)
	if perr != nil {
		s.reason = perr.Error()
		return perr
	}
	s.file = a
	s.preview = preview
	prev.Release()
	return nil
}

// File returns the currently accepted file, if any.
func (s *Slot) File() *Accepted { return s.file }

// Preview returns the current image preview handle, if any.
func (s *Slot) Preview() *Preview { return s.preview }

// Reason returns the last rejection reason, or "".
func (s *Slot) Reason() string { return s.reason }

// Clear drops the accepted file and releases its preview.
func (s *Slot) Clear() {
	s.preview.Release()
	s.preview = nil
	s.file = nil
	s.reason = ""
}

// Close releases the slot's resources; called when the owning form unmounts.
func (s *Slot) Close() { s.Clear() }
