// Package upload validates files selected in popup forms before they are
// accepted into form state, and manages the scoped preview resources created
// for accepted images.
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"onexhib-admin/internal/monitoring"
)

const (
	// MaxDocumentSize caps brochures, layouts and cover images.
	MaxDocumentSize = 5 * 1024 * 1024
	// MaxImageSize caps image-only fields such as the company image.
	MaxImageSize = 3 * 1024 * 1024
)

var (
	ErrUnsupportedType = errors.New("unsupported type")
	ErrTooLarge        = errors.New("too large")
	ErrEmptyFile       = errors.New("file is empty")
)

// Guard is the allow-list configuration for one file input.
type Guard struct {
	AllowedTypes map[string]bool
	MaxBytes     int64
}

// Allow builds a Guard from a list of MIME types.
func Allow(maxBytes int64, types ...string) Guard {
	allowed := make(map[string]bool, len(types))
	for _, t := range types {
		allowed[t] = true
	}
	return Guard{AllowedTypes: allowed, MaxBytes: maxBytes}
}

// Accepted is a file that passed the guard.
type Accepted struct {
	Filename string
	MimeType string
	Size     int64
	Content  []byte
}

// IsImage reports whether the accepted file can carry a preview.
func (a *Accepted) IsImage() bool {
	return strings.HasPrefix(a.MimeType, "image/")
}

// CheckDeclared validates a file's declared MIME type and size without
// reading it. No partial acceptance: any violation rejects the whole file.
func (g Guard) CheckDeclared(mimeType string, size int64) error {
	if size == 0 {
		return ErrEmptyFile
	}
	if !g.allowed(mimeType) {
		return ErrUnsupportedType
	}
	if size > g.MaxBytes {
		return ErrTooLarge
	}
	return nil
}

// Check validates a multipart file and reads it into memory for forwarding.
// The content type is sniffed from the first 512 bytes rather than trusted
// from the part header.
func (g Guard) Check(fh *multipart.FileHeader) (*Accepted, error) {
	if fh.Size == 0 {
		return nil, ErrEmptyFile
	}
	if fh.Size > g.MaxBytes {
		monitoring.TrackUploadRejection("too_large")
		return nil, ErrTooLarge
	}

	file, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, g.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(content)) > g.MaxBytes {
		monitoring.TrackUploadRejection("too_large")
		return nil, ErrTooLarge
	}

	mimeType := sniff(content, fh)
	if !g.allowed(mimeType) {
		monitoring.TrackUploadRejection("unsupported_type")
		return nil, ErrUnsupportedType
	}

	return &Accepted{
		Filename: fh.Filename,
		MimeType: mimeType,
		Size:     int64(len(content)),
		Content:  content,
	}, nil
}

func (g Guard) allowed(mimeType string) bool {
	mimeType = strings.Split(mimeType, ";")[0]
	if g.AllowedTypes[mimeType] {
		return true
	}
	// wildcard classes, e.g. "image/*" for the product form
	if i := strings.Index(mimeType, "/"); i > 0 {
		return g.AllowedTypes[mimeType[:i]+"/*"]
	}
	return false
}

func sniff(content []byte, fh *multipart.FileHeader) string {
	n := len(content)
	if n > 512 {
		n = 512
	}
	detected := strings.Split(http.DetectContentType(content[:n]), ";")[0]
	if detected == "application/octet-stream" || detected == "text/plain" {
		// sniffing is inconclusive for DOC/DOCX and some PDFs; fall back to
		// the declared part header
		if declared := fh.Header.Get("Content-Type"); declared != "" {
			return strings.Split(declared, ";")[0]
		}
	}
	return detected
}
