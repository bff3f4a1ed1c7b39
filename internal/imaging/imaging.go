// Package imaging turns uploaded profile pictures into inline data URLs that
// the document carries as its image payload.
package imaging

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultMaxBytes bounds an upload when no explicit limit is configured.
const DefaultMaxBytes = 5 << 20

var (
	// ErrEmpty is returned for a zero-length upload.
	ErrEmpty = errors.New("image is empty")

	// ErrTooLarge is returned when the upload exceeds the limit.
	ErrTooLarge = errors.New("image too large")

	// ErrNotImage is returned when the content does not sniff as an image.
	ErrNotImage = errors.New("file is not an image")
)

var allowedTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
	"image/webp": true,
}

// Encoder reads an upload and produces a data URL.
type Encoder struct {
	MaxBytes int64
}

// NewEncoder constructs an Encoder; a non-positive limit uses DefaultMaxBytes.
func NewEncoder(maxBytes int64) *Encoder {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Encoder{MaxBytes: maxBytes}
}

// Encode reads at most MaxBytes from r and returns "data:<mime>;base64,<payload>".
// The declared content type is ignored; the type is sniffed from the bytes.
func (e *Encoder) Encode(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, e.MaxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if len(data) == 0 {
		return "", ErrEmpty
	}
	if int64(len(data)) > e.MaxBytes {
		return "", ErrTooLarge
	}

	mimeType := http.DetectContentType(data)
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	if !allowedTypes[mimeType] {
		return "", fmt.Errorf("%w: %s", ErrNotImage, mimeType)
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// IsDataURL reports whether s looks like an inline image payload.
func IsDataURL(s string) bool {
	return strings.HasPrefix(s, "data:image/") && strings.Contains(s, ";base64,")
}
