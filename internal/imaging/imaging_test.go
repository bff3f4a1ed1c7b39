package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return buf.Bytes()
}

func TestEncodePNG(t *testing.T) {
	raw := pngBytes(t)
	got, err := NewEncoder(0).Encode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	prefix := "data:image/png;base64,"
	if !strings.HasPrefix(got, prefix) {
		t.Fatalf("unexpected prefix %q", got[:30])
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(got, prefix))
	if err != nil {
		t.Fatalf("payload not base64: %v", err)
	}
	if !bytes.Equal(decoded, raw) {
		t.Fatalf("payload does not round trip")
	}
	if !IsDataURL(got) {
		t.Fatalf("expected IsDataURL to accept encoder output")
	}
}

func TestEncodeRejectsNonImage(t *testing.T) {
	_, err := NewEncoder(0).Encode(strings.NewReader("hello world, definitely text"))
	if !errors.Is(err, ErrNotImage) {
		t.Fatalf("expected ErrNotImage, got %v", err)
	}
}

func TestEncodeRejectsEmpty(t *testing.T) {
	if _, err := NewEncoder(0).Encode(strings.NewReader("")); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestEncodeRejectsOversize(t *testing.T) {
	raw := pngBytes(t)
	enc := NewEncoder(int64(len(raw) - 1))
	if _, err := enc.Encode(bytes.NewReader(raw)); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
	exact := NewEncoder(int64(len(raw)))
	if _, err := exact.Encode(bytes.NewReader(raw)); err != nil {
		t.Fatalf("expected upload at the limit to pass, got %v", err)
	}
}

func TestIsDataURL(t *testing.T) {
	if IsDataURL("https://example.com/a.png") {
		t.Fatalf("expected remote URL to be rejected")
	}
}
