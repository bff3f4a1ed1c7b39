package local

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"resume-builder/internal/shared/storage/object"
)

func TestPutThenOpen(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	n, err := store.Put(ctx, "exports/abc/session/Resume.pdf", "application/pdf", strings.NewReader("%PDF-1.4"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if n != 8 {
		t.Fatalf("expected 8 bytes written, got %d", n)
	}

	rc, err := store.Open(ctx, "exports/abc/session/Resume.pdf")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	body, _ := io.ReadAll(rc)
	if string(body) != "%PDF-1.4" {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestRejectsTraversal(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	for _, key := range []string{"../escape", "/etc/passwd", ""} {
		if _, err := store.Put(ctx, key, "text/plain", strings.NewReader("x")); err == nil {
			t.Fatalf("expected Put(%q) to fail", key)
		}
		if _, err := store.Open(ctx, key); err == nil {
			t.Fatalf("expected Open(%q) to fail", key)
		}
	}
}

func TestPutHonorsCanceledContext(t *testing.T) {
	store := New(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.Put(ctx, "a.txt", "text/plain", strings.NewReader("x")); err == nil {
		t.Fatalf("expected canceled context error")
	}
}

func TestPutReplacesAndLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)
	ctx := context.Background()

	for _, body := range []string{"first", "second"} {
		if _, err := store.Put(ctx, "exports/o/s/Resume.html", "text/html", strings.NewReader(body)); err != nil {
			t.Fatalf("Put: %v", err)
		}
	}
	entries, err := os.ReadDir(filepath.Join(dir, "exports", "o", "s"))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "Resume.html" {
		t.Fatalf("unexpected directory contents %v", entries)
	}

	rc, err := store.Open(ctx, "exports/o/s/Resume.html")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	body, _ := io.ReadAll(rc)
	if string(body) != "second" {
		t.Fatalf("expected replaced body, got %q", body)
	}
}

func TestOpenMissingIsNotFound(t *testing.T) {
	store := New(t.TempDir())
	if _, err := store.Open(context.Background(), "exports/none.pdf"); !errors.Is(err, object.ErrNotFound) {
		t.Fatalf("expected object.ErrNotFound, got %v", err)
	}
}
