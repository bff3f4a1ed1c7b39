package snapshots

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func storeContract(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := store.Load(ctx, "guest:a", "resumeData"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound before save, got %v", err)
	}
	if err := store.Save(ctx, "guest:a", "resumeData", []byte(`{"name":"A"}`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Save(ctx, "guest:a", "resumeData", []byte(`{"name":"B"}`)); err != nil {
		t.Fatalf("Save overwrite: %v", err)
	}
	got, err := store.Load(ctx, "guest:a", "resumeData")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != `{"name":"B"}` {
		t.Fatalf("expected overwrite to win, got %s", got)
	}
	if _, err := store.Load(ctx, "guest:b", "resumeData"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected owners to be isolated, got %v", err)
	}
	if err := store.Save(ctx, "", "resumeData", nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty owner, got %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, NewMemoryStore())
}

func TestMemoryStoreCopiesData(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	data := []byte("abc")
	if err := store.Save(ctx, "o", "k", data); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data[0] = 'x'
	got, _ := store.Load(ctx, "o", "k")
	if string(got) != "abc" {
		t.Fatalf("stored bytes aliased caller slice: %s", got)
	}
}

func TestFileStore(t *testing.T) {
	storeContract(t, NewFileStore(t.TempDir()))
}

func TestFileStoreHashesOwnerDirectory(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	if err := store.Save(context.Background(), "guest:secret", "resumeData", []byte("{}")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if strings.Contains(path, "secret") {
			t.Fatalf("owner leaked into path %s", path)
		}
		return err
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
}

func TestRedisStore(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	store, err := NewRedisStore(url, 0)
	if err != nil {
		t.Fatalf("NewRedisStore: %v", err)
	}
	defer store.Close()
	ctx := context.Background()
	if err := store.Ping(ctx); err != nil {
		t.Skipf("redis unavailable: %v", err)
	}
	store.Client.Del(ctx, redisKey("guest:a", "resumeData"), redisKey("guest:b", "resumeData"))
	storeContract(t, store)
}

func TestRedisKey(t *testing.T) {
	if got := redisKey("guest:a", "resumeData"); got != "resume:snapshot:guest:a:resumeData" {
		t.Fatalf("unexpected key %q", got)
	}
}
