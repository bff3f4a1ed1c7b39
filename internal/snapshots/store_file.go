package snapshots

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"resume-builder/internal/shared/util"
)

// FileStore writes one file per (owner, key) below a base directory. Owners
// are hashed so guest identifiers never become path segments.
type FileStore struct {
	baseDir string
}

// NewFileStore constructs a FileStore rooted at baseDir.
func NewFileStore(baseDir string) *FileStore {
	return &FileStore{baseDir: baseDir}
}

// Load reads the snapshot file.
func (s *FileStore) Load(ctx context.Context, owner, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.path(owner, key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return data, nil
}

// Save replaces the snapshot file atomically.
func (s *FileStore) Save(ctx context.Context, owner, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.path(owner, key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".snapshot-*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename snapshot: %w", err)
	}
	return nil
}

func (s *FileStore) path(owner, key string) (string, error) {
	if !validKey(owner, key) {
		return "", ErrInvalidInput
	}
	name, err := util.SanitizeFileName(key)
	if err != nil {
		return "", ErrInvalidInput
	}
	return filepath.Join(s.baseDir, util.OwnerDir(owner), name+".json"), nil
}

var _ Store = (*FileStore)(nil)
