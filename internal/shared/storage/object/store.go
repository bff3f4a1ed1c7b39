// Package object stores rendered exports as opaque blobs keyed by path.
package object

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"resume-builder/internal/shared/util"
)

// ErrNotFound is returned by Open when no object exists under the key.
var ErrNotFound = errors.New("object not found")

// ObjectStore saves and retrieves binary objects.
type ObjectStore interface {
	Put(ctx context.Context, storageKey string, contentType string, r io.Reader) (sizeBytes int64, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}

// ExportKey builds the storage key for an exported file: the owner is hashed so
// guest identifiers never appear in paths.
func ExportKey(owner, sessionID, archiveID, fileName string) (string, error) {
	name, err := util.SanitizeFileName(fileName)
	if err != nil {
		return "", fmt.Errorf("sanitize file name: %w", err)
	}
	session, err := util.SanitizeFileName(sessionID)
	if err != nil {
		return "", fmt.Errorf("sanitize session id: %w", err)
	}
	return path.Join("exports", util.OwnerDir(owner), session, archiveID+"_"+name), nil
}
