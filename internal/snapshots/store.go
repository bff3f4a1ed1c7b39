// Package snapshots persists legacy resume snapshots per owner behind a small
// key/value contract, and assembles the display view read back from them.
package snapshots

import (
	"context"
	"strings"
)

// Store persists opaque snapshot text under (owner, key). Save overwrites.
type Store interface {
	Load(ctx context.Context, owner, key string) ([]byte, error)
	Save(ctx context.Context, owner, key string, data []byte) error
}

func validKey(owner, key string) bool {
	return strings.TrimSpace(owner) != "" && strings.TrimSpace(key) != ""
}
