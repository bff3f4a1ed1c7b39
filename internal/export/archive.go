package export

import (
	"context"
	"time"
)

// Archive records an export kept in the object store.
type Archive struct {
	ID         string    `json:"id"`
	Owner      string    `json:"-"`
	SessionID  string    `json:"sessionId"`
	Template   string    `json:"template"`
	Engine     string    `json:"engine"`
	StorageKey string    `json:"-"`
	MimeType   string    `json:"mimeType"`
	SizeBytes  int64     `json:"sizeBytes"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ArchiveRepo persists archive records.
type ArchiveRepo interface {
	Create(ctx context.Context, archive Archive) error
	GetByID(ctx context.Context, owner, archiveID string) (Archive, error)
	ListByOwner(ctx context.Context, owner string, limit, offset int) ([]Archive, error)
}
