package export

import (
	"context"
	"sort"
	"sync"
)

// MemoryArchiveRepo stores archive records in memory and is safe for
// concurrent use.
type MemoryArchiveRepo struct {
	mu      sync.RWMutex
	byID    map[string]Archive
	byOwner map[string][]Archive
}

// NewMemoryArchiveRepo constructs a MemoryArchiveRepo.
func NewMemoryArchiveRepo() *MemoryArchiveRepo {
	return &MemoryArchiveRepo{
		byID:    make(map[string]Archive),
		byOwner: make(map[string][]Archive),
	}
}

// Create stores the archive record.
func (r *MemoryArchiveRepo) Create(ctx context.Context, archive Archive) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[archive.ID] = archive
	r.byOwner[archive.Owner] = append(r.byOwner[archive.Owner], archive)
	return nil
}

// GetByID returns an archive owned by owner. Records of other owners read as
// not found.
func (r *MemoryArchiveRepo) GetByID(ctx context.Context, owner, archiveID string) (Archive, error) {
	if err := ctx.Err(); err != nil {
		return Archive{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	archive, ok := r.byID[archiveID]
	if !ok || archive.Owner != owner {
		return Archive{}, ErrNotFound
	}
	return archive, nil
}

// ListByOwner returns archives newest first.
func (r *MemoryArchiveRepo) ListByOwner(ctx context.Context, owner string, limit, offset int) ([]Archive, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	owned := r.byOwner[owner]
	r.mu.RUnlock()

	if len(owned) == 0 || offset >= len(owned) {
		return []Archive{}, nil
	}

	archives := make([]Archive, len(owned))
	copy(archives, owned)
	sort.SliceStable(archives, func(i, j int) bool {
		return archives[i].CreatedAt.After(archives[j].CreatedAt)
	})

	end := len(archives)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return archives[offset:end], nil
}

var _ ArchiveRepo = (*MemoryArchiveRepo)(nil)
