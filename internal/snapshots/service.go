package snapshots

import (
	"context"
	"errors"

	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/resume/legacy"
	"resume-builder/resume/model"
)

// Service writes and reads the legacy snapshot of an owner's document.
type Service struct {
	Store Store
}

// Save converts doc to its legacy snapshot and stores it under the fixed key,
// replacing any earlier snapshot.
func (s *Service) Save(ctx context.Context, owner string, doc model.Document) (legacy.Snapshot, error) {
	if s.Store == nil {
		return legacy.Snapshot{}, errors.New("missing snapshot store")
	}
	snap := legacy.FromDocument(doc)
	data, err := snap.Encode()
	if err != nil {
		return legacy.Snapshot{}, err
	}
	if err := s.Store.Save(ctx, owner, legacy.StorageKey, data); err != nil {
		return legacy.Snapshot{}, err
	}
	metrics.IncSnapshotSaved()
	return snap, nil
}

// Load returns the stored snapshot. found is false when nothing is stored or
// the stored text cannot be parsed; neither case is an error.
func (s *Service) Load(ctx context.Context, owner string) (legacy.Snapshot, bool, error) {
	if s.Store == nil {
		return legacy.Snapshot{}, false, errors.New("missing snapshot store")
	}
	data, err := s.Store.Load(ctx, owner, legacy.StorageKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) {
			return legacy.Snapshot{}, false, nil
		}
		return legacy.Snapshot{}, false, err
	}
	snap, err := legacy.Decode(data)
	if err != nil {
		telemetry.Warn("snapshot.decode_failed", map[string]any{
			"owner": owner,
			"error": err.Error(),
		})
		return legacy.Snapshot{}, false, nil
	}
	return snap, true, nil
}

// Display loads the snapshot and formats it for the display page. A missing
// snapshot yields an empty display.
func (s *Service) Display(ctx context.Context, owner string) (legacy.Display, error) {
	snap, found, err := s.Load(ctx, owner)
	if err != nil {
		return legacy.Display{}, err
	}
	if !found {
		return legacy.Display{}, nil
	}
	return legacy.NewDisplay(snap), nil
}
