package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/storage/object"
	"resume-builder/internal/shared/telemetry"
)

// Request identifies what is being exported.
type Request struct {
	Owner     string
	SessionID string
	Template  string
	Document  Document
	Options   Options
}

// Result is the produced artifact plus its archive record when archiving is on.
type Result struct {
	Artifact Artifact
	Archive  *Archive
}

// Service runs exports through the configured engine. Store and Archives are
// optional; when either is nil exports are not archived.
type Service struct {
	Engine   Engine
	Store    object.ObjectStore
	Archives ArchiveRepo
	Now      func() time.Time
}

// Export validates options, produces the artifact and archives it.
func (s *Service) Export(ctx context.Context, req Request) (Result, error) {
	if s.Engine == nil {
		return Result{}, ErrEngineUnavailable
	}
	opts := req.Options
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	artifact, err := s.Engine.Export(ctx, req.Document, opts)
	if err != nil {
		metrics.IncExportFailed()
		return Result{}, err
	}
	metrics.IncExport()

	result := Result{Artifact: artifact}
	if s.Store == nil || s.Archives == nil {
		return result, nil
	}

	archive, err := s.archive(ctx, req, artifact)
	if err != nil {
		// Archiving failures do not fail the export.
		telemetry.Error("export.archive_failed", map[string]any{
			"session_id": req.SessionID,
			"engine":     s.Engine.Name(),
			"error":      err.Error(),
		})
		return result, nil
	}
	result.Archive = &archive
	return result, nil
}

func (s *Service) archive(ctx context.Context, req Request, artifact Artifact) (Archive, error) {
	id := uuid.NewString()
	key, err := object.ExportKey(req.Owner, req.SessionID, id, artifact.Filename)
	if err != nil {
		return Archive{}, err
	}
	size, err := s.Store.Put(ctx, key, artifact.ContentType, bytes.NewReader(artifact.Body))
	if err != nil {
		return Archive{}, err
	}
	archive := Archive{
		ID:         id,
		Owner:      req.Owner,
		SessionID:  req.SessionID,
		Template:   req.Template,
		Engine:     s.Engine.Name(),
		StorageKey: key,
		MimeType:   artifact.ContentType,
		SizeBytes:  size,
		CreatedAt:  s.now(),
	}
	if err := s.Archives.Create(ctx, archive); err != nil {
		return Archive{}, err
	}
	return archive, nil
}

// List returns the owner's archived exports, newest first.
func (s *Service) List(ctx context.Context, owner string, limit, offset int) ([]Archive, error) {
	if s.Archives == nil {
		return []Archive{}, nil
	}
	return s.Archives.ListByOwner(ctx, owner, limit, offset)
}

// Open returns an archived export's record and content.
func (s *Service) Open(ctx context.Context, owner, archiveID string) (Archive, io.ReadCloser, error) {
	if s.Archives == nil || s.Store == nil {
		return Archive{}, nil, ErrNotFound
	}
	archive, err := s.Archives.GetByID(ctx, owner, archiveID)
	if err != nil {
		return Archive{}, nil, err
	}
	rc, err := s.Store.Open(ctx, archive.StorageKey)
	if errors.Is(err, object.ErrNotFound) {
		return Archive{}, nil, errors.Join(ErrNotFound, err)
	}
	if err != nil {
		return Archive{}, nil, fmt.Errorf("export: open archive %s: %w", archiveID, err)
	}
	return archive, rc, nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}
