package export

import (
	"context"
	"database/sql"
	"errors"
)

// PGArchiveRepo implements ArchiveRepo using Postgres.
type PGArchiveRepo struct {
	DB *sql.DB
}

// Create inserts an archive record.
func (r *PGArchiveRepo) Create(ctx context.Context, archive Archive) error {
	const query = `
INSERT INTO export_archives (
    id, owner, session_id, template, engine, storage_key, mime_type, size_bytes, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.DB.ExecContext(ctx, query,
		archive.ID,
		archive.Owner,
		archive.SessionID,
		archive.Template,
		archive.Engine,
		archive.StorageKey,
		archive.MimeType,
		archive.SizeBytes,
		archive.CreatedAt,
	)
	return err
}

// GetByID returns an archive owned by owner.
func (r *PGArchiveRepo) GetByID(ctx context.Context, owner, archiveID string) (Archive, error) {
	const query = `
SELECT id, owner, session_id, template, engine, storage_key, mime_type, size_bytes, created_at
FROM export_archives
WHERE id = $1 AND owner = $2
LIMIT 1`
	var archive Archive
	err := r.DB.QueryRowContext(ctx, query, archiveID, owner).Scan(
		&archive.ID,
		&archive.Owner,
		&archive.SessionID,
		&archive.Template,
		&archive.Engine,
		&archive.StorageKey,
		&archive.MimeType,
		&archive.SizeBytes,
		&archive.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Archive{}, ErrNotFound
		}
		return Archive{}, err
	}
	return archive, nil
}

// ListByOwner lists archives ordered newest first.
func (r *PGArchiveRepo) ListByOwner(ctx context.Context, owner string, limit, offset int) ([]Archive, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, owner, session_id, template, engine, storage_key, mime_type, size_bytes, created_at
FROM export_archives
WHERE owner = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, owner, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Archive{}
	for rows.Next() {
		var archive Archive
		if err := rows.Scan(
			&archive.ID,
			&archive.Owner,
			&archive.SessionID,
			&archive.Template,
			&archive.Engine,
			&archive.StorageKey,
			&archive.MimeType,
			&archive.SizeBytes,
			&archive.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, archive)
	}
	return out, rows.Err()
}

var _ ArchiveRepo = (*PGArchiveRepo)(nil)
