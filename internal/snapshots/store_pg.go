package snapshots

import (
	"context"
	"database/sql"
	"errors"
)

// PGStore implements Store using Postgres.
type PGStore struct {
	DB *sql.DB
}

// Load returns the snapshot text for owner and key.
func (s *PGStore) Load(ctx context.Context, owner, key string) ([]byte, error) {
	if !validKey(owner, key) {
		return nil, ErrInvalidInput
	}
	const query = `
SELECT data
FROM resume_snapshots
WHERE owner = $1 AND key = $2
LIMIT 1`
	var data string
	if err := s.DB.QueryRowContext(ctx, query, owner, key).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(data), nil
}

// Save upserts the snapshot text.
func (s *PGStore) Save(ctx context.Context, owner, key string, data []byte) error {
	if !validKey(owner, key) {
		return ErrInvalidInput
	}
	const query = `
INSERT INTO resume_snapshots (owner, key, data, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (owner, key) DO UPDATE
SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`
	_, err := s.DB.ExecContext(ctx, query, owner, key, string(data))
	return err
}

var _ Store = (*PGStore)(nil)
