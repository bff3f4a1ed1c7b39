package export

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/shared/storage/object/local"
)

type failingEngine struct{}

func (failingEngine) Name() string { return "failing" }
func (failingEngine) Export(context.Context, Document, Options) (Artifact, error) {
	return Artifact{}, errors.New("converter crashed")
}

func TestServiceExportWithoutArchive(t *testing.T) {
	svc := &Service{Engine: HTMLEngine{}}
	res, err := svc.Export(context.Background(), Request{
		Owner:     "guest:a",
		SessionID: "s1",
		Template:  "classic",
		Document:  sampleDoc,
		Options:   DefaultOptions(),
	})
	require.NoError(t, err)
	assert.Nil(t, res.Archive)
	assert.Equal(t, "Resume.html", res.Artifact.Filename)
}

func TestServiceExportArchivesAndOpens(t *testing.T) {
	fixed := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	svc := &Service{
		Engine:   HTMLEngine{},
		Store:    local.New(t.TempDir()),
		Archives: NewMemoryArchiveRepo(),
		Now:      func() time.Time { return fixed },
	}
	ctx := context.Background()

	res, err := svc.Export(ctx, Request{Owner: "guest:a", SessionID: "s1", Template: "modern", Document: sampleDoc, Options: DefaultOptions()})
	require.NoError(t, err)
	require.NotNil(t, res.Archive)
	assert.Equal(t, "modern", res.Archive.Template)
	assert.Equal(t, EngineHTML, res.Archive.Engine)
	assert.Equal(t, int64(len(res.Artifact.Body)), res.Archive.SizeBytes)
	assert.Equal(t, fixed, res.Archive.CreatedAt)

	list, err := svc.List(ctx, "guest:a", 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)

	archive, rc, err := svc.Open(ctx, "guest:a", res.Archive.ID)
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, res.Artifact.Body, body)
	assert.Equal(t, res.Archive.ID, archive.ID)

	_, _, err = svc.Open(ctx, "guest:b", res.Archive.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServiceExportRejectsInvalidOptions(t *testing.T) {
	svc := &Service{Engine: HTMLEngine{}}
	opts := DefaultOptions()
	opts.Orientation = "sideways"
	_, err := svc.Export(context.Background(), Request{Document: sampleDoc, Options: opts})
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestServiceExportEngineFailure(t *testing.T) {
	svc := &Service{Engine: failingEngine{}}
	_, err := svc.Export(context.Background(), Request{Document: sampleDoc, Options: DefaultOptions()})
	assert.EqualError(t, err, "converter crashed")
}

func TestServiceWithoutEngine(t *testing.T) {
	_, err := (&Service{}).Export(context.Background(), Request{Options: DefaultOptions()})
	assert.ErrorIs(t, err, ErrEngineUnavailable)
}

func TestMemoryArchiveRepoListsNewestFirst(t *testing.T) {
	repo := NewMemoryArchiveRepo()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(ctx, Archive{ID: id, Owner: "o", CreatedAt: base.Add(time.Duration(i) * time.Hour)}))
	}
	list, err := repo.ListByOwner(ctx, "o", 2, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "c", list[0].ID)
	assert.Equal(t, "b", list[1].ID)

	empty, err := repo.ListByOwner(ctx, "o", 2, 5)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPGArchiveRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGArchiveRepo{DB: db}
	archive := Archive{
		ID:         "11111111-1111-1111-1111-111111111111",
		Owner:      "guest:a",
		SessionID:  "s1",
		Template:   "classic",
		Engine:     "html",
		StorageKey: "exports/x/s1/a_Resume.html",
		MimeType:   "text/html; charset=utf-8",
		SizeBytes:  42,
		CreatedAt:  time.Now().UTC(),
	}
	mock.ExpectExec("INSERT INTO export_archives").
		WithArgs(archive.ID, archive.Owner, archive.SessionID, archive.Template, archive.Engine,
			archive.StorageKey, archive.MimeType, archive.SizeBytes, archive.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Create(context.Background(), archive))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGArchiveRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGArchiveRepo{DB: db}
	mock.ExpectQuery("SELECT id, owner, session_id").
		WithArgs("missing", "guest:a").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetByID(context.Background(), "guest:a", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
