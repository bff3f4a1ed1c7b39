package snapshots

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/resume/legacy"
	"resume-builder/resume/model"
)

type failingStore struct{ err error }

func (f failingStore) Load(context.Context, string, string) ([]byte, error) { return nil, f.err }
func (f failingStore) Save(context.Context, string, string, []byte) error   { return f.err }

func TestServiceSaveThenDisplay(t *testing.T) {
	store := NewMemoryStore()
	svc := &Service{Store: store}
	ctx := context.Background()

	doc := model.New()
	doc.PersonalInfo.FullName = "Alice Hart"
	doc.Experience = []model.ExperienceEntry{{ID: "e1", Role: "Engineer", StartDate: "2021-09"}}

	snap, err := svc.Save(ctx, "guest:a", doc)
	require.NoError(t, err)
	assert.Equal(t, legacy.Present, snap.Experiences[0].End)

	raw, err := store.Load(ctx, "guest:a", legacy.StorageKey)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"experiences"`)

	display, err := svc.Display(ctx, "guest:a")
	require.NoError(t, err)
	assert.Equal(t, "Alice Hart", display.Name)
	require.Len(t, display.Experiences, 1)
	assert.Equal(t, "Sep 2021 - Present", display.Experiences[0].Dates)
}

func TestServiceDisplayMissingIsEmpty(t *testing.T) {
	svc := &Service{Store: NewMemoryStore()}
	display, err := svc.Display(context.Background(), "guest:nobody")
	require.NoError(t, err)
	assert.True(t, display.Empty())
}

func TestServiceDisplayGarbageIsEmpty(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), "guest:a", legacy.StorageKey, []byte("{not json")))

	svc := &Service{Store: store}
	_, found, err := svc.Load(context.Background(), "guest:a")
	require.NoError(t, err)
	assert.False(t, found)

	display, err := svc.Display(context.Background(), "guest:a")
	require.NoError(t, err)
	assert.True(t, display.Empty())
}

func TestServicePropagatesStoreFailure(t *testing.T) {
	boom := errors.New("boom")
	svc := &Service{Store: failingStore{err: boom}}

	_, err := svc.Display(context.Background(), "guest:a")
	assert.ErrorIs(t, err, boom)

	_, err = svc.Save(context.Background(), "guest:a", model.New())
	assert.ErrorIs(t, err, boom)
}
