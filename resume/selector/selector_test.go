package selector

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

func TestCatalogListsEveryTemplateInOrder(t *testing.T) {
	templates, err := Catalog()
	require.NoError(t, err)
	require.Len(t, templates, 5)

	for i, id := range model.Templates() {
		assert.Equal(t, id, templates[i].ID)
		assert.NotEmpty(t, templates[i].Name)
		assert.NotEmpty(t, templates[i].Description)
	}
	assert.Equal(t, "Classic Professional", templates[0].Name)
	assert.Equal(t, "emerald", templates[4].Accent)
}

func TestCatalogFlagsPhotoSlots(t *testing.T) {
	templates, err := Catalog()
	require.NoError(t, err)
	for _, tpl := range templates {
		assert.Equal(t, tpl.ID != model.TemplateClassic, tpl.PhotoSlot, tpl.ID)
	}
}

func TestCatalogReturnsCopy(t *testing.T) {
	first, err := Catalog()
	require.NoError(t, err)
	first[0].Name = "changed"

	second, err := Catalog()
	require.NoError(t, err)
	assert.Equal(t, "Classic Professional", second[0].Name)
}

func TestParseCatalogRejectsBadEntries(t *testing.T) {
	_, err := parseCatalog([]byte("templates:\n  - id: fancy\n"))
	assert.True(t, errors.Is(err, model.ErrUnknownTemplate))

	_, err = parseCatalog([]byte("templates:\n  - id: classic\n  - id: classic\n"))
	assert.Error(t, err)

	_, err = parseCatalog([]byte("templates:\n  - id: classic\n"))
	assert.Error(t, err)

	_, err = parseCatalog([]byte("templates: ["))
	assert.Error(t, err)
}

func TestThumbnailsUseDemoDocument(t *testing.T) {
	r, err := render.NewHTMLRenderer()
	require.NoError(t, err)

	thumbs, err := Thumbnails(r)
	require.NoError(t, err)
	require.Len(t, thumbs, 5)

	for _, thumb := range thumbs {
		assert.Contains(t, thumb.HTML, "Alice Hart", thumb.ID)
		assert.True(t, strings.Contains(thumb.HTML, "transform:scale("), "%s should be scaled", thumb.ID)
	}
}

func TestSelect(t *testing.T) {
	id, err := Select("executive")
	require.NoError(t, err)
	assert.Equal(t, model.TemplateExecutive, id)

	_, err = Select("fancy")
	assert.ErrorIs(t, err, model.ErrUnknownTemplate)
}
