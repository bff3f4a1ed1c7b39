// Package selector lists the available templates and renders their
// thumbnails against the demo document.
package selector

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Template describes one entry of the template picker.
type Template struct {
	ID          model.TemplateID `yaml:"id" json:"id"`
	Name        string           `yaml:"name" json:"name"`
	Description string           `yaml:"description" json:"description"`
	Accent      string           `yaml:"accent" json:"accent"`
	PhotoSlot   bool             `yaml:"-" json:"photoSlot"`
}

type catalogFile struct {
	Templates []Template `yaml:"templates"`
}

var (
	catalogOnce sync.Once
	catalog     []Template
	catalogErr  error
)

// Catalog returns the templates in picker order.
func Catalog() ([]Template, error) {
	catalogOnce.Do(func() {
		catalog, catalogErr = parseCatalog(catalogYAML)
	})
	if catalogErr != nil {
		return nil, catalogErr
	}
	out := make([]Template, len(catalog))
	copy(out, catalog)
	return out, nil
}

func parseCatalog(data []byte) ([]Template, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("selector: parse catalog: %w", err)
	}
	seen := make(map[model.TemplateID]bool, len(file.Templates))
	for i, tpl := range file.Templates {
		if !tpl.ID.Valid() {
			return nil, fmt.Errorf("selector: catalog entry %q: %w", tpl.ID, model.ErrUnknownTemplate)
		}
		if seen[tpl.ID] {
			return nil, fmt.Errorf("selector: duplicate catalog entry %q", tpl.ID)
		}
		seen[tpl.ID] = true
		file.Templates[i].PhotoSlot = tpl.ID.HasPhotoSlot()
	}
	for _, id := range model.Templates() {
		if !seen[id] {
			return nil, fmt.Errorf("selector: catalog is missing %q", id)
		}
	}
	return file.Templates, nil
}

// Thumbnail is a catalog entry with its rendered preview.
type Thumbnail struct {
	Template
	HTML string `json:"html"`
}

// HTMLRenderer is the subset of render.HTMLRenderer used for thumbnails.
type HTMLRenderer interface {
	Fragment(layout render.Layout) (string, error)
}

// Thumbnails renders every catalog template in thumbnail mode against the
// demo document.
func Thumbnails(r HTMLRenderer) ([]Thumbnail, error) {
	templates, err := Catalog()
	if err != nil {
		return nil, err
	}
	out := make([]Thumbnail, 0, len(templates))
	for _, tpl := range templates {
		html, err := ThumbnailHTML(r, tpl.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, Thumbnail{Template: tpl, HTML: html})
	}
	return out, nil
}

// ThumbnailHTML renders one template's thumbnail.
func ThumbnailHTML(r HTMLRenderer, id model.TemplateID) (string, error) {
	layout, err := render.Render(model.Demo(), id, render.WithThumbnail())
	if err != nil {
		return "", err
	}
	html, err := r.Fragment(layout)
	if err != nil {
		return "", fmt.Errorf("selector: thumbnail %q: %w", id, err)
	}
	return html, nil
}

// Select validates a picked identifier before it is handed to a session.
func Select(raw string) (model.TemplateID, error) {
	return model.ParseTemplateID(raw)
}
