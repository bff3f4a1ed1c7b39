package render

import (
	"bytes"
	"embed"
	"fmt"
	"io"

	"github.com/flosch/pongo2/v6"

	"resume-builder/resume/legacy"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// HTMLRenderer turns layouts into HTML using the embedded template set.
type HTMLRenderer struct {
	fragment *pongo2.Template
	page     *pongo2.Template
	legacy   *pongo2.Template
	styles   *pongo2.Template
}

// NewHTMLRenderer parses the embedded templates.
func NewHTMLRenderer() (*HTMLRenderer, error) {
	set := pongo2.NewSet("resume", pongo2.NewFSLoader(templateFS))

	load := func(name string) (*pongo2.Template, error) {
		tpl, err := set.FromFile("templates/" + name)
		if err != nil {
			return nil, fmt.Errorf("render: load template %q: %w", name, err)
		}
		return tpl, nil
	}

	fragment, err := load("fragment.tmpl")
	if err != nil {
		return nil, err
	}
	page, err := load("page.tmpl")
	if err != nil {
		return nil, err
	}
	legacyPage, err := load("legacy.tmpl")
	if err != nil {
		return nil, err
	}
	styles, err := load("styles.tmpl")
	if err != nil {
		return nil, err
	}
	return &HTMLRenderer{fragment: fragment, page: page, legacy: legacyPage, styles: styles}, nil
}

// Fragment renders the layout without a surrounding document, for embedding in
// the builder preview pane and the template selector.
func (r *HTMLRenderer) Fragment(layout Layout) (string, error) {
	return r.execute(r.fragment, pongo2.Context{"layout": layout})
}

// Page renders the layout as a standalone printable HTML document.
func (r *HTMLRenderer) Page(layout Layout) (string, error) {
	return r.execute(r.page, pongo2.Context{"layout": layout, "title": pageTitle(layout)})
}

// WritePage streams the printable document to w.
func (r *HTMLRenderer) WritePage(w io.Writer, layout Layout) error {
	if err := r.page.ExecuteWriter(pongo2.Context{"layout": layout, "title": pageTitle(layout)}, w); err != nil {
		return fmt.Errorf("render: execute page: %w", err)
	}
	return nil
}

// Stylesheet returns the CSS shared by every template, for callers that build
// their own document around Fragment output.
func (r *HTMLRenderer) Stylesheet() (string, error) {
	return r.execute(r.styles, pongo2.Context{})
}

// PageTitle is the document title used for a layout.
func PageTitle(layout Layout) string {
	return pageTitle(layout)
}

// LegacyPage renders the flat display page for a stored snapshot.
func (r *HTMLRenderer) LegacyPage(display legacy.Display) (string, error) {
	return r.execute(r.legacy, pongo2.Context{"display": display})
}

func (r *HTMLRenderer) execute(tpl *pongo2.Template, ctx pongo2.Context) (string, error) {
	var buf bytes.Buffer
	if err := tpl.ExecuteWriter(ctx, &buf); err != nil {
		return "", fmt.Errorf("render: execute template: %w", err)
	}
	return buf.String(), nil
}

func pageTitle(layout Layout) string {
	if identity, ok := layout.Identity(); ok && identity.Name != "" {
		return identity.Name + " - Resume"
	}
	return "Resume"
}
