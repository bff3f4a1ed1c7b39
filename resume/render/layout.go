// Package render projects a resume document through one of the fixed
// template layouts and turns the result into HTML.
package render

import (
	"fmt"

	"resume-builder/resume/model"
)

// Arrangements describe how regions are placed on the page.
const (
	ArrangementSingleColumn = "single-column"
	ArrangementSidebar      = "sidebar"
	ArrangementHeaderGrid   = "header-grid"
)

// Block kinds.
const (
	BlockIdentity = "identity"
	BlockContact  = "contact"
	BlockPhoto    = "photo"
	BlockSection  = "section"
)

// Section presentations.
const (
	PresentParagraph = "paragraph"
	PresentQuote     = "quote"
	PresentEntries   = "entries"
	PresentTimeline  = "timeline"
	PresentDated     = "dated"
	PresentGrid      = "grid"
	PresentChips     = "chips"
	PresentList      = "list"
	PresentContacts  = "contacts"
)

// ThumbnailScale is the zoom applied to pages rendered for the selector.
const ThumbnailScale = 0.4

// Layout is the rendered projection of a document through one template.
type Layout struct {
	Template    model.TemplateID
	Arrangement string
	Page        Page
	Theme       model.Theming
	Thumbnail   bool
	Scale       float64
	Regions     []Region
}

// Page is the printable surface: A4 with a template-specific padding.
type Page struct {
	Width     string
	MinHeight string
	Padding   string
	Font      string
}

// Region is one area of the page holding blocks in display order.
type Region struct {
	Name   string
	Span   int
	Style  string
	Blocks []Block
}

// Block is one renderable unit inside a region.
type Block struct {
	Kind     string
	Identity *Identity
	Contacts []Contact
	Photo    *Photo
	Section  *Section
	Style    string
}

// Identity is the name and title block of a layout.
type Identity struct {
	Name       string
	Title      string
	NameStyle  string
	TitleStyle string
}

// Contact is one contact line. Icon is empty for templates that label
// contacts instead of decorating them.
type Contact struct {
	Label     string
	Icon      string
	IconStyle string
	Value     string
}

// Photo is the profile image slot. When Src is empty the slot shows Initial
// as an avatar.
type Photo struct {
	Src     string
	Initial string
	Width   string
	Radius  string
	Style   string
}

// Section is a headed group of document content.
type Section struct {
	Key          string
	Heading      string
	HeadingStyle string
	Present      string
	Text         string
	Entries      []Entry
	Items        []string
	Contacts     []Contact
	ItemStyle    string
	EntryStyle   string
	MetaStyle    string
	DatesStyle   string
}

// Entry is an experience or education row.
type Entry struct {
	ID       string
	Title    string
	Subtitle string
	Dates    string
	Details  []string
}

// Option adjusts a single Render call.
type Option func(*options)

type options struct {
	thumbnail bool
}

// WithThumbnail renders the layout for the template selector.
func WithThumbnail() Option {
	return func(o *options) {
		o.thumbnail = true
	}
}

type arrangeFunc func(doc model.Document) Layout

var arrangements = map[model.TemplateID]arrangeFunc{
	model.TemplateClassic:   arrangeClassic,
	model.TemplateModern:    arrangeModern,
	model.TemplateCreative:  arrangeCreative,
	model.TemplateExecutive: arrangeExecutive,
	model.TemplateMinimal:   arrangeMinimal,
}

// Render projects doc through the template identified by id. It has no side
// effects and never mutates doc.
func Render(doc model.Document, id model.TemplateID, opts ...Option) (Layout, error) {
	arrange, ok := arrangements[id]
	if !ok {
		return Layout{}, fmt.Errorf("%w: %q", model.ErrUnknownTemplate, id)
	}
	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	layout := arrange(doc.Normalized())
	layout.Template = id
	layout.Scale = 1
	if cfg.thumbnail {
		layout.Thumbnail = true
		layout.Scale = ThumbnailScale
	}
	return layout, nil
}

// Sections returns every section block in display order across regions.
func (l Layout) Sections() []Section {
	var out []Section
	for _, region := range l.Regions {
		for _, block := range region.Blocks {
			if block.Kind == BlockSection && block.Section != nil {
				out = append(out, *block.Section)
			}
		}
	}
	return out
}

// Section returns the section with the given key.
func (l Layout) Section(key string) (Section, bool) {
	for _, section := range l.Sections() {
		if section.Key == key {
			return section, true
		}
	}
	return Section{}, false
}

// Photo returns the photo slot, if the layout has one.
func (l Layout) Photo() (Photo, bool) {
	for _, region := range l.Regions {
		for _, block := range region.Blocks {
			if block.Kind == BlockPhoto && block.Photo != nil {
				return *block.Photo, true
			}
		}
	}
	return Photo{}, false
}

// Identity returns the name and title block.
func (l Layout) Identity() (Identity, bool) {
	for _, region := range l.Regions {
		for _, block := range region.Blocks {
			if block.Kind == BlockIdentity && block.Identity != nil {
				return *block.Identity, true
			}
		}
	}
	return Identity{}, false
}
