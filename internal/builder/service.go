// Package builder owns live resume sessions: it applies edits through the
// mutation layer, re-renders through the selected template and hands the
// result to snapshot and export collaborators.
package builder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/export"
	"resume-builder/internal/imaging"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/snapshots"
	"resume-builder/resume/legacy"
	"resume-builder/resume/model"
	"resume-builder/resume/mutate"
	"resume-builder/resume/render"
	"resume-builder/resume/selector"
)

// Service contains the builder shell logic.
type Service struct {
	Sessions        SessionStore
	Renderer        *render.HTMLRenderer
	Images          *imaging.Encoder
	Snapshots       *snapshots.Service
	Exports         *export.Service
	DefaultTemplate model.TemplateID
	Now             func() time.Time
}

// Rendered is a session together with its current preview fragment.
type Rendered struct {
	Session Session
	HTML    string
}

// Start opens a session with an empty document. An empty template uses the
// configured default.
func (s *Service) Start(ctx context.Context, owner, rawTemplate string) (Session, error) {
	if strings.TrimSpace(owner) == "" {
		return Session{}, ErrInvalidInput
	}
	template := s.defaultTemplate()
	if strings.TrimSpace(rawTemplate) != "" {
		id, err := selector.Select(rawTemplate)
		if err != nil {
			return Session{}, err
		}
		template = id
	}
	now := s.now()
	session := Session{
		ID:        uuid.NewString(),
		Owner:     owner,
		Template:  template,
		Document:  model.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Sessions.Create(ctx, session); err != nil {
		return Session{}, err
	}
	return session, nil
}

// Get returns the session.
func (s *Service) Get(ctx context.Context, owner, id string) (Session, error) {
	return s.Sessions.Get(ctx, owner, id)
}

// End discards the session and its live document. Saved snapshots and
// archived exports are kept.
func (s *Service) End(ctx context.Context, owner, id string) error {
	return s.Sessions.Delete(ctx, owner, id)
}

// ApplyEdits validates every edit, then applies them in order as one
// replacement of the live document and re-renders it. An invalid edit rejects
// the whole batch.
func (s *Service) ApplyEdits(ctx context.Context, owner, id string, edits []mutate.Edit) (Rendered, error) {
	if len(edits) == 0 {
		return Rendered{}, fmt.Errorf("%w: no edits", ErrInvalidInput)
	}
	for i, edit := range edits {
		if err := edit.Validate(); err != nil {
			metrics.IncEditRejected()
			return Rendered{}, fmt.Errorf("edit %d: %w", i, err)
		}
	}
	session, err := s.Sessions.Update(ctx, owner, id, func(sess *Session) error {
		doc := sess.Document
		for _, edit := range edits {
			doc = mutate.Apply(doc, edit)
		}
		sess.Document = doc
		sess.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return Rendered{}, err
	}
	for range edits {
		metrics.IncEditApplied()
	}
	return s.rendered(session)
}

// SelectTemplate switches the session's template. The document is untouched.
func (s *Service) SelectTemplate(ctx context.Context, owner, id, rawTemplate string) (Rendered, error) {
	template, err := selector.Select(rawTemplate)
	if err != nil {
		return Rendered{}, err
	}
	session, err := s.Sessions.Update(ctx, owner, id, func(sess *Session) error {
		sess.Template = template
		sess.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return Rendered{}, err
	}
	return s.rendered(session)
}

// SetImage encodes the upload and stores it as the profile image. Encoding
// happens before the session is locked; when uploads race, the last one to
// finish wins.
func (s *Service) SetImage(ctx context.Context, owner, id string, r io.Reader) (Rendered, error) {
	if _, err := s.Sessions.Get(ctx, owner, id); err != nil {
		return Rendered{}, err
	}
	payload, err := s.images().Encode(r)
	if err != nil {
		return Rendered{}, err
	}
	session, err := s.Sessions.Update(ctx, owner, id, func(sess *Session) error {
		sess.Document = mutate.SetImage(sess.Document, payload)
		sess.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return Rendered{}, err
	}
	return s.rendered(session)
}

// ClearImage removes the profile image.
func (s *Service) ClearImage(ctx context.Context, owner, id string) (Rendered, error) {
	session, err := s.Sessions.Update(ctx, owner, id, func(sess *Session) error {
		sess.Document = mutate.ClearImage(sess.Document)
		sess.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return Rendered{}, err
	}
	return s.rendered(session)
}

// Preview renders the session as a standalone HTML page.
func (s *Service) Preview(ctx context.Context, owner, id string) (string, error) {
	session, err := s.Sessions.Get(ctx, owner, id)
	if err != nil {
		return "", err
	}
	layout, err := s.render(session)
	if err != nil {
		return "", err
	}
	return s.Renderer.Page(layout)
}

// SaveSnapshot writes the legacy snapshot of the session's document.
func (s *Service) SaveSnapshot(ctx context.Context, owner, id string) (legacy.Snapshot, error) {
	if s.Snapshots == nil {
		return legacy.Snapshot{}, errors.New("snapshots not configured")
	}
	session, err := s.Sessions.Get(ctx, owner, id)
	if err != nil {
		return legacy.Snapshot{}, err
	}
	return s.Snapshots.Save(ctx, owner, session.Document)
}

// Display renders the legacy display page from the owner's stored snapshot.
// A missing or unreadable snapshot renders an empty page.
func (s *Service) Display(ctx context.Context, owner string) (string, error) {
	if s.Snapshots == nil {
		return "", errors.New("snapshots not configured")
	}
	display, err := s.Snapshots.Display(ctx, owner)
	if err != nil {
		return "", err
	}
	return s.Renderer.LegacyPage(display)
}

// Export renders the session at full size and hands it to the export service.
func (s *Service) Export(ctx context.Context, owner, id string, opts export.Options) (export.Result, error) {
	if s.Exports == nil {
		return export.Result{}, export.ErrEngineUnavailable
	}
	session, err := s.Sessions.Get(ctx, owner, id)
	if err != nil {
		return export.Result{}, err
	}
	layout, err := s.render(session)
	if err != nil {
		return export.Result{}, err
	}
	body, err := s.Renderer.Fragment(layout)
	if err != nil {
		return export.Result{}, err
	}
	styles, err := s.Renderer.Stylesheet()
	if err != nil {
		return export.Result{}, err
	}
	return s.Exports.Export(ctx, export.Request{
		Owner:     owner,
		SessionID: session.ID,
		Template:  string(session.Template),
		Document: export.Document{
			Title:  render.PageTitle(layout),
			Styles: styles,
			Body:   body,
		},
		Options: opts,
	})
}

// Templates lists the catalog.
func (s *Service) Templates() ([]selector.Template, error) {
	return selector.Catalog()
}

// Thumbnails renders every template against the demo document.
func (s *Service) Thumbnails() ([]selector.Thumbnail, error) {
	return selector.Thumbnails(s.Renderer)
}

// Thumbnail renders one template against the demo document.
func (s *Service) Thumbnail(rawTemplate string) (string, error) {
	id, err := selector.Select(rawTemplate)
	if err != nil {
		return "", err
	}
	return selector.ThumbnailHTML(s.Renderer, id)
}

func (s *Service) rendered(session Session) (Rendered, error) {
	layout, err := s.render(session)
	if err != nil {
		return Rendered{}, err
	}
	html, err := s.Renderer.Fragment(layout)
	if err != nil {
		return Rendered{}, err
	}
	return Rendered{Session: session, HTML: html}, nil
}

func (s *Service) render(session Session) (render.Layout, error) {
	start := time.Now()
	layout, err := render.Render(session.Document, session.Template)
	if err != nil {
		return render.Layout{}, err
	}
	metrics.ObserveRender(string(session.Template), time.Since(start))
	return layout, nil
}

func (s *Service) images() *imaging.Encoder {
	if s.Images == nil {
		return imaging.NewEncoder(0)
	}
	return s.Images
}

func (s *Service) defaultTemplate() model.TemplateID {
	if s.DefaultTemplate.Valid() {
		return s.DefaultTemplate
	}
	return model.DefaultTemplate
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}
