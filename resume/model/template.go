package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTemplate is returned for identifiers outside the fixed template set.
var ErrUnknownTemplate = errors.New("unknown template")

// TemplateID identifies one of the fixed layout algorithms.
type TemplateID string

const (
	TemplateClassic   TemplateID = "classic"
	TemplateModern    TemplateID = "modern"
	TemplateCreative  TemplateID = "creative"
	TemplateExecutive TemplateID = "executive"
	TemplateMinimal   TemplateID = "minimal"
)

// DefaultTemplate is used when a session starts without an explicit choice.
const DefaultTemplate = TemplateClassic

// Templates lists every template in selector order.
func Templates() []TemplateID {
	return []TemplateID{
		TemplateClassic,
		TemplateModern,
		TemplateCreative,
		TemplateExecutive,
		TemplateMinimal,
	}
}

// Valid reports whether id belongs to the fixed set.
func (id TemplateID) Valid() bool {
	switch id {
	case TemplateClassic, TemplateModern, TemplateCreative, TemplateExecutive, TemplateMinimal:
		return true
	default:
		return false
	}
}

// HasPhotoSlot reports whether the template shows a profile image.
func (id TemplateID) HasPhotoSlot() bool {
	return id.Valid() && id != TemplateClassic
}

// ParseTemplateID validates a raw identifier.
func ParseTemplateID(raw string) (TemplateID, error) {
	id := TemplateID(strings.ToLower(strings.TrimSpace(raw)))
	if !id.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTemplate, raw)
	}
	return id, nil
}
