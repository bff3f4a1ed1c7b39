package mutate

import (
	"errors"
	"fmt"

	"resume-builder/resume/model"
)

// ErrInvalidEdit marks an edit that names an unknown op, section or field,
// or carries a value the op cannot accept.
var ErrInvalidEdit = errors.New("invalid edit")

// Op names one mutation in an Edit.
type Op string

const (
	OpSetField            Op = "setField"
	OpSetListField        Op = "setListField"
	OpAppendEntry         Op = "appendEntry"
	OpRemoveEntry         Op = "removeEntry"
	OpSetSkill            Op = "setSkill"
	OpAppendSkill         Op = "appendSkill"
	OpRemoveSkill         Op = "removeSkill"
	OpAppendDetail        Op = "appendDetail"
	OpSetDetail           Op = "setDetail"
	OpRemoveDetail        Op = "removeDetail"
	OpClearImage          Op = "clearImage"
	OpSetImageSetting     Op = "setImageSetting"
	OpSetThemeColor       Op = "setThemeColor"
	OpSetSidebarTextColor Op = "setSidebarTextColor"
	OpSetIconColor        Op = "setIconColor"
)

// Edit is the wire form of a single mutation sent by the builder form.
type Edit struct {
	Op      Op     `json:"op"`
	Section string `json:"section,omitempty"`
	Field   string `json:"field,omitempty"`
	Index   int    `json:"index,omitempty"`
	Detail  int    `json:"detail,omitempty"`
	Value   string `json:"value,omitempty"`
}

var personalFields = map[string]bool{
	FieldFullName: true,
	FieldTitle:    true,
	FieldContact:  true,
	FieldEmail:    true,
}

var listFields = map[string]map[string]bool{
	SectionExperience: {FieldRole: true, FieldCompany: true, FieldStartDate: true, FieldEndDate: true},
	SectionEducation:  {FieldDegree: true, FieldSchool: true, FieldStartYear: true, FieldEndYear: true},
}

// Validate rejects edits naming an unknown op, section or field. Index bounds
// are not checked here; out-of-range indices apply as no-ops.
func (e Edit) Validate() error {
	switch e.Op {
	case OpSetField:
		if e.Section == SectionObjective {
			return nil
		}
		if e.Section != SectionPersonalInfo {
			return fmt.Errorf("%w: section %q", ErrInvalidEdit, e.Section)
		}
		if !personalFields[e.Field] {
			return fmt.Errorf("%w: field %q", ErrInvalidEdit, e.Field)
		}
	case OpSetListField:
		fields, ok := listFields[e.Section]
		if !ok {
			return fmt.Errorf("%w: section %q", ErrInvalidEdit, e.Section)
		}
		if !fields[e.Field] {
			return fmt.Errorf("%w: field %q", ErrInvalidEdit, e.Field)
		}
	case OpAppendEntry, OpRemoveEntry, OpAppendDetail, OpSetDetail, OpRemoveDetail:
		if _, ok := listFields[e.Section]; !ok {
			return fmt.Errorf("%w: section %q", ErrInvalidEdit, e.Section)
		}
	case OpSetImageSetting:
		if e.Field != FieldShape && e.Field != FieldSize {
			return fmt.Errorf("%w: field %q", ErrInvalidEdit, e.Field)
		}
	case OpSetThemeColor, OpSetSidebarTextColor, OpSetIconColor:
		if !model.ValidColor(e.Value) {
			return fmt.Errorf("%w: color %q", ErrInvalidEdit, e.Value)
		}
	case OpSetSkill, OpAppendSkill, OpRemoveSkill, OpClearImage:
	default:
		return fmt.Errorf("%w: op %q", ErrInvalidEdit, e.Op)
	}
	return nil
}

// Apply dispatches e to the matching mutation. Edits that do not validate
// return doc unchanged.
func Apply(doc model.Document, e Edit) model.Document {
	switch e.Op {
	case OpSetField:
		return SetField(doc, e.Section, e.Field, e.Value)
	case OpSetListField:
		return SetListField(doc, e.Section, e.Index, e.Field, e.Value)
	case OpAppendEntry:
		return AppendEntry(doc, e.Section)
	case OpRemoveEntry:
		return RemoveEntry(doc, e.Section, e.Index)
	case OpSetSkill:
		return SetSkill(doc, e.Index, e.Value)
	case OpAppendSkill:
		return AppendSkill(doc)
	case OpRemoveSkill:
		return RemoveSkill(doc, e.Index)
	case OpAppendDetail:
		return AppendDetail(doc, e.Section, e.Index, e.Value)
	case OpSetDetail:
		return SetDetail(doc, e.Section, e.Index, e.Detail, e.Value)
	case OpRemoveDetail:
		return RemoveDetail(doc, e.Section, e.Index, e.Detail)
	case OpClearImage:
		return ClearImage(doc)
	case OpSetImageSetting:
		return SetImageSetting(doc, e.Field, e.Value)
	case OpSetThemeColor:
		return SetThemeColor(doc, e.Value)
	case OpSetSidebarTextColor:
		return SetSidebarTextColor(doc, e.Value)
	case OpSetIconColor:
		return SetIconColor(doc, e.Value)
	default:
		return doc.Clone()
	}
}
