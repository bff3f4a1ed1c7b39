package mutate

import (
	"errors"
	"testing"

	"resume-builder/resume/model"
)

func TestEditValidate(t *testing.T) {
	valid := []Edit{
		{Op: OpSetField, Section: SectionPersonalInfo, Field: FieldEmail},
		{Op: OpSetField, Section: SectionObjective},
		{Op: OpSetListField, Section: SectionExperience, Field: FieldCompany},
		{Op: OpSetListField, Section: SectionEducation, Field: FieldStartYear},
		{Op: OpAppendEntry, Section: SectionEducation},
		{Op: OpRemoveDetail, Section: SectionExperience},
		{Op: OpAppendSkill},
		{Op: OpSetImageSetting, Field: FieldSize},
		{Op: OpSetIconColor, Value: "#000000"},
	}
	for _, e := range valid {
		if err := e.Validate(); err != nil {
			t.Fatalf("expected %+v to validate, got %v", e, err)
		}
	}

	invalid := []Edit{
		{Op: "explode"},
		{Op: OpSetField, Section: SectionExperience, Field: FieldRole},
		{Op: OpSetField, Section: SectionPersonalInfo, Field: "age"},
		{Op: OpSetListField, Section: SectionExperience, Field: FieldDegree},
		{Op: OpSetListField, Section: SectionSkills, Field: FieldRole},
		{Op: OpAppendEntry, Section: "projects"},
		{Op: OpSetImageSetting, Field: "opacity"},
		{Op: OpSetThemeColor, Value: "#000;background-image:url(http://169.254.169.254/)"},
		{Op: OpSetSidebarTextColor, Value: "white"},
		{Op: OpSetIconColor, Value: ""},
	}
	for _, e := range invalid {
		if err := e.Validate(); !errors.Is(err, ErrInvalidEdit) {
			t.Fatalf("expected ErrInvalidEdit for %+v, got %v", e, err)
		}
	}
}

func TestApplyDispatches(t *testing.T) {
	doc := model.New()
	edits := []Edit{
		{Op: OpSetField, Section: SectionPersonalInfo, Field: FieldFullName, Value: "Jane Doe"},
		{Op: OpAppendEntry, Section: SectionExperience},
		{Op: OpSetListField, Section: SectionExperience, Index: 0, Field: FieldRole, Value: "Engineer"},
		{Op: OpAppendDetail, Section: SectionExperience, Index: 0, Value: "Shipped things"},
		{Op: OpAppendSkill},
		{Op: OpSetSkill, Index: 0, Value: "Go"},
		{Op: OpSetThemeColor, Value: "#7c3aed"},
	}
	for _, e := range edits {
		doc = Apply(doc, e)
	}

	if doc.PersonalInfo.FullName != "Jane Doe" {
		t.Fatalf("unexpected name %q", doc.PersonalInfo.FullName)
	}
	if len(doc.Experience) != 1 || doc.Experience[0].Role != "Engineer" {
		t.Fatalf("unexpected experience %+v", doc.Experience)
	}
	if len(doc.Experience[0].Details) != 1 || doc.Experience[0].Details[0] != "Shipped things" {
		t.Fatalf("unexpected details %+v", doc.Experience[0].Details)
	}
	if len(doc.Skills) != 1 || doc.Skills[0] != "Go" {
		t.Fatalf("unexpected skills %+v", doc.Skills)
	}
	if doc.Theming.ThemeColor != "#7c3aed" {
		t.Fatalf("unexpected theme color %q", doc.Theming.ThemeColor)
	}

	same := Apply(doc, Edit{Op: "unknown"})
	if same.PersonalInfo != doc.PersonalInfo || len(same.Experience) != 1 {
		t.Fatalf("unknown op changed the document")
	}
}
