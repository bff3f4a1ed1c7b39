// Package mutate implements every edit a builder session can apply to a
// resume document. Each function returns a new document and leaves its input
// untouched; none of them can fail.
package mutate

import (
	"strconv"

	"github.com/google/uuid"

	"resume-builder/resume/model"
)

// Sections addressed by edits.
const (
	SectionPersonalInfo = "personalInfo"
	SectionObjective    = "objective"
	SectionExperience   = "experience"
	SectionEducation    = "education"
	SectionSkills       = "skills"
)

// Scalar fields addressed by edits.
const (
	FieldFullName = "fullName"
	FieldTitle    = "title"
	FieldContact  = "contact"
	FieldEmail    = "email"

	FieldRole      = "role"
	FieldCompany   = "company"
	FieldStartDate = "startDate"
	FieldEndDate   = "endDate"

	FieldDegree    = "degree"
	FieldSchool    = "school"
	FieldStartYear = "startYear"
	FieldEndYear   = "endYear"

	FieldShape = "shape"
	FieldSize  = "size"
)

// newID generates entry identifiers; tests swap it for a deterministic source.
var newID = uuid.NewString

// SetField replaces one personalInfo field, or the objective when section is
// SectionObjective.
func SetField(doc model.Document, section, field, value string) model.Document {
	out := doc.Clone()
	switch section {
	case SectionPersonalInfo:
		switch field {
		case FieldFullName:
			out.PersonalInfo.FullName = value
		case FieldTitle:
			out.PersonalInfo.Title = value
		case FieldContact:
			out.PersonalInfo.Contact = value
		case FieldEmail:
			out.PersonalInfo.Email = value
		}
	case SectionObjective:
		out.Objective = value
	}
	return out
}

// SetListField replaces one scalar field of the experience or education entry
// at index. An index outside the sequence leaves the document unchanged.
func SetListField(doc model.Document, section string, index int, field, value string) model.Document {
	out := doc.Clone()
	switch section {
	case SectionExperience:
		if index < 0 || index >= len(out.Experience) {
			return out
		}
		entry := &out.Experience[index]
		switch field {
		case FieldRole:
			entry.Role = value
		case FieldCompany:
			entry.Company = value
		case FieldStartDate:
			entry.StartDate = value
		case FieldEndDate:
			entry.EndDate = value
		}
	case SectionEducation:
		if index < 0 || index >= len(out.Education) {
			return out
		}
		entry := &out.Education[index]
		switch field {
		case FieldDegree:
			entry.Degree = value
		case FieldSchool:
			entry.School = value
		case FieldStartYear:
			entry.StartYear = value
		case FieldEndYear:
			entry.EndYear = value
		}
	}
	return out
}

// AppendEntry appends a blank entry with a fresh identifier.
func AppendEntry(doc model.Document, section string) model.Document {
	out := doc.Clone()
	switch section {
	case SectionExperience:
		out.Experience = append(out.Experience, model.ExperienceEntry{
			ID:      uniqueID(out),
			Details: []string{},
		})
	case SectionEducation:
		out.Education = append(out.Education, model.EducationEntry{
			ID:      uniqueID(out),
			Details: []string{},
		})
	}
	return out
}

// RemoveEntry removes the entry at index and shifts the rest up.
func RemoveEntry(doc model.Document, section string, index int) model.Document {
	out := doc.Clone()
	switch section {
	case SectionExperience:
		if index >= 0 && index < len(out.Experience) {
			out.Experience = append(out.Experience[:index], out.Experience[index+1:]...)
		}
	case SectionEducation:
		if index >= 0 && index < len(out.Education) {
			out.Education = append(out.Education[:index], out.Education[index+1:]...)
		}
	}
	return out
}

// SetSkill replaces the skill at index.
func SetSkill(doc model.Document, index int, value string) model.Document {
	out := doc.Clone()
	if index >= 0 && index < len(out.Skills) {
		out.Skills[index] = value
	}
	return out
}

// AppendSkill appends an empty skill.
func AppendSkill(doc model.Document) model.Document {
	out := doc.Clone()
	out.Skills = append(out.Skills, "")
	return out
}

// RemoveSkill removes the skill at index; positions after it shift down by one.
func RemoveSkill(doc model.Document, index int) model.Document {
	out := doc.Clone()
	if index >= 0 && index < len(out.Skills) {
		out.Skills = append(out.Skills[:index], out.Skills[index+1:]...)
	}
	return out
}

// AppendDetail appends a bullet to the details of an entry.
func AppendDetail(doc model.Document, section string, index int, value string) model.Document {
	return editDetails(doc, section, index, func(details []string) []string {
		return append(details, value)
	})
}

// SetDetail replaces one bullet of an entry.
func SetDetail(doc model.Document, section string, index, detail int, value string) model.Document {
	return editDetails(doc, section, index, func(details []string) []string {
		if detail >= 0 && detail < len(details) {
			details[detail] = value
		}
		return details
	})
}

// RemoveDetail removes one bullet of an entry.
func RemoveDetail(doc model.Document, section string, index, detail int) model.Document {
	return editDetails(doc, section, index, func(details []string) []string {
		if detail >= 0 && detail < len(details) {
			details = append(details[:detail], details[detail+1:]...)
		}
		return details
	})
}

// SetImage replaces the encoded profile image.
func SetImage(doc model.Document, payload string) model.Document {
	out := doc.Clone()
	out.ProfileImage = payload
	return out
}

// ClearImage removes the profile image; image settings are kept.
func ClearImage(doc model.Document) model.Document {
	return SetImage(doc, "")
}

// SetImageSetting replaces the shape or the size of the profile image. Values
// that do not parse for the field leave the document unchanged.
func SetImageSetting(doc model.Document, field, value string) model.Document {
	out := doc.Clone()
	switch field {
	case FieldShape:
		if shape := model.ImageShape(value); shape.Valid() {
			out.ImageSettings.Shape = shape
		}
	case FieldSize:
		if size, err := strconv.Atoi(value); err == nil && size > 0 {
			out.ImageSettings.Size = size
		}
	}
	return out
}

// SetThemeColor replaces the accent color.
func SetThemeColor(doc model.Document, color string) model.Document {
	out := doc.Clone()
	out.Theming.ThemeColor = color
	return out
}

// SetSidebarTextColor replaces the sidebar text color.
func SetSidebarTextColor(doc model.Document, color string) model.Document {
	out := doc.Clone()
	out.Theming.SidebarTextColor = color
	return out
}

// SetIconColor replaces the contact icon color.
func SetIconColor(doc model.Document, color string) model.Document {
	out := doc.Clone()
	out.Theming.IconColor = color
	return out
}

func editDetails(doc model.Document, section string, index int, fn func([]string) []string) model.Document {
	out := doc.Clone()
	switch section {
	case SectionExperience:
		if index >= 0 && index < len(out.Experience) {
			out.Experience[index].Details = fn(nonNil(out.Experience[index].Details))
		}
	case SectionEducation:
		if index >= 0 && index < len(out.Education) {
			out.Education[index].Details = fn(nonNil(out.Education[index].Details))
		}
	}
	return out
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func uniqueID(doc model.Document) string {
	taken := make(map[string]struct{}, len(doc.Experience)+len(doc.Education))
	for _, entry := range doc.Experience {
		taken[entry.ID] = struct{}{}
	}
	for _, entry := range doc.Education {
		taken[entry.ID] = struct{}{}
	}
	for {
		id := newID()
		if _, ok := taken[id]; !ok && id != "" {
			return id
		}
	}
}
