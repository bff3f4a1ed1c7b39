package model

import "regexp"

// Default theming and image settings applied to every new document.
const (
	DefaultThemeColor       = "#0f172a"
	DefaultSidebarTextColor = "#ffffff"
	DefaultIconColor        = "#475569"
	DefaultImageSize        = 100
)

// Document is the structured resume record owned by a builder session.
type Document struct {
	PersonalInfo  PersonalInfo      `json:"personalInfo"`
	Objective     string            `json:"objective"`
	Experience    []ExperienceEntry `json:"experience"`
	Education     []EducationEntry  `json:"education"`
	Skills        []string          `json:"skills"`
	Theming       Theming           `json:"theming"`
	ProfileImage  string            `json:"profileImage,omitempty"`
	ImageSettings ImageSettings     `json:"imageSettings"`
}

// PersonalInfo holds the identity and contact fields shown in every header.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Title    string `json:"title"`
	Contact  string `json:"contact"`
	Email    string `json:"email"`
}

// ExperienceEntry represents a work history row.
type ExperienceEntry struct {
	ID        string   `json:"id"`
	Role      string   `json:"role"`
	Company   string   `json:"company"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	Details   []string `json:"details"`
}

// EducationEntry represents an education row.
type EducationEntry struct {
	ID        string   `json:"id"`
	Degree    string   `json:"degree"`
	School    string   `json:"school"`
	StartYear string   `json:"startYear"`
	EndYear   string   `json:"endYear"`
	Details   []string `json:"details"`
}

// Theming carries the three user-selectable colors.
type Theming struct {
	ThemeColor       string `json:"themeColor"`
	SidebarTextColor string `json:"sidebarTextColor"`
	IconColor        string `json:"iconColor"`
}

// ImageSettings controls how the profile image is clipped and scaled.
type ImageSettings struct {
	Shape ImageShape `json:"shape"`
	Size  int        `json:"size"`
}

// ImageShape is the clipping applied to the profile image.
type ImageShape string

const (
	ShapeCircle  ImageShape = "circle"
	ShapeSquare  ImageShape = "square"
	ShapeRounded ImageShape = "rounded"
)

// Valid reports whether s is one of the supported shapes.
func (s ImageShape) Valid() bool {
	switch s {
	case ShapeCircle, ShapeSquare, ShapeRounded:
		return true
	default:
		return false
	}
}

// New returns an all-empty document with default theming.
func New() Document {
	return Document{
		Experience: []ExperienceEntry{},
		Education:  []EducationEntry{},
		Skills:     []string{},
		Theming: Theming{
			ThemeColor:       DefaultThemeColor,
			SidebarTextColor: DefaultSidebarTextColor,
			IconColor:        DefaultIconColor,
		},
		ImageSettings: ImageSettings{
			Shape: ShapeCircle,
			Size:  DefaultImageSize,
		},
	}
}

// HasImage reports whether a profile image payload is present.
func (d Document) HasImage() bool {
	return d.ProfileImage != ""
}

// Clone returns a deep copy so that no slice is shared with d.
func (d Document) Clone() Document {
	out := d
	if d.Experience != nil {
		out.Experience = make([]ExperienceEntry, len(d.Experience))
		for i, entry := range d.Experience {
			entry.Details = cloneStrings(entry.Details)
			out.Experience[i] = entry
		}
	}
	if d.Education != nil {
		out.Education = make([]EducationEntry, len(d.Education))
		for i, entry := range d.Education {
			entry.Details = cloneStrings(entry.Details)
			out.Education[i] = entry
		}
	}
	out.Skills = cloneStrings(d.Skills)
	return out
}

// Normalized fills zero-valued theming and image settings with defaults and
// replaces nil slices, so documents decoded from JSON render like New().
func (d Document) Normalized() Document {
	out := d.Clone()
	if out.Experience == nil {
		out.Experience = []ExperienceEntry{}
	}
	if out.Education == nil {
		out.Education = []EducationEntry{}
	}
	if out.Skills == nil {
		out.Skills = []string{}
	}
	if !ValidColor(out.Theming.ThemeColor) {
		out.Theming.ThemeColor = DefaultThemeColor
	}
	if !ValidColor(out.Theming.SidebarTextColor) {
		out.Theming.SidebarTextColor = DefaultSidebarTextColor
	}
	if !ValidColor(out.Theming.IconColor) {
		out.Theming.IconColor = DefaultIconColor
	}
	if !out.ImageSettings.Shape.Valid() {
		out.ImageSettings.Shape = ShapeCircle
	}
	if out.ImageSettings.Size <= 0 {
		out.ImageSettings.Size = DefaultImageSize
	}
	return out
}

var colorPattern = regexp.MustCompile(`^(?:#[0-9a-fA-F]{3}|#[0-9a-fA-F]{4}|#[0-9a-fA-F]{6}|#[0-9a-fA-F]{8}|rgba?\(\s*\d{1,3}\s*,\s*\d{1,3}\s*,\s*\d{1,3}\s*(?:,\s*(?:0|1|0?\.\d+)\s*)?\))$`)

// ValidColor reports whether s is a hex or rgb()/rgba() color, the forms a
// color picker produces. Theme colors are interpolated into inline styles, so
// nothing else is accepted.
func ValidColor(s string) bool {
	return colorPattern.MatchString(s)
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
