package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"resume-builder/internal/imaging"
	"resume-builder/resume/model"
)

// Section keys.
const (
	SectionObjective  = "objective"
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionSkills     = "skills"
	SectionContact    = "contact"
)

const (
	a4Width     = "210mm"
	a4MinHeight = "297mm"
	presentText = "Present"
	iconPhone   = "📞"
	iconEmail   = "✉️"
)

// DateRange joins a start and end value for display; an empty end reads as
// "Present". Values are shown as typed.
func DateRange(start, end string) string {
	if end == "" {
		end = presentText
	}
	return start + " – " + end
}

// photoRadius maps a shape to its CSS border radius. rounded is the
// template's own rounding.
func photoRadius(shape model.ImageShape, rounded string) string {
	switch shape {
	case model.ShapeSquare:
		return "0"
	case model.ShapeRounded:
		return rounded
	default:
		return "50%"
	}
}

// photoWidth scales base pixels by the size percentage.
func photoWidth(base float64, size int) string {
	px := base * float64(size) / 100
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", px), "0"), ".") + "px"
}

// photoBlock returns the photo slot for a document, or nil when the template
// shows nothing without an image. Only inline payloads are emitted as a
// source; anything else is treated as no image.
func photoBlock(doc model.Document, base float64, rounded string, fallbackAvatar bool) *Block {
	width := photoWidth(base, doc.ImageSettings.Size)
	if !doc.HasImage() || !imaging.IsDataURL(doc.ProfileImage) {
		if !fallbackAvatar {
			return nil
		}
		return &Block{Kind: BlockPhoto, Photo: &Photo{
			Initial: initial(doc.PersonalInfo.FullName),
			Width:   "96px",
			Radius:  "50%",
		}}
	}
	return &Block{Kind: BlockPhoto, Photo: &Photo{
		Src:    doc.ProfileImage,
		Width:  width,
		Radius: photoRadius(doc.ImageSettings.Shape, rounded),
	}}
}

func initial(name string) string {
	if name == "" {
		return "U"
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(r)
}

func identityBlock(doc model.Document, template string, nameColor string) Block {
	name := styleFor(template, "name")
	if nameColor != "" {
		name.Color = nameColor
	}
	return Block{Kind: BlockIdentity, Identity: &Identity{
		Name:       doc.PersonalInfo.FullName,
		Title:      doc.PersonalInfo.Title,
		NameStyle:  name.CSS(),
		TitleStyle: styleFor(template, "title").CSS(),
	}}
}

// iconContacts lists non-empty contact values with their glyphs in the given
// order of "phone" and "email".
func iconContacts(doc model.Document, iconColor string, order ...string) []Contact {
	var out []Contact
	for _, key := range order {
		switch key {
		case "phone":
			if doc.PersonalInfo.Contact != "" {
				out = append(out, Contact{Icon: iconPhone, IconStyle: "color:" + iconColor, Value: doc.PersonalInfo.Contact})
			}
		case "email":
			if doc.PersonalInfo.Email != "" {
				out = append(out, Contact{Icon: iconEmail, IconStyle: "color:" + iconColor, Value: doc.PersonalInfo.Email})
			}
		}
	}
	return out
}

func sectionBlock(s Section) Block {
	return Block{Kind: BlockSection, Section: &s}
}

// objectiveSection returns nil only for an empty objective. Whitespace is
// content and renders like any other text.
func objectiveSection(doc model.Document, heading string, present string) *Section {
	if doc.Objective == "" {
		return nil
	}
	return &Section{
		Key:     SectionObjective,
		Heading: heading,
		Present: present,
		Text:    doc.Objective,
	}
}

func experienceSection(doc model.Document, heading, present string) *Section {
	if len(doc.Experience) == 0 {
		return nil
	}
	entries := make([]Entry, 0, len(doc.Experience))
	for _, exp := range doc.Experience {
		entries = append(entries, Entry{
			ID:       exp.ID,
			Title:    exp.Role,
			Subtitle: exp.Company,
			Dates:    DateRange(exp.StartDate, exp.EndDate),
			Details:  exp.Details,
		})
	}
	return &Section{Key: SectionExperience, Heading: heading, Present: present, Entries: entries}
}

func educationSection(doc model.Document, heading, present string) *Section {
	if len(doc.Education) == 0 {
		return nil
	}
	entries := make([]Entry, 0, len(doc.Education))
	for _, edu := range doc.Education {
		entries = append(entries, Entry{
			ID:       edu.ID,
			Title:    edu.Degree,
			Subtitle: edu.School,
			Dates:    DateRange(edu.StartYear, edu.EndYear),
			Details:  edu.Details,
		})
	}
	return &Section{Key: SectionEducation, Heading: heading, Present: present, Entries: entries}
}

func skillsSection(doc model.Document, heading, present string) *Section {
	if len(doc.Skills) == 0 {
		return nil
	}
	items := make([]string, len(doc.Skills))
	copy(items, doc.Skills)
	return &Section{Key: SectionSkills, Heading: heading, Present: present, Items: items}
}

// styled applies the template's text styles to s. headingColor overrides the
// heading color when non-empty.
func styled(s *Section, template, headingColor string) *Section {
	if s == nil {
		return nil
	}
	heading := styleFor(template, "heading")
	if headingColor != "" {
		heading.Color = headingColor
	}
	s.HeadingStyle = heading.CSS()
	s.EntryStyle = styleFor(template, "entry").CSS()
	s.MetaStyle = styleFor(template, "meta").CSS()
	s.DatesStyle = styleFor(template, "dates").CSS()
	return s
}

// appendSections adds the non-nil sections to blocks.
func appendSections(blocks []Block, sections ...*Section) []Block {
	for _, s := range sections {
		if s != nil {
			blocks = append(blocks, sectionBlock(*s))
		}
	}
	return blocks
}
