package render

import "resume-builder/resume/model"

// arrangeClassic lays the document out as one serif column: a ruled header
// followed by the summary, experience, education and skills sections.
func arrangeClassic(doc model.Document) Layout {
	const name = "classic"
	theme := doc.Theming

	header := []Block{identityBlock(doc, name, theme.ThemeColor)}
	if contacts := iconContacts(doc, theme.IconColor, "phone", "email"); len(contacts) > 0 {
		header = append(header, Block{Kind: BlockContact, Contacts: contacts})
	}

	body := appendSections(nil,
		styled(objectiveSection(doc, "Professional Summary", PresentParagraph), name, theme.ThemeColor),
		styled(experienceSection(doc, "Experience", PresentEntries), name, theme.ThemeColor),
		styled(educationSection(doc, "Education", PresentEntries), name, theme.ThemeColor),
		styled(skillsSection(doc, "Skills", PresentChips), name, theme.ThemeColor),
	)

	return Layout{
		Arrangement: ArrangementSingleColumn,
		Page:        Page{Width: a4Width, MinHeight: a4MinHeight, Padding: "20mm", Font: fontSerif},
		Theme:       theme,
		Regions: []Region{
			{Name: "header", Span: 12, Style: "border-bottom:2px solid " + theme.ThemeColor + ";padding-bottom:1.5rem;margin-bottom:2rem", Blocks: header},
			{Name: "body", Span: 12, Blocks: body},
		},
	}
}
