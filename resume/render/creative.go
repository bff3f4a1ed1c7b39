package render

import "resume-builder/resume/model"

// arrangeCreative places a theme-colored header band above a twelve-column
// grid: profile and an experience timeline on the left eight columns,
// education and skill chips on the right four.
func arrangeCreative(doc model.Document) Layout {
	const name = "creative"
	theme := doc.Theming

	var header []Block
	if photo := photoBlock(doc, 120, "1rem", false); photo != nil {
		photo.Photo.Style = "border:4px solid rgba(255,255,255,0.3)"
		header = append(header, *photo)
	}
	header = append(header, identityBlock(doc, name, ""))
	if contacts := iconContacts(doc, theme.IconColor, "email", "phone"); len(contacts) > 0 {
		header = append(header, Block{Kind: BlockContact, Contacts: contacts, Style: "opacity:0.8"})
	}

	left := appendSections(nil,
		styled(objectiveSection(doc, "Profile", PresentParagraph), name, theme.ThemeColor),
		withMetaColor(styled(experienceSection(doc, "Experience", PresentTimeline), name, theme.ThemeColor), theme.ThemeColor),
	)

	var right []Block
	if edu := styled(educationSection(doc, "Education", PresentEntries), name, theme.ThemeColor); edu != nil {
		edu.MetaStyle = TextStyle{Size: "0.875rem", Color: mutedColor}.CSS()
		right = appendSections(right, edu)
	}
	if skills := styled(skillsSection(doc, "Skills", PresentChips), name, theme.ThemeColor); skills != nil {
		skills.ItemStyle = "color:#ffffff;font-weight:700;background-color:" + theme.ThemeColor
		right = appendSections(right, skills)
	}

	return Layout{
		Arrangement: ArrangementHeaderGrid,
		Page:        Page{Width: a4Width, MinHeight: a4MinHeight, Padding: "0", Font: fontRound},
		Theme:       theme,
		Regions: []Region{
			{Name: "header", Span: 12, Style: "padding:2.5rem;color:#ffffff;background-color:" + theme.ThemeColor, Blocks: header},
			{Name: "left", Span: 8, Style: "padding:2.5rem 0 2.5rem 2.5rem", Blocks: left},
			{Name: "right", Span: 4, Style: "padding:2.5rem 2.5rem 2.5rem 0", Blocks: right},
		},
	}
}
