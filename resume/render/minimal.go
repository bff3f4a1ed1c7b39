package render

import "resume-builder/resume/model"

// arrangeMinimal centers everything in a single column.
func arrangeMinimal(doc model.Document) Layout {
	const name = "minimal"
	theme := doc.Theming

	var header []Block
	if photo := photoBlock(doc, 100, "1rem", false); photo != nil {
		header = append(header, *photo)
	}
	header = append(header, identityBlock(doc, name, ""))
	if contacts := labelFreeContacts(doc); len(contacts) > 0 {
		for i := 1; i < len(contacts); i++ {
			contacts[i].Icon = "•"
		}
		header = append(header, Block{Kind: BlockContact, Contacts: contacts, Style: "justify-content:center;font-size:0.75rem;color:" + subtleColor})
	}

	body := appendSections(nil,
		styled(objectiveSection(doc, "", PresentQuote), name, ""),
		styled(experienceSection(doc, "Experience", PresentDated), name, theme.ThemeColor),
		styled(educationSection(doc, "Education", PresentGrid), name, theme.ThemeColor),
		styled(skillsSection(doc, "Skills", PresentChips), name, theme.ThemeColor),
	)

	return Layout{
		Arrangement: ArrangementSingleColumn,
		Page:        Page{Width: a4Width, MinHeight: a4MinHeight, Padding: "20mm", Font: fontSans},
		Theme:       theme,
		Regions: []Region{
			{Name: "header", Span: 12, Style: "text-align:center;display:flex;flex-direction:column;align-items:center;margin-bottom:3rem", Blocks: header},
			{Name: "body", Span: 12, Style: "max-width:42rem;margin:0 auto", Blocks: body},
		},
	}
}
