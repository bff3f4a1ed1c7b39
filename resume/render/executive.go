package render

import "resume-builder/resume/model"

// arrangeExecutive places name and title beside a right-aligned photo above a
// three-column grid with the narrative on two columns and contact, education
// and expertise on the third.
func arrangeExecutive(doc model.Document) Layout {
	const name = "executive"
	theme := doc.Theming

	header := []Block{identityBlock(doc, name, "")}
	if photo := photoBlock(doc, 96, "0.5rem", false); photo != nil {
		photo.Photo.Style = "border:2px solid #e2e8f0;margin-left:auto"
		header = append(header, *photo)
	}

	left := appendSections(nil,
		styled(objectiveSection(doc, "Executive Summary", PresentParagraph), name, ""),
		withMetaColor(styled(experienceSection(doc, "Professional Experience", PresentEntries), name, ""), theme.ThemeColor),
	)

	var contact *Section
	if contacts := labelFreeContacts(doc); len(contacts) > 0 {
		contact = &Section{Key: SectionContact, Heading: "Contact", Present: PresentContacts, Contacts: contacts}
	}
	var skills *Section
	if skills = styled(skillsSection(doc, "Expertise", PresentList), name, ""); skills != nil {
		skills.ItemStyle = "background-color:" + theme.ThemeColor
	}
	right := appendSections(nil,
		styled(contact, name, ""),
		styled(educationSection(doc, "Education", PresentEntries), name, ""),
		skills,
	)

	return Layout{
		Arrangement: ArrangementHeaderGrid,
		Page:        Page{Width: a4Width, MinHeight: a4MinHeight, Padding: "15mm", Font: fontSans},
		Theme:       theme,
		Regions: []Region{
			{Name: "header", Span: 12, Style: "display:flex;align-items:flex-end;border-bottom:4px solid " + theme.ThemeColor + ";padding-bottom:1.5rem;margin-bottom:2rem", Blocks: header},
			{Name: "left", Span: 8, Blocks: left},
			{Name: "right", Span: 4, Style: "border-left:1px solid #f1f5f9;padding-left:2rem", Blocks: right},
		},
	}
}

func labelFreeContacts(doc model.Document) []Contact {
	var out []Contact
	if doc.PersonalInfo.Email != "" {
		out = append(out, Contact{Value: doc.PersonalInfo.Email})
	}
	if doc.PersonalInfo.Contact != "" {
		out = append(out, Contact{Value: doc.PersonalInfo.Contact})
	}
	return out
}
