package render

import "resume-builder/resume/model"

// arrangeModern splits the page into a colored sidebar and a main column.
// The sidebar is the only place the sidebar text color applies.
func arrangeModern(doc model.Document) Layout {
	const name = "modern"
	theme := doc.Theming

	sidebar := []Block{
		*photoBlock(doc, 96, "1rem", true),
		identityBlock(doc, name, ""),
	}
	var contacts []Contact
	if doc.PersonalInfo.Email != "" {
		contacts = append(contacts, Contact{Label: "Email", Value: doc.PersonalInfo.Email})
	}
	if doc.PersonalInfo.Contact != "" {
		contacts = append(contacts, Contact{Label: "Phone", Value: doc.PersonalInfo.Contact})
	}
	if len(contacts) > 0 {
		sidebar = append(sidebar, Block{Kind: BlockContact, Contacts: contacts})
	}
	if skills := skillsSection(doc, "Skills", PresentChips); skills != nil {
		skills.HeadingStyle = styleFor(name, "sidebar").CSS()
		skills.ItemStyle = "background:rgba(255,255,255,0.2)"
		sidebar = appendSections(sidebar, skills)
	}

	main := appendSections(nil,
		styled(objectiveSection(doc, "Profile", PresentParagraph), name, theme.ThemeColor),
		withMetaColor(styled(experienceSection(doc, "Experience", PresentEntries), name, theme.ThemeColor), theme.ThemeColor),
		withMetaColor(styled(educationSection(doc, "Education", PresentEntries), name, theme.ThemeColor), theme.ThemeColor),
	)

	return Layout{
		Arrangement: ArrangementSidebar,
		Page:        Page{Width: a4Width, MinHeight: a4MinHeight, Padding: "0", Font: fontSans},
		Theme:       theme,
		Regions: []Region{
			{Name: "sidebar", Span: 4, Style: "width:70mm;padding:2rem;background-color:" + theme.ThemeColor + ";color:" + theme.SidebarTextColor, Blocks: sidebar},
			{Name: "main", Span: 8, Style: "flex:1;padding:2rem", Blocks: main},
		},
	}
}

// withMetaColor colors the entry subtitle line.
func withMetaColor(s *Section, color string) *Section {
	if s == nil {
		return nil
	}
	meta := TextStyle{Size: "0.875rem", Color: color, Extra: "font-weight:500"}
	s.MetaStyle = meta.CSS()
	return s
}
