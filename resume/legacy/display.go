package legacy

import (
	"strings"
	"time"
)

var dateLayouts = []string{"2006-01-02", "2006-01", "2006"}

// FormatDate renders an ISO-style date as short month and year, for example
// "2021-09" becomes "Sep 2021". An empty value reads as "Present"; values that
// do not parse are returned unchanged.
func FormatDate(value string) string {
	value = strings.TrimSpace(value)
	if value == "" || value == Present {
		return Present
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("Jan 2006")
		}
	}
	return value
}

// Display is the view model of the legacy display page.
type Display struct {
	Name        string
	Title       string
	Contact     string
	Objective   string
	Experiences []DisplayEntry
	Education   []DisplayEntry
	Skills      []string
}

// DisplayEntry is one formatted experience or education row.
type DisplayEntry struct {
	Heading string
	Dates   string
	Details []string
}

// NewDisplay formats a snapshot for the display page.
func NewDisplay(s Snapshot) Display {
	d := Display{
		Name:      s.Name,
		Title:     s.Title,
		Contact:   s.Contact,
		Objective: s.Objective,
		Skills:    s.Skills,
	}
	for _, exp := range s.Experiences {
		d.Experiences = append(d.Experiences, DisplayEntry{
			Heading: exp.Role,
			Dates:   FormatDate(exp.Start) + " - " + FormatDate(exp.End),
			Details: trimmed(exp.Details),
		})
	}
	for _, edu := range s.Education {
		d.Education = append(d.Education, DisplayEntry{
			Heading: edu.Degree,
			Dates:   FormatDate(edu.Start) + " - " + FormatDate(edu.End),
			Details: trimmed(edu.Details),
		})
	}
	return d
}

// Empty reports whether there is nothing to show.
func (d Display) Empty() bool {
	return d.Name == "" && d.Title == "" && d.Contact == "" && d.Objective == "" &&
		len(d.Experiences) == 0 && len(d.Education) == 0 && len(d.Skills) == 0
}
