// Package legacy converts documents to and from the flat snapshot consumed by
// the standalone display page.
package legacy

import (
	"encoding/json"
	"fmt"
	"strings"

	"resume-builder/resume/model"
)

// StorageKey is the fixed key the snapshot is stored under.
const StorageKey = "resumeData"

// Present is the stored end value of an ongoing experience entry.
const Present = "Present"

// Snapshot is the flat persisted form of a document.
type Snapshot struct {
	Name        string       `json:"name"`
	Title       string       `json:"title"`
	Contact     string       `json:"contact"`
	Objective   string       `json:"objective"`
	Experiences []Experience `json:"experiences"`
	Education   []Education  `json:"education"`
	Skills      []string     `json:"skills"`
}

type Experience struct {
	Role    string   `json:"role"`
	Start   string   `json:"start"`
	End     string   `json:"end"`
	Details []string `json:"details"`
}

type Education struct {
	Degree    string   `json:"degree"`
	Institute string   `json:"institute"`
	Start     string   `json:"start"`
	End       string   `json:"end"`
	Details   []string `json:"details"`
}

// FromDocument flattens doc. An empty experience end is stored as "Present";
// education ends are stored verbatim.
func FromDocument(doc model.Document) Snapshot {
	snap := Snapshot{
		Name:        doc.PersonalInfo.FullName,
		Title:       doc.PersonalInfo.Title,
		Contact:     doc.PersonalInfo.Contact,
		Objective:   doc.Objective,
		Experiences: make([]Experience, 0, len(doc.Experience)),
		Education:   make([]Education, 0, len(doc.Education)),
		Skills:      make([]string, 0, len(doc.Skills)),
	}
	for _, exp := range doc.Experience {
		end := exp.EndDate
		if end == "" {
			end = Present
		}
		snap.Experiences = append(snap.Experiences, Experience{
			Role:    exp.Role,
			Start:   exp.StartDate,
			End:     end,
			Details: trimmed(exp.Details),
		})
	}
	for _, edu := range doc.Education {
		snap.Education = append(snap.Education, Education{
			Degree:    edu.Degree,
			Institute: edu.School,
			Start:     edu.StartYear,
			End:       edu.EndYear,
			Details:   trimmed(edu.Details),
		})
	}
	for _, skill := range doc.Skills {
		if s := strings.TrimSpace(skill); s != "" {
			snap.Skills = append(snap.Skills, s)
		}
	}
	return snap
}

// ToDocument rebuilds a document from a snapshot. Fields the snapshot does not
// carry keep their defaults and entry ids are positional.
func (s Snapshot) ToDocument() model.Document {
	doc := model.New()
	doc.PersonalInfo = model.PersonalInfo{
		FullName: s.Name,
		Title:    s.Title,
		Contact:  s.Contact,
	}
	doc.Objective = s.Objective
	for i, exp := range s.Experiences {
		end := exp.End
		if end == Present {
			end = ""
		}
		doc.Experience = append(doc.Experience, model.ExperienceEntry{
			ID:        fmt.Sprintf("exp-%d", i+1),
			Role:      exp.Role,
			StartDate: exp.Start,
			EndDate:   end,
			Details:   trimmed(exp.Details),
		})
	}
	for i, edu := range s.Education {
		doc.Education = append(doc.Education, model.EducationEntry{
			ID:        fmt.Sprintf("edu-%d", i+1),
			Degree:    edu.Degree,
			School:    edu.Institute,
			StartYear: edu.Start,
			EndYear:   edu.End,
			Details:   trimmed(edu.Details),
		})
	}
	doc.Skills = append(doc.Skills, s.Skills...)
	return doc
}

// Encode serializes the snapshot as stored text.
func (s Snapshot) Encode() ([]byte, error) {
	return json.Marshal(s)
}

// Decode parses stored snapshot text.
func Decode(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}

func trimmed(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}
