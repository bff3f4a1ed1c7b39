package mutate

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"resume-builder/resume/model"
)

func withSequentialIDs(t *testing.T, ids ...string) {
	t.Helper()
	prev := newID
	i := 0
	newID = func() string {
		if i >= len(ids) {
			i++
			return fmt.Sprintf("auto-%d", i)
		}
		id := ids[i]
		i++
		return id
	}
	t.Cleanup(func() { newID = prev })
}

func TestSetFieldReadBackWithoutAliasing(t *testing.T) {
	doc := model.Demo()
	before := doc.Clone()

	got := SetField(doc, SectionPersonalInfo, FieldFullName, "Jane")
	if got.PersonalInfo.FullName != "Jane" {
		t.Fatalf("expected Jane, got %q", got.PersonalInfo.FullName)
	}
	if diff := cmp.Diff(before, doc); diff != "" {
		t.Fatalf("input mutated (-before +after):\n%s", diff)
	}

	got = SetField(got, SectionObjective, "", "Teach well.")
	if got.Objective != "Teach well." {
		t.Fatalf("expected objective set, got %q", got.Objective)
	}
}

func TestSetListFieldReadBack(t *testing.T) {
	doc := model.Demo()
	before := doc.Clone()

	got := SetListField(doc, SectionExperience, 1, FieldCompany, "Shelbyville High")
	if got.Experience[1].Company != "Shelbyville High" {
		t.Fatalf("expected company set, got %q", got.Experience[1].Company)
	}
	if got.Experience[0].Company != before.Experience[0].Company {
		t.Fatalf("sibling entry changed")
	}
	if diff := cmp.Diff(before, doc); diff != "" {
		t.Fatalf("input mutated (-before +after):\n%s", diff)
	}

	got = SetListField(got, SectionEducation, 0, FieldEndYear, "2016")
	if got.Education[0].EndYear != "2016" {
		t.Fatalf("expected end year set, got %q", got.Education[0].EndYear)
	}
}

func TestOutOfRangeIndexIsNoop(t *testing.T) {
	doc := model.Demo()
	cases := map[string]model.Document{
		"set list field":  SetListField(doc, SectionExperience, 9, FieldRole, "x"),
		"negative index":  SetListField(doc, SectionEducation, -1, FieldDegree, "x"),
		"remove entry":    RemoveEntry(doc, SectionExperience, 5),
		"set skill":       SetSkill(doc, 42, "x"),
		"remove skill":    RemoveSkill(doc, -3),
		"set detail":      SetDetail(doc, SectionExperience, 0, 3, "x"),
		"remove detail":   RemoveDetail(doc, SectionEducation, 7, 0),
		"unknown field":   SetField(doc, SectionPersonalInfo, "nickname", "x"),
		"unknown section": AppendEntry(doc, "projects"),
		"bad shape":       SetImageSetting(doc, FieldShape, "hexagon"),
		"bad size":        SetImageSetting(doc, FieldSize, "big"),
	}
	for name, got := range cases {
		if diff := cmp.Diff(doc, got); diff != "" {
			t.Fatalf("%s: expected no change (-want +got):\n%s", name, diff)
		}
	}
}

func TestAppendEntryAssignsUniqueID(t *testing.T) {
	withSequentialIDs(t, "1", "2", "fresh")
	doc := model.Demo()

	got := AppendEntry(doc, SectionExperience)
	if len(got.Experience) != len(doc.Experience)+1 {
		t.Fatalf("expected %d entries, got %d", len(doc.Experience)+1, len(got.Experience))
	}
	last := got.Experience[len(got.Experience)-1]
	if last.ID != "fresh" {
		t.Fatalf("expected colliding ids to be skipped, got %q", last.ID)
	}
	if last.Role != "" || last.Company != "" || last.StartDate != "" || last.EndDate != "" {
		t.Fatalf("expected blank entry, got %+v", last)
	}
	if diff := cmp.Diff(doc.Experience, got.Experience[:len(doc.Experience)]); diff != "" {
		t.Fatalf("prior entries changed (-want +got):\n%s", diff)
	}
}

func TestAppendEntryIDsDistinctAcrossCalls(t *testing.T) {
	doc := model.New()
	for i := 0; i < 5; i++ {
		doc = AppendEntry(doc, SectionEducation)
		doc = AppendEntry(doc, SectionExperience)
	}
	seen := map[string]bool{}
	for _, entry := range doc.Education {
		if seen[entry.ID] {
			t.Fatalf("duplicate id %q", entry.ID)
		}
		seen[entry.ID] = true
	}
	for _, entry := range doc.Experience {
		if seen[entry.ID] {
			t.Fatalf("duplicate id %q", entry.ID)
		}
		seen[entry.ID] = true
	}
}

func TestRemoveEntryPreservesOrder(t *testing.T) {
	withSequentialIDs(t, "a", "b", "c", "d")
	doc := model.New()
	for i := 0; i < 4; i++ {
		doc = AppendEntry(doc, SectionExperience)
	}

	got := RemoveEntry(doc, SectionExperience, 1)
	ids := make([]string, 0, len(got.Experience))
	for _, entry := range got.Experience {
		ids = append(ids, entry.ID)
	}
	if diff := cmp.Diff([]string{"a", "c", "d"}, ids); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
	if len(doc.Experience) != 4 {
		t.Fatalf("input mutated: %d entries", len(doc.Experience))
	}
}

func TestSkillsShiftOnRemove(t *testing.T) {
	doc := model.New()
	doc = AppendSkill(doc)
	doc = AppendSkill(doc)
	doc = AppendSkill(doc)
	doc = SetSkill(doc, 0, "Go")
	doc = SetSkill(doc, 1, "SQL")
	doc = SetSkill(doc, 2, "Docker")

	got := RemoveSkill(doc, 0)
	if diff := cmp.Diff([]string{"SQL", "Docker"}, got.Skills); diff != "" {
		t.Fatalf("unexpected skills (-want +got):\n%s", diff)
	}
	if doc.Skills[0] != "Go" {
		t.Fatalf("input mutated: %v", doc.Skills)
	}
}

func TestDetailBullets(t *testing.T) {
	doc := model.Demo()
	doc = AppendDetail(doc, SectionExperience, 0, "Raised test scores")
	doc = AppendDetail(doc, SectionExperience, 0, "Ran the math club")
	doc = SetDetail(doc, SectionExperience, 0, 1, "Founded the math club")

	if diff := cmp.Diff([]string{"Raised test scores", "Founded the math club"}, doc.Experience[0].Details); diff != "" {
		t.Fatalf("unexpected details (-want +got):\n%s", diff)
	}

	got := RemoveDetail(doc, SectionExperience, 0, 0)
	if diff := cmp.Diff([]string{"Founded the math club"}, got.Experience[0].Details); diff != "" {
		t.Fatalf("unexpected details after remove (-want +got):\n%s", diff)
	}
	if len(doc.Experience[0].Details) != 2 {
		t.Fatalf("input mutated: %v", doc.Experience[0].Details)
	}
}

func TestImageAndTheming(t *testing.T) {
	doc := model.New()

	doc = SetImage(doc, "data:image/png;base64,AAAA")
	doc = SetImageSetting(doc, FieldShape, "rounded")
	doc = SetImageSetting(doc, FieldSize, "140")
	doc = SetThemeColor(doc, "#123456")
	doc = SetSidebarTextColor(doc, "#eeeeee")
	doc = SetIconColor(doc, "#ff0000")

	want := model.New()
	want.ProfileImage = "data:image/png;base64,AAAA"
	want.ImageSettings = model.ImageSettings{Shape: model.ShapeRounded, Size: 140}
	want.Theming = model.Theming{ThemeColor: "#123456", SidebarTextColor: "#eeeeee", IconColor: "#ff0000"}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Fatalf("unexpected document (-want +got):\n%s", diff)
	}

	cleared := ClearImage(doc)
	if cleared.HasImage() {
		t.Fatalf("expected image cleared")
	}
	if cleared.ImageSettings != doc.ImageSettings {
		t.Fatalf("expected image settings kept")
	}
}
