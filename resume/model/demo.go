package model

// Demo returns the fixed sample document used for template thumbnails.
func Demo() Document {
	doc := New()
	doc.PersonalInfo = PersonalInfo{
		FullName: "Alice Hart",
		Title:    "Math Teacher",
		Contact:  "(718) 555-0123",
		Email:    "alice.hart@example.com",
	}
	doc.Objective = "Passionate Math Teacher with over 8 years of experience creating a nurturing and encouraging learning environment. Adept at designing engaging lesson plans tailored to different learning styles."
	doc.Experience = []ExperienceEntry{
		{
			ID:        "1",
			Role:      "Math Teacher",
			Company:   "Liberty Middle School",
			StartDate: "2018-09",
			EndDate:   "",
			Details:   []string{},
		},
		{
			ID:        "2",
			Role:      "Junior Teacher",
			Company:   "Springfield Elementary",
			StartDate: "2015-08",
			EndDate:   "2018-06",
			Details:   []string{},
		},
	}
	doc.Education = []EducationEntry{
		{
			ID:        "1",
			Degree:    "Master of Education",
			School:    "University of Alabama",
			StartYear: "2013",
			EndYear:   "2015",
			Details:   []string{},
		},
	}
	doc.Skills = []string{"Curriculum Development", "Classroom Management", "Student Assessment", "Algebra", "Geometry"}
	return doc
}
