package catalog

import (
	"strings"
	"testing"
)

func TestIndustries(t *testing.T) {
	industries := Industries()
	if len(industries) != 5 {
		t.Fatalf("Expected 5 industries, got %d", len(industries))
	}

	for _, ind := range industries {
		if ind.Name == "" || ind.GrowthEstimate == "" || ind.Description == "" {
			t.Errorf("Industry %+v has empty fields", ind)
		}
		if len(ind.KeySkills) == 0 || len(ind.Subjects) == 0 {
			t.Errorf("Industry %s missing skills or subjects", ind.Name)
		}
	}
}

func TestFind(t *testing.T) {
	tests := []struct {
		name  string
		query string
		found bool
	}{
		{name: "exact match", query: "Technology", found: true},
		{name: "case insensitive", query: "technology", found: true},
		{name: "upper case", query: "CYBERSECURITY", found: true},
		{name: "two words", query: "renewable energy", found: true},
		{name: "unknown", query: "Alchemy", found: false},
		{name: "empty", query: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ind, ok := Find(tt.query)
			if ok != tt.found {
				t.Errorf("Find(%q) found = %v, want %v", tt.query, ok, tt.found)
			}
			if ok && !strings.EqualFold(ind.Name, tt.query) {
				t.Errorf("Find(%q) returned %s", tt.query, ind.Name)
			}
		})
	}
}

func TestOverview(t *testing.T) {
	ind, _ := Find("Technology")
	overview := Overview(ind)

	for _, want := range []string{
		"Technology Career Overview",
		ind.GrowthEstimate,
		ind.Description,
		"Machine Learning",
		"Computer Science",
	} {
		if !strings.Contains(overview, want) {
			t.Errorf("Overview missing %q", want)
		}
	}
}

func TestDefaultCourses(t *testing.T) {
	courses := DefaultCourses()
	if len(courses) == 0 {
		t.Fatal("Expected seed courses")
	}
	for _, course := range courses {
		if course.Title == "" || course.Provider == "" || course.Link == "" {
			t.Errorf("Course %+v has empty fields", course)
		}
	}
}
