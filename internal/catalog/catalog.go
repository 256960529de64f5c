// Package catalog holds the static career content surfaced alongside the chat:
// growing industries and the starter course recommendations seeded into the
// document store on first boot.
package catalog

import (
	"fmt"
	"strings"
)

// Industry describes one growing industry card
type Industry struct {
	Name           string   `json:"industry"`
	GrowthEstimate string   `json:"growth_estimate"`
	Description    string   `json:"description"`
	KeySkills      []string `json:"key_skills"`
	Subjects       []string `json:"subjects"`
}

var industries = []Industry{
	{
		Name:           "Technology",
		GrowthEstimate: "5-10% annually",
		Description:    "The technology sector continues to expand with innovations in AI, cloud computing, and cybersecurity. Careers in software development, data science, and IT infrastructure are in high demand worldwide.",
		KeySkills:      []string{"Python/Java", "Machine Learning", "Cloud Architecture", "Cybersecurity", "Agile Methodologies"},
		Subjects:       []string{"Computer Science", "Data Structures", "Algorithms", "Mathematics", "Statistics"},
	},
	{
		Name:           "Healthcare",
		GrowthEstimate: "7-12% annually",
		Description:    "Healthcare is experiencing rapid growth due to aging populations and medical advancements. Opportunities abound in nursing, medical technology, healthcare administration, and specialized medicine.",
		KeySkills:      []string{"Patient Care", "Medical Knowledge", "Technical Skills", "Communication", "Problem Solving"},
		Subjects:       []string{"Biology", "Chemistry", "Anatomy", "Nursing", "Public Health"},
	},
	{
		Name:           "Renewable Energy",
		GrowthEstimate: "8-15% annually",
		Description:    "The shift toward sustainable energy solutions is creating jobs in solar/wind technology, energy storage, and green infrastructure development.",
		KeySkills:      []string{"Engineering", "Project Management", "Technical Design", "Environmental Regulations", "Data Analysis"},
		Subjects:       []string{"Environmental Science", "Engineering", "Physics", "Chemistry", "Sustainability"},
	},
	{
		Name:           "E-commerce",
		GrowthEstimate: "10-20% annually",
		Description:    "Online retail continues to transform the shopping experience, driving demand for digital marketing specialists, logistics coordinators, and UX designers.",
		KeySkills:      []string{"Digital Marketing", "Data Analytics", "Supply Chain Management", "Customer Service", "UI/UX Design"},
		Subjects:       []string{"Business", "Marketing", "Computer Science", "Statistics", "Graphic Design"},
	},
	{
		Name:           "Cybersecurity",
		GrowthEstimate: "15-25% annually",
		Description:    "With increasing digital threats, cybersecurity professionals are needed across all sectors to protect data and infrastructure.",
		KeySkills:      []string{"Network Security", "Ethical Hacking", "Risk Assessment", "Cryptography", "Incident Response"},
		Subjects:       []string{"Computer Science", "Information Technology", "Mathematics", "Network Engineering", "Criminal Justice"},
	},
}

// Industries returns the full list of growing industries
func Industries() []Industry {
	return industries
}

// Find looks up an industry by name, case-insensitively
func Find(name string) (*Industry, bool) {
	for i := range industries {
		if strings.EqualFold(industries[i].Name, name) {
			return &industries[i], true
		}
	}
	return nil, false
}

// Overview renders the assistant-authored career overview for an industry.
// The text is appended to the user's transcript as a regular assistant turn.
func Overview(ind *Industry) string {
	return fmt.Sprintf(`**%s Career Overview**

**Growth Projection:** %s

**Key Skills in Demand:**
%s

**Relevant Education:**
%s

**Industry Insight:**
%s

**Career Advice:** What specific aspect of %s careers would you like to explore? I can provide details on:
- Typical career paths
- Salary ranges
- Required qualifications
- Job search strategies`,
		ind.Name,
		ind.GrowthEstimate,
		strings.Join(ind.KeySkills, ", "),
		strings.Join(ind.Subjects, ", "),
		ind.Description,
		ind.Name,
	)
}
