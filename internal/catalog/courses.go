package catalog

// Course describes a recommended course document
type Course struct {
	Title    string   `firestore:"title" json:"title"`
	Provider string   `firestore:"provider" json:"provider"`
	Duration string   `firestore:"duration" json:"duration"`
	Level    string   `firestore:"level" json:"level"`
	Link     string   `firestore:"link" json:"link"`
	Careers  []string `firestore:"careers" json:"careers"`
	Skills   []string `firestore:"skills" json:"skills"`
	Industry string   `firestore:"industry" json:"industry"`
	Free     bool     `firestore:"free" json:"free"`
	Rating   float64  `firestore:"rating" json:"rating"`
}

// DefaultCourses returns the starter set seeded when the courses collection is empty
func DefaultCourses() []Course {
	return []Course{
		{
			Title:    "Python for Data Science",
			Provider: "Coursera",
			Duration: "6 weeks",
			Level:    "Beginner",
			Link:     "https://www.coursera.org/learn/python-data-science",
			Careers:  []string{"Data Scientist", "AI Engineer", "Software Developer"},
			Skills:   []string{"Python", "Pandas", "Data Analysis"},
			Industry: "Technology",
			Free:     false,
			Rating:   4.7,
		},
		{
			Title:    "Digital Marketing Fundamentals",
			Provider: "Udemy",
			Duration: "8 hours",
			Level:    "Beginner",
			Link:     "https://www.udemy.com/digital-marketing-fundamentals",
			Careers:  []string{"Digital Marketer", "SEO Specialist", "Content Manager"},
			Skills:   []string{"SEO", "Social Media", "Content Strategy"},
			Industry: "E-commerce",
			Free:     true,
			Rating:   4.5,
		},
	}
}
