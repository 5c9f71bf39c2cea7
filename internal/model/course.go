package model

// Course is an entry of the learning catalog
type Course struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Instructor    string `json:"instructor"`
	Org           string `json:"org"`
	Duration      string `json:"duration"`
	Difficulty    string `json:"difficulty"`
	Certification bool   `json:"certification"`
	Summary       string `json:"summary"`
}

// CourseFilter narrows a course listing. Zero values match everything.
type CourseFilter struct {
	Difficulty    string
	Certification *bool
}
