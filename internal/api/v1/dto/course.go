package dto

// CourseFilterDTO holds the query parameters of GET /courses
type CourseFilterDTO struct {
	Difficulty    string `validate:"omitempty,oneof=Beginner Intermediate Advanced Expert"`
	Certification *bool
}

// CourseResponseDTO is returned in API responses for courses
type CourseResponseDTO struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Instructor    string `json:"instructor"`
	Org           string `json:"org"`
	Duration      string `json:"duration"`
	Difficulty    string `json:"difficulty"`
	Certification bool   `json:"certification"`
	Summary       string `json:"summary"`
}
