package dto

import "careergps/internal/catalog"

type CareersResponse struct {
	Careers []string `json:"careers"`
}

type CareerSkillsResponse struct {
	Career      string           `json:"career"`
	Skills      catalog.SkillSet `json:"skills"`
	AllRequired []string         `json:"all_required"`
	Essential   []string         `json:"essential"`
}

type CareerCoursesResponse struct {
	Career  string               `json:"career"`
	Courses catalog.CourseLevels `json:"courses"`
}

type CareerProjectsResponse struct {
	Career     string            `json:"career"`
	Difficulty string            `json:"difficulty,omitempty"`
	Projects   []catalog.Project `json:"projects"`
}

type InterviewQuestionsResponse struct {
	Career    string                      `json:"career"`
	Questions []catalog.InterviewQuestion `json:"questions"`
}
