package dto

import (
	"time"

	"careergps/internal/repository"
)

type ProgressResponse struct {
	Career      string     `json:"career"`
	CourseTitle string     `json:"course_title"`
	Status      string     `json:"status"`
	EnrolledAt  time.Time  `json:"enrolled_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

func NewProgressResponse(p repository.CourseProgress) ProgressResponse {
	return ProgressResponse{
		Career:      p.Career,
		CourseTitle: p.CourseTitle,
		Status:      string(p.Status),
		EnrolledAt:  p.EnrolledAt,
		CompletedAt: p.CompletedAt,
	}
}

func NewProgressList(items []repository.CourseProgress) []ProgressResponse {
	out := make([]ProgressResponse, 0, len(items))
	for _, p := range items {
		out = append(out, NewProgressResponse(p))
	}
	return out
}
