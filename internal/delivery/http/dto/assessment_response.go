package dto

import (
	"time"

	"careergps/internal/domain/recommendation"
	"careergps/internal/repository"

	"github.com/google/uuid"
)

type AssessmentResponse struct {
	ID        uuid.UUID              `json:"id"`
	TopCareer string                 `json:"top_career"`
	Profile   recommendation.Profile `json:"profile"`
	Ranking   []CareerScoreResponse  `json:"ranking"`
	CreatedAt time.Time              `json:"created_at"`
}

func NewAssessmentResponse(a repository.Assessment) AssessmentResponse {
	return AssessmentResponse{
		ID:        a.ID,
		TopCareer: string(a.TopCareer),
		Profile:   a.Profile,
		Ranking:   NewCareerScores(a.Ranking),
		CreatedAt: a.CreatedAt,
	}
}

func NewAssessmentList(items []repository.Assessment) []AssessmentResponse {
	out := make([]AssessmentResponse, 0, len(items))
	for _, a := range items {
		out = append(out, NewAssessmentResponse(a))
	}
	return out
}
