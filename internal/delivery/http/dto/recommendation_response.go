package dto

import (
	"careergps/internal/domain/recommendation"
	"careergps/internal/usecase"
)

type CareerScoreResponse struct {
	Career string `json:"career"`
	Score  int    `json:"score"`
}

type RecommendationResponse struct {
	Recommendations []CareerScoreResponse `json:"recommendations"`
}

type PredictionResponse struct {
	Career string  `json:"career"`
	Prob   float64 `json:"prob"`
}

type PredictResponse struct {
	Predictions []PredictionResponse `json:"predictions"`
}

func NewCareerScores(scores []recommendation.CareerScore) []CareerScoreResponse {
	out := make([]CareerScoreResponse, 0, len(scores))
	for _, s := range scores {
		out = append(out, CareerScoreResponse{Career: string(s.Career), Score: s.Score})
	}
	return out
}

func NewPredictResponse(preds []usecase.Prediction) PredictResponse {
	out := make([]PredictionResponse, 0, len(preds))
	for _, p := range preds {
		out = append(out, PredictionResponse{Career: string(p.Career), Prob: p.Prob})
	}
	return PredictResponse{Predictions: out}
}
