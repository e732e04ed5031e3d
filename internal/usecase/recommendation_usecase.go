package usecase

import (
	"context"
	"errors"
	"math"

	"careergps/internal/domain/recommendation"
	"careergps/internal/logger"
	"careergps/internal/metrics"
)

const predictionCount = 3

var ErrInvalidInput = errors.New("invalid input")

type Prediction struct {
	Career recommendation.Career `json:"career"`
	Prob   float64               `json:"prob"`
}

type RecommendationUsecase struct {
	engine *recommendation.Engine
	log    logger.Logger
}

func NewRecommendationUsecase(engine *recommendation.Engine, log logger.Logger) *RecommendationUsecase {
	if engine == nil {
		engine = recommendation.DefaultEngine()
	}
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &RecommendationUsecase{engine: engine, log: log}
}

// Recommend returns the topN careers with their raw scores, or every career
// when topN exceeds the catalog. topN <= 0 means the engine default.
func (u *RecommendationUsecase) Recommend(ctx context.Context, p recommendation.Profile, topN int) ([]recommendation.CareerScore, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if topN <= 0 {
		topN = recommendation.DefaultTopN
	}

	scores := u.engine.Scores(p)
	if topN > len(scores) {
		topN = len(scores)
	}
	out := scores[:topN]

	if len(out) > 0 {
		metrics.Recommendations.WithLabelValues(string(out[0].Career)).Inc()
		u.log.Debug("recommendation computed", map[string]interface{}{"top": out[0].Career, "score": out[0].Score})
	}
	return out, nil
}

// Predict turns the score table into probabilities with a softmax and returns
// the three most likely careers, rounded to two decimals.
func (u *RecommendationUsecase) Predict(ctx context.Context, p recommendation.Profile) ([]Prediction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scores := u.engine.Scores(p)
	probs := softmax(scores)

	n := predictionCount
	if n > len(scores) {
		n = len(scores)
	}
	out := make([]Prediction, n)
	for i := 0; i < n; i++ {
		out[i] = Prediction{Career: scores[i].Career, Prob: math.Round(probs[i]*100) / 100}
	}

	if n > 0 {
		metrics.Recommendations.WithLabelValues(string(out[0].Career)).Inc()
	}
	return out, nil
}

func softmax(scores []recommendation.CareerScore) []float64 {
	if len(scores) == 0 {
		return nil
	}
	maxScore := scores[0].Score
	for _, s := range scores[1:] {
		if s.Score > maxScore {
			maxScore = s.Score
		}
	}

	out := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		out[i] = math.Exp(float64(s.Score - maxScore))
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}
