package usecase

import (
	"context"
	"testing"

	"careergps/internal/domain/recommendation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func researchProfile() recommendation.Profile {
	return recommendation.Profile{
		Interests:  recommendation.Interests{Numbers: true},
		Intent:     recommendation.Intent{Nature: "research"},
		Confidence: recommendation.Confidence{Math: 9},
	}
}

func TestRecommendationUsecase_Recommend(t *testing.T) {
	uc := NewRecommendationUsecase(nil, nil)

	got, err := uc.Recommend(context.Background(), researchProfile(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, recommendation.DataScientist, got[0].Career)
	assert.Equal(t, 13, got[0].Score)
	assert.Equal(t, recommendation.AIMLEngineer, got[1].Career)
	assert.Equal(t, 13, got[1].Score)
}

func TestRecommendationUsecase_DefaultAndLimit(t *testing.T) {
	uc := NewRecommendationUsecase(nil, nil)

	got, err := uc.Recommend(context.Background(), recommendation.Profile{}, 0)
	require.NoError(t, err)
	assert.Len(t, got, recommendation.DefaultTopN)

	got, err = uc.Recommend(context.Background(), recommendation.Profile{}, 8)
	require.NoError(t, err)
	assert.Len(t, got, len(recommendation.Careers))

	got, err = uc.Recommend(context.Background(), recommendation.Profile{}, 9)
	require.NoError(t, err)
	assert.Len(t, got, len(recommendation.Careers))
}

func TestRecommendationUsecase_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRecommendationUsecase(nil, nil).Recommend(ctx, researchProfile(), 3)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRecommendationUsecase_Predict(t *testing.T) {
	got, err := NewRecommendationUsecase(nil, nil).Predict(context.Background(), researchProfile())
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, recommendation.DataScientist, got[0].Career)
	assert.InDelta(t, 0.5, got[0].Prob, 1e-9)
	assert.InDelta(t, 0.5, got[1].Prob, 1e-9)
	assert.InDelta(t, 0.0, got[2].Prob, 1e-9)
}

func TestSoftmaxSumsToOne(t *testing.T) {
	scores := recommendation.DefaultEngine().Scores(researchProfile())
	var sum float64
	for _, p := range softmax(scores) {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.Nil(t, softmax(nil))
}
