package usecase

import (
	"context"
	"testing"

	"careergps/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressUsecase_EnrollAndComplete(t *testing.T) {
	uc := NewProgressUsecase(loadCatalog(t), newMemProgress(), nil)
	ctx := context.Background()
	userID := uuid.New()

	p, err := uc.Enroll(ctx, userID, "data scientist", "intro to sql")
	require.NoError(t, err)
	assert.Equal(t, "Data Scientist", p.Career)
	assert.Equal(t, "Intro to SQL", p.CourseTitle)
	assert.Equal(t, repository.StatusEnrolled, p.Status)

	p, err = uc.Complete(ctx, userID, "Data Scientist", "Intro to SQL")
	require.NoError(t, err)
	assert.Equal(t, repository.StatusCompleted, p.Status)
	require.NotNil(t, p.CompletedAt)

	items, err := uc.List(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestProgressUsecase_DefaultCourses(t *testing.T) {
	uc := NewProgressUsecase(loadCatalog(t), newMemProgress(), nil)

	p, err := uc.Complete(context.Background(), uuid.New(), "Cloud Engineer", "Domain Fundamentals")
	require.NoError(t, err)
	assert.Equal(t, repository.StatusCompleted, p.Status)
}

func TestProgressUsecase_Rejects(t *testing.T) {
	uc := NewProgressUsecase(loadCatalog(t), newMemProgress(), nil)
	ctx := context.Background()

	_, err := uc.Enroll(ctx, uuid.Nil, "Data Scientist", "Intro to SQL")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = uc.Enroll(ctx, uuid.New(), "Astronaut", "Intro to SQL")
	assert.ErrorIs(t, err, ErrCareerNotFound)

	_, err = uc.Enroll(ctx, uuid.New(), "Data Scientist", "Underwater Basket Weaving")
	assert.ErrorIs(t, err, ErrCourseNotFound)

	_, err = uc.Enroll(ctx, uuid.New(), "Data Scientist", " ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
