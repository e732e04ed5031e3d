package usecase

import (
	"context"
	"fmt"

	"careergps/internal/domain/recommendation"
	"careergps/internal/logger"
	"careergps/internal/repository"

	"github.com/google/uuid"
)

const defaultAssessmentLimit = 20

type AssessmentUsecase struct {
	engine *recommendation.Engine
	repo   repository.AssessmentRepository
	log    logger.Logger
}

func NewAssessmentUsecase(engine *recommendation.Engine, repo repository.AssessmentRepository, log logger.Logger) *AssessmentUsecase {
	if engine == nil {
		engine = recommendation.DefaultEngine()
	}
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &AssessmentUsecase{engine: engine, repo: repo, log: log}
}

// Save recomputes the ranking server-side and stores it with the profile.
func (u *AssessmentUsecase) Save(ctx context.Context, userID uuid.UUID, p recommendation.Profile) (repository.Assessment, error) {
	if userID == uuid.Nil {
		return repository.Assessment{}, ErrUnauthorized
	}

	ranking := u.engine.Scores(p)
	a := repository.Assessment{
		ID:        uuid.New(),
		UserID:    userID,
		Profile:   p,
		Ranking:   ranking,
		TopCareer: ranking[0].Career,
	}

	saved, err := u.repo.Create(ctx, a)
	if err != nil {
		u.log.Error("save assessment", map[string]interface{}{"user_id": userID, "error": err})
		return repository.Assessment{}, fmt.Errorf("%w: save assessment", ErrInternal)
	}
	return saved, nil
}

func (u *AssessmentUsecase) List(ctx context.Context, userID uuid.UUID, limit int) ([]repository.Assessment, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if limit <= 0 {
		limit = defaultAssessmentLimit
	}

	items, err := u.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		u.log.Error("list assessments", map[string]interface{}{"user_id": userID, "error": err})
		return nil, fmt.Errorf("%w: list assessments", ErrInternal)
	}
	return items, nil
}
