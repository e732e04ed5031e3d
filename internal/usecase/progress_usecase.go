package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"careergps/internal/catalog"
	"careergps/internal/logger"
	"careergps/internal/repository"

	"github.com/google/uuid"
)

var ErrCourseNotFound = errors.New("course not found")

type ProgressUsecase struct {
	catalog *catalog.Catalog
	repo    repository.ProgressRepository
	log     logger.Logger
}

func NewProgressUsecase(c *catalog.Catalog, repo repository.ProgressRepository, log logger.Logger) *ProgressUsecase {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &ProgressUsecase{catalog: c, repo: repo, log: log}
}

// resolveCourse maps user input to the catalog spelling of career and
// course title. The course must be offered for that career, including the
// default list.
func (u *ProgressUsecase) resolveCourse(career, title string) (string, string, error) {
	name, ok := u.catalog.CanonicalName(career)
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrCareerNotFound, career)
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return "", "", fmt.Errorf("%w: course title is required", ErrInvalidInput)
	}
	for _, c := range u.catalog.Courses(name).All() {
		if strings.EqualFold(c.Title, title) {
			return name, c.Title, nil
		}
	}
	return "", "", fmt.Errorf("%w: %q", ErrCourseNotFound, title)
}

func (u *ProgressUsecase) Enroll(ctx context.Context, userID uuid.UUID, career, title string) (repository.CourseProgress, error) {
	if userID == uuid.Nil {
		return repository.CourseProgress{}, ErrUnauthorized
	}
	name, course, err := u.resolveCourse(career, title)
	if err != nil {
		return repository.CourseProgress{}, err
	}

	p, err := u.repo.Enroll(ctx, userID, name, course)
	if err != nil {
		u.log.Error("enroll course", map[string]interface{}{"user_id": userID, "course": course, "error": err})
		return repository.CourseProgress{}, fmt.Errorf("%w: enroll", ErrInternal)
	}
	return p, nil
}

// Complete enrolls the course first when the user never enrolled.
func (u *ProgressUsecase) Complete(ctx context.Context, userID uuid.UUID, career, title string) (repository.CourseProgress, error) {
	if userID == uuid.Nil {
		return repository.CourseProgress{}, ErrUnauthorized
	}
	name, course, err := u.resolveCourse(career, title)
	if err != nil {
		return repository.CourseProgress{}, err
	}

	p, err := u.repo.Complete(ctx, userID, name, course)
	if err != nil {
		u.log.Error("complete course", map[string]interface{}{"user_id": userID, "course": course, "error": err})
		return repository.CourseProgress{}, fmt.Errorf("%w: complete", ErrInternal)
	}
	return p, nil
}

func (u *ProgressUsecase) List(ctx context.Context, userID uuid.UUID) ([]repository.CourseProgress, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	items, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		u.log.Error("list progress", map[string]interface{}{"user_id": userID, "error": err})
		return nil, fmt.Errorf("%w: list progress", ErrInternal)
	}
	return items, nil
}
