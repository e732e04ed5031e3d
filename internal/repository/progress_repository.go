package repository

import (
	"context"
	"time"

	"careergps/internal/database"

	"github.com/google/uuid"
)

type ProgressStatus string

const (
	StatusEnrolled  ProgressStatus = "enrolled"
	StatusCompleted ProgressStatus = "completed"
)

type CourseProgress struct {
	UserID      uuid.UUID
	Career      string
	CourseTitle string
	Status      ProgressStatus
	EnrolledAt  time.Time
	CompletedAt *time.Time
}

type ProgressRepository interface {
	Enroll(ctx context.Context, userID uuid.UUID, career, courseTitle string) (CourseProgress, error)
	Complete(ctx context.Context, userID uuid.UUID, career, courseTitle string) (CourseProgress, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]CourseProgress, error)
}

type PostgresProgressRepository struct {
	db database.DB
}

func NewPostgresProgressRepository(db database.DB) *PostgresProgressRepository {
	return &PostgresProgressRepository{db: db}
}

const progressColumns = `user_id, career, course_title, status, enrolled_at, completed_at`

// Enroll is idempotent and returns the existing row when already enrolled or
// completed.
func (r *PostgresProgressRepository) Enroll(ctx context.Context, userID uuid.UUID, career, courseTitle string) (CourseProgress, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO course_progress (user_id, career, course_title, status)
		 VALUES ($1, $2, $3, 'enrolled')
		 ON CONFLICT (user_id, career, course_title) DO UPDATE SET status = course_progress.status
		 RETURNING `+progressColumns,
		userID, career, courseTitle,
	)
	return scanProgress(row)
}

// Complete marks the course completed, enrolling it first if needed. The
// first completion time is kept.
func (r *PostgresProgressRepository) Complete(ctx context.Context, userID uuid.UUID, career, courseTitle string) (CourseProgress, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO course_progress (user_id, career, course_title, status, completed_at)
		 VALUES ($1, $2, $3, 'completed', now())
		 ON CONFLICT (user_id, career, course_title) DO UPDATE
		 SET status = 'completed', completed_at = COALESCE(course_progress.completed_at, now())
		 RETURNING `+progressColumns,
		userID, career, courseTitle,
	)
	return scanProgress(row)
}

func (r *PostgresProgressRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]CourseProgress, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+progressColumns+`
		 FROM course_progress
		 WHERE user_id = $1
		 ORDER BY enrolled_at ASC, career ASC, course_title ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CourseProgress, 0)
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanProgress(row database.Row) (CourseProgress, error) {
	var (
		p      CourseProgress
		status string
	)
	if err := row.Scan(&p.UserID, &p.Career, &p.CourseTitle, &status, &p.EnrolledAt, &p.CompletedAt); err != nil {
		return CourseProgress{}, err
	}
	p.Status = ProgressStatus(status)
	return p, nil
}
