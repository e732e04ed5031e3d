package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"careergps/internal/database"
	"careergps/internal/domain/recommendation"

	"github.com/google/uuid"
)

const maxAssessmentList = 100

type Assessment struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Profile   recommendation.Profile
	Ranking   []recommendation.CareerScore
	TopCareer recommendation.Career
	CreatedAt time.Time
}

type AssessmentRepository interface {
	Create(ctx context.Context, a Assessment) (Assessment, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]Assessment, error)
}

type PostgresAssessmentRepository struct {
	db database.DB
}

func NewPostgresAssessmentRepository(db database.DB) *PostgresAssessmentRepository {
	return &PostgresAssessmentRepository{db: db}
}

func (r *PostgresAssessmentRepository) Create(ctx context.Context, a Assessment) (Assessment, error) {
	profile, err := json.Marshal(a.Profile)
	if err != nil {
		return Assessment{}, fmt.Errorf("encode profile: %w", err)
	}
	ranking, err := json.Marshal(a.Ranking)
	if err != nil {
		return Assessment{}, fmt.Errorf("encode ranking: %w", err)
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO assessments (id, user_id, profile, ranking, top_career)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		a.ID, a.UserID, profile, ranking, string(a.TopCareer),
	)
	if err := row.Scan(&a.CreatedAt); err != nil {
		return Assessment{}, err
	}
	return a, nil
}

func (r *PostgresAssessmentRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]Assessment, error) {
	if limit <= 0 || limit > maxAssessmentList {
		limit = maxAssessmentList
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, profile, ranking, top_career, created_at
		 FROM assessments
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Assessment, 0)
	for rows.Next() {
		var (
			a                Assessment
			profile, ranking []byte
			top              string
		)
		if err := rows.Scan(&a.ID, &a.UserID, &profile, &ranking, &top, &a.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(profile, &a.Profile); err != nil {
			return nil, fmt.Errorf("decode profile %s: %w", a.ID, err)
		}
		if err := json.Unmarshal(ranking, &a.Ranking); err != nil {
			return nil, fmt.Errorf("decode ranking %s: %w", a.ID, err)
		}
		a.TopCareer = recommendation.Career(top)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
