package seeder

import (
	"context"
	"fmt"
	"strings"

	"careergps/internal/database"
)

// CareersSeeder mirrors the catalog's career labels into the careers
// reference table. Existing rows are left alone.
type CareersSeeder struct {
	Careers []string
}

func (CareersSeeder) Name() string { return "careers" }

func (CareersSeeder) Table() (string, []string) {
	return "careers", []string{"name", "created_at"}
}

func (s CareersSeeder) Seed(ctx context.Context, tx database.Tx) (int64, error) {
	var inserted int64
	for _, name := range s.Careers {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		n, err := tx.Exec(ctx, `INSERT INTO careers (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name)
		if err != nil {
			return inserted, fmt.Errorf("insert career %q: %w", name, err)
		}
		inserted += n
	}
	return inserted, nil
}
