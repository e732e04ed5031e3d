package seeder

import (
	"context"
	"fmt"

	"careergps/internal/database"
	"careergps/internal/logger"
)

// Runner applies seeders in order, each in its own transaction.
type Runner struct {
	Seeders []Seeder
	Log     logger.Logger
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return database.ErrNilDB
	}
	log := r.Log
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if t, ok := s.(Target); ok {
			table, cols := t.Table()
			if err := RequireColumns(ctx, db, table, cols...); err != nil {
				return fmt.Errorf("seed %s: %w", s.Name(), err)
			}
		}

		var inserted int64
		err := database.WithTx(ctx, db, func(tx database.Tx) error {
			n, err := s.Seed(ctx, tx)
			inserted = n
			return err
		})
		if err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		log.Info("seeder finished", map[string]interface{}{"seeder": s.Name(), "inserted": inserted})
	}
	return nil
}
