package seeder

import (
	"context"

	"careergps/internal/database"
)

// Seeder writes reference rows inside the transaction the Runner opens and
// reports how many rows it inserted.
type Seeder interface {
	Name() string
	Seed(ctx context.Context, tx database.Tx) (int64, error)
}

// Target is implemented by seeders that need a table to exist first.
type Target interface {
	Table() (name string, columns []string)
}
