package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/bookverse/internal/migrations"
)

// Migrate applies the embedded schema files in order. Safe to run on
// every start, the statements are idempotent.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, name := range migrations.Files() {
		stmt, err := migrations.FS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}

		if _, err := pool.Exec(ctx, string(stmt)); err != nil {
			return fmt.Errorf("apply %s: %w", name, err)
		}
	}

	return nil
}
