package database

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"wedding_backend/internals/configs"
)

//go:embed schema.sql
var schemaSQL string

// Migrate applies schema.sql. Every statement is idempotent so it is safe to run on each deploy.
func Migrate(ctx context.Context, cfg *configs.Config, log *zap.Logger) error {
	dsn, err := cfg.DSN()
	if err != nil {
		return err
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open postgres: %w", err)
	}
	defer db.Close()

	log.Info("running schema migration", zap.String("dsn", cfg.RedactedDSN()))
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	log.Info("database initialized")
	return nil
}
