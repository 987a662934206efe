package seeds

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	weddings "wedding_backend/internals/seeds/weddings"
)

func RunAllSeeds(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	log = log.Named("seed")

	//* Demo user + shared wedding
	if err := weddings.SeedDemoWedding(ctx, db, log, time.Now()); err != nil {
		return err
	}

	log.Info("seeding completed")
	return nil
}
