package weddings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	authHelper "wedding_backend/internals/features/users/auth/helper"
	authModel "wedding_backend/internals/features/users/auth/model"
	authRepo "wedding_backend/internals/features/users/auth/repository"
	weddingModel "wedding_backend/internals/features/weddings/weddings/model"
	weddingRepo "wedding_backend/internals/features/weddings/weddings/repository"
)

const (
	DemoEmail      = "test@example.com"
	DemoPassword   = "password123"
	DemoShareToken = "test-wedding-123"
)

func strPtr(s string) *string { return &s }

// SeedDemoWedding creates the demo user, a shared wedding and two events.
// Each part is skipped when it already exists, so reruns are harmless.
func SeedDemoWedding(ctx context.Context, db *gorm.DB, log *zap.Logger, now time.Time) error {
	user, err := authRepo.FindUserByEmail(ctx, db, DemoEmail)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		hash, err := authHelper.HashPassword(DemoPassword)
		if err != nil {
			return err
		}
		user = &authModel.UserModel{Email: DemoEmail, PasswordHash: hash}
		err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := authRepo.CreateUser(ctx, tx, user); err != nil {
				return err
			}
			return authRepo.CreateProfile(ctx, tx, &authModel.ProfileModel{
				UserID:      user.ID,
				DisplayName: strPtr(authHelper.DefaultDisplayName(DemoEmail)),
			})
		})
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		log.Info("created demo user", zap.String("user_id", user.ID.String()))
	case err != nil:
		return fmt.Errorf("find demo user: %w", err)
	default:
		log.Info("demo user already exists", zap.String("user_id", user.ID.String()))
	}

	repo := weddingRepo.NewWeddingRepository(db)
	existing, err := repo.FindByShareToken(ctx, DemoShareToken)
	if err == nil {
		log.Info("demo wedding already exists", zap.String("wedding_id", existing.ID.String()))
		return nil
	}
	if !errors.Is(err, weddingRepo.ErrWeddingNotFound) {
		return fmt.Errorf("find demo wedding: %w", err)
	}

	now = now.UTC()
	day := 24 * time.Hour
	w := weddingModel.WeddingModel{
		ID:            uuid.New(),
		UserID:        &user.ID,
		BrideName:     "Priya",
		GroomName:     "Rahul",
		WeddingDate:   now.Add(30 * day),
		Venue:         "The Grand Palace, Mumbai",
		BrideParents:  strPtr("Mr. & Mrs. Sharma"),
		GroomParents:  strPtr("Mr. & Mrs. Verma"),
		RSVPPhone:     strPtr("9876543210"),
		RSVPEmail:     strPtr("rsvp@wedding.com"),
		CustomMessage: strPtr("We invite you to celebrate our special day!"),
		ShareToken:    strPtr(DemoShareToken),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	events := []weddingModel.WeddingEventModel{
		{
			ID:          uuid.New(),
			EventType:   weddingModel.EventSangeet,
			EventDate:   now.Add(29 * day),
			EventTime:   strPtr("7:00 PM"),
			Venue:       strPtr("Ballroom A"),
			Description: strPtr("Dance and Music"),
		},
		{
			ID:          uuid.New(),
			EventType:   weddingModel.EventWedding,
			EventDate:   now.Add(30 * day),
			EventTime:   strPtr("10:00 AM"),
			Venue:       strPtr("Main Lawn"),
			Description: strPtr("Traditional Ceremony"),
		},
	}

	id, err := repo.Save(ctx, &w, events)
	if err != nil {
		return fmt.Errorf("seed wedding: %w", err)
	}
	log.Info("created demo wedding",
		zap.String("wedding_id", id.String()),
		zap.String("invitation", "/invitation/"+DemoShareToken),
	)
	return nil
}
