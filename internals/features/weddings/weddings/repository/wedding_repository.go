// file: internals/features/weddings/weddings/repository/wedding_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	m "wedding_backend/internals/features/weddings/weddings/model"
)

var ErrWeddingNotFound = errors.New("wedding not found")

// Columns rewritten when the id already exists. user_id and created_at keep
// their first-write values.
var upsertColumns = []string{
	"bride_name", "groom_name", "wedding_date", "venue",
	"bride_photo", "groom_photo", "bride_parents", "groom_parents",
	"rsvp_phone", "rsvp_email", "custom_message", "share_token",
	"template", "language", "updated_at",
}

type WeddingRepository struct {
	DB *gorm.DB
}

func NewWeddingRepository(db *gorm.DB) *WeddingRepository {
	return &WeddingRepository{DB: db}
}

/* =========================
   Writes (run inside a tx)
   ========================= */

// UpsertWedding inserts or updates keyed by id.
func UpsertWedding(ctx context.Context, tx *gorm.DB, w *m.WeddingModel) (uuid.UUID, error) {
	if w.Template == "" {
		w.Template = m.DefaultTemplate
	}
	if w.Language == "" {
		w.Language = m.DefaultLanguage
	}
	err := tx.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(upsertColumns),
		}).
		Create(w).Error
	if err != nil {
		return uuid.Nil, err
	}
	return w.ID, nil
}

// ReplaceEvents deletes every event of the wedding and inserts the given set,
// keeping each event's own id. There is no per-event update path.
func ReplaceEvents(ctx context.Context, tx *gorm.DB, weddingID uuid.UUID, events []m.WeddingEventModel) error {
	if err := tx.WithContext(ctx).
		Where("wedding_id = ?", weddingID).
		Delete(&m.WeddingEventModel{}).Error; err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}
	for i := range events {
		events[i].WeddingID = weddingID
	}
	return tx.WithContext(ctx).Create(&events).Error
}

// Save writes the wedding row and its full event set in one transaction.
// Any failure rolls both back.
func (r *WeddingRepository) Save(ctx context.Context, w *m.WeddingModel, events []m.WeddingEventModel) (uuid.UUID, error) {
	var savedID uuid.UUID
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := UpsertWedding(ctx, tx, w)
		if err != nil {
			return err
		}
		if err := ReplaceEvents(ctx, tx, id, events); err != nil {
			return err
		}
		savedID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return savedID, nil
}

// DeleteWedding removes the events and then the wedding.
func (r *WeddingRepository) DeleteWedding(ctx context.Context, id uuid.UUID) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("wedding_id = ?", id).Delete(&m.WeddingEventModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&m.WeddingModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrWeddingNotFound
		}
		return nil
	})
}

/* =========================
   Reads
   ========================= */

// FindByShareToken is an exact, case-sensitive match. Blank tokens never match.
func (r *WeddingRepository) FindByShareToken(ctx context.Context, token string) (*m.WeddingModel, error) {
	if token == "" {
		return nil, ErrWeddingNotFound
	}
	var w m.WeddingModel
	err := r.DB.WithContext(ctx).
		Where("share_token IS NOT NULL AND share_token = ?", token).
		First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrWeddingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// FindByUserID returns (nil, nil) when the user has no wedding yet.
func (r *WeddingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*m.WeddingModel, error) {
	var w m.WeddingModel
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WeddingRepository) FindByID(ctx context.Context, id uuid.UUID) (*m.WeddingModel, error) {
	var w m.WeddingModel
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrWeddingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// IsPublic reports whether the wedding exists and has a share token.
func (r *WeddingRepository) IsPublic(ctx context.Context, id uuid.UUID) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).
		Model(&m.WeddingModel{}).
		Where("id = ? AND share_token IS NOT NULL", id).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// FindEvents returns the wedding's events ordered by date ascending.
func (r *WeddingRepository) FindEvents(ctx context.Context, weddingID uuid.UUID) ([]m.WeddingEventModel, error) {
	var events []m.WeddingEventModel
	err := r.DB.WithContext(ctx).
		Where("wedding_id = ?", weddingID).
		Order("event_date ASC").
		Order("id ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
