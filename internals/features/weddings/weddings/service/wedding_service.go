package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"wedding_backend/internals/features/weddings/weddings/dto"
	repo "wedding_backend/internals/features/weddings/weddings/repository"
	helper "wedding_backend/internals/helpers"
)

var (
	ErrInvalidUserID    = errors.New("Invalid User ID format")
	ErrInvalidWeddingID = errors.New("Invalid wedding ID format")
	ErrDuplicate        = errors.New("Share token or event id already in use")
	ErrUnknownOwner     = errors.New("User does not exist")
)

type WeddingService struct {
	Repo     *repo.WeddingRepository
	Gateway  *PublicGateway
	Validate *validator.Validate
	Now      func() time.Time
}

func NewWeddingService(db *gorm.DB) *WeddingService {
	r := repo.NewWeddingRepository(db)
	return &WeddingService{
		Repo:     r,
		Gateway:  NewPublicGateway(r),
		Validate: newValidator(),
		Now:      time.Now,
	}
}

// Field names in validation errors follow the JSON keys.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Save upserts the whole aggregate. actor is the bearer subject (uuid.Nil when
// anonymous) and only fills user_id when the body has none.
func (s *WeddingService) Save(ctx context.Context, req dto.SaveWeddingRequest, actor uuid.UUID) (uuid.UUID, error) {
	req.Normalize()
	if err := s.Validate.Struct(&req); err != nil {
		return uuid.Nil, err
	}

	w, events := req.ToModels(actor, s.Now().UTC())
	id, err := s.Repo.Save(ctx, &w, events)
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return uuid.Nil, ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return uuid.Nil, ErrUnknownOwner
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("save wedding: %w", err)
	}
	return id, nil
}

func (s *WeddingService) GetByToken(ctx context.Context, token string) (*dto.PublicWeddingResponse, error) {
	return s.Gateway.Resolve(ctx, token)
}

func (s *WeddingService) GetEvents(ctx context.Context, rawID string) ([]dto.EventResponse, error) {
	return s.Gateway.ResolveEvents(ctx, rawID)
}

// GetByUser returns (nil, nil) when the user has not created a wedding yet.
func (s *WeddingService) GetByUser(ctx context.Context, rawUserID string) (*dto.WeddingResponse, error) {
	userID, err := helper.ParseCanonicalUUID(rawUserID)
	if err != nil {
		return nil, ErrInvalidUserID
	}

	w, err := s.Repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find by user: %w", err)
	}
	if w == nil {
		return nil, nil
	}

	events, err := s.Repo.FindEvents(ctx, w.ID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	resp := dto.FromModelWedding(*w, events)
	return &resp, nil
}

// Delete does not check ownership.
func (s *WeddingService) Delete(ctx context.Context, rawID string) error {
	id, err := helper.ParseCanonicalUUID(rawID)
	if err != nil {
		return ErrInvalidWeddingID
	}
	if err := s.Repo.DeleteWedding(ctx, id); err != nil {
		if errors.Is(err, repo.ErrWeddingNotFound) {
			return err
		}
		return fmt.Errorf("delete wedding: %w", err)
	}
	return nil
}
