package service

import (
	"context"
	"errors"
	"fmt"

	"wedding_backend/internals/features/weddings/weddings/dto"
	repo "wedding_backend/internals/features/weddings/weddings/repository"
	helper "wedding_backend/internals/helpers"
)

// ErrNotPublic covers both "no such wedding" and "not shared yet".
// Callers must not be able to tell the two apart.
var ErrNotPublic = errors.New("Wedding not found or not public")

// PublicGateway is the only read path for callers without an owner session.
type PublicGateway struct {
	Repo *repo.WeddingRepository
}

func NewPublicGateway(r *repo.WeddingRepository) *PublicGateway {
	return &PublicGateway{Repo: r}
}

// Resolve matches the token exactly, case-sensitive, no trimming.
func (g *PublicGateway) Resolve(ctx context.Context, token string) (*dto.PublicWeddingResponse, error) {
	w, err := g.Repo.FindByShareToken(ctx, token)
	if errors.Is(err, repo.ErrWeddingNotFound) {
		return nil, repo.ErrWeddingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("resolve token: %w", err)
	}
	view := dto.FromModelPublic(*w)
	return &view, nil
}

// ResolveEvents re-checks that the wedding is shared before disclosing events,
// so a guessed raw id alone reveals nothing.
func (g *PublicGateway) ResolveEvents(ctx context.Context, rawID string) ([]dto.EventResponse, error) {
	id, err := helper.ParseCanonicalUUID(rawID)
	if err != nil {
		return nil, ErrNotPublic
	}
	public, err := g.Repo.IsPublic(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check public: %w", err)
	}
	if !public {
		return nil, ErrNotPublic
	}
	events, err := g.Repo.FindEvents(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return dto.FromModelEvents(events), nil
}
