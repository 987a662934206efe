package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wedding_backend/internals/databases/dbtest"
	m "wedding_backend/internals/features/weddings/weddings/model"
	repo "wedding_backend/internals/features/weddings/weddings/repository"
)

func TestPublicGateway(t *testing.T) {
	db := dbtest.Open(t)
	r := repo.NewWeddingRepository(db)
	g := NewPublicGateway(r)
	ctx := context.Background()

	token := "Secret-Token"
	w := &m.WeddingModel{
		ID:          uuid.New(),
		BrideName:   "Priya",
		GroomName:   "Rahul",
		WeddingDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Venue:       "Palace",
		ShareToken:  &token,
	}
	_, err := r.Save(ctx, w, []m.WeddingEventModel{{
		ID:        uuid.New(),
		EventType: m.EventWedding,
		EventDate: w.WeddingDate,
	}})
	require.NoError(t, err)

	view, err := g.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, w.ID, view.ID)

	for _, guess := range []string{"", "secret-token", " Secret-Token"} {
		_, err := g.Resolve(ctx, guess)
		assert.ErrorIs(t, err, repo.ErrWeddingNotFound, "%q", guess)
	}

	events, err := g.ResolveEvents(ctx, w.ID.String())
	require.NoError(t, err)
	assert.Len(t, events, 1)

	_, err = g.ResolveEvents(ctx, "garbage")
	assert.ErrorIs(t, err, ErrNotPublic)
	_, err = g.ResolveEvents(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrNotPublic)
}

func TestWeddingService_GetByUser(t *testing.T) {
	s := NewWeddingService(dbtest.Open(t))

	_, err := s.GetByUser(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrInvalidUserID)

	got, err := s.GetByUser(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, got)
}
