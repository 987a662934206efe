package weddingclient

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/google/uuid"
)

type State int

const (
	StateUninitialized State = iota
	StateEmpty
	StateLoaded
	StatePublic
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateEmpty:
		return "empty"
	case StateLoaded:
		return "loaded"
	case StatePublic:
		return "public"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var (
	ErrReadOnly       = errors.New("weddingclient: store is read-only")
	ErrNoWedding      = errors.New("weddingclient: no wedding loaded")
	ErrAlreadyCreated = errors.New("weddingclient: wedding already exists")
	ErrEventNotFound  = errors.New("weddingclient: event not found")
	ErrInvalidOrder   = errors.New("weddingclient: order must list every event exactly once")
)

const (
	shareTokenLen      = 12
	shareTokenAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// Store holds "the current wedding" for one session. Every mutation is applied
// locally first, then the whole aggregate is saved; a failed save restores the
// state that existed before the mutation.
type Store struct {
	api API

	// mu guards state and wedding; saveMu serializes mutations end to end.
	mu      sync.RWMutex
	saveMu  sync.Mutex
	state   State
	wedding *Wedding
	userID  string

	newID    func() string
	newToken func() (string, error)
}

func NewStore(api API) *Store {
	return &Store{
		api:      api,
		newID:    uuid.NewString,
		newToken: GenerateShareToken,
	}
}

// GenerateShareToken returns 12 random characters from [a-z0-9].
func GenerateShareToken() (string, error) {
	max := big.NewInt(int64(len(shareTokenAlphabet)))
	buf := make([]byte, shareTokenLen)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = shareTokenAlphabet[n.Int64()]
	}
	return string(buf), nil
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Wedding returns a copy of the current aggregate.
func (s *Store) Wedding() (*Wedding, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.wedding == nil {
		return nil, false
	}
	return s.wedding.clone(), true
}

func (s *Store) IsSetupComplete() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wedding.IsSetupComplete()
}

/* =========================
   Loading
   ========================= */

// Load fetches the owner's wedding. No wedding yet is StateEmpty, not an error.
func (s *Store) Load(ctx context.Context, userID string) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	w, err := s.api.GetWeddingByUser(ctx, userID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = userID
	if w == nil {
		s.state, s.wedding = StateEmpty, nil
		return nil
	}
	sortEventsByDate(w.Events)
	s.state, s.wedding = StateLoaded, w
	return nil
}

// LoadPublic fills the store from a share token. The store never writes
// afterwards.
func (s *Store) LoadPublic(ctx context.Context, token string) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	w, err := s.api.GetPublicWedding(ctx, token)
	if err != nil {
		return err
	}
	events, err := s.api.GetPublicEvents(ctx, w.ID)
	if err != nil {
		return err
	}
	w.Events = events

	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = ""
	s.state, s.wedding = StatePublic, w
	return nil
}

/* =========================
   Mutations
   ========================= */

// Create saves a brand new wedding. The id is generated here and missing
// template/language get their defaults.
func (s *Store) Create(ctx context.Context, w Wedding) error {
	return s.mutate(ctx, func(cur *Wedding, state State) (*Wedding, error) {
		if state == StateLoaded {
			return nil, ErrAlreadyCreated
		}
		next := w.clone()
		if next.ID == "" {
			next.ID = s.newID()
		}
		if next.UserID == nil && s.userID != "" {
			uid := s.userID
			next.UserID = &uid
		}
		if next.Template == "" {
			next.Template = DefaultTemplate
		}
		if next.Language == "" {
			next.Language = DefaultLanguage
		}
		for i := range next.Events {
			if next.Events[i].ID == "" {
				next.Events[i].ID = s.newID()
			}
		}
		sortEventsByDate(next.Events)
		return next, nil
	})
}

// Update applies edit to a copy of the wedding (names, venue, photos, ...).
func (s *Store) Update(ctx context.Context, edit func(w *Wedding)) error {
	return s.mutateLoaded(ctx, func(w *Wedding) error {
		id := w.ID
		edit(w)
		w.ID = id
		return nil
	})
}

// AddEvent appends the event and re-sorts by date. The stored copy gets an id
// when e has none.
func (s *Store) AddEvent(ctx context.Context, e Event) error {
	return s.mutateLoaded(ctx, func(w *Wedding) error {
		e = e.clone()
		if e.ID == "" {
			e.ID = s.newID()
		}
		w.Events = append(w.Events, e)
		sortEventsByDate(w.Events)
		return nil
	})
}

func (s *Store) UpdateEvent(ctx context.Context, id string, edit func(e *Event)) error {
	return s.mutateLoaded(ctx, func(w *Wedding) error {
		for i := range w.Events {
			if w.Events[i].ID == id {
				edit(&w.Events[i])
				w.Events[i].ID = id
				sortEventsByDate(w.Events)
				return nil
			}
		}
		return ErrEventNotFound
	})
}

func (s *Store) RemoveEvent(ctx context.Context, id string) error {
	return s.mutateLoaded(ctx, func(w *Wedding) error {
		for i := range w.Events {
			if w.Events[i].ID == id {
				w.Events = append(w.Events[:i], w.Events[i+1:]...)
				return nil
			}
		}
		return ErrEventNotFound
	})
}

// Reorder keeps the caller's order locally. The server still reads events
// back by date.
func (s *Store) Reorder(ctx context.Context, ids []string) error {
	return s.mutateLoaded(ctx, func(w *Wedding) error {
		if len(ids) != len(w.Events) {
			return ErrInvalidOrder
		}
		byID := make(map[string]Event, len(w.Events))
		for _, e := range w.Events {
			byID[e.ID] = e
		}
		ordered := make([]Event, 0, len(ids))
		for _, id := range ids {
			e, ok := byID[id]
			if !ok {
				return ErrInvalidOrder
			}
			delete(byID, id)
			ordered = append(ordered, e)
		}
		w.Events = ordered
		return nil
	})
}

// Share returns the wedding's share token, generating and saving one first
// when it has none.
func (s *Store) Share(ctx context.Context) (string, error) {
	var token string
	err := s.mutateLoaded(ctx, func(w *Wedding) error {
		if w.ShareToken != nil && *w.ShareToken != "" {
			token = *w.ShareToken
			return errNoChange
		}
		t, err := s.newToken()
		if err != nil {
			return err
		}
		token = t
		w.ShareToken = &t
		return nil
	})
	if err != nil {
		return "", err
	}
	return token, nil
}

// Reset deletes the wedding on the server, then empties the store.
func (s *Store) Reset(ctx context.Context) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.RLock()
	state, w := s.state, s.wedding
	s.mu.RUnlock()

	if state == StatePublic {
		return ErrReadOnly
	}
	if state != StateLoaded || w == nil {
		return ErrNoWedding
	}
	if err := s.api.DeleteWedding(ctx, w.ID); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state, s.wedding = StateEmpty, nil
	return nil
}

// errNoChange short-circuits a mutation that would not alter anything.
var errNoChange = errors.New("no change")

func (s *Store) mutateLoaded(ctx context.Context, apply func(w *Wedding) error) error {
	return s.mutate(ctx, func(cur *Wedding, state State) (*Wedding, error) {
		if state != StateLoaded || cur == nil {
			return nil, ErrNoWedding
		}
		next := cur.clone()
		if err := apply(next); err != nil {
			return nil, err
		}
		return next, nil
	})
}

// mutate snapshots, publishes next optimistically, saves it and rolls back to
// the snapshot if the save fails.
func (s *Store) mutate(ctx context.Context, build func(cur *Wedding, state State) (*Wedding, error)) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	if s.state == StatePublic {
		s.mu.Unlock()
		return ErrReadOnly
	}
	prevState, prevWedding := s.state, s.wedding
	next, err := build(prevWedding.clone(), prevState)
	if err != nil {
		s.mu.Unlock()
		if errors.Is(err, errNoChange) {
			return nil
		}
		return err
	}
	s.state, s.wedding = StateLoaded, next
	payload := next.clone()
	s.mu.Unlock()

	id, err := s.api.SaveWedding(ctx, payload)
	if err != nil {
		s.mu.Lock()
		s.state, s.wedding = prevState, prevWedding
		s.mu.Unlock()
		return err
	}

	if id != "" && id != next.ID {
		s.mu.Lock()
		if s.wedding == next {
			s.wedding.ID = id
		}
		s.mu.Unlock()
	}
	return nil
}
