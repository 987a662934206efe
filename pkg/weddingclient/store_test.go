package weddingclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeServer speaks just enough of the wedding API for the store.
type fakeServer struct {
	mu       sync.Mutex
	saves    []saveWeddingBody
	deletes  []string
	requests int
	failSave bool
	byUser   map[string]*weddingBody
	public   map[string]*weddingBody
	events   map[string][]eventBody
}

func newFakeServer(t *testing.T) (*fakeServer, *Client) {
	f := &fakeServer{
		byUser: map[string]*weddingBody{},
		public: map[string]*weddingBody{},
		events: map[string][]eventBody{},
	}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/weddings", f.save)
	mux.HandleFunc("GET /api/weddings/{a}/{b}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("a") == "user" {
			f.getByUser(w, r.PathValue("b"))
			return
		}
		f.getEvents(w, r.PathValue("a"))
	})
	mux.HandleFunc("GET /api/weddings/{token}", f.getPublic)
	mux.HandleFunc("DELETE /api/weddings/{id}", f.delete)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests++
		f.mu.Unlock()
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	return f, NewClient(srv.URL, time.Second)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	raw, _ := sonic.Marshal(v)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(raw)
}

func (f *fakeServer) save(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var body saveWeddingBody
	if err := sonic.Unmarshal(raw, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid request body"})
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSave {
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Something went wrong!"})
		return
	}
	f.saves = append(f.saves, body)
	writeJSON(w, http.StatusOK, saveWeddingResult{ID: body.ID, Message: "Wedding saved successfully"})
}

func (f *fakeServer) getByUser(w http.ResponseWriter, userID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	writeJSON(w, http.StatusOK, f.byUser[userID])
}

func (f *fakeServer) getPublic(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	wb, ok := f.public[r.PathValue("token")]
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "Wedding not found"})
		return
	}
	writeJSON(w, http.StatusOK, wb)
}

func (f *fakeServer) getEvents(w http.ResponseWriter, weddingID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	writeJSON(w, http.StatusOK, f.events[weddingID])
}

func (f *fakeServer) delete(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, r.PathValue("id"))
	writeJSON(w, http.StatusOK, map[string]string{"message": "Wedding deleted successfully"})
}

func (f *fakeServer) lastSave(t *testing.T) saveWeddingBody {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.saves)
	return f.saves[len(f.saves)-1]
}

func date(mo time.Month, d int) time.Time {
	return time.Date(2025, mo, d, 0, 0, 0, 0, time.UTC)
}

func sp(s string) *string { return &s }

func loadedStore(t *testing.T) (*fakeServer, *Store) {
	t.Helper()
	f, c := newFakeServer(t)
	s := NewStore(c)
	require.NoError(t, s.Load(context.Background(), "user-1"))
	require.Equal(t, StateEmpty, s.State())
	require.NoError(t, s.Create(context.Background(), Wedding{
		BrideName:   "Priya",
		GroomName:   "Rahul",
		WeddingDate: date(time.June, 15),
		Venue:       "Palace",
	}))
	return f, s
}

func TestStore_CreateFromEmpty(t *testing.T) {
	f, s := loadedStore(t)

	assert.Equal(t, StateLoaded, s.State())
	assert.True(t, s.IsSetupComplete())

	body := f.lastSave(t)
	assert.NotEmpty(t, body.ID)
	require.NotNil(t, body.UserID)
	assert.Equal(t, "user-1", *body.UserID)
	assert.Equal(t, DefaultTemplate, body.Template)
	assert.Equal(t, DefaultLanguage, body.Language)
	assert.NotNil(t, body.Events)

	err := s.Create(context.Background(), Wedding{BrideName: "x"})
	assert.ErrorIs(t, err, ErrAlreadyCreated)
}

func TestStore_LoadExisting(t *testing.T) {
	f, c := newFakeServer(t)
	f.byUser["user-2"] = &weddingBody{
		ID: "w-2", BrideName: "A", GroomName: "B", WeddingDate: date(time.May, 1), Venue: "V",
		Events: []eventBody{
			{ID: "late", EventType: EventReception, EventDate: date(time.May, 2)},
			{ID: "early", EventType: EventHaldi, EventDate: date(time.April, 28)},
		},
	}
	s := NewStore(c)
	require.NoError(t, s.Load(context.Background(), "user-2"))

	w, ok := s.Wedding()
	require.True(t, ok)
	assert.Equal(t, StateLoaded, s.State())
	assert.Equal(t, "early", w.Events[0].ID)
	assert.Equal(t, "late", w.Events[1].ID)
}

func TestStore_EventMutationsSendWholeAggregate(t *testing.T) {
	f, s := loadedStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddEvent(ctx, Event{ID: "rec", Type: EventReception, Date: date(time.June, 16)}))
	require.NoError(t, s.AddEvent(ctx, Event{ID: "hal", Type: EventHaldi, Date: date(time.June, 13)}))
	require.NoError(t, s.AddEvent(ctx, Event{Type: EventCustom, CustomName: sp("Brunch"), Date: date(time.June, 17)}))

	body := f.lastSave(t)
	require.Len(t, body.Events, 3)
	assert.Equal(t, "hal", body.Events[0].ID)
	assert.Equal(t, "rec", body.Events[1].ID)
	assert.NotEmpty(t, body.Events[2].ID)
	assert.Equal(t, "Brunch", *body.Events[2].CustomName)

	require.NoError(t, s.UpdateEvent(ctx, "hal", func(e *Event) { e.Date = date(time.June, 20) }))
	body = f.lastSave(t)
	assert.Equal(t, "hal", body.Events[2].ID)

	require.NoError(t, s.RemoveEvent(ctx, "rec"))
	body = f.lastSave(t)
	require.Len(t, body.Events, 2)
	assert.Equal(t, "Priya", body.BrideName)

	assert.ErrorIs(t, s.RemoveEvent(ctx, "missing"), ErrEventNotFound)
	assert.ErrorIs(t, s.UpdateEvent(ctx, "missing", func(*Event) {}), ErrEventNotFound)
}

func TestStore_Reorder(t *testing.T) {
	f, s := loadedStore(t)
	ctx := context.Background()
	require.NoError(t, s.AddEvent(ctx, Event{ID: "a", Type: EventHaldi, Date: date(time.June, 1)}))
	require.NoError(t, s.AddEvent(ctx, Event{ID: "b", Type: EventMehndi, Date: date(time.June, 2)}))

	require.NoError(t, s.Reorder(ctx, []string{"b", "a"}))
	w, _ := s.Wedding()
	assert.Equal(t, "b", w.Events[0].ID)
	assert.Equal(t, "b", f.lastSave(t).Events[0].ID)

	assert.ErrorIs(t, s.Reorder(ctx, []string{"a"}), ErrInvalidOrder)
	assert.ErrorIs(t, s.Reorder(ctx, []string{"a", "a"}), ErrInvalidOrder)
	assert.ErrorIs(t, s.Reorder(ctx, []string{"a", "zzz"}), ErrInvalidOrder)
}

func TestStore_FailedSaveRestoresSnapshot(t *testing.T) {
	f, s := loadedStore(t)
	ctx := context.Background()
	require.NoError(t, s.AddEvent(ctx, Event{ID: "a", Type: EventHaldi, Date: date(time.June, 1)}))
	before, _ := s.Wedding()

	f.mu.Lock()
	f.failSave = true
	f.mu.Unlock()

	err := s.Update(ctx, func(w *Wedding) { w.Venue = "Elsewhere" })
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "Something went wrong!", apiErr.Message)

	err = s.AddEvent(ctx, Event{ID: "b", Type: EventMehndi, Date: date(time.June, 2)})
	require.Error(t, err)

	after, _ := s.Wedding()
	assert.Equal(t, before, after)
	assert.Equal(t, StateLoaded, s.State())
}

func TestStore_FailedCreateReturnsToEmpty(t *testing.T) {
	f, c := newFakeServer(t)
	f.failSave = true
	s := NewStore(c)
	require.NoError(t, s.Load(context.Background(), "user-3"))

	err := s.Create(context.Background(), Wedding{BrideName: "A"})
	require.Error(t, err)
	assert.Equal(t, StateEmpty, s.State())
	_, ok := s.Wedding()
	assert.False(t, ok)
	assert.False(t, s.IsSetupComplete())
}

func TestStore_Share(t *testing.T) {
	f, s := loadedStore(t)
	ctx := context.Background()

	tok, err := s.Share(ctx)
	require.NoError(t, err)
	assert.Regexp(t, `^[a-z0-9]{12}$`, tok)
	require.NotNil(t, f.lastSave(t).ShareToken)
	assert.Equal(t, tok, *f.lastSave(t).ShareToken)

	f.mu.Lock()
	saves := len(f.saves)
	f.mu.Unlock()

	again, err := s.Share(ctx)
	require.NoError(t, err)
	assert.Equal(t, tok, again)
	f.mu.Lock()
	assert.Equal(t, saves, len(f.saves))
	f.mu.Unlock()
}

func TestStore_Reset(t *testing.T) {
	f, s := loadedStore(t)
	w, _ := s.Wedding()

	require.NoError(t, s.Reset(context.Background()))
	assert.Equal(t, StateEmpty, s.State())
	assert.Equal(t, []string{w.ID}, f.deletes)

	assert.ErrorIs(t, s.Reset(context.Background()), ErrNoWedding)
}

func TestStore_PublicIsReadOnly(t *testing.T) {
	f, c := newFakeServer(t)
	f.public["abc123"] = &weddingBody{ID: "w-pub", BrideName: "A", GroomName: "B", WeddingDate: date(time.July, 1), Venue: "V"}
	f.events["w-pub"] = []eventBody{{ID: "e1", EventType: EventWedding, EventDate: date(time.July, 1)}}

	s := NewStore(c)
	require.NoError(t, s.LoadPublic(context.Background(), "abc123"))
	assert.Equal(t, StatePublic, s.State())
	w, _ := s.Wedding()
	require.Len(t, w.Events, 1)

	f.mu.Lock()
	before := f.requests
	f.mu.Unlock()

	ctx := context.Background()
	assert.ErrorIs(t, s.Update(ctx, func(w *Wedding) { w.Venue = "x" }), ErrReadOnly)
	assert.ErrorIs(t, s.AddEvent(ctx, Event{Type: EventHaldi}), ErrReadOnly)
	assert.ErrorIs(t, s.Reset(ctx), ErrReadOnly)
	_, err := s.Share(ctx)
	assert.ErrorIs(t, err, ErrReadOnly)

	f.mu.Lock()
	assert.Equal(t, before, f.requests)
	f.mu.Unlock()

	err = NewStore(c).LoadPublic(ctx, "xyz789")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_MutationsBeforeLoad(t *testing.T) {
	_, c := newFakeServer(t)
	s := NewStore(c)
	assert.Equal(t, StateUninitialized, s.State())
	assert.ErrorIs(t, s.AddEvent(context.Background(), Event{}), ErrNoWedding)
}

func TestGenerateShareToken(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		tok, err := GenerateShareToken()
		require.NoError(t, err)
		assert.Len(t, tok, 12)
		seen[tok] = true
	}
	assert.Len(t, seen, 50)
}
