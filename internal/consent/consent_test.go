package consent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelierkoba/site-api/pkg/logging"
)

func testStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewStore(rdb, logging.New("error")), mr
}

func TestRecordIsValid(t *testing.T) {
	now := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	rec := NewRecord("accepted", now)

	assert.Equal(t, now.AddDate(0, 12, 0), rec.ExpiresAt)
	assert.True(t, rec.IsValid(now))
	assert.True(t, rec.IsValid(now.AddDate(0, 11, 29)))
	assert.False(t, rec.IsValid(now.AddDate(0, 12, 0)))
	assert.False(t, Record{}.IsValid(now))
}

func TestStoreRoundTrip(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()

	saved, err := store.Set(ctx, "visitor-1", "accepted")
	require.NoError(t, err)

	got, err := store.Get(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, "accepted", got.Value)
	assert.WithinDuration(t, saved.ExpiresAt, got.ExpiresAt, time.Second)
}

func TestStoreMissingIsNotFound(t *testing.T) {
	store, _ := testStore(t)

	_, err := store.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreExpiresWithRedisTTL(t *testing.T) {
	store, mr := testStore(t)
	ctx := context.Background()

	_, err := store.Set(ctx, "visitor-1", "declined")
	require.NoError(t, err)

	// Past the 12-month TTL the key is gone.
	mr.FastForward(367 * 24 * time.Hour)

	_, err = store.Get(ctx, "visitor-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreRejectsStaleRecord(t *testing.T) {
	store, mr := testStore(t)

	// A record whose embedded expiry already passed, regardless of the
	// redis key TTL.
	stale := Record{Value: "accepted", ExpiresAt: time.Now().Add(-time.Hour)}
	raw, _ := json.Marshal(stale)
	mr.Set("consent:visitor-1", string(raw))

	_, err := store.Get(context.Background(), "visitor-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func consentRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/consent/{visitorID}", h.Get)
	r.Post("/api/consent/{visitorID}", h.Set)
	return r
}

func TestHandlerSetThenGet(t *testing.T) {
	store, _ := testStore(t)
	router := consentRouter(NewHandler(store, logging.New("error")))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/consent/visitor-1", strings.NewReader(`{"value":"accepted"}`)))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/consent/visitor-1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var rec Record
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, "accepted", rec.Value)
}

func TestHandlerGetUnknownVisitor(t *testing.T) {
	store, _ := testStore(t)
	router := consentRouter(NewHandler(store, logging.New("error")))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/consent/nobody", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandlerRejectsEmptyValue(t *testing.T) {
	store, _ := testStore(t)
	router := consentRouter(NewHandler(store, logging.New("error")))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/consent/visitor-1", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
