package events

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/franciscosanchezn/tablekeeper/internal/database"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) http.Handler {
	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite"})
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	repo := NewGormRepository(db)
	require.NoError(t, repo.EnsureSchema(context.Background()))

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewServer(NewEventService(repo, nil), logger, nil)
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestEventsAPI(t *testing.T) {
	srv := newTestServer(t)

	rec := do(srv, http.MethodPost, "/events", `{"name":"Wine Tasting","date":"2026-05-02","location":"Cellar","description":"Six wines"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = do(srv, http.MethodPost, "/events", `{"name":"Brunch","date":"2026-04-01T10:00:00Z","location":"Terrace","description":"Sunday brunch"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("duplicate name and date is rejected", func(t *testing.T) {
		rec := do(srv, http.MethodPost, "/events", `{"name":"Wine Tasting","date":"2026-05-02","location":"Elsewhere","description":"Again"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Event with the same name and date already exists"}`, rec.Body.String())
	})

	t.Run("same name other date is fine", func(t *testing.T) {
		rec := do(srv, http.MethodPost, "/events", `{"name":"Wine Tasting","date":"2026-06-02","location":"Cellar","description":"Six more wines"}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("list sorted by date", func(t *testing.T) {
		rec := do(srv, http.MethodGet, "/events", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var list []Event
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		require.Len(t, list, 3)
		assert.Equal(t, "Brunch", list[0].Name)
		assert.Equal(t, created.ID, list[1].ID)
	})

	t.Run("delete", func(t *testing.T) {
		rec := do(srv, http.MethodDelete, "/events/"+created.ID, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"deletedEvent"`)

		rec = do(srv, http.MethodDelete, "/events/"+created.ID, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Event not found"}`, rec.Body.String())
	})

	t.Run("health", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do(srv, http.MethodGet, "/health", "").Code)
	})
}

func TestGormRepositoryUniqueIndex(t *testing.T) {
	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite"})
	require.NoError(t, err)
	defer database.Close(db)

	ctx := context.Background()
	repo := NewGormRepository(db)
	require.NoError(t, repo.EnsureSchema(ctx))

	first := sampleEvent()
	require.NoError(t, repo.Create(ctx, first))
	assert.ErrorIs(t, repo.Create(ctx, sampleEvent()), ErrDuplicateEvent)

	found, err := repo.FindByNameAndDate(ctx, first.Name, first.Date)
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
}
