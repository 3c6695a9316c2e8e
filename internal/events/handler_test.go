package events

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock EventService ---

type mockEventService struct {
	listFn   func(ctx context.Context) ([]Event, error)
	createFn func(ctx context.Context, event *Event) error
	deleteFn func(ctx context.Context, id string) (*Event, error)
}

func (m *mockEventService) ListEvents(ctx context.Context) ([]Event, error) {
	return m.listFn(ctx)
}
func (m *mockEventService) CreateEvent(ctx context.Context, event *Event) error {
	return m.createFn(ctx, event)
}
func (m *mockEventService) DeleteEvent(ctx context.Context, id string) (*Event, error) {
	return m.deleteFn(ctx, id)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func postEvent(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func assertHTTPError(t *testing.T, err error, code int, msg string) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %T", err)
	assert.Equal(t, code, he.Code)
	assert.Equal(t, msg, he.Message)
}

func TestCreateEvent_Handler_Success(t *testing.T) {
	svc := &mockEventService{
		createFn: func(ctx context.Context, event *Event) error {
			event.ID = "evt-1"
			return nil
		},
	}

	c, rec := postEvent(newEcho(), `{"name":"Jazz Night","date":"2026-02-20","location":"Main Hall","description":"Live quartet"}`)
	require.NoError(t, NewEventHandler(svc).CreateEvent(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "evt-1", resp.ID)
	assert.Equal(t, "Jazz Night", resp.Name)
	assert.True(t, resp.Date.Equal(time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)))
}

func TestCreateEvent_Handler_MissingFields(t *testing.T) {
	h := NewEventHandler(&mockEventService{})

	for _, body := range []string{
		`{"name":"Jazz Night","date":"2026-02-20","location":"Main Hall"}`,
		`{"name":"   ","date":"2026-02-20","location":"Main Hall","description":"x"}`,
		`{}`,
	} {
		c, _ := postEvent(newEcho(), body)
		assertHTTPError(t, h.CreateEvent(c), http.StatusBadRequest, missingFieldsMessage)
	}
}

func TestCreateEvent_Handler_InvalidDate(t *testing.T) {
	c, _ := postEvent(newEcho(), `{"name":"Jazz Night","date":"next friday","location":"Main Hall","description":"x"}`)
	assertHTTPError(t, NewEventHandler(&mockEventService{}).CreateEvent(c), http.StatusBadRequest, "Invalid date format")
}

func TestCreateEvent_Handler_UnknownField(t *testing.T) {
	c, _ := postEvent(newEcho(), `{"name":"a","date":"2026-02-20","location":"b","description":"c","price":3}`)
	assertHTTPError(t, NewEventHandler(&mockEventService{}).CreateEvent(c), http.StatusBadRequest, "Invalid request body")
}

func TestCreateEvent_Handler_Duplicate(t *testing.T) {
	svc := &mockEventService{
		createFn: func(ctx context.Context, event *Event) error { return ErrDuplicateEvent },
	}
	c, _ := postEvent(newEcho(), `{"name":"Jazz Night","date":"2026-02-20","location":"Main Hall","description":"x"}`)
	assertHTTPError(t, NewEventHandler(svc).CreateEvent(c), http.StatusBadRequest, ErrDuplicateEvent.Error())
}

func TestDeleteEvent_Handler(t *testing.T) {
	svc := &mockEventService{
		deleteFn: func(ctx context.Context, id string) (*Event, error) {
			if id == "evt-1" {
				return &Event{ID: id, Name: "Jazz Night"}, nil
			}
			return nil, ErrEventNotFound
		},
	}
	h := NewEventHandler(svc)
	e := newEcho()

	req := httptest.NewRequest(http.MethodDelete, "/events/evt-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("evt-1")

	require.NoError(t, h.DeleteEvent(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	var resp DeleteEventResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Event deleted successfully", resp.Message)
	assert.Equal(t, "evt-1", resp.DeletedEvent.ID)

	c = e.NewContext(httptest.NewRequest(http.MethodDelete, "/events/nope", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("nope")
	assertHTTPError(t, h.DeleteEvent(c), http.StatusNotFound, "Event not found")
}

func TestErrorHandler(t *testing.T) {
	e := newEcho()

	rec := httptest.NewRecorder()
	ErrorHandler(echo.NewHTTPError(http.StatusNotFound, "Event not found"), e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Event not found"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	ErrorHandler(errors.New("pq: connection refused"), e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
