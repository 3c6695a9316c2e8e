package events

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const missingFieldsMessage = "All fields are required: name, date, location, description"

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

func (h *EventHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListEvents)
	g.POST("", h.CreateEvent)
	g.DELETE("/:id", h.DeleteEvent)
}

func (h *EventHandler) ListEvents(c echo.Context) error {
	events, err := h.svc.ListEvents(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req CreateEventRequest
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Date = strings.TrimSpace(req.Date)
	req.Location = strings.TrimSpace(req.Location)
	req.Description = strings.TrimSpace(req.Description)
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, missingFieldsMessage)
	}

	date, err := ParseDate(req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid date format")
	}

	event := &Event{
		Name:        req.Name,
		Date:        date,
		Location:    req.Location,
		Description: req.Description,
	}

	if err := h.svc.CreateEvent(c.Request().Context(), event); err != nil {
		if errors.Is(err, ErrDuplicateEvent) {
			return echo.NewHTTPError(http.StatusBadRequest, ErrDuplicateEvent.Error())
		}
		return err
	}

	return c.JSON(http.StatusCreated, event)
}

func (h *EventHandler) DeleteEvent(c echo.Context) error {
	event, err := h.svc.DeleteEvent(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, ErrEventNotFound.Error())
		}
		return err
	}

	return c.JSON(http.StatusOK, DeleteEventResponse{
		Message:      "Event deleted successfully",
		DeletedEvent: event,
	})
}
