package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/tablekeeper/internal/models"
	"github.com/franciscosanchezn/tablekeeper/internal/services"
	"github.com/franciscosanchezn/tablekeeper/internal/validation"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Response is the success envelope of every restaurant endpoint
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
}

func respondOK(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, Response{Success: true, Data: data, Message: message})
}

func respondList[T any](c *gin.Context, items []T) {
	if items == nil {
		items = []T{}
	}
	n := len(items)
	c.JSON(http.StatusOK, Response{Success: true, Data: items, Count: &n})
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, validation.Message(err)))
}

// respondError maps a service error to its HTTP status. notFoundMsg names the missing resource.
func respondError(c *gin.Context, err error, notFoundMsg string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, verr.Msg))
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, notFoundMsg))
	case errors.Is(err, services.ErrTableTaken):
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrTableTaken, services.ErrTableTaken.Error()))
	case errors.Is(err, services.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrDuplicateEmail, "Email already in use"))
	case errors.Is(err, services.ErrInvalidTransition):
		c.JSON(http.StatusConflict, models.NewAPIError(models.ErrInvalidTransition, err.Error()))
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, models.NewAPIError(models.ErrUnauthorized, "Invalid credentials"))
	case errors.Is(err, services.ErrRoleMismatch):
		c.JSON(http.StatusForbidden, models.NewAPIError(models.ErrInvalidRole, "Invalid role for this user"))
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, err.Error()))
	default:
		log.WithError(err).WithField("path", c.FullPath()).Error("Request failed")
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Server Error"))
	}
}

// StatusRequest is the body of every PATCH .../status endpoint
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}
