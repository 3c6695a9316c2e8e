package controllers

import (
	"fmt"
	"net/http"

	"github.com/franciscosanchezn/tablekeeper/internal/models"
	"github.com/franciscosanchezn/tablekeeper/internal/services"
	"github.com/gin-gonic/gin"
)

const reservationNotFound = "Reservation not found"

type CreateReservationRequest struct {
	CustomerName    string `json:"customerName" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required,phone"`
	Date            string `json:"date" binding:"required,isodate"`
	Time            string `json:"time" binding:"required,timeslot"`
	Guests          int    `json:"guests" binding:"required,gte=1"`
	TableNumber     int    `json:"tableNumber" binding:"required,gte=1"`
	SpecialRequests string `json:"specialRequests"`
}

type ReservationController struct {
	service services.ReservationService
}

func NewReservationController(service services.ReservationService) *ReservationController {
	return &ReservationController{service: service}
}

// Create godoc
// @Summary Book a table
// @Description Fails with 400 when an active reservation already holds the table at that date and time
// @Tags reservations
// @Accept json
// @Produce json
// @Param reservation body CreateReservationRequest true "Reservation"
// @Success 201 {object} Response{data=models.Reservation}
// @Failure 400 {object} models.APIError
// @Router /api/reservations [post]
func (rc *ReservationController) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	r := models.Reservation{
		CustomerName:    req.CustomerName,
		Email:           req.Email,
		Phone:           req.Phone,
		Date:            req.Date,
		Time:            req.Time,
		Guests:          req.Guests,
		TableNumber:     req.TableNumber,
		SpecialRequests: req.SpecialRequests,
	}
	if err := rc.service.Create(c.Request.Context(), &r); err != nil {
		respondError(c, err, reservationNotFound)
		return
	}
	respondOK(c, http.StatusCreated, r, "Reservation created successfully")
}

// List godoc
// @Summary List reservations
// @Description Sorted by date then time
// @Tags reservations
// @Produce json
// @Param date query string false "Day (YYYY-MM-DD)"
// @Param status query string false "pending, confirmed or cancelled"
// @Success 200 {object} Response{data=[]models.Reservation}
// @Security BearerAuth
// @Router /api/reservations [get]
func (rc *ReservationController) List(c *gin.Context) {
	list, err := rc.service.List(c.Request.Context(), services.ReservationFilter{
		Date:   c.Query("date"),
		Status: c.Query("status"),
	})
	if err != nil {
		respondError(c, err, reservationNotFound)
		return
	}
	respondList(c, list)
}

// SetStatus godoc
// @Summary Confirm or cancel a reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param status body StatusRequest true "confirmed or cancelled"
// @Success 200 {object} Response{data=models.Reservation}
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /api/reservations/{id}/status [patch]
func (rc *ReservationController) SetStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	r, err := rc.service.SetStatus(c.Request.Context(), c.Param("id"), models.ReservationStatus(req.Status))
	if err != nil {
		respondError(c, err, reservationNotFound)
		return
	}
	respondOK(c, http.StatusOK, r, "Reservation status updated")
}

// Delete godoc
// @Summary Delete a reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} Response
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/reservations/{id} [delete]
func (rc *ReservationController) Delete(c *gin.Context) {
	if err := rc.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, reservationNotFound)
		return
	}
	respondOK(c, http.StatusOK, gin.H{}, "Reservation deleted successfully")
}

// AvailableTables godoc
// @Summary Free tables at a time slot
// @Tags reservations
// @Produce json
// @Param date query string true "Day (YYYY-MM-DD)"
// @Param time query string true "Slot (HH:MM)"
// @Success 200 {object} Response{data=[]int}
// @Failure 400 {object} models.APIError
// @Router /api/available-tables [get]
func (rc *ReservationController) AvailableTables(c *gin.Context) {
	tables, err := rc.service.AvailableTables(c.Request.Context(), c.Query("date"), c.Query("time"))
	if err != nil {
		respondError(c, err, reservationNotFound)
		return
	}
	n := len(tables)
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    tables,
		Count:   &n,
		Message: fmt.Sprintf("%d of %d tables free", n, rc.service.TablePoolSize()),
	})
}
