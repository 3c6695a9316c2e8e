package controllers

import (
	"net/http"
	"time"

	"github.com/franciscosanchezn/tablekeeper/internal/models"
	"github.com/franciscosanchezn/tablekeeper/internal/services"
	"github.com/franciscosanchezn/tablekeeper/internal/validation"
	"github.com/gin-gonic/gin"
)

const staffNotFound = "Staff member not found"

type StaffRequest struct {
	Name      string   `json:"name" binding:"required"`
	Position  string   `json:"position" binding:"required"`
	Email     string   `json:"email" binding:"required,email"`
	Phone     string   `json:"phone" binding:"required,phone"`
	Salary    *float64 `json:"salary" binding:"required,gte=0"`
	StartDate string   `json:"startDate" binding:"required,isodate"`
	Status    string   `json:"status" binding:"omitempty,oneof=active inactive"`
	Avatar    string   `json:"avatar"`
}

func (r StaffRequest) toModel() (models.Staff, error) {
	day, err := validation.NormalizeDate(r.StartDate)
	if err != nil {
		return models.Staff{}, err
	}
	start, err := time.Parse(validation.DateLayout, day)
	if err != nil {
		return models.Staff{}, err
	}
	return models.Staff{
		Name:      r.Name,
		Position:  r.Position,
		Email:     r.Email,
		Phone:     r.Phone,
		Salary:    *r.Salary,
		StartDate: start,
		Status:    r.Status,
		Avatar:    r.Avatar,
	}, nil
}

type StaffController struct {
	service services.StaffService
}

func NewStaffController(service services.StaffService) *StaffController {
	return &StaffController{service: service}
}

// bindStaff reads and converts the request body, writing the 400 itself on failure
func bindStaff(c *gin.Context) (models.Staff, bool) {
	var req StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return models.Staff{}, false
	}
	member, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "startDate must be a date (YYYY-MM-DD)"))
		return models.Staff{}, false
	}
	return member, true
}

// List godoc
// @Summary List staff
// @Tags staff
// @Produce json
// @Success 200 {object} Response{data=[]models.Staff}
// @Security BearerAuth
// @Router /api/staff [get]
func (sc *StaffController) List(c *gin.Context) {
	members, err := sc.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, staffNotFound)
		return
	}
	respondList(c, members)
}

// Get godoc
// @Summary Get a staff member
// @Tags staff
// @Produce json
// @Param id path string true "Staff ID"
// @Success 200 {object} Response{data=models.Staff}
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/staff/{id} [get]
func (sc *StaffController) Get(c *gin.Context) {
	member, err := sc.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, staffNotFound)
		return
	}
	respondOK(c, http.StatusOK, member, "")
}

// Create godoc
// @Summary Add a staff member
// @Tags staff
// @Accept json
// @Produce json
// @Param staff body StaffRequest true "Staff member"
// @Success 201 {object} Response{data=models.Staff}
// @Failure 400 {object} models.APIError
// @Security BearerAuth
// @Router /api/staff [post]
func (sc *StaffController) Create(c *gin.Context) {
	member, ok := bindStaff(c)
	if !ok {
		return
	}
	if err := sc.service.Create(c.Request.Context(), &member); err != nil {
		respondError(c, err, staffNotFound)
		return
	}
	respondOK(c, http.StatusCreated, member, "Staff member added successfully")
}

// Replace godoc
// @Summary Replace a staff member
// @Tags staff
// @Accept json
// @Produce json
// @Param id path string true "Staff ID"
// @Param staff body StaffRequest true "Staff member"
// @Success 200 {object} Response{data=models.Staff}
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/staff/{id} [put]
func (sc *StaffController) Replace(c *gin.Context) {
	member, ok := bindStaff(c)
	if !ok {
		return
	}
	updated, err := sc.service.Replace(c.Request.Context(), c.Param("id"), member)
	if err != nil {
		respondError(c, err, staffNotFound)
		return
	}
	respondOK(c, http.StatusOK, updated, "Staff member updated successfully")
}

// Delete godoc
// @Summary Remove a staff member
// @Tags staff
// @Produce json
// @Param id path string true "Staff ID"
// @Success 200 {object} Response
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/staff/{id} [delete]
func (sc *StaffController) Delete(c *gin.Context) {
	if err := sc.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, staffNotFound)
		return
	}
	respondOK(c, http.StatusOK, gin.H{}, "Staff member deleted successfully")
}

// SetStatus godoc
// @Summary Activate or deactivate a staff member
// @Tags staff
// @Accept json
// @Produce json
// @Param id path string true "Staff ID"
// @Param status body StatusRequest true "active or inactive"
// @Success 200 {object} Response{data=models.Staff}
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/staff/{id}/status [patch]
func (sc *StaffController) SetStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	member, err := sc.service.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err, staffNotFound)
		return
	}
	respondOK(c, http.StatusOK, member, "Staff status updated")
}
