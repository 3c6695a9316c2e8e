package controllers

import (
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/tablekeeper/internal/models"
	"github.com/franciscosanchezn/tablekeeper/internal/services"
	"github.com/gin-gonic/gin"
)

const menuNotFound = "Menu item not found"

// MenuItemRequest is the body of menu create and replace
type MenuItemRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Image       string   `json:"image" binding:"required"`
	Dietary     []string `json:"dietary"`
	Featured    bool     `json:"featured"`
	Status      string   `json:"status"`
}

func (r MenuItemRequest) toModel() models.MenuItem {
	return models.MenuItem{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Price:       r.Price,
		Image:       r.Image,
		Dietary:     r.Dietary,
		Featured:    r.Featured,
		Status:      r.Status,
	}
}

type MenuController struct {
	service services.MenuService
}

func NewMenuController(service services.MenuService) *MenuController {
	return &MenuController{service: service}
}

// List godoc
// @Summary List menu items
// @Description Newest first, with optional filters
// @Tags menu
// @Produce json
// @Param category query string false "Category"
// @Param dietary query string false "Dietary tag the item must carry (V, VG, GF, DF, N)"
// @Param status query string false "available, unavailable or sold_out"
// @Param featured query bool false "Only featured items"
// @Param search query string false "Case-insensitive match on name or description"
// @Success 200 {object} Response{data=[]models.MenuItem}
// @Router /api/menu [get]
func (mc *MenuController) List(c *gin.Context) {
	filter := services.MenuFilter{
		Category: c.Query("category"),
		Dietary:  c.Query("dietary"),
		Status:   c.Query("status"),
		Search:   c.Query("search"),
	}
	if raw := c.Query("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "featured must be true or false"))
			return
		}
		filter.Featured = &featured
	}

	items, err := mc.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, menuNotFound)
		return
	}
	respondList(c, items)
}

// Featured godoc
// @Summary Featured menu items
// @Tags menu
// @Produce json
// @Success 200 {object} Response{data=[]models.MenuItem}
// @Router /api/menu/featured [get]
func (mc *MenuController) Featured(c *gin.Context) {
	items, err := mc.service.Featured(c.Request.Context())
	if err != nil {
		respondError(c, err, menuNotFound)
		return
	}
	respondList(c, items)
}

// Get godoc
// @Summary Get a menu item
// @Tags menu
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} Response{data=models.MenuItem}
// @Failure 404 {object} models.APIError
// @Router /api/menu/{id} [get]
func (mc *MenuController) Get(c *gin.Context) {
	item, err := mc.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, menuNotFound)
		return
	}
	respondOK(c, http.StatusOK, item, "")
}

// Create godoc
// @Summary Add a menu item
// @Tags menu
// @Accept json
// @Produce json
// @Param item body MenuItemRequest true "Menu item"
// @Success 201 {object} Response{data=models.MenuItem}
// @Failure 400 {object} models.APIError
// @Security BearerAuth
// @Router /api/menu [post]
func (mc *MenuController) Create(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item := req.toModel()
	if err := mc.service.Create(c.Request.Context(), &item); err != nil {
		respondError(c, err, menuNotFound)
		return
	}
	respondOK(c, http.StatusCreated, item, "Menu item added successfully")
}

// Replace godoc
// @Summary Replace a menu item
// @Tags menu
// @Accept json
// @Produce json
// @Param id path string true "Menu item ID"
// @Param item body MenuItemRequest true "Menu item"
// @Success 200 {object} Response{data=models.MenuItem}
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/menu/{id} [put]
func (mc *MenuController) Replace(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item, err := mc.service.Replace(c.Request.Context(), c.Param("id"), req.toModel())
	if err != nil {
		respondError(c, err, menuNotFound)
		return
	}
	respondOK(c, http.StatusOK, item, "Menu item updated successfully")
}

// Delete godoc
// @Summary Delete a menu item
// @Tags menu
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} Response
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/menu/{id} [delete]
func (mc *MenuController) Delete(c *gin.Context) {
	if err := mc.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, menuNotFound)
		return
	}
	respondOK(c, http.StatusOK, gin.H{}, "Menu item deleted successfully")
}

// SetStatus godoc
// @Summary Change menu item availability
// @Tags menu
// @Accept json
// @Produce json
// @Param id path string true "Menu item ID"
// @Param status body StatusRequest true "available, unavailable or sold_out"
// @Success 200 {object} Response{data=models.MenuItem}
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/menu/{id}/status [patch]
func (mc *MenuController) SetStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item, err := mc.service.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err, menuNotFound)
		return
	}
	respondOK(c, http.StatusOK, item, "Menu item status updated")
}
