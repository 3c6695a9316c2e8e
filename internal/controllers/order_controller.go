package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/tablekeeper/internal/models"
	"github.com/franciscosanchezn/tablekeeper/internal/services"
	"github.com/gin-gonic/gin"
)

const orderNotFound = "Order not found"

type OrderItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"gte=0"`
	Quantity int     `json:"quantity" binding:"required,gte=1"`
}

// CreateOrderRequest is the storefront checkout body. Total is computed from items when omitted.
type CreateOrderRequest struct {
	CustomerName        string             `json:"customerName" binding:"required"`
	Email               string             `json:"email" binding:"required,email"`
	Phone               string             `json:"phone" binding:"required,phone"`
	Address             string             `json:"address" binding:"required"`
	Items               []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	Total               float64            `json:"total" binding:"gte=0"`
	SpecialInstructions string             `json:"specialInstructions"`
	Type                string             `json:"type" binding:"required,oneof=delivery takeaway dine-in"`
	Table               *int               `json:"table" binding:"omitempty,gte=1"`
	PaymentMethod       string             `json:"paymentMethod" binding:"required,oneof=card cash paypal"`
}

// UpdateOrderRequest is a partial update. Absent fields keep their value.
type UpdateOrderRequest struct {
	CustomerName        *string             `json:"customerName" binding:"omitempty,min=1"`
	Email               *string             `json:"email" binding:"omitempty,email"`
	Phone               *string             `json:"phone" binding:"omitempty,phone"`
	Address             *string             `json:"address" binding:"omitempty,min=1"`
	Items               *[]OrderItemRequest `json:"items" binding:"omitempty,min=1,dive"`
	Total               *float64            `json:"total" binding:"omitempty,gte=0"`
	SpecialInstructions *string             `json:"specialInstructions"`
	Type                *string             `json:"type"`
	Table               *int                `json:"table" binding:"omitempty,gte=1"`
	PaymentMethod       *string             `json:"paymentMethod"`
	PaymentStatus       *string             `json:"paymentStatus"`
	Status              *string             `json:"status"`
}

func toOrderItems(reqs []OrderItemRequest) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(reqs))
	for _, r := range reqs {
		items = append(items, models.OrderItem{Name: r.Name, Price: r.Price, Quantity: r.Quantity})
	}
	return items
}

func (r UpdateOrderRequest) toPatch() services.OrderPatch {
	patch := services.OrderPatch{
		CustomerName:        r.CustomerName,
		Email:               r.Email,
		Phone:               r.Phone,
		Address:             r.Address,
		Total:               r.Total,
		SpecialInstructions: r.SpecialInstructions,
		Type:                r.Type,
		Table:               r.Table,
		PaymentMethod:       r.PaymentMethod,
		PaymentStatus:       r.PaymentStatus,
	}
	if r.Items != nil {
		items := toOrderItems(*r.Items)
		patch.Items = &items
	}
	if r.Status != nil {
		status := models.OrderStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}

type OrderController struct {
	service services.OrderService
}

func NewOrderController(service services.OrderService) *OrderController {
	return &OrderController{service: service}
}

// Create godoc
// @Summary Place an order
// @Description Assigns the next order number of the day (YYMMDD + 3 digit sequence)
// @Tags orders
// @Accept json
// @Produce json
// @Param order body CreateOrderRequest true "Order"
// @Success 201 {object} Response{data=models.Order}
// @Failure 400 {object} models.APIError
// @Router /api/orders [post]
func (oc *OrderController) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	order := models.Order{
		CustomerName:        req.CustomerName,
		Email:               req.Email,
		Phone:               req.Phone,
		Address:             req.Address,
		Items:               toOrderItems(req.Items),
		Total:               req.Total,
		SpecialInstructions: req.SpecialInstructions,
		Type:                req.Type,
		Table:               req.Table,
		PaymentMethod:       req.PaymentMethod,
	}
	if err := oc.service.Create(c.Request.Context(), &order); err != nil {
		respondError(c, err, orderNotFound)
		return
	}
	respondOK(c, http.StatusCreated, order, "Order placed successfully")
}

// List godoc
// @Summary List orders
// @Tags orders
// @Produce json
// @Param status query string false "pending, preparing, completed or cancelled"
// @Param type query string false "delivery, takeaway or dine-in"
// @Success 200 {object} Response{data=[]models.Order}
// @Security BearerAuth
// @Router /api/orders [get]
func (oc *OrderController) List(c *gin.Context) {
	orders, err := oc.service.List(c.Request.Context(), services.OrderFilter{
		Status: c.Query("status"),
		Type:   c.Query("type"),
	})
	if err != nil {
		respondError(c, err, orderNotFound)
		return
	}
	respondList(c, orders)
}

// Get godoc
// @Summary Get an order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} Response{data=models.Order}
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/orders/{id} [get]
func (oc *OrderController) Get(c *gin.Context) {
	order, err := oc.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, orderNotFound)
		return
	}
	respondOK(c, http.StatusOK, order, "")
}

// Update godoc
// @Summary Update an order
// @Description Partial update. A status change must follow the order lifecycle.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param order body UpdateOrderRequest true "Fields to change"
// @Success 200 {object} Response{data=models.Order}
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /api/orders/{id} [patch]
func (oc *OrderController) Update(c *gin.Context) {
	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	order, err := oc.service.Update(c.Request.Context(), c.Param("id"), req.toPatch())
	if err != nil {
		respondError(c, err, orderNotFound)
		return
	}
	respondOK(c, http.StatusOK, order, "Order updated successfully")
}

// SetStatus godoc
// @Summary Move an order through its lifecycle
// @Description pending -> preparing -> completed, pending or preparing -> cancelled
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param status body StatusRequest true "New status"
// @Success 200 {object} Response{data=models.Order}
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /api/orders/{id}/status [patch]
func (oc *OrderController) SetStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	order, err := oc.service.SetStatus(c.Request.Context(), c.Param("id"), models.OrderStatus(req.Status))
	if err != nil {
		respondError(c, err, orderNotFound)
		return
	}
	respondOK(c, http.StatusOK, order, "Order status updated")
}

// Delete godoc
// @Summary Delete an order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} Response
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/orders/{id} [delete]
func (oc *OrderController) Delete(c *gin.Context) {
	if err := oc.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, orderNotFound)
		return
	}
	respondOK(c, http.StatusOK, gin.H{}, "Order deleted successfully")
}
