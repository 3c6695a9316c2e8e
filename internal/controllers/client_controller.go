package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/tablekeeper/internal/middleware"
	"github.com/franciscosanchezn/tablekeeper/internal/models"
	"github.com/franciscosanchezn/tablekeeper/internal/services"
	"github.com/gin-gonic/gin"
)

type CreateClientRequest struct {
	Name   string `json:"name" binding:"required"`
	Domain string `json:"domain"`
	Scopes string `json:"scopes"`
}

// CreateClientResponse is the only place the plain client secret is ever shown
type CreateClientResponse struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Name         string `json:"name"`
	Scopes       string `json:"scopes"`
	GrantTypes   string `json:"grant_types"`
}

type ClientController struct {
	clientService services.ClientService
}

func NewClientController(clientService services.ClientService) *ClientController {
	return &ClientController{clientService: clientService}
}

// CreateClient godoc
// @Summary Create OAuth2 client
// @Description Create a client for machine access. Tokens it obtains act as the creating user.
// @Tags OAuth2 Clients
// @Accept json
// @Produce json
// @Param client body CreateClientRequest true "Client details"
// @Success 201 {object} CreateClientResponse
// @Failure 400 {object} models.APIError
// @Security BearerAuth
// @Router /api/clients [post]
func (cc *ClientController) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	client := &models.OAuthClient{
		Name:   req.Name,
		Domain: req.Domain,
		Scopes: req.Scopes,
		UserID: c.GetString(middleware.ContextUserID),
	}
	secret, err := cc.clientService.CreateClient(c.Request.Context(), client)
	if err != nil {
		respondError(c, err, "Client not found")
		return
	}

	c.JSON(http.StatusCreated, CreateClientResponse{
		ClientID:     client.ID,
		ClientSecret: secret,
		Name:         client.Name,
		Scopes:       client.Scopes,
		GrantTypes:   client.GrantTypes,
	})
}

// ListClients godoc
// @Summary List OAuth2 clients
// @Description Clients owned by the authenticated user
// @Tags OAuth2 Clients
// @Produce json
// @Success 200 {object} Response{data=[]models.OAuthClient}
// @Security BearerAuth
// @Router /api/clients [get]
func (cc *ClientController) ListClients(c *gin.Context) {
	clients, err := cc.clientService.GetClientsByUserID(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		respondError(c, err, "Client not found")
		return
	}
	respondList(c, clients)
}

// DeleteClient godoc
// @Summary Delete OAuth2 client
// @Tags OAuth2 Clients
// @Param id path string true "Client ID"
// @Success 204 "Client deleted"
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/clients/{id} [delete]
func (cc *ClientController) DeleteClient(c *gin.Context) {
	if err := cc.clientService.DeleteClient(c.Request.Context(), c.Param("id"), c.GetString(middleware.ContextUserID)); err != nil {
		respondError(c, err, "Client not found")
		return
	}
	c.Status(http.StatusNoContent)
}
