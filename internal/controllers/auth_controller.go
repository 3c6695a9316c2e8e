package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/franciscosanchezn/tablekeeper/internal/auth"
	"github.com/franciscosanchezn/tablekeeper/internal/middleware"
	"github.com/franciscosanchezn/tablekeeper/internal/models"
	"github.com/franciscosanchezn/tablekeeper/internal/services"
	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// UserView is the public part of a user account
type UserView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResponse carries the session token next to the user it was issued for
type LoginResponse struct {
	Success   bool     `json:"success"`
	Token     string   `json:"token"`
	ExpiresIn int      `json:"expiresIn"`
	User      UserView `json:"user"`
}

func viewOf(u *models.User) UserView {
	return UserView{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

type AuthController struct {
	userService services.UserService
	tokens      *auth.TokenIssuer
}

func NewAuthController(userService services.UserService, tokens *auth.TokenIssuer) *AuthController {
	return &AuthController{userService: userService, tokens: tokens}
}

// Login godoc
// @Summary Log in
// @Description Exchanges email and password for a bearer token. When role is given it must match the account's role.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Router /api/auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "Please provide an email and password"))
		return
	}

	user, err := ac.userService.Authenticate(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}
	ac.respondWithToken(c, http.StatusOK, user)
}

// Register godoc
// @Summary Create a customer account
// @Tags auth
// @Accept json
// @Produce json
// @Param account body RegisterRequest true "Account"
// @Success 201 {object} LoginResponse
// @Failure 400 {object} models.APIError
// @Router /api/auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     models.RoleCustomer,
	}
	if err := ac.userService.CreateUser(c.Request.Context(), user); err != nil {
		respondError(c, err, "User not found")
		return
	}
	ac.respondWithToken(c, http.StatusCreated, user)
}

func (ac *AuthController) respondWithToken(c *gin.Context, status int, user *models.User) {
	token, _, err := ac.tokens.Issue(user)
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(status, LoginResponse{
		Success:   true,
		Token:     token,
		ExpiresIn: int(ac.tokens.TTL().Seconds()),
		User:      viewOf(user),
	})
}

// Me godoc
// @Summary Current user
// @Description Used by the front end to rehydrate its session
// @Tags auth
// @Produce json
// @Success 200 {object} Response{data=UserView}
// @Failure 401 {object} models.APIError
// @Security BearerAuth
// @Router /api/auth/me [get]
func (ac *AuthController) Me(c *gin.Context) {
	user, err := ac.userService.GetUserByID(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if errors.Is(err, services.ErrNotFound) {
		// the account behind a still-valid token is gone
		c.JSON(http.StatusUnauthorized, models.NewAPIError(models.ErrUnauthorized, "User no longer exists"))
		return
	}
	if err != nil {
		respondError(c, err, "User not found")
		return
	}
	respondOK(c, http.StatusOK, viewOf(user), "")
}

// Logout godoc
// @Summary Log out
// @Description Tokens are stateless, the client simply drops its token
// @Tags auth
// @Produce json
// @Success 200 {object} Response
// @Security BearerAuth
// @Router /api/auth/logout [get]
func (ac *AuthController) Logout(c *gin.Context) {
	respondOK(c, http.StatusOK, gin.H{}, "Logged out")
}
