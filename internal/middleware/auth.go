package middleware

import (
	"net/http"
	"strings"

	"github.com/franciscosanchezn/tablekeeper/internal/auth"
	"github.com/franciscosanchezn/tablekeeper/internal/models"
	"github.com/gin-gonic/gin"
)

// Context keys set by JWTAuth
const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
	ContextClientID = "clientID"
	ContextScopes   = "scopes"
)

// JWTAuth validates a Bearer access token (RFC 6750) issued either by login or by the OAuth2 token endpoint,
// and stores the caller's identity in the gin context
func JWTAuth(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized, models.ErrUnauthorized,
				"Not authorized to access this route")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortWithError(c, http.StatusUnauthorized, models.ErrUnauthorized,
				"Authorization header must use Bearer scheme. Format: 'Bearer <token>'")
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			abortWithError(c, http.StatusUnauthorized, models.ErrUnauthorized, "Bearer token is empty")
			return
		}

		claims, err := auth.ParseToken(tokenString, jwtSecret)
		if err != nil {
			abortWithError(c, http.StatusUnauthorized, models.ErrUnauthorized, "Not authorized, token failed")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserRole, claims.Role)
		if len(claims.Audience) > 0 {
			c.Set(ContextClientID, claims.Audience[0])
		}
		if claims.Scope != "" {
			c.Set(ContextScopes, claims.Scope)
		}

		c.Next()
	}
}

func abortWithError(c *gin.Context, status int, code, message string) {
	apiErr := models.NewAPIError(code, message)
	c.AbortWithStatusJSON(status, apiErr)
}
