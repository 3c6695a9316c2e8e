package middleware

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/franciscosanchezn/tablekeeper/internal/models"
	"github.com/gin-gonic/gin"
)

// RequireRole lets the request through only when the authenticated caller holds one of roles.
// Must run after JWTAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(ContextUserID); !exists {
			abortWithError(c, http.StatusUnauthorized, models.ErrUnauthorized, "User not authenticated")
			return
		}

		userRole := c.GetString(ContextUserRole)
		if userRole == "" {
			abortWithError(c, http.StatusForbidden, models.ErrForbidden, "User role not found in token")
			return
		}

		if !slices.Contains(roles, userRole) {
			abortWithError(c, http.StatusForbidden, models.ErrForbidden,
				fmt.Sprintf("User role %s is not authorized to access this route (requires %s)",
					userRole, strings.Join(roles, " or ")))
			return
		}

		c.Next()
	}
}
