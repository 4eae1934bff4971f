package middleware

import (
	"github.com/gin-gonic/gin"

	"sentinel/internal/shared/errors"
	"sentinel/internal/shared/utils"
)

// RequireRole gates a route to the given roles. It must run after
// RequireAuth; a request with no resolved identity is unauthorized,
// a wrong role is forbidden.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		role := c.GetString(ContextKeyUserRole)
		if role == "" {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
			c.Abort()
			return
		}

		if _, ok := allowed[role]; !ok {
			utils.ErrorResponseWithError(c, errors.NewForbiddenError("insufficient permissions"))
			c.Abort()
			return
		}

		c.Next()
	}
}
