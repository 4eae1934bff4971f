package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sentinel/internal/domain/user"
	"sentinel/internal/infrastructure/auth"
	"sentinel/internal/shared/errors"
	"sentinel/internal/shared/logger"
	"sentinel/internal/shared/utils"
)

// Context keys set by RequireAuth
const (
	ContextKeyUser      = "auth_user"
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyTokenHash = "token_hash"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   user.Repository
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, userRepo user.Repository, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// RequireAuth authenticates the request from its Bearer token. The token
// must verify, the user must still exist and the account must be active;
// the resolved user and the token hash are attached to the context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}
		token := parts[1]

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			if errors.ShouldLogAuthError(err) {
				m.logger.Warnw("token verification failed",
					"path", c.Request.URL.Path,
					"client_ip", c.ClientIP(),
					"error", err)
			}
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		authenticatedUser, err := m.userRepo.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			m.logger.Errorw("failed to load user for auth", "user_id", claims.UserID, "error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, "failed to authenticate request")
			c.Abort()
			return
		}

		// A valid token for a deleted user is unauthorized, not an error
		if authenticatedUser == nil {
			utils.ErrorResponseWithError(c, errors.NewTokenInvalidError())
			c.Abort()
			return
		}

		if !authenticatedUser.IsActive() {
			utils.ErrorResponseWithError(c, errors.NewAccountDeactivatedError())
			c.Abort()
			return
		}

		c.Set(ContextKeyUser, authenticatedUser)
		c.Set(ContextKeyUserID, authenticatedUser.ID())
		c.Set(ContextKeyUserRole, authenticatedUser.Role().String())
		c.Set(ContextKeyTokenHash, auth.HashToken(token))

		c.Next()
	}
}

// CurrentUser returns the authenticated user attached by RequireAuth
func CurrentUser(c *gin.Context) (*user.User, bool) {
	value, exists := c.Get(ContextKeyUser)
	if !exists {
		return nil, false
	}
	u, ok := value.(*user.User)
	return u, ok
}

// CurrentUserID returns the authenticated user's ID
func CurrentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(ContextKeyUserID)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}

// CurrentTokenHash returns the hash of the presented token
func CurrentTokenHash(c *gin.Context) string {
	return c.GetString(ContextKeyTokenHash)
}
