package routes

import (
	"github.com/gin-gonic/gin"

	"sentinel/internal/interfaces/http/handlers"
	"sentinel/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/register", cfg.AuthHandler.Register)
		auth.POST("/login", cfg.AuthHandler.Login)
		auth.POST("/verify-email", cfg.AuthHandler.VerifyEmail)
		auth.POST("/forgot-password", cfg.AuthHandler.ForgotPassword)
		auth.POST("/reset-password", cfg.AuthHandler.ResetPassword)

		auth.POST("/logout", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Logout)
		auth.POST("/logout-all", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.LogoutAll)
		auth.GET("/sessions", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.ListSessions)
		auth.DELETE("/sessions/:sessionId", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.LogoutSession)
		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.GetCurrentUser)
	}
}
