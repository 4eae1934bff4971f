package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"sentinel/internal/application/auth/usecases"
	"sentinel/internal/infrastructure/auth"
	"sentinel/internal/infrastructure/config"
	"sentinel/internal/infrastructure/email"
	"sentinel/internal/infrastructure/repository"
	"sentinel/internal/interfaces/http/handlers"
	"sentinel/internal/interfaces/http/middleware"
	"sentinel/internal/interfaces/http/routes"
	"sentinel/internal/shared/logger"
	"sentinel/internal/shared/utils"
)

// Router represents the HTTP router configuration
type Router struct {
	engine         *gin.Engine
	authHandler    *handlers.AuthHandler
	authMiddleware *middleware.AuthMiddleware
	allowedOrigins []string
	log            logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	if err := handlers.RegisterCustomValidators(); err != nil {
		return nil, err
	}

	userRepo := repository.NewUserRepository(db, log)
	sessionRepo := repository.NewSessionRepository(db)

	hasher := auth.NewArgon2idHasher(
		cfg.Auth.Password.Argon2Memory,
		cfg.Auth.Password.Argon2Iterations,
		cfg.Auth.Password.Argon2Parallelism,
	)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.ExpHours)
	emailService := email.NewSMTPEmailService(cfg.Email)

	verificationTTL := time.Duration(cfg.Auth.Token.VerificationExpHours) * time.Hour
	resetTTL := time.Duration(cfg.Auth.Token.ResetExpMinutes) * time.Minute

	registerUC := usecases.NewRegisterUseCase(userRepo, sessionRepo, hasher, jwtService, emailService, verificationTTL, log)
	loginUC := usecases.NewLoginUseCase(userRepo, sessionRepo, hasher, jwtService, log)
	logoutUC := usecases.NewLogoutUseCase(sessionRepo, log)
	logoutAllUC := usecases.NewLogoutAllUseCase(sessionRepo, log)
	logoutSessionUC := usecases.NewLogoutSessionUseCase(sessionRepo, log)
	listSessionsUC := usecases.NewListSessionsUseCase(sessionRepo, log)
	requestResetUC := usecases.NewRequestPasswordResetUseCase(userRepo, emailService, resetTTL, log)
	resetPasswordUC := usecases.NewResetPasswordUseCase(userRepo, sessionRepo, hasher, emailService, log)
	verifyEmailUC := usecases.NewVerifyEmailUseCase(userRepo, log)
	getCurrentUserUC := usecases.NewGetCurrentUserUseCase(userRepo, log)

	authHandler := handlers.NewAuthHandler(
		registerUC, loginUC, logoutUC, logoutAllUC, listSessionsUC,
		logoutSessionUC, requestResetUC, resetPasswordUC, verifyEmailUC,
		getCurrentUserUC, log,
	)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, userRepo, log)

	return &Router{
		engine:         engine,
		authHandler:    authHandler,
		authMiddleware: authMiddleware,
		allowedOrigins: cfg.Server.AllowedOrigins,
		log:            log,
	}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.CORS(r.allowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, http.StatusOK, "ok", nil)
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
