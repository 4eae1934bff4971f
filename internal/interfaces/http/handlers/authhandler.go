package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sentinel/internal/application/auth/usecases"
	"sentinel/internal/interfaces/http/middleware"
	"sentinel/internal/shared/logger"
	"sentinel/internal/shared/utils"
)

type AuthHandler struct {
	registerUseCase       registerUseCase
	loginUseCase          loginUseCase
	logoutUseCase         logoutUseCase
	logoutAllUseCase      logoutAllUseCase
	listSessionsUseCase   listSessionsUseCase
	logoutSessionUseCase  logoutSessionUseCase
	requestResetUseCase   requestPasswordResetUseCase
	resetPasswordUseCase  resetPasswordUseCase
	verifyEmailUseCase    verifyEmailUseCase
	getCurrentUserUseCase getCurrentUserUseCase
	logger                logger.Interface
}

func NewAuthHandler(
	registerUC registerUseCase,
	loginUC loginUseCase,
	logoutUC logoutUseCase,
	logoutAllUC logoutAllUseCase,
	listSessionsUC listSessionsUseCase,
	logoutSessionUC logoutSessionUseCase,
	requestResetUC requestPasswordResetUseCase,
	resetPasswordUC resetPasswordUseCase,
	verifyEmailUC verifyEmailUseCase,
	getCurrentUserUC getCurrentUserUseCase,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase:       registerUC,
		loginUseCase:          loginUC,
		logoutUseCase:         logoutUC,
		logoutAllUseCase:      logoutAllUC,
		listSessionsUseCase:   listSessionsUC,
		logoutSessionUseCase:  logoutSessionUC,
		requestResetUseCase:   requestResetUC,
		resetPasswordUseCase:  resetPasswordUC,
		verifyEmailUseCase:    verifyEmailUC,
		getCurrentUserUseCase: getCurrentUserUC,
		logger:                logger,
	}
}

type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required,min=2,max=50"`
	LastName  string `json:"last_name" binding:"required,min=2,max=50"`
	Username  string `json:"username" binding:"required,min=3,max=30,username_charset"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"omitempty,max=20"`
	Gender    string `json:"gender" binding:"required,gender_enum"`
	DOB       string `json:"dob" binding:"required,datetime=2006-01-02"`
	Password  string `json:"password" binding:"required,password_strength"`
	// confirmation is a boundary concern; the command carries only Password
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
}

type LoginRequest struct {
	Identifier string `json:"identifier"`
	Email      string `json:"email"`
	Password   string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,password_strength"`
}

type VerifyEmailRequest struct {
	Token string `json:"token" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	dob, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "dob must be a valid date in YYYY-MM-DD format")
		return
	}

	cmd := usecases.RegisterCommand{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Phone:     req.Phone,
		Gender:    req.Gender,
		DOB:       dob,
		Password:  req.Password,
		IPAddress: c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, "registration successful", gin.H{
		"user":       result.User,
		"token":      result.Token,
		"expires_in": result.ExpiresIn,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	identifier := req.Identifier
	if identifier == "" {
		identifier = req.Email
	}
	if identifier == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "identifier or email is required")
		return
	}

	cmd := usecases.LoginCommand{
		Identifier: identifier,
		Password:   req.Password,
		IPAddress:  c.ClientIP(),
		UserAgent:  c.GetHeader("User-Agent"),
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", gin.H{
		"user":       result.User,
		"token":      result.Token,
		"expires_in": result.ExpiresIn,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	err := h.logoutUseCase.Execute(c.Request.Context(), usecases.LogoutCommand{
		UserID:    userID,
		TokenHash: middleware.CurrentTokenHash(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "logged out", nil)
}

func (h *AuthHandler) LogoutAll(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	result, err := h.logoutAllUseCase.Execute(c.Request.Context(), usecases.LogoutAllCommand{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "logged out from all sessions", gin.H{
		"sessions_ended": result.SessionsEnded,
	})
}

func (h *AuthHandler) ListSessions(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	result, err := h.listSessionsUseCase.Execute(c.Request.Context(), usecases.ListSessionsCommand{
		UserID:           userID,
		CurrentTokenHash: middleware.CurrentTokenHash(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"sessions": result.Sessions})
}

func (h *AuthHandler) LogoutSession(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	sessionID := c.Param("sessionId")
	if sessionID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "session ID is required")
		return
	}

	err := h.logoutSessionUseCase.Execute(c.Request.Context(), usecases.LogoutSessionCommand{
		UserID:    userID,
		SessionID: sessionID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "session ended", nil)
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.requestResetUseCase.Execute(c.Request.Context(), usecases.RequestPasswordResetCommand{
		Email: req.Email,
	}); err != nil {
		// The response stays generic even on infrastructure failure
		h.logger.Errorw("password reset request failed", "error", err)
	}

	utils.SuccessResponse(c, http.StatusOK,
		"if the email is registered, a password reset link has been sent", nil)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	err := h.resetPasswordUseCase.Execute(c.Request.Context(), usecases.ResetPasswordCommand{
		Token:       req.Token,
		NewPassword: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "password has been reset", nil)
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	err := h.verifyEmailUseCase.Execute(c.Request.Context(), usecases.VerifyEmailCommand{Token: req.Token})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "email verified", nil)
}

func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	result, err := h.getCurrentUserUseCase.Execute(c.Request.Context(), usecases.GetCurrentUserCommand{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"user": result})
}
