package usecases

import (
	"context"
	"fmt"

	"sentinel/internal/domain/user"
	"sentinel/internal/infrastructure/auth"
	"sentinel/internal/shared/errors"
	"sentinel/internal/shared/logger"
)

type LoginCommand struct {
	Identifier string
	Password   string
	IPAddress  string
	UserAgent  string
}

type LoginResult struct {
	User      *UserResponse
	Token     string
	ExpiresIn int64
}

type LoginUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	hasher      user.PasswordHasher
	jwtService  JWTService
	logger      logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	hasher user.PasswordHasher,
	jwtService JWTService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		jwtService:  jwtService,
		logger:      logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	existingUser, err := uc.userRepo.GetByIdentifier(ctx, cmd.Identifier)
	if err != nil {
		uc.logger.Errorw("failed to get user by identifier", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Unknown identifier and wrong password are indistinguishable
	if existingUser == nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	if !existingUser.VerifyPassword(cmd.Password, uc.hasher) {
		uc.logger.Warnw("failed login attempt",
			"user_id", existingUser.ID(),
			"ip", cmd.IPAddress)
		return nil, errors.NewInvalidCredentialsError()
	}

	if !existingUser.IsActive() {
		return nil, errors.NewAccountInactiveError()
	}

	token, err := uc.jwtService.Generate(existingUser.ID(), existingUser.Email().String(), existingUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate token", "user_id", existingUser.ID(), "error", err)
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	session, err := user.NewSession(existingUser.ID(), cmd.IPAddress, cmd.UserAgent, auth.HashToken(token))
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	uc.logger.Infow("user logged in",
		"user_id", existingUser.ID(),
		"session_id", session.ID)

	return &LoginResult{
		User:      NewUserResponse(existingUser),
		Token:     token,
		ExpiresIn: int64(uc.jwtService.TTL().Seconds()),
	}, nil
}
