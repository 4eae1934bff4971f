package usecases

import (
	"context"
	"fmt"
	"time"

	"sentinel/internal/domain/user"
	vo "sentinel/internal/domain/user/valueobjects"
	"sentinel/internal/infrastructure/auth"
	"sentinel/internal/shared/errors"
	"sentinel/internal/shared/logger"
)

type RegisterCommand struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Phone     string
	Gender    string
	DOB       time.Time
	Password  string
	IPAddress string
	UserAgent string
}

type RegisterResult struct {
	User      *UserResponse
	Token     string
	ExpiresIn int64
}

type RegisterUseCase struct {
	userRepo        user.Repository
	sessionRepo     user.SessionRepository
	hasher          user.PasswordHasher
	jwtService      JWTService
	emailService    EmailService
	verificationTTL time.Duration
	logger          logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	hasher user.PasswordHasher,
	jwtService JWTService,
	emailService EmailService,
	verificationTTL time.Duration,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:        userRepo,
		sessionRepo:     sessionRepo,
		hasher:          hasher,
		jwtService:      jwtService,
		emailService:    emailService,
		verificationTTL: verificationTTL,
		logger:          logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	username, err := vo.NewUsername(cmd.Username)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	firstName, err := vo.NewName(cmd.FirstName)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	lastName, err := vo.NewName(cmd.LastName)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	gender, err := vo.NewGender(cmd.Gender)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	password, err := vo.NewPassword(cmd.Password)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.userRepo.ExistsByEmailOrUsername(ctx, email.String(), username.String())
	if err != nil {
		uc.logger.Errorw("failed to check user existence", "error", err)
		return nil, fmt.Errorf("failed to check user existence: %w", err)
	}
	if exists {
		return nil, errors.NewValidationError("email or username already registered")
	}

	newUser, err := user.NewUser(user.NewUserParams{
		FirstName: firstName,
		LastName:  lastName,
		Username:  username,
		Email:     email,
		Phone:     cmd.Phone,
		Gender:    gender,
		DOB:       cmd.DOB,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := newUser.SetPassword(password, uc.hasher); err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to set password: %w", err)
	}

	verificationToken, err := newUser.GenerateEmailVerificationToken(uc.verificationTTL)
	if err != nil {
		uc.logger.Errorw("failed to generate verification token", "error", err)
		return nil, fmt.Errorf("failed to generate verification token: %w", err)
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewValidationError("email or username already registered")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := uc.jwtService.Generate(newUser.ID(), newUser.Email().String(), newUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate token", "user_id", newUser.ID(), "error", err)
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	session, err := user.NewSession(newUser.ID(), cmd.IPAddress, cmd.UserAgent, auth.HashToken(token))
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	// Mail delivery must not block or fail registration
	go func(to, name, token string) {
		if err := uc.emailService.SendWelcomeEmail(to, name); err != nil {
			uc.logger.Warnw("failed to send welcome email", "error", err)
		}
		if err := uc.emailService.SendVerificationEmail(to, token); err != nil {
			uc.logger.Warnw("failed to send verification email", "error", err)
		}
	}(newUser.Email().String(), newUser.FirstName().String(), verificationToken.Value())

	uc.logger.Infow("user registered",
		"user_id", newUser.ID(),
		"username", newUser.Username().String(),
		"session_id", session.ID)

	return &RegisterResult{
		User:      NewUserResponse(newUser),
		Token:     token,
		ExpiresIn: int64(uc.jwtService.TTL().Seconds()),
	}, nil
}
