package usecases

import (
	"context"
	"fmt"

	"sentinel/internal/domain/user"
	vo "sentinel/internal/domain/user/valueobjects"
	"sentinel/internal/shared/errors"
	"sentinel/internal/shared/logger"
)

type ResetPasswordCommand struct {
	Token       string
	NewPassword string
}

type ResetPasswordUseCase struct {
	userRepo     user.Repository
	sessionRepo  user.SessionRepository
	hasher       user.PasswordHasher
	emailService EmailService
	logger       logger.Interface
}

func NewResetPasswordUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	hasher user.PasswordHasher,
	emailService EmailService,
	logger logger.Interface,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		hasher:       hasher,
		emailService: emailService,
		logger:       logger,
	}
}

// Execute consumes a reset token, replaces the credential and revokes
// every active session for the account.
func (uc *ResetPasswordUseCase) Execute(ctx context.Context, cmd ResetPasswordCommand) error {
	password, err := vo.NewPassword(cmd.NewPassword)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	existingUser, err := uc.userRepo.GetByPasswordResetTokenHash(ctx, vo.HashToken(cmd.Token))
	if err != nil {
		uc.logger.Errorw("failed to get user by reset token", "error", err)
		return fmt.Errorf("failed to get user: %w", err)
	}

	if existingUser == nil {
		return errors.NewValidationError("invalid or expired reset token")
	}

	if err := existingUser.ResetPassword(cmd.Token, password, uc.hasher); err != nil {
		return errors.NewValidationError("invalid or expired reset token")
	}

	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	if _, err := uc.sessionRepo.DeactivateAllByUserID(ctx, existingUser.ID()); err != nil {
		uc.logger.Errorw("failed to deactivate sessions after reset",
			"user_id", existingUser.ID(), "error", err)
		return fmt.Errorf("failed to deactivate sessions: %w", err)
	}

	go func(to string) {
		if err := uc.emailService.SendPasswordChangedEmail(to); err != nil {
			uc.logger.Warnw("failed to send password changed email", "error", err)
		}
	}(existingUser.Email().String())

	uc.logger.Infow("password reset completed", "user_id", existingUser.ID())
	return nil
}
