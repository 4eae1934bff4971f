package usecases

import (
	"context"
	"fmt"
	"time"

	"sentinel/internal/domain/user"
	"sentinel/internal/shared/logger"
)

type RequestPasswordResetCommand struct {
	Email string
}

type RequestPasswordResetUseCase struct {
	userRepo     user.Repository
	emailService EmailService
	resetTTL     time.Duration
	logger       logger.Interface
}

func NewRequestPasswordResetUseCase(
	userRepo user.Repository,
	emailService EmailService,
	resetTTL time.Duration,
	logger logger.Interface,
) *RequestPasswordResetUseCase {
	return &RequestPasswordResetUseCase{
		userRepo:     userRepo,
		emailService: emailService,
		resetTTL:     resetTTL,
		logger:       logger,
	}
}

// Execute issues a reset token when the email belongs to an active
// account. The outcome is identical either way so account existence
// cannot be probed.
func (uc *RequestPasswordResetUseCase) Execute(ctx context.Context, cmd RequestPasswordResetCommand) error {
	existingUser, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return fmt.Errorf("failed to get user: %w", err)
	}

	if existingUser == nil || !existingUser.IsActive() {
		return nil
	}

	token, err := existingUser.GeneratePasswordResetToken(uc.resetTTL)
	if err != nil {
		uc.logger.Errorw("failed to generate reset token", "user_id", existingUser.ID(), "error", err)
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		return fmt.Errorf("failed to save reset token: %w", err)
	}

	go func(to, token string) {
		if err := uc.emailService.SendPasswordResetEmail(to, token); err != nil {
			uc.logger.Warnw("failed to send password reset email", "error", err)
		}
	}(existingUser.Email().String(), token.Value())

	uc.logger.Infow("password reset requested", "user_id", existingUser.ID())
	return nil
}
