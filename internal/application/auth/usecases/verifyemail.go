package usecases

import (
	"context"
	"fmt"

	"sentinel/internal/domain/user"
	vo "sentinel/internal/domain/user/valueobjects"
	"sentinel/internal/shared/errors"
	"sentinel/internal/shared/logger"
)

type VerifyEmailCommand struct {
	Token string
}

type VerifyEmailUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewVerifyEmailUseCase(userRepo user.Repository, logger logger.Interface) *VerifyEmailUseCase {
	return &VerifyEmailUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *VerifyEmailUseCase) Execute(ctx context.Context, cmd VerifyEmailCommand) error {
	existingUser, err := uc.userRepo.GetByVerificationTokenHash(ctx, vo.HashToken(cmd.Token))
	if err != nil {
		uc.logger.Errorw("failed to get user by verification token", "error", err)
		return fmt.Errorf("failed to get user: %w", err)
	}

	if existingUser == nil {
		return errors.NewValidationError("invalid or expired verification token")
	}

	if err := existingUser.VerifyEmail(cmd.Token); err != nil {
		return errors.NewValidationError("invalid or expired verification token")
	}

	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	uc.logger.Infow("email verified", "user_id", existingUser.ID())
	return nil
}
