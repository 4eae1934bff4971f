package usecases

import (
	"context"
	"fmt"

	"sentinel/internal/domain/user"
	"sentinel/internal/shared/errors"
	"sentinel/internal/shared/logger"
)

type GetCurrentUserCommand struct {
	UserID uint
}

type GetCurrentUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetCurrentUserUseCase(userRepo user.Repository, logger logger.Interface) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, cmd GetCurrentUserCommand) (*UserResponse, error) {
	existingUser, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if existingUser == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	return NewUserResponse(existingUser), nil
}
