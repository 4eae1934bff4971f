package usecases

import (
	"context"
	"fmt"

	"sentinel/internal/domain/user"
	"sentinel/internal/shared/logger"
)

type LogoutAllCommand struct {
	UserID uint
}

type LogoutAllResult struct {
	SessionsEnded int64
}

type LogoutAllUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewLogoutAllUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *LogoutAllUseCase {
	return &LogoutAllUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (uc *LogoutAllUseCase) Execute(ctx context.Context, cmd LogoutAllCommand) (*LogoutAllResult, error) {
	count, err := uc.sessionRepo.DeactivateAllByUserID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to deactivate sessions", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to deactivate sessions: %w", err)
	}

	uc.logger.Infow("all sessions ended", "user_id", cmd.UserID, "count", count)
	return &LogoutAllResult{SessionsEnded: count}, nil
}
