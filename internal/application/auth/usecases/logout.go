package usecases

import (
	"context"
	"fmt"

	"sentinel/internal/domain/user"
	"sentinel/internal/shared/logger"
)

type LogoutCommand struct {
	UserID    uint
	TokenHash string
}

type LogoutUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewLogoutUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Execute deactivates the session bound to the presented token.
// Logging out an already ended session succeeds without effect.
func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	session, err := uc.sessionRepo.GetActiveByUserIDAndTokenHash(ctx, cmd.UserID, cmd.TokenHash)
	if err != nil {
		uc.logger.Errorw("failed to find session for logout", "user_id", cmd.UserID, "error", err)
		return fmt.Errorf("failed to find session: %w", err)
	}

	if session == nil {
		return nil
	}

	session.Deactivate()
	if err := uc.sessionRepo.Update(ctx, session); err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}

	uc.logger.Infow("user logged out", "user_id", cmd.UserID, "session_id", session.ID)
	return nil
}
