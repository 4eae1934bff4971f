package usecases

import (
	"context"
	"fmt"

	"sentinel/internal/domain/user"
	"sentinel/internal/shared/errors"
	"sentinel/internal/shared/logger"
)

type LogoutSessionCommand struct {
	UserID    uint
	SessionID string
}

type LogoutSessionUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewLogoutSessionUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *LogoutSessionUseCase {
	return &LogoutSessionUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Execute ends a specific session owned by the caller. A session
// belonging to another user is reported as not found rather than
// forbidden so session IDs cannot be probed.
func (uc *LogoutSessionUseCase) Execute(ctx context.Context, cmd LogoutSessionCommand) error {
	session, err := uc.sessionRepo.GetByID(ctx, cmd.SessionID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to get session", "session_id", cmd.SessionID, "error", err)
		return fmt.Errorf("failed to get session: %w", err)
	}

	if session.UserID != cmd.UserID {
		return errors.NewNotFoundError("session not found")
	}

	if !session.IsActive {
		return nil
	}

	session.Deactivate()
	if err := uc.sessionRepo.Update(ctx, session); err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}

	uc.logger.Infow("session ended", "user_id", cmd.UserID, "session_id", session.ID)
	return nil
}
