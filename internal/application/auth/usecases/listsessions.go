package usecases

import (
	"context"
	"fmt"

	"sentinel/internal/domain/user"
	"sentinel/internal/shared/logger"
)

type ListSessionsCommand struct {
	UserID           uint
	CurrentTokenHash string
}

type ListSessionsResult struct {
	Sessions []*SessionResponse
}

type ListSessionsUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewListSessionsUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *ListSessionsUseCase {
	return &ListSessionsUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (uc *ListSessionsUseCase) Execute(ctx context.Context, cmd ListSessionsCommand) (*ListSessionsResult, error) {
	sessions, err := uc.sessionRepo.GetActiveByUserID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list sessions", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	responses := make([]*SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		responses = append(responses, NewSessionResponse(s, cmd.CurrentTokenHash))
	}

	return &ListSessionsResult{Sessions: responses}, nil
}
