package handlers

import (
	"context"

	"sentinel/internal/application/auth/usecases"
)

// Use case interfaces for AuthHandler - enables unit testing with mocks.

type registerUseCase interface {
	Execute(ctx context.Context, cmd usecases.RegisterCommand) (*usecases.RegisterResult, error)
}

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}

type logoutUseCase interface {
	Execute(ctx context.Context, cmd usecases.LogoutCommand) error
}

type logoutAllUseCase interface {
	Execute(ctx context.Context, cmd usecases.LogoutAllCommand) (*usecases.LogoutAllResult, error)
}

type listSessionsUseCase interface {
	Execute(ctx context.Context, cmd usecases.ListSessionsCommand) (*usecases.ListSessionsResult, error)
}

type logoutSessionUseCase interface {
	Execute(ctx context.Context, cmd usecases.LogoutSessionCommand) error
}

type requestPasswordResetUseCase interface {
	Execute(ctx context.Context, cmd usecases.RequestPasswordResetCommand) error
}

type resetPasswordUseCase interface {
	Execute(ctx context.Context, cmd usecases.ResetPasswordCommand) error
}

type verifyEmailUseCase interface {
	Execute(ctx context.Context, cmd usecases.VerifyEmailCommand) error
}

type getCurrentUserUseCase interface {
	Execute(ctx context.Context, cmd usecases.GetCurrentUserCommand) (*usecases.UserResponse, error)
}
