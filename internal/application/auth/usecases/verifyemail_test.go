package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentinel/internal/shared/errors"
	"sentinel/internal/shared/logger"
)

func TestVerifyEmailUseCase_Execute(t *testing.T) {
	setup := func(t *testing.T) (*fakeUserRepo, *RegisterResult, string) {
		t.Helper()
		userRepo := newFakeUserRepo()
		sessionRepo := newFakeSessionRepo()
		registered := registerUser(t, userRepo, sessionRepo)

		// reissue so the test holds the plain token value
		u, err := userRepo.GetByID(context.Background(), registered.User.ID)
		require.NoError(t, err)
		token, err := u.GenerateEmailVerificationToken(0)
		require.NoError(t, err)
		require.NoError(t, userRepo.Update(context.Background(), u))

		return userRepo, registered, token.Value()
	}

	t.Run("marks the email verified", func(t *testing.T) {
		userRepo, registered, token := setup(t)

		uc := NewVerifyEmailUseCase(userRepo, logger.NewLogger())
		err := uc.Execute(context.Background(), VerifyEmailCommand{Token: token})
		require.NoError(t, err)

		u, err := userRepo.GetByID(context.Background(), registered.User.ID)
		require.NoError(t, err)
		assert.True(t, u.IsEmailVerified())
		assert.Nil(t, u.GetAuthData().EmailVerificationToken)
	})

	t.Run("token is single use", func(t *testing.T) {
		userRepo, _, token := setup(t)

		uc := NewVerifyEmailUseCase(userRepo, logger.NewLogger())
		require.NoError(t, uc.Execute(context.Background(), VerifyEmailCommand{Token: token}))

		err := uc.Execute(context.Background(), VerifyEmailCommand{Token: token})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("unknown token rejected", func(t *testing.T) {
		userRepo, _, _ := setup(t)

		uc := NewVerifyEmailUseCase(userRepo, logger.NewLogger())
		err := uc.Execute(context.Background(), VerifyEmailCommand{
			Token: "0000000000000000000000000000000000000000000000000000000000000000",
		})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestGetCurrentUserUseCase_Execute(t *testing.T) {
	userRepo := newFakeUserRepo()
	sessionRepo := newFakeSessionRepo()
	registered := registerUser(t, userRepo, sessionRepo)

	uc := NewGetCurrentUserUseCase(userRepo, logger.NewLogger())

	t.Run("returns the sanitized user", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), GetCurrentUserCommand{UserID: registered.User.ID})
		require.NoError(t, err)
		assert.Equal(t, registered.User.ID, result.ID)
		assert.Equal(t, "ada@example.com", result.Email)
	})

	t.Run("unknown user reads as not found", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetCurrentUserCommand{UserID: 9999})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
