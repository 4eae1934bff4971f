package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentinel/internal/shared/errors"
	"sentinel/internal/shared/logger"
)

func TestRequestPasswordResetUseCase_Execute(t *testing.T) {
	t.Run("known email gets a reset token", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		sessionRepo := newFakeSessionRepo()
		registered := registerUser(t, userRepo, sessionRepo)

		emails := &fakeEmail{}
		uc := NewRequestPasswordResetUseCase(userRepo, emails, 0, logger.NewLogger())

		err := uc.Execute(context.Background(), RequestPasswordResetCommand{Email: "ada@example.com"})
		require.NoError(t, err)

		u, err := userRepo.GetByID(context.Background(), registered.User.ID)
		require.NoError(t, err)
		assert.NotNil(t, u.GetAuthData().PasswordResetToken)

		assert.Eventually(t, func() bool {
			return len(emails.resetTokens()) == 1
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("configured token lifetime is applied", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		sessionRepo := newFakeSessionRepo()
		registered := registerUser(t, userRepo, sessionRepo)

		uc := NewRequestPasswordResetUseCase(userRepo, &fakeEmail{}, 15*time.Minute, logger.NewLogger())

		err := uc.Execute(context.Background(), RequestPasswordResetCommand{Email: "ada@example.com"})
		require.NoError(t, err)

		u, err := userRepo.GetByID(context.Background(), registered.User.ID)
		require.NoError(t, err)
		expiresAt := u.GetAuthData().PasswordResetExpiresAt
		require.NotNil(t, expiresAt)
		assert.WithinDuration(t, time.Now().UTC().Add(15*time.Minute), *expiresAt, time.Minute)
	})

	t.Run("unknown email succeeds silently", func(t *testing.T) {
		emails := &fakeEmail{}
		uc := NewRequestPasswordResetUseCase(newFakeUserRepo(), emails, 0, logger.NewLogger())

		err := uc.Execute(context.Background(), RequestPasswordResetCommand{Email: "nobody@example.com"})
		require.NoError(t, err)
		assert.Empty(t, emails.resetTokens())
	})

	t.Run("inactive account succeeds silently", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		sessionRepo := newFakeSessionRepo()
		registered := registerUser(t, userRepo, sessionRepo)

		u, err := userRepo.GetByID(context.Background(), registered.User.ID)
		require.NoError(t, err)
		u.Deactivate()

		emails := &fakeEmail{}
		uc := NewRequestPasswordResetUseCase(userRepo, emails, 0, logger.NewLogger())

		err = uc.Execute(context.Background(), RequestPasswordResetCommand{Email: "ada@example.com"})
		require.NoError(t, err)
		assert.Empty(t, emails.resetTokens())
		assert.Nil(t, u.GetAuthData().PasswordResetToken)
	})
}

func TestResetPasswordUseCase_Execute(t *testing.T) {
	setup := func(t *testing.T) (*fakeUserRepo, *fakeSessionRepo, *RegisterResult, string) {
		t.Helper()
		userRepo := newFakeUserRepo()
		sessionRepo := newFakeSessionRepo()
		registered := registerUser(t, userRepo, sessionRepo)

		u, err := userRepo.GetByID(context.Background(), registered.User.ID)
		require.NoError(t, err)
		token, err := u.GeneratePasswordResetToken(0)
		require.NoError(t, err)
		require.NoError(t, userRepo.Update(context.Background(), u))

		return userRepo, sessionRepo, registered, token.Value()
	}

	t.Run("replaces password and revokes sessions", func(t *testing.T) {
		userRepo, sessionRepo, registered, token := setup(t)

		emails := &fakeEmail{}
		uc := NewResetPasswordUseCase(userRepo, sessionRepo, fakeHasher{}, emails, logger.NewLogger())

		err := uc.Execute(context.Background(), ResetPasswordCommand{
			Token:       token,
			NewPassword: "N3wPassword",
		})
		require.NoError(t, err)

		u, err := userRepo.GetByID(context.Background(), registered.User.ID)
		require.NoError(t, err)
		assert.True(t, u.VerifyPassword("N3wPassword", fakeHasher{}))
		assert.False(t, u.VerifyPassword("Sup3rSecret", fakeHasher{}))
		assert.Nil(t, u.GetAuthData().PasswordResetToken)

		sessions, err := sessionRepo.GetActiveByUserID(context.Background(), registered.User.ID)
		require.NoError(t, err)
		assert.Empty(t, sessions)

		assert.Eventually(t, func() bool {
			emails.mu.Lock()
			defer emails.mu.Unlock()
			return len(emails.changed) == 1
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("token is single use", func(t *testing.T) {
		userRepo, sessionRepo, _, token := setup(t)
		uc := NewResetPasswordUseCase(userRepo, sessionRepo, fakeHasher{}, &fakeEmail{}, logger.NewLogger())

		require.NoError(t, uc.Execute(context.Background(), ResetPasswordCommand{
			Token:       token,
			NewPassword: "N3wPassword",
		}))

		err := uc.Execute(context.Background(), ResetPasswordCommand{
			Token:       token,
			NewPassword: "An0therPass",
		})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("unknown token rejected", func(t *testing.T) {
		userRepo, sessionRepo, _, _ := setup(t)
		uc := NewResetPasswordUseCase(userRepo, sessionRepo, fakeHasher{}, &fakeEmail{}, logger.NewLogger())

		err := uc.Execute(context.Background(), ResetPasswordCommand{
			Token:       "0000000000000000000000000000000000000000000000000000000000000000",
			NewPassword: "N3wPassword",
		})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("weak replacement password rejected", func(t *testing.T) {
		userRepo, sessionRepo, _, token := setup(t)
		uc := NewResetPasswordUseCase(userRepo, sessionRepo, fakeHasher{}, &fakeEmail{}, logger.NewLogger())

		err := uc.Execute(context.Background(), ResetPasswordCommand{
			Token:       token,
			NewPassword: "weak",
		})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}
