package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentinel/internal/domain/user"
	"sentinel/internal/shared/errors"
)

func createTestSession(t *testing.T, userID uint, tokenHash string) *user.Session {
	session, err := user.NewSession(userID, "192.0.2.10", "sentinel-test/1.0", tokenHash)
	require.NoError(t, err)
	return session
}

func TestSessionRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	t.Run("create and fetch by ID", func(t *testing.T) {
		session := createTestSession(t, 1, "hash-a")
		require.NoError(t, repo.Create(ctx, session))

		found, err := repo.GetByID(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, session.ID, found.ID)
		assert.Equal(t, uint(1), found.UserID)
		assert.True(t, found.IsActive)
		assert.Nil(t, found.LogoutAt)
	})

	t.Run("unknown session returns not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "missing")
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestSessionRepository_GetActiveByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	first := createTestSession(t, 7, "hash-1")
	first.LoginAt = time.Now().UTC().Add(-2 * time.Hour)
	require.NoError(t, repo.Create(ctx, first))

	second := createTestSession(t, 7, "hash-2")
	require.NoError(t, repo.Create(ctx, second))

	inactive := createTestSession(t, 7, "hash-3")
	inactive.Deactivate()
	require.NoError(t, repo.Create(ctx, inactive))

	other := createTestSession(t, 8, "hash-4")
	require.NoError(t, repo.Create(ctx, other))

	sessions, err := repo.GetActiveByUserID(ctx, 7)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, second.ID, sessions[0].ID)
	assert.Equal(t, first.ID, sessions[1].ID)
}

func TestSessionRepository_GetActiveByUserIDAndTokenHash(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	session := createTestSession(t, 3, "bound-hash")
	require.NoError(t, repo.Create(ctx, session))

	t.Run("matching token", func(t *testing.T) {
		found, err := repo.GetActiveByUserIDAndTokenHash(ctx, 3, "bound-hash")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, session.ID, found.ID)
	})

	t.Run("wrong user returns nil", func(t *testing.T) {
		found, err := repo.GetActiveByUserIDAndTokenHash(ctx, 99, "bound-hash")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("deactivated session is not returned", func(t *testing.T) {
		session.Deactivate()
		require.NoError(t, repo.Update(ctx, session))

		found, err := repo.GetActiveByUserIDAndTokenHash(ctx, 3, "bound-hash")
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestSessionRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	t.Run("persists deactivation", func(t *testing.T) {
		session := createTestSession(t, 1, "hash-upd")
		require.NoError(t, repo.Create(ctx, session))

		session.Deactivate()
		require.NoError(t, repo.Update(ctx, session))

		found, err := repo.GetByID(ctx, session.ID)
		require.NoError(t, err)
		assert.False(t, found.IsActive)
		require.NotNil(t, found.LogoutAt)
	})

	t.Run("purged session is not resurrected", func(t *testing.T) {
		session := createTestSession(t, 2, "hash-gone")
		session.CreatedAt = time.Now().UTC().Add(-31 * 24 * time.Hour)
		require.NoError(t, repo.Create(ctx, session))

		// retention sweep removes the row between fetch and update
		_, err := repo.DeleteExpired(ctx, time.Now().UTC().Add(-30*24*time.Hour))
		require.NoError(t, err)

		session.Deactivate()
		err = repo.Update(ctx, session)
		assert.True(t, errors.IsNotFoundError(err))

		_, err = repo.GetByID(ctx, session.ID)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestSessionRepository_DeactivateAllByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, createTestSession(t, 5, "hash")))
	}
	require.NoError(t, repo.Create(ctx, createTestSession(t, 6, "hash")))

	count, err := repo.DeactivateAllByUserID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	remaining, err := repo.GetActiveByUserID(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	untouched, err := repo.GetActiveByUserID(ctx, 6)
	require.NoError(t, err)
	assert.Len(t, untouched, 1)

	// second sweep flips nothing
	count, err = repo.DeactivateAllByUserID(ctx, 5)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	old := createTestSession(t, 1, "old")
	old.CreatedAt = time.Now().UTC().Add(-31 * 24 * time.Hour)
	require.NoError(t, repo.Create(ctx, old))

	fresh := createTestSession(t, 1, "fresh")
	require.NoError(t, repo.Create(ctx, fresh))

	cutoff := time.Now().UTC().Add(-30 * 24 * time.Hour)
	deleted, err := repo.DeleteExpired(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = repo.GetByID(ctx, old.ID)
	assert.True(t, errors.IsNotFoundError(err))

	found, err := repo.GetByID(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, fresh.ID, found.ID)
}
