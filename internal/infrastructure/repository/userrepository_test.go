package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"sentinel/internal/domain/user"
	vo "sentinel/internal/domain/user/valueobjects"
	"sentinel/internal/infrastructure/persistence/models"
	"sentinel/internal/shared/logger"
)

type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (stubHasher) Verify(password, digest string) bool { return digest == "hashed:"+password }

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.UserModel{}, &models.SessionModel{})
	require.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, email, username string) *user.User {
	emailVO, err := vo.NewEmail(email)
	require.NoError(t, err)
	usernameVO, err := vo.NewUsername(username)
	require.NoError(t, err)
	firstName, err := vo.NewName("Ada")
	require.NoError(t, err)
	lastName, err := vo.NewName("Lovelace")
	require.NoError(t, err)
	gender, err := vo.NewGender("female")
	require.NoError(t, err)

	u, err := user.NewUser(user.NewUserParams{
		FirstName: firstName,
		LastName:  lastName,
		Username:  usernameVO,
		Email:     emailVO,
		Gender:    gender,
		DOB:       time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return u
}

func TestUserRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, logger.NewLogger())
	ctx := context.Background()

	t.Run("create user successfully", func(t *testing.T) {
		u := createTestUser(t, "ada@example.com", "ada_l")

		err := repo.Create(ctx, u)
		assert.NoError(t, err)
		assert.NotZero(t, u.ID())
	})

	t.Run("duplicate email should fail", func(t *testing.T) {
		u1 := createTestUser(t, "dup@example.com", "first_user")
		require.NoError(t, repo.Create(ctx, u1))

		u2 := createTestUser(t, "dup@example.com", "second_user")
		err := repo.Create(ctx, u2)
		assert.Error(t, err)
	})

	t.Run("duplicate username should fail", func(t *testing.T) {
		u1 := createTestUser(t, "one@example.com", "same_handle")
		require.NoError(t, repo.Create(ctx, u1))

		u2 := createTestUser(t, "two@example.com", "same_handle")
		err := repo.Create(ctx, u2)
		assert.Error(t, err)
	})
}

func TestUserRepository_GetByIdentifier(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, logger.NewLogger())
	ctx := context.Background()

	u := createTestUser(t, "finder@example.com", "findme")
	require.NoError(t, repo.Create(ctx, u))

	t.Run("find by email", func(t *testing.T) {
		found, err := repo.GetByIdentifier(ctx, "finder@example.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, u.ID(), found.ID())
	})

	t.Run("find by email is case-insensitive", func(t *testing.T) {
		found, err := repo.GetByIdentifier(ctx, "Finder@Example.COM")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, u.ID(), found.ID())
	})

	t.Run("find by username", func(t *testing.T) {
		found, err := repo.GetByIdentifier(ctx, "findme")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, u.ID(), found.ID())
	})

	t.Run("unknown identifier returns nil", func(t *testing.T) {
		found, err := repo.GetByIdentifier(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestUserRepository_ExistsByEmailOrUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, logger.NewLogger())
	ctx := context.Background()

	u := createTestUser(t, "taken@example.com", "taken_name")
	require.NoError(t, repo.Create(ctx, u))

	t.Run("email taken", func(t *testing.T) {
		exists, err := repo.ExistsByEmailOrUsername(ctx, "taken@example.com", "free_name")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("username taken", func(t *testing.T) {
		exists, err := repo.ExistsByEmailOrUsername(ctx, "free@example.com", "taken_name")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("neither taken", func(t *testing.T) {
		exists, err := repo.ExistsByEmailOrUsername(ctx, "free@example.com", "free_name")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestUserRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, logger.NewLogger())
	ctx := context.Background()

	t.Run("persists credential and state changes", func(t *testing.T) {
		u := createTestUser(t, "update@example.com", "updater")
		require.NoError(t, repo.Create(ctx, u))

		password, err := vo.NewPassword("Sup3rSecret")
		require.NoError(t, err)
		require.NoError(t, u.SetPassword(password, stubHasher{}))
		u.Deactivate()

		require.NoError(t, repo.Update(ctx, u))

		found, err := repo.GetByID(ctx, u.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.False(t, found.IsActive())
		require.NotNil(t, found.GetAuthData().PasswordHash)
		assert.Equal(t, "hashed:Sup3rSecret", *found.GetAuthData().PasswordHash)
	})

	t.Run("unknown user returns error", func(t *testing.T) {
		u := createTestUser(t, "ghost@example.com", "ghost")
		reconstructed, err := user.ReconstructUser(user.ReconstructUserParams{
			ID:        9999,
			FirstName: u.FirstName(),
			LastName:  u.LastName(),
			Username:  u.Username(),
			Email:     u.Email(),
			Gender:    u.Gender(),
			DOB:       u.DOB(),
			Role:      u.Role(),
			IsActive:  true,
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
		})
		require.NoError(t, err)

		err = repo.Update(ctx, reconstructed)
		assert.Error(t, err)
	})
}

func TestUserRepository_TokenHashLookups(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, logger.NewLogger())
	ctx := context.Background()

	u := createTestUser(t, "tokens@example.com", "tokenuser")
	require.NoError(t, repo.Create(ctx, u))

	verification, err := u.GenerateEmailVerificationToken(0)
	require.NoError(t, err)
	reset, err := u.GeneratePasswordResetToken(0)
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, u))

	t.Run("verification token hash", func(t *testing.T) {
		found, err := repo.GetByVerificationTokenHash(ctx, verification.Hash())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, u.ID(), found.ID())
	})

	t.Run("reset token hash", func(t *testing.T) {
		found, err := repo.GetByPasswordResetTokenHash(ctx, reset.Hash())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, u.ID(), found.ID())
	})

	t.Run("unknown hash returns nil", func(t *testing.T) {
		found, err := repo.GetByVerificationTokenHash(ctx, "deadbeef")
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}
