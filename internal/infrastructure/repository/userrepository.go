package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"sentinel/internal/domain/user"
	"sentinel/internal/infrastructure/persistence/mappers"
	"sentinel/internal/infrastructure/persistence/models"
	"sentinel/internal/shared/logger"
)

// UserRepository implements the user repository interface backed by GORM
type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, userEntity *user.User) error {
	model := r.mapper.ToModel(userEntity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create user in database", "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := userEntity.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set user ID", "error", err)
		return fmt.Errorf("failed to set user ID: %w", err)
	}

	r.logger.Infow("user created", "id", model.ID, "username", model.Username)
	return nil
}

// GetByID retrieves a user by ID; returns nil when no user exists
func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.toDomain(&model)
}

// GetByEmail retrieves a user by email; returns nil when no user exists
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel

	normalized := strings.ToLower(strings.TrimSpace(email))
	if err := r.db.WithContext(ctx).Where("email = ?", normalized).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.toDomain(&model)
}

// GetByIdentifier retrieves a user whose email or username matches the
// identifier; returns nil when no user exists
func (r *UserRepository) GetByIdentifier(ctx context.Context, identifier string) (*user.User, error) {
	var model models.UserModel

	trimmed := strings.TrimSpace(identifier)
	err := r.db.WithContext(ctx).
		Where("email = ? OR username = ?", strings.ToLower(trimmed), trimmed).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by identifier", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.toDomain(&model)
}

// ExistsByEmailOrUsername checks whether either value is already taken
func (r *UserRepository) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("email = ? OR username = ?", strings.ToLower(strings.TrimSpace(email)), strings.TrimSpace(username)).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to check user existence", "error", err)
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return count > 0, nil
}

// Update updates an existing user
func (r *UserRepository) Update(ctx context.Context, userEntity *user.User) error {
	model := r.mapper.ToModel(userEntity)

	result := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at", "deleted_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update user", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user not found: %d", model.ID)
	}

	return nil
}

// GetByVerificationTokenHash retrieves a user by email verification token
// hash; returns nil when no user holds the token
func (r *UserRepository) GetByVerificationTokenHash(ctx context.Context, tokenHash string) (*user.User, error) {
	var model models.UserModel

	err := r.db.WithContext(ctx).
		Where("email_verification_token = ?", tokenHash).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by verification token", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.toDomain(&model)
}

// GetByPasswordResetTokenHash retrieves a user by password reset token
// hash; returns nil when no user holds the token
func (r *UserRepository) GetByPasswordResetTokenHash(ctx context.Context, tokenHash string) (*user.User, error) {
	var model models.UserModel

	err := r.db.WithContext(ctx).
		Where("password_reset_token = ?", tokenHash).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by reset token", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.toDomain(&model)
}

func (r *UserRepository) toDomain(model *models.UserModel) (*user.User, error) {
	entity, err := r.mapper.ToDomain(model)
	if err != nil {
		r.logger.Errorw("failed to map user model to entity", "id", model.ID, "error", err)
		return nil, fmt.Errorf("failed to map user: %w", err)
	}
	return entity, nil
}
