package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"sentinel/internal/domain/user"
	"sentinel/internal/infrastructure/persistence/mappers"
	"sentinel/internal/infrastructure/persistence/models"
	"sentinel/internal/shared/errors"
)

// SessionRepository implements the session repository interface backed by GORM
type SessionRepository struct {
	db     *gorm.DB
	mapper mappers.SessionMapper
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) user.SessionRepository {
	return &SessionRepository{
		db:     db,
		mapper: mappers.NewSessionMapper(),
	}
}

// Create persists a new session
func (r *SessionRepository) Create(ctx context.Context, session *user.Session) error {
	model := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetByID retrieves a session regardless of state
func (r *SessionRepository) GetByID(ctx context.Context, sessionID string) (*user.Session, error) {
	var model models.SessionModel
	err := r.db.WithContext(ctx).Where("id = ?", sessionID).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("session not found")
		}
		return nil, fmt.Errorf("failed to get session by ID: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

// GetActiveByUserID lists a user's active sessions, newest login first
func (r *SessionRepository) GetActiveByUserID(ctx context.Context, userID uint) ([]*user.Session, error) {
	var sessionModels []*models.SessionModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("login_at DESC").
		Find(&sessionModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get sessions by user ID: %w", err)
	}
	return r.mapper.ToDomainList(sessionModels), nil
}

// GetActiveByUserIDAndTokenHash finds the active session bound to a
// specific issued token; returns nil when no such session exists
func (r *SessionRepository) GetActiveByUserIDAndTokenHash(ctx context.Context, userID uint, tokenHash string) (*user.Session, error) {
	var model models.SessionModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND token_hash = ? AND is_active = ?", userID, tokenHash, true).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session by token hash: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

// Update persists session state changes. An UPDATE against the row is
// used rather than Save so a session purged between fetch and update is
// reported as not found instead of being re-inserted.
func (r *SessionRepository) Update(ctx context.Context, session *user.Session) error {
	model := r.mapper.ToModel(session)
	result := r.db.WithContext(ctx).
		Model(&models.SessionModel{}).
		Where("id = ?", session.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("session not found")
	}
	return nil
}

// DeactivateAllByUserID bulk-deactivates every active session for a user
func (r *SessionRepository) DeactivateAllByUserID(ctx context.Context, userID uint) (int64, error) {
	now := time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&models.SessionModel{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Updates(map[string]interface{}{
			"is_active":  false,
			"logout_at":  now,
			"updated_at": now,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to deactivate sessions: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteExpired removes sessions created before the cutoff
func (r *SessionRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&models.SessionModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", result.Error)
	}
	return result.RowsAffected, nil
}
