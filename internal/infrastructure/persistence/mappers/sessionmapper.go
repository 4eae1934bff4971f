package mappers

import (
	"sentinel/internal/domain/user"
	"sentinel/internal/infrastructure/persistence/models"
)

// SessionMapper handles the conversion between Session domain entities
// and persistence models.
type SessionMapper interface {
	ToModel(entity *user.Session) *models.SessionModel
	ToDomain(model *models.SessionModel) *user.Session
	ToDomainList(ms []*models.SessionModel) []*user.Session
}

type sessionMapper struct{}

// NewSessionMapper creates a new SessionMapper
func NewSessionMapper() SessionMapper {
	return &sessionMapper{}
}

func (m *sessionMapper) ToModel(entity *user.Session) *models.SessionModel {
	if entity == nil {
		return nil
	}

	return &models.SessionModel{
		ID:         entity.ID,
		UserID:     entity.UserID,
		IsActive:   entity.IsActive,
		LoginAt:    entity.LoginAt,
		LogoutAt:   entity.LogoutAt,
		IPAddress:  entity.IPAddress,
		UserAgent:  entity.UserAgent,
		DeviceInfo: entity.DeviceInfo,
		TokenHash:  entity.TokenHash,
		CreatedAt:  entity.CreatedAt,
		UpdatedAt:  entity.UpdatedAt,
	}
}

func (m *sessionMapper) ToDomain(model *models.SessionModel) *user.Session {
	if model == nil {
		return nil
	}

	return &user.Session{
		ID:         model.ID,
		UserID:     model.UserID,
		IsActive:   model.IsActive,
		LoginAt:    model.LoginAt,
		LogoutAt:   model.LogoutAt,
		IPAddress:  model.IPAddress,
		UserAgent:  model.UserAgent,
		DeviceInfo: model.DeviceInfo,
		TokenHash:  model.TokenHash,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

func (m *sessionMapper) ToDomainList(ms []*models.SessionModel) []*user.Session {
	sessions := make([]*user.Session, 0, len(ms))
	for _, sm := range ms {
		sessions = append(sessions, m.ToDomain(sm))
	}
	return sessions
}
