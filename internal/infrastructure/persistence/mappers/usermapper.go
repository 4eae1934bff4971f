package mappers

import (
	"fmt"

	"sentinel/internal/domain/user"
	vo "sentinel/internal/domain/user/valueobjects"
	"sentinel/internal/infrastructure/persistence/models"
	"sentinel/internal/shared/authorization"
)

// UserMapper handles the conversion between User domain entities and
// persistence models.
type UserMapper interface {
	ToModel(entity *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type userMapper struct{}

// NewUserMapper creates a new UserMapper
func NewUserMapper() UserMapper {
	return &userMapper{}
}

func (m *userMapper) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}

	auth := entity.GetAuthData()

	return &models.UserModel{
		ID:                         entity.ID(),
		FirstName:                  entity.FirstName().String(),
		LastName:                   entity.LastName().String(),
		Username:                   entity.Username().String(),
		Email:                      entity.Email().String(),
		Phone:                      entity.Phone(),
		Gender:                     entity.Gender().String(),
		DOB:                        entity.DOB(),
		Role:                       entity.Role().String(),
		IsActive:                   entity.IsActive(),
		EmailVerified:              auth.EmailVerified,
		PasswordHash:               auth.PasswordHash,
		EmailVerificationToken:     auth.EmailVerificationToken,
		EmailVerificationExpiresAt: auth.EmailVerificationExpiresAt,
		PasswordResetToken:         auth.PasswordResetToken,
		PasswordResetExpiresAt:     auth.PasswordResetExpiresAt,
		LastPasswordChangeAt:       auth.LastPasswordChangeAt,
		CreatedAt:                  entity.CreatedAt(),
		UpdatedAt:                  entity.UpdatedAt(),
	}
}

func (m *userMapper) ToDomain(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid stored email: %w", err)
	}

	username, err := vo.NewUsername(model.Username)
	if err != nil {
		return nil, fmt.Errorf("invalid stored username: %w", err)
	}

	firstName, err := vo.NewName(model.FirstName)
	if err != nil {
		return nil, fmt.Errorf("invalid stored first name: %w", err)
	}

	lastName, err := vo.NewName(model.LastName)
	if err != nil {
		return nil, fmt.Errorf("invalid stored last name: %w", err)
	}

	gender, err := vo.NewGender(model.Gender)
	if err != nil {
		return nil, fmt.Errorf("invalid stored gender: %w", err)
	}

	return user.ReconstructUser(user.ReconstructUserParams{
		ID:        model.ID,
		FirstName: firstName,
		LastName:  lastName,
		Username:  username,
		Email:     email,
		Phone:     model.Phone,
		Gender:    gender,
		DOB:       model.DOB,
		Role:      authorization.ParseUserRole(model.Role),
		IsActive:  model.IsActive,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
		Auth: &user.AuthData{
			PasswordHash:               model.PasswordHash,
			EmailVerified:              model.EmailVerified,
			EmailVerificationToken:     model.EmailVerificationToken,
			EmailVerificationExpiresAt: model.EmailVerificationExpiresAt,
			PasswordResetToken:         model.PasswordResetToken,
			PasswordResetExpiresAt:     model.PasswordResetExpiresAt,
			LastPasswordChangeAt:       model.LastPasswordChangeAt,
		},
	})
}
