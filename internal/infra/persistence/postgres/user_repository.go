// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a user by their unique ID, preloading the role profile.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("MerchantProfile").
		Preload("CustomerProfile").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindByUsername retrieves a user by their unique username, preloading the role profile.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("MerchantProfile").
		Preload("CustomerProfile").
		Where("username = ?", username).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user together with its role profile in one insert.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUsernameTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
	if user.MerchantProfile != nil && userM.MerchantProfile != nil {
		user.MerchantProfile.UserID = userM.MerchantProfile.UserID
		user.MerchantProfile.UpdatedAt = userM.MerchantProfile.UpdatedAt
	}
	if user.CustomerProfile != nil && userM.CustomerProfile != nil {
		user.CustomerProfile.UserID = userM.CustomerProfile.UserID
		user.CustomerProfile.UpdatedAt = userM.CustomerProfile.UpdatedAt
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		Name:         data.Name,
		Surname:      data.Surname,
		Type:         entity.UserType(data.Type),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if data.MerchantProfile != nil {
		user.MerchantProfile = &entity.MerchantProfile{
			UserID:      data.MerchantProfile.UserID,
			CompanyName: data.MerchantProfile.CompanyName,
			UpdatedAt:   data.MerchantProfile.UpdatedAt,
		}
	}
	if data.CustomerProfile != nil {
		user.CustomerProfile = &entity.CustomerProfile{
			UserID:    data.CustomerProfile.UserID,
			Balance:   data.CustomerProfile.Balance,
			UpdatedAt: data.CustomerProfile.UpdatedAt,
		}
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		Name:         data.Name,
		Surname:      data.Surname,
		Type:         data.Type.String(),
	}

	if data.MerchantProfile != nil {
		userM.MerchantProfile = &model.MerchantProfileModel{
			UserID:      data.MerchantProfile.UserID,
			CompanyName: data.MerchantProfile.CompanyName,
		}
	}
	if data.CustomerProfile != nil {
		userM.CustomerProfile = &model.CustomerProfileModel{
			UserID:  data.CustomerProfile.UserID,
			Balance: data.CustomerProfile.Balance,
		}
	}

	return userM
}
