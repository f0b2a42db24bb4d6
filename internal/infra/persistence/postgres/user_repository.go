package postgres

import (
	"context"

	"shelf/internal/domain/entity"
	"shelf/internal/domain/repository"
	"shelf/internal/errors"
	"shelf/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var userModel model.UserModel
	if err := repo.db.WithContext(ctx).First(&userModel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(repository.ErrUserNotFound, "find user by id")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userModel), nil
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.UserModel
	if err := repo.db.WithContext(ctx).First(&userModel, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(repository.ErrUserNotFound, "find user by email")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userModel), nil
}

// toUserDomain converts a persistence model to a domain entity.
func toUserDomain(userModel *model.UserModel) *entity.User {
	return &entity.User{
		ID:             userModel.ID,
		Email:          userModel.Email,
		HashedPassword: userModel.HashedPassword,
		CreatedAt:      userModel.CreatedAt,
		UpdatedAt:      userModel.UpdatedAt,
	}
}
