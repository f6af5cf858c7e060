package postgres

import (
	"context"

	"fixflow/internal/domain/entity"
	domainerrors "fixflow/internal/domain/errors"
	"fixflow/internal/domain/repository"
	"fixflow/internal/infra/persistence/model"

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

// Create persists a new user account.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := model.FromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrEmailTaken
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return userM.ToDomain(), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return userM.ToDomain(), nil
}

// FindMany retrieves users, optionally filtered by role, newest first.
func (repo *userRepository) FindMany(ctx context.Context, role *entity.Role) ([]*entity.User, error) {
	var userModels []*model.UserModel

	query := repo.db.WithContext(ctx)
	if role != nil {
		query = query.Where("role = ?", role.String())
	}

	if err := query.Order("created_at DESC").Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, userM.ToDomain())
	}

	return users, nil
}

// UpdateByID applies a profile patch and returns the updated user.
func (repo *userRepository) UpdateByID(ctx context.Context, id uuid.UUID, patch repository.UserPatch) (*entity.User, error) {
	updates := map[string]any{}
	if patch.FirstName != nil {
		updates["first_name"] = *patch.FirstName
	}
	if patch.LastName != nil {
		updates["last_name"] = *patch.LastName
	}
	if patch.Phone != nil {
		updates["phone"] = *patch.Phone
	}
	if patch.ProfilePicture != nil {
		updates["profile_picture"] = *patch.ProfilePicture
	}
	if patch.PasswordHash != nil {
		updates["password_hash"] = *patch.PasswordHash
	}

	if len(updates) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.UserModel{}).
			Where("id = ?", id).
			Updates(updates)
		if result.Error != nil {
			return nil, errors.Wrap(result.Error, "failed to update user")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrUserNotFound
		}
	}

	return repo.FindByID(ctx, id)
}

// DeleteByID permanently removes a user account.
func (repo *userRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
