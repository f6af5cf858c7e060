package repository

import (
	"context"
	"errors"

	"fixflow/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when an email uniqueness constraint is violated.
	ErrEmailTaken = errors.New("email already registered")
)

// UserPatch is the whitelisted set of profile fields an update may touch.
type UserPatch struct {
	FirstName      *string
	LastName       *string
	Phone          *string
	ProfilePicture *string
	PasswordHash   *string
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindMany retrieves users, optionally filtered by role.
	FindMany(ctx context.Context, role *entity.Role) ([]*entity.User, error)

	// UpdateByID applies a profile patch and returns the updated user.
	UpdateByID(ctx context.Context, id uuid.UUID, patch UserPatch) (*entity.User, error)

	// DeleteByID permanently removes a user account.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
