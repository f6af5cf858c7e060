package usecase

import (
	"context"

	"fixflow/internal/domain/entity"

	"github.com/google/uuid"
)

// UserUsecase covers registration, login and account management. Login is the
// credential service boundary: email+secret in, identity+role out.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetProfile(ctx context.Context, p entity.Principal, id uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, p entity.Principal, id uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	ChangePassword(ctx context.Context, p entity.Principal, id uuid.UUID, input *ChangePasswordInput) error
	RegisterAdmin(ctx context.Context, p entity.Principal, input *RegisterInput) (*entity.User, error)
	ListUsers(ctx context.Context, p entity.Principal, role *string) ([]*entity.User, error)
	DeleteUser(ctx context.Context, p entity.Principal, id uuid.UUID) error
}

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	FirstName      string `json:"first_name" validate:"required"`
	LastName       string `json:"last_name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required"`
	Password       string `json:"password" validate:"required,min=8"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

// LoginInput defines the login credentials.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput carries the issued token and the resolved account.
type LoginOutput struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// UpdateProfileInput is the whitelisted profile patch.
type UpdateProfileInput struct {
	FirstName      *string `json:"first_name,omitempty"`
	LastName       *string `json:"last_name,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
}

// ChangePasswordInput defines the data required to rotate a password.
type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}
