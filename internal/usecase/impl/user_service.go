package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "fixflow/internal/delivery/context"
	"fixflow/internal/domain/authz"
	"fixflow/internal/domain/entity"
	domainerrors "fixflow/internal/domain/errors"
	"fixflow/internal/domain/repository"
	"fixflow/internal/domain/service"
	"fixflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	TokenSvc service.TokenService
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		tokenSvc: params.TokenSvc,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a regular account. The email is normalized to lower case
// before the uniqueness check.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	return srv.register(ctx, input, entity.RoleUser)
}

// RegisterAdmin creates an account with an elevated role. Admin only.
func (srv *userService) RegisterAdmin(ctx context.Context, p entity.Principal, input *usecase.RegisterInput) (*entity.User, error) {
	if err := authz.RequireAdmin(p); err != nil {
		return nil, err
	}

	return srv.register(ctx, input, entity.RoleAdmin)
}

func (srv *userService) register(ctx context.Context, input *usecase.RegisterInput, role entity.Role) (*entity.User, error) {
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "request body is required")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:          input.Phone,
		PasswordHash:   hash,
		Role:           role,
		ProfilePicture: input.ProfilePicture,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, errors.Wrapf(domainerrors.ErrEmailInUse, "email %s", user.Email)
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", user.ID), slog.String("role", role.String()))

	return user, nil
}

// Login verifies credentials and issues a signed token. Unknown email and
// wrong password are indistinguishable to the caller.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "request body is required")
	}

	user, err := srv.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login rejected")
		}

		return nil, errors.Wrap(err, "failed to look up account")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login rejected")
	}

	token, err := srv.tokenSvc.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{Token: token, User: user}, nil
}

// GetProfile returns an account, visible to the account owner or an admin.
func (srv *userService) GetProfile(ctx context.Context, p entity.Principal, id uuid.UUID) (*entity.User, error) {
	if err := authz.RequireSelfOrAdmin(p, id); err != nil {
		return nil, err
	}

	return srv.loadUser(ctx, id)
}

// UpdateProfile applies the whitelisted profile patch.
func (srv *userService) UpdateProfile(ctx context.Context, p entity.Principal, id uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	if err := authz.RequireSelfOrAdmin(p, id); err != nil {
		return nil, err
	}
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "request body is required")
	}

	patch := repository.UserPatch{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Phone:          input.Phone,
		ProfilePicture: input.ProfilePicture,
	}

	user, err := srv.userRepo.UpdateByID(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrUserNotFound, "user %s", id)
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}

	return user, nil
}

// ChangePassword rotates an account's password after verifying the current one.
func (srv *userService) ChangePassword(ctx context.Context, p entity.Principal, id uuid.UUID, input *usecase.ChangePasswordInput) error {
	if err := authz.RequireSelfOrAdmin(p, id); err != nil {
		return err
	}
	if input == nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "request body is required")
	}

	user, err := srv.loadUser(ctx, id)
	if err != nil {
		return err
	}

	if !srv.hasher.Check(input.OldPassword, user.PasswordHash) {
		return errors.Wrap(domainerrors.ErrInvalidCredentials, "current password does not match")
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	if _, err := srv.userRepo.UpdateByID(ctx, id, repository.UserPatch{PasswordHash: &hash}); err != nil {
		return errors.Wrap(err, "failed to rotate password")
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", id))

	return nil
}

// ListUsers returns all accounts, optionally filtered by role. Admin only.
func (srv *userService) ListUsers(ctx context.Context, p entity.Principal, role *string) ([]*entity.User, error) {
	if err := authz.RequireAdmin(p); err != nil {
		return nil, err
	}

	var roleFilter *entity.Role
	if role != nil {
		r := entity.Role(*role)
		if !r.IsValid() {
			return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown role %q", *role)
		}
		roleFilter = &r
	}

	users, err := srv.userRepo.FindMany(ctx, roleFilter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// DeleteUser removes an account. Admin only; admins cannot delete themselves.
func (srv *userService) DeleteUser(ctx context.Context, p entity.Principal, id uuid.UUID) error {
	if err := authz.RequireAdmin(p); err != nil {
		return err
	}
	if p.ID == id {
		return errors.Wrap(domainerrors.ErrValidationFailed, "an admin cannot delete its own account")
	}

	if err := srv.userRepo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrapf(domainerrors.ErrUserNotFound, "user %s", id)
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.Any("userID", id), slog.Any("adminID", p.ID))

	return nil
}

func (srv *userService) loadUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrUserNotFound, "user %s", id)
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	return user, nil
}
