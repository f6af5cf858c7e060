package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"fixflow/internal/domain/entity"
	domainerrors "fixflow/internal/domain/errors"
	"fixflow/internal/domain/repository"
	mockRepo "fixflow/internal/mocks/repository"
	mockService "fixflow/internal/mocks/service"
	"fixflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockService.MockPasswordHasher
	tokenSvc *mockService.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenSvc := mockService.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		UserRepo: userRepo,
		Hasher:   hasher,
		TokenSvc: tokenSvc,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return userServiceFixtures{
		service:  service,
		userRepo: userRepo,
		hasher:   hasher,
		tokenSvc: tokenSvc,
	}
}

func TestUserService_Register_NormalizesEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FirstName: "Lina",
		LastName:  "Haddad",
		Email:     "  Lina.Haddad@Example.COM ",
		Phone:     "0790000000",
		Password:  "sufficiently-long",
	}

	fx.hasher.EXPECT().Hash("sufficiently-long").Return("$2a$10$hash", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "lina.haddad@example.com" && u.Role == entity.RoleUser && u.PasswordHash == "$2a$10$hash"
		})).
		Return(nil)

	user, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "lina.haddad@example.com", user.Email)
	assert.Equal(t, entity.RoleUser, user.Role)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FirstName: "Lina",
		LastName:  "Haddad",
		Email:     "lina@example.com",
		Phone:     "0790000000",
		Password:  "sufficiently-long",
	}

	fx.hasher.EXPECT().Hash("sufficiently-long").Return("$2a$10$hash", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrEmailTaken)

	_, err := fx.service.Register(ctx, input)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailInUse))
}

func TestUserService_RegisterAdmin_RequiresAdmin(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.RegisterAdmin(context.Background(), userPrincipal(), &usecase.RegisterInput{})
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	account := &entity.User{ID: userID, Email: "lina@example.com", PasswordHash: "$2a$10$hash", Role: entity.RoleTechnician}

	fx.userRepo.EXPECT().FindByEmail(ctx, "lina@example.com").Return(account, nil)
	fx.hasher.EXPECT().Check("secret-enough", "$2a$10$hash").Return(true)
	fx.tokenSvc.EXPECT().GenerateToken(userID, entity.RoleTechnician).Return("signed.jwt", nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "lina@example.com", Password: "secret-enough"})
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt", out.Token)
	assert.Equal(t, userID, out.User.ID)
}

// Unknown email and wrong password produce the same error.
func TestUserService_Login_IndistinguishableFailures(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	account := &entity.User{ID: uuid.New(), Email: "lina@example.com", PasswordHash: "$2a$10$hash"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)
	_, errUnknown := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever-pass"})

	fx.userRepo.EXPECT().FindByEmail(ctx, "lina@example.com").Return(account, nil)
	fx.hasher.EXPECT().Check("wrong-password", "$2a$10$hash").Return(false)
	_, errWrong := fx.service.Login(ctx, &usecase.LoginInput{Email: "lina@example.com", Password: "wrong-password"})

	assert.True(t, errors.Is(errUnknown, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(errWrong, domainerrors.ErrInvalidCredentials))
}

func TestUserService_GetProfile_OtherUserForbidden(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.GetProfile(context.Background(), userPrincipal(), uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestUserService_UpdateProfile_Self(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	p := userPrincipal()

	fx.userRepo.EXPECT().
		UpdateByID(ctx, p.ID, mock.MatchedBy(func(patch repository.UserPatch) bool {
			return patch.Phone != nil && *patch.Phone == "0791111111" && patch.PasswordHash == nil
		})).
		Return(&entity.User{ID: p.ID, Phone: "0791111111"}, nil)

	user, err := fx.service.UpdateProfile(ctx, p, p.ID, &usecase.UpdateProfileInput{Phone: strPtr("0791111111")})
	require.NoError(t, err)
	assert.Equal(t, "0791111111", user.Phone)
}

func TestUserService_ChangePassword_WrongCurrent(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	p := userPrincipal()
	account := &entity.User{ID: p.ID, PasswordHash: "$2a$10$hash"}

	fx.userRepo.EXPECT().FindByID(ctx, p.ID).Return(account, nil)
	fx.hasher.EXPECT().Check("not-the-one", "$2a$10$hash").Return(false)

	err := fx.service.ChangePassword(ctx, p, p.ID, &usecase.ChangePasswordInput{
		OldPassword: "not-the-one",
		NewPassword: "next-password",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_ListUsers_FilterByRole(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	techRole := entity.RoleTechnician

	fx.userRepo.EXPECT().
		FindMany(ctx, &techRole).
		Return([]*entity.User{{ID: uuid.New(), Role: entity.RoleTechnician}}, nil)

	users, err := fx.service.ListUsers(ctx, adminPrincipal(), strPtr("technician"))
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserService_DeleteUser_SelfRefused(t *testing.T) {
	fx := createTestUserService(t)

	admin := adminPrincipal()

	err := fx.service.DeleteUser(context.Background(), admin, admin.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
