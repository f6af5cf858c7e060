package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fixflow/internal/domain/entity"
	domainerrors "fixflow/internal/domain/errors"
	"fixflow/internal/domain/repository"
	"fixflow/internal/domain/service"
	mockRepo "fixflow/internal/mocks/repository"
	mockService "fixflow/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authMiddlewareFixture struct {
	middleware *AuthMiddleware
	tokenSvc   *mockService.MockTokenService
	userRepo   *mockRepo.MockUserRepository
}

func createTestAuthMiddleware(t *testing.T) *authMiddlewareFixture {
	t.Helper()

	tokenSvc := mockService.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	return &authMiddlewareFixture{
		middleware: NewAuthMiddleware(tokenSvc, userRepo),
		tokenSvc:   tokenSvc,
		userRepo:   userRepo,
	}
}

func newAuthTestContext(t *testing.T, authHeader string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/requests", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	return e.NewContext(req, httptest.NewRecorder())
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	fixture := createTestAuthMiddleware(t)
	c := newAuthTestContext(t, "")

	err := fixture.middleware.Authenticate(func(c echo.Context) error { return nil })(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestAuthenticate_NotBearer(t *testing.T) {
	fixture := createTestAuthMiddleware(t)
	c := newAuthTestContext(t, "Basic dXNlcjpwYXNz")

	err := fixture.middleware.Authenticate(func(c echo.Context) error { return nil })(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	fixture := createTestAuthMiddleware(t)
	c := newAuthTestContext(t, "Bearer garbage")

	fixture.tokenSvc.EXPECT().ValidateToken("garbage").Return(nil, errors.New("token is malformed"))

	err := fixture.middleware.Authenticate(func(c echo.Context) error { return nil })(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestAuthenticate_DeletedAccountRejected(t *testing.T) {
	fixture := createTestAuthMiddleware(t)
	c := newAuthTestContext(t, "Bearer valid")

	userID := uuid.New()
	fixture.tokenSvc.EXPECT().ValidateToken("valid").
		Return(&service.Claims{UserID: userID, Role: entity.RoleUser}, nil)
	fixture.userRepo.EXPECT().FindByID(c.Request().Context(), userID).
		Return(nil, repository.ErrUserNotFound)

	err := fixture.middleware.Authenticate(func(c echo.Context) error { return nil })(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestAuthenticate_UsesStoredRoleNotTokenRole(t *testing.T) {
	fixture := createTestAuthMiddleware(t)
	c := newAuthTestContext(t, "Bearer valid")

	// Token still carries the old role; the store is the source of truth.
	userID := uuid.New()
	fixture.tokenSvc.EXPECT().ValidateToken("valid").
		Return(&service.Claims{UserID: userID, Role: entity.RoleUser}, nil)
	fixture.userRepo.EXPECT().FindByID(c.Request().Context(), userID).
		Return(&entity.User{ID: userID, Role: entity.RoleTechnician}, nil)

	var nextCalled bool
	err := fixture.middleware.Authenticate(func(c echo.Context) error {
		nextCalled = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)

	p, err := PrincipalFrom(c)
	require.NoError(t, err)
	assert.Equal(t, userID, p.ID)
	assert.Equal(t, entity.RoleTechnician, p.Role)
}

func TestPrincipalFrom_MissingPrincipal(t *testing.T) {
	c := newAuthTestContext(t, "")

	_, err := PrincipalFrom(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}
