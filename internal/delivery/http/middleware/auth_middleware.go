package middleware

import (
	"strings"

	"fixflow/internal/domain/entity"
	domainerrors "fixflow/internal/domain/errors"
	"fixflow/internal/domain/repository"
	"fixflow/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const principalContextKey = "principal"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer token and resolves the caller's identity.
// The role is re-read from the store on every request, so a role change or a
// deleted account takes effect immediately, not at token expiry.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated.WrapMessage("Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrUnauthenticated.WrapMessage("invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthenticated.WrapMessage("invalid or expired token")
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUnauthenticated.WrapMessage("account no longer exists")
			}

			return errors.Wrap(err, "failed to resolve authenticated user")
		}

		c.Set(principalContextKey, entity.Principal{ID: user.ID, Role: user.Role})

		return next(c)
	}
}

// PrincipalFrom extracts the authenticated principal set by Authenticate.
func PrincipalFrom(c echo.Context) (entity.Principal, error) {
	p, ok := c.Get(principalContextKey).(entity.Principal)
	if !ok {
		return entity.Principal{}, domainerrors.ErrUnauthenticated.WrapMessage("no authenticated principal")
	}

	return p, nil
}
