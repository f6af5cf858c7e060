// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"time"

	"fixflow/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims is the identity content carried by an access token.
type Claims struct {
	UserID uuid.UUID
	Role   entity.Role
}

// TokenService defines the interface for issuing and validating bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a new access token for a principal.
	GenerateToken(userID uuid.UUID, role entity.Role) (string, error)

	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenDuration returns the configured access token lifetime.
	TokenDuration() time.Duration
}
