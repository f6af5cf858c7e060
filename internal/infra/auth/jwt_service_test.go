package auth

import (
	"testing"
	"time"

	"fixflow/config"
	"fixflow/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: ttl}}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret", time.Hour))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.GenerateToken(userID, entity.RoleTechnician)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, entity.RoleTechnician, claims.Role)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret", time.Hour))
	require.NoError(t, err)

	other, err := NewJWTService(newTestJWTConfig("another-secret", time.Hour))
	require.NoError(t, err)

	token, err := other.GenerateToken(uuid.New(), entity.RoleUser)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret", -time.Minute))
	require.NoError(t, err)

	token, err := svc.GenerateToken(uuid.New(), entity.RoleUser)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestJWTConfig("", time.Hour))
	assert.Error(t, err)
}

func TestBcryptHasher_CheckMatchesOwnHash(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 4}})

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, hasher.Check("correct horse battery staple", hash))
	assert.False(t, hasher.Check("wrong password", hash))
}
