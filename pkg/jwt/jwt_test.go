package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate_Roundtrip(t *testing.T) {
	manager := NewManager("test-secret")

	token, err := manager.Generate("alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Subject)
}

func TestGenerateAt_ExpiresExactly24HoursAfterIssuance(t *testing.T) {
	manager := NewManager("test-secret")
	issuedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	token, err := manager.GenerateAt("alice@example.com", issuedAt)
	require.NoError(t, err)

	claims := &Claims{}
	_, _, err = jwtlib.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)

	assert.Equal(t, issuedAt.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, issuedAt.Add(24*time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestValidate_RejectsExpiredToken(t *testing.T) {
	manager := NewManager("test-secret")

	token, err := manager.GenerateAt("alice@example.com", time.Now().Add(-25*time.Hour))
	require.NoError(t, err)

	_, err = manager.Validate(token)
	assert.Error(t, err)
}

func TestValidate_RejectsWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a").Generate("alice@example.com")
	require.NoError(t, err)

	_, err = NewManager("secret-b").Validate(token)
	assert.Error(t, err)
}

func TestValidate_RejectsGarbage(t *testing.T) {
	_, err := NewManager("test-secret").Validate("not-a-token")
	assert.Error(t, err)
}
