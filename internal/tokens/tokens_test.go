package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccessToken_SetsExpectedClaims(t *testing.T) {
	t.Parallel()

	secret := []byte("test-jwt-secret")
	token, err := NewAccessToken("alice@example.com", 20*time.Minute, secret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ClaimsFromToken(token, secret)
	require.NoError(t, err)

	assert.Equal(t, TypeAccess, claims.Type)
	assert.Equal(t, "alice@example.com", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(20*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
	require.NotNil(t, claims.IssuedAt)
}

func TestClaimsFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewAccessToken("alice@example.com", 20*time.Minute, []byte("right-secret"))
	require.NoError(t, err)

	claims, err := ClaimsFromToken(token, []byte("wrong-secret"))
	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestClaimsFromToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("test-jwt-secret")
	token, err := NewAccessToken("alice@example.com", -time.Minute, secret)
	require.NoError(t, err)

	claims, err := ClaimsFromToken(token, secret)
	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestClaimsFromToken_Garbage(t *testing.T) {
	t.Parallel()

	claims, err := ClaimsFromToken("not-a-jwt", []byte("test-jwt-secret"))
	require.Error(t, err)
	assert.Nil(t, claims)
}
