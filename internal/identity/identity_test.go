package identity

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"brandhub/internal/apperr"
	"brandhub/internal/models"
	"brandhub/internal/repo"
	"brandhub/internal/tokens"
)

var testSecret = []byte("test-jwt-secret")

func newTestResolver(t *testing.T) (*Resolver, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Brand{}, &models.Product{}))

	return &Resolver{
		Repo:      &repo.GormRepo{DB: db},
		JWTSecret: testSecret,
	}, db
}

func TestResolver_NoToken_IsAnonymous(t *testing.T) {
	t.Parallel()

	r, _ := newTestResolver(t)
	ident, err := r.Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, ident)
}

func TestResolver_ValidToken(t *testing.T) {
	t.Parallel()

	r, db := newTestResolver(t)
	user := models.User{Email: "alice@example.com", PasswordHash: "x", Name: "alice", IsActive: true}
	require.NoError(t, db.Create(&user).Error)

	token, err := tokens.NewAccessToken(user.Email, 20*time.Minute, testSecret)
	require.NoError(t, err)

	ident, err := r.Resolve(context.Background(), token)
	require.NoError(t, err)
	require.NotNil(t, ident)
	assert.Equal(t, user.ID, ident.User.ID)
}

func TestResolver_GarbageToken(t *testing.T) {
	t.Parallel()

	r, _ := newTestResolver(t)
	ident, err := r.Resolve(context.Background(), "not-a-jwt")
	require.Error(t, err)
	assert.Nil(t, ident)
	assert.Equal(t, http.StatusUnauthorized, apperr.StatusOf(err))
}

func TestResolver_WrongTokenType(t *testing.T) {
	t.Parallel()

	r, db := newTestResolver(t)
	user := models.User{Email: "alice@example.com", PasswordHash: "x", Name: "alice", IsActive: true}
	require.NoError(t, db.Create(&user).Error)

	// Correctly signed, wrong kind: must still be rejected as 401.
	claims := tokens.Claims{
		Type: "refresh_token",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	ident, err := r.Resolve(context.Background(), token)
	require.Error(t, err)
	assert.Nil(t, ident)
	assert.Equal(t, http.StatusUnauthorized, apperr.StatusOf(err))
}

func TestResolver_SubjectGone(t *testing.T) {
	t.Parallel()

	r, _ := newTestResolver(t)
	token, err := tokens.NewAccessToken("ghost@example.com", 20*time.Minute, testSecret)
	require.NoError(t, err)

	ident, err := r.Resolve(context.Background(), token)
	require.Error(t, err)
	assert.Nil(t, ident)
	assert.Equal(t, http.StatusUnauthorized, apperr.StatusOf(err))
}

func TestRequire(t *testing.T) {
	t.Parallel()

	_, err := Require(nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperr.StatusOf(err))

	ident := &Identity{User: &models.User{Email: "a@b.c"}}
	got, err := Require(ident)
	require.NoError(t, err)
	assert.Same(t, ident, got)
}

func TestRequireElevatedOptional(t *testing.T) {
	t.Parallel()

	got, err := RequireElevatedOptional(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	regular := &Identity{User: &models.User{Email: "a@b.c"}}
	_, err = RequireElevatedOptional(regular)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apperr.StatusOf(err))

	super := &Identity{User: &models.User{Email: "root@b.c", IsSuperuser: true}}
	got, err = RequireElevatedOptional(super)
	require.NoError(t, err)
	assert.Same(t, super, got)
}
