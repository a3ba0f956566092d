package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"brandhub/internal/apperr"
	"brandhub/internal/hash"
	"brandhub/internal/logging"
	"brandhub/internal/repo"
	"brandhub/internal/tokens"
)

type AuthService struct {
	Repo           *repo.GormRepo
	JWTSecret      []byte
	AccessTokenTTL time.Duration
}

// Login verifies credentials and issues an access token bound to the user's
// email. Inactive users authenticate fine but are refused a token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	user, err := s.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("login_failed", "status", 401, "reason", "unknown email")
			return "", apperr.Authentication("Incorrect username or password")
		}
		return "", err
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login_failed", "status", 401, "reason", "bad password")
		return "", apperr.Authentication("Incorrect username or password")
	}
	if !user.IsActive {
		l.Warn("login_failed", "status", 403, "reason", "inactive user")
		return "", apperr.Authorization("Inactive user")
	}

	token, err := tokens.NewAccessToken(user.Email, s.AccessTokenTTL, s.JWTSecret)
	if err != nil {
		l.Error("login_failed", "status", 500, "reason", "cannot sign token", "error", err)
		return "", err
	}

	l.Info("login_successful")
	return token, nil
}
