package service

import (
	"context"
	"errors"
	"net/mail"

	"gorm.io/gorm"

	"brandhub/internal/apperr"
	"brandhub/internal/events"
	"brandhub/internal/hash"
	"brandhub/internal/identity"
	"brandhub/internal/logging"
	"brandhub/internal/models"
	"brandhub/internal/repo"
	"brandhub/internal/transport"
)

type UserService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

// Register creates a user. The is_active/is_superuser inputs are honored only
// for superuser callers; anonymous callers get them silently stripped, and an
// authenticated non-superuser is rejected by the elevation check.
func (s *UserService) Register(ctx context.Context, ident *identity.Identity, req transport.CreateUserRequest) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "user.register")

	elevated, err := identity.RequireElevatedOptional(ident)
	if err != nil {
		l.Warn("register_failed", "status", 403, "reason", "elevated fields require superuser")
		return nil, err
	}

	if err := validateNewUser(req); err != nil {
		l.Warn("register_failed", "status", 422, "reason", err.Error())
		return nil, err
	}

	if _, err := s.Repo.GetUserByEmail(ctx, req.Email); err == nil {
		l.Warn("register_failed", "status", 409, "reason", "email taken")
		return nil, apperr.Conflict("Email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		l.Error("register_failed", "status", 500, "reason", "cannot hash password", "error", err)
		return nil, err
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: pwHash,
		Name:         req.Name,
		IsActive:     true,
		IsSuperuser:  false,
	}
	if elevated != nil {
		if req.IsActive != nil {
			user.IsActive = *req.IsActive
		}
		if req.IsSuperuser != nil {
			user.IsSuperuser = *req.IsSuperuser
		}
	}

	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		return nil, err
	}

	if err := s.Producer.Publish(ctx, user.ID.String(), map[string]any{
		"type":  "user_created",
		"id":    user.ID,
		"email": user.Email,
	}); err != nil {
		l.Warn("event_publish_failed", "event", "user_created", "error", err)
	}

	l.Info("register_successful", "user_id", user.ID)
	return &user, nil
}

func validateNewUser(req transport.CreateUserRequest) error {
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return apperr.Validation("invalid email address")
	}
	if req.Name == "" || len(req.Name) > 32 {
		return apperr.Validation("name must be 1-32 characters")
	}
	if len(req.Password) < 6 {
		return apperr.Validation("password must be at least 6 characters")
	}
	return nil
}
