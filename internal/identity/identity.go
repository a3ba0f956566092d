package identity

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"brandhub/internal/apperr"
	"brandhub/internal/models"
	"brandhub/internal/repo"
	"brandhub/internal/tokens"
)

// Identity is the resolved actor behind a request. A nil *Identity means
// anonymous.
type Identity struct {
	User *models.User
}

func (id *Identity) IsSuperuser() bool {
	return id != nil && id.User != nil && id.User.IsSuperuser
}

type Resolver struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
}

// Resolve turns an optional bearer token into an optional identity. An empty
// token is anonymous, never an error. A token whose subject no longer exists
// is rejected as 401: the credential is stale, not the resource missing.
func (r *Resolver) Resolve(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, nil
	}

	claims, err := tokens.ClaimsFromToken(token, r.JWTSecret)
	if err != nil {
		return nil, apperr.Authentication("Invalid or expired token")
	}
	if claims.Type != tokens.TypeAccess {
		return nil, apperr.Authentication("Invalid token type")
	}

	user, err := r.Repo.GetUserByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Authentication("User not found")
		}
		return nil, err
	}

	return &Identity{User: user}, nil
}

// Require escalates an optional identity to a required one.
func Require(id *Identity) (*Identity, error) {
	if id == nil || id.User == nil {
		return nil, apperr.Authentication("Not authenticated")
	}
	return id, nil
}

// RequireElevatedOptional passes anonymous callers through unchanged and
// rejects authenticated callers without superuser privilege.
func RequireElevatedOptional(id *Identity) (*Identity, error) {
	if id == nil || id.User == nil {
		return nil, nil
	}
	if !id.User.IsSuperuser {
		return nil, apperr.Authorization("The user doesn't have enough privileges")
	}
	return id, nil
}
