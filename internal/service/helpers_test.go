package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"brandhub/internal/identity"
	"brandhub/internal/models"
	"brandhub/internal/repo"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Brand{}, &models.Product{}))

	return &repo.GormRepo{DB: db}
}

func createUser(t *testing.T, r *repo.GormRepo, email string) *models.User {
	t.Helper()

	user := models.User{
		Email:        email,
		PasswordHash: "irrelevant",
		Name:         "test",
		IsActive:     true,
	}
	require.NoError(t, r.DB.Create(&user).Error)
	return &user
}

func createBrand(t *testing.T, r *repo.GormRepo, owner *models.User, name string, active bool, createdAt time.Time) *models.Brand {
	t.Helper()

	brand := models.Brand{
		Name:      name,
		Email:     "contact@" + name + ".example.com",
		IsActive:  active,
		OwnerID:   owner.ID,
		CreatedAt: createdAt,
	}
	require.NoError(t, r.DB.Create(&brand).Error)
	return &brand
}

func asIdentity(u *models.User) *identity.Identity {
	if u == nil {
		return nil
	}
	return &identity.Identity{User: u}
}
