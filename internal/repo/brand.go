package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"brandhub/internal/apperr"
	"brandhub/internal/models"
)

func (r *GormRepo) GetBrandsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Brand, error) {
	var brands []models.Brand
	err := r.DB.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&brands).Error
	if err != nil {
		return nil, err
	}
	return brands, nil
}

// GetBrandByID looks the brand up without owner scoping. Callers that must
// hide other users' brands go through GetBrandByIDForOwner instead.
func (r *GormRepo) GetBrandByID(ctx context.Context, id uuid.UUID) (*models.Brand, error) {
	var brand models.Brand
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&brand).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *GormRepo) GetBrandByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*models.Brand, error) {
	var brand models.Brand
	err := r.DB.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&brand).Error
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *GormRepo) GetBrandByName(ctx context.Context, ownerID uuid.UUID, name string) (*models.Brand, error) {
	var brand models.Brand
	err := r.DB.WithContext(ctx).
		Where("owner_id = ? AND name = ?", ownerID, name).
		First(&brand).Error
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *GormRepo) CreateBrand(ctx context.Context, b *models.Brand) error {
	if err := r.DB.WithContext(ctx).Create(b).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("Brand already exists")
		}
		return err
	}
	return nil
}

func (r *GormRepo) SaveBrand(ctx context.Context, b *models.Brand) error {
	if err := r.DB.WithContext(ctx).Save(b).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("Brand already exists")
		}
		return err
	}
	return nil
}

// DeleteBrand removes the brand and its products. The association delete
// keeps sqlite tests honest even where the FK cascade is not enforced.
func (r *GormRepo) DeleteBrand(ctx context.Context, b *models.Brand) error {
	return r.DB.WithContext(ctx).Select(clause.Associations).Delete(b).Error
}
