package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"brandhub/internal/apperr"
	"brandhub/internal/models"
)

func (r *GormRepo) GetProductsByBrand(ctx context.Context, brandID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	err := r.DB.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormRepo) GetProductByTitle(ctx context.Context, brandID uuid.UUID, title string) (*models.Product, error) {
	var product models.Product
	err := r.DB.WithContext(ctx).
		Where("brand_id = ? AND title = ?", brandID, title).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, p *models.Product) error {
	if err := r.DB.WithContext(ctx).Create(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("Product already exists")
		}
		return err
	}
	return nil
}

func (r *GormRepo) SaveProduct(ctx context.Context, p *models.Product) error {
	if err := r.DB.WithContext(ctx).Save(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("Product already exists")
		}
		return err
	}
	return nil
}

func (r *GormRepo) DeleteProduct(ctx context.Context, p *models.Product) error {
	return r.DB.WithContext(ctx).Delete(p).Error
}

// SearchProducts is the fallback used when elasticsearch is not configured.
func (r *GormRepo) SearchProducts(ctx context.Context, brandID uuid.UUID, q string, offset, limit int) (int64, []models.Product, error) {
	pattern := "%" + q + "%"

	var total int64
	err := r.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("brand_id = ?", brandID).
		Where("title LIKE ? OR description LIKE ?", pattern, pattern).
		Count(&total).Error
	if err != nil {
		return 0, nil, err
	}

	items := make([]models.Product, 0, limit)
	err = r.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("brand_id = ?", brandID).
		Where("title LIKE ? OR description LIKE ?", pattern, pattern).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return 0, nil, err
	}

	return total, items, nil
}
