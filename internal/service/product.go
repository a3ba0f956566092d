package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"brandhub/internal/apperr"
	"brandhub/internal/events"
	"brandhub/internal/identity"
	"brandhub/internal/logging"
	"brandhub/internal/models"
	"brandhub/internal/policy"
	"brandhub/internal/repo"
	"brandhub/internal/search"
	"brandhub/internal/transport"
)

type ProductService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
	Indexer  *search.Indexer
	ES       *elasticsearch.Client
	ESIndex  string
}

// List returns the brand's products, gated by the parent brand's visibility
// to the identity.
func (s *ProductService) List(ctx context.Context, ident *identity.Identity, brandID uuid.UUID) ([]models.Product, error) {
	if _, err := s.visibleBrand(ctx, ident, brandID); err != nil {
		return nil, err
	}
	return s.Repo.GetProductsByBrand(ctx, brandID)
}

// Search serves the same listing through elasticsearch when configured, with
// a plain SQL fallback otherwise. Visibility rules are identical to List.
func (s *ProductService) Search(ctx context.Context, ident *identity.Identity, brandID uuid.UUID, query string, offset, limit int) (int64, []models.Product, error) {
	if _, err := s.visibleBrand(ctx, ident, brandID); err != nil {
		return 0, nil, err
	}
	if s.ES != nil {
		return search.Search(ctx, s.ES, s.ESIndex, brandID, query, offset, limit)
	}
	return s.Repo.SearchProducts(ctx, brandID, query, offset, limit)
}

func (s *ProductService) Create(ctx context.Context, ident *identity.Identity, brandID uuid.UUID, req transport.CreateProductRequest, image []byte) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "product.create")

	brand, err := s.ownedBrand(ctx, ident, brandID)
	if err != nil {
		return nil, err
	}

	if err := validateProductFields(req.Title, req.DiscountRate); err != nil {
		l.Warn("product_create_failed", "status", 422, "reason", err.Error())
		return nil, err
	}

	// Advisory fast-fail; the (brand_id, title) unique index is the authority.
	if _, err := s.Repo.GetProductByTitle(ctx, brand.ID, req.Title); err == nil {
		l.Warn("product_create_failed", "status", 409, "reason", "title taken")
		return nil, apperr.Conflict("Product already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	product := models.Product{
		Title:        req.Title,
		Description:  req.Description,
		DiscountRate: req.DiscountRate,
		Image:        image,
		BrandID:      brand.ID,
	}
	if err := s.Repo.CreateProduct(ctx, &product); err != nil {
		return nil, err
	}

	s.afterMutation(ctx, l, "product_created", &product)
	l.Info("product_create_successful", "product_id", product.ID)
	return &product, nil
}

func (s *ProductService) Update(ctx context.Context, ident *identity.Identity, brandID uuid.UUID, title string, req transport.UpdateProductRequest) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "product.update")

	brand, err := s.ownedBrand(ctx, ident, brandID)
	if err != nil {
		return nil, err
	}

	product, err := s.productByTitle(ctx, brand.ID, title)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.DiscountRate != nil {
		product.DiscountRate = *req.DiscountRate
	}
	if err := validateProductFields(product.Title, product.DiscountRate); err != nil {
		l.Warn("product_update_failed", "status", 422, "reason", err.Error())
		return nil, err
	}

	if err := s.Repo.SaveProduct(ctx, product); err != nil {
		return nil, err
	}

	s.afterMutation(ctx, l, "product_updated", product)
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, ident *identity.Identity, brandID uuid.UUID, title string) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "product.delete")

	brand, err := s.ownedBrand(ctx, ident, brandID)
	if err != nil {
		return nil, err
	}

	product, err := s.productByTitle(ctx, brand.ID, title)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.DeleteProduct(ctx, product); err != nil {
		return nil, err
	}

	if err := s.Indexer.RemoveProduct(ctx, product.ID.String()); err != nil {
		l.Warn("search_deindex_failed", "product_id", product.ID, "error", err)
	}
	if err := s.Producer.Publish(ctx, product.ID.String(), map[string]any{
		"type":  "product_deleted",
		"id":    product.ID,
		"title": product.Title,
	}); err != nil {
		l.Warn("event_publish_failed", "event", "product_deleted", "error", err)
	}

	l.Info("product_delete_successful", "product_id", product.ID)
	return product, nil
}

func (s *ProductService) visibleBrand(ctx context.Context, ident *identity.Identity, brandID uuid.UUID) (*models.Brand, error) {
	brand, err := s.Repo.GetBrandByID(ctx, brandID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Brand not found")
		}
		return nil, err
	}
	if err := policy.AuthorizeView(ident, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *ProductService) ownedBrand(ctx context.Context, ident *identity.Identity, brandID uuid.UUID) (*models.Brand, error) {
	brand, err := s.Repo.GetBrandByIDForOwner(ctx, brandID, ident.User.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Brand not found")
		}
		return nil, err
	}
	return brand, nil
}

func (s *ProductService) productByTitle(ctx context.Context, brandID uuid.UUID, title string) (*models.Product, error) {
	product, err := s.Repo.GetProductByTitle(ctx, brandID, title)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Product not found")
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) afterMutation(ctx context.Context, l *slog.Logger, event string, product *models.Product) {
	if err := s.Indexer.IndexProduct(ctx, product); err != nil {
		l.Warn("search_index_failed", "product_id", product.ID, "error", err)
	}
	if err := s.Producer.Publish(ctx, product.ID.String(), map[string]any{
		"type":  event,
		"id":    product.ID,
		"title": product.Title,
	}); err != nil {
		l.Warn("event_publish_failed", "event", event, "error", err)
	}
}

func validateProductFields(title string, discountRate float64) error {
	if title == "" || len(title) > 128 {
		return apperr.Validation("title must be 1-128 characters")
	}
	if discountRate < 0 || discountRate > 1 {
		return apperr.Validation("discount_rate must be between 0 and 1")
	}
	return nil
}
