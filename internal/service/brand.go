package service

import (
	"context"
	"errors"

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

type BrandService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
	Indexer  *search.Indexer
}

// List returns every brand the identity owns, newest first. The active flag
// is ignored here: owners always see all of their own brands.
func (s *BrandService) List(ctx context.Context, ident *identity.Identity) ([]models.Brand, error) {
	return s.Repo.GetBrandsByOwner(ctx, ident.User.ID)
}

// Get applies the visibility policy to a lookup that is not owner-scoped.
func (s *BrandService) Get(ctx context.Context, ident *identity.Identity, brandID uuid.UUID) (*models.Brand, error) {
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

func (s *BrandService) Create(ctx context.Context, ident *identity.Identity, req transport.CreateBrandRequest) (*models.Brand, error) {
	l := logging.FromContext(ctx).With("svc", "brand.create")

	if err := validateNewBrand(req); err != nil {
		l.Warn("brand_create_failed", "status", 422, "reason", err.Error())
		return nil, err
	}

	// Advisory fast-fail; the (owner_id, name) unique index is the authority.
	if _, err := s.Repo.GetBrandByName(ctx, ident.User.ID, req.Name); err == nil {
		l.Warn("brand_create_failed", "status", 409, "reason", "name taken")
		return nil, apperr.Conflict("Brand already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	brand := models.Brand{
		Name:        req.Name,
		About:       req.About,
		SocialMedia: req.SocialMedia,
		Website:     req.Website,
		Email:       req.Email,
		Phone:       req.Phone,
		IsActive:    true,
		OwnerID:     ident.User.ID,
	}
	if err := s.Repo.CreateBrand(ctx, &brand); err != nil {
		return nil, err
	}

	if err := s.Producer.Publish(ctx, brand.ID.String(), map[string]any{
		"type": "brand_created",
		"id":   brand.ID,
		"name": brand.Name,
	}); err != nil {
		l.Warn("event_publish_failed", "event", "brand_created", "error", err)
	}

	l.Info("brand_create_successful", "brand_id", brand.ID)
	return &brand, nil
}

func (s *BrandService) Update(ctx context.Context, ident *identity.Identity, brandID uuid.UUID, req transport.UpdateBrandRequest) (*models.Brand, error) {
	l := logging.FromContext(ctx).With("svc", "brand.update")

	brand, err := s.ownedBrand(ctx, ident, brandID)
	if err != nil {
		return nil, err
	}

	if req.About != nil {
		brand.About = *req.About
	}
	if req.SocialMedia != nil {
		brand.SocialMedia = *req.SocialMedia
	}
	if req.Website != nil {
		brand.Website = *req.Website
	}
	if req.Email != nil {
		brand.Email = *req.Email
	}
	if req.Phone != nil {
		brand.Phone = *req.Phone
	}
	if req.IsActive != nil {
		brand.IsActive = *req.IsActive
	}

	if err := s.Repo.SaveBrand(ctx, brand); err != nil {
		return nil, err
	}

	if err := s.Producer.Publish(ctx, brand.ID.String(), map[string]any{
		"type": "brand_updated",
		"id":   brand.ID,
		"name": brand.Name,
	}); err != nil {
		l.Warn("event_publish_failed", "event", "brand_updated", "error", err)
	}

	return brand, nil
}

func (s *BrandService) Delete(ctx context.Context, ident *identity.Identity, brandID uuid.UUID) (*models.Brand, error) {
	l := logging.FromContext(ctx).With("svc", "brand.delete")

	brand, err := s.ownedBrand(ctx, ident, brandID)
	if err != nil {
		return nil, err
	}

	products, err := s.Repo.GetProductsByBrand(ctx, brand.ID)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.DeleteBrand(ctx, brand); err != nil {
		return nil, err
	}

	for _, p := range products {
		if err := s.Indexer.RemoveProduct(ctx, p.ID.String()); err != nil {
			l.Warn("search_deindex_failed", "product_id", p.ID, "error", err)
		}
	}

	if err := s.Producer.Publish(ctx, brand.ID.String(), map[string]any{
		"type": "brand_deleted",
		"id":   brand.ID,
		"name": brand.Name,
	}); err != nil {
		l.Warn("event_publish_failed", "event", "brand_deleted", "error", err)
	}

	l.Info("brand_delete_successful", "brand_id", brand.ID)
	return brand, nil
}

// ownedBrand resolves a brand strictly within the caller's ownership scope.
// Another user's brand is indistinguishable from a missing one.
func (s *BrandService) ownedBrand(ctx context.Context, ident *identity.Identity, brandID uuid.UUID) (*models.Brand, error) {
	brand, err := s.Repo.GetBrandByIDForOwner(ctx, brandID, ident.User.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Brand not found")
		}
		return nil, err
	}
	return brand, nil
}

func validateNewBrand(req transport.CreateBrandRequest) error {
	if req.Name == "" || len(req.Name) > 64 {
		return apperr.Validation("name must be 1-64 characters")
	}
	if req.SocialMedia == "" && req.Website == "" && req.Email == "" && req.Phone == "" {
		return apperr.Validation("must contain at least one contact info")
	}
	return nil
}
