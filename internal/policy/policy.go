// Package policy decides which brands and products an identity may see or
// change. Every rule keys off the brand's is_active flag and its owner, never
// the owner's own active flag.
package policy

import (
	"github.com/google/uuid"

	"brandhub/internal/apperr"
	"brandhub/internal/identity"
	"brandhub/internal/models"
)

// CanViewBrand reports whether the brand is visible to the identity: active
// brands are public, inactive ones are owner-only.
func CanViewBrand(id *identity.Identity, b *models.Brand) bool {
	if b.IsActive {
		return true
	}
	return id != nil && id.User != nil && id.User.ID == b.OwnerID
}

// CanViewProductsOf mirrors CanViewBrand: product visibility is derived
// entirely from the parent brand.
func CanViewProductsOf(id *identity.Identity, b *models.Brand) bool {
	return CanViewBrand(id, b)
}

// CanMutate reports whether the identity owns the brand. Superuser status
// does not bypass ownership here.
func CanMutate(id *identity.Identity, ownerID uuid.UUID) bool {
	return id != nil && id.User != nil && id.User.ID == ownerID
}

// AuthorizeView translates an invisible brand into the right rejection:
// anonymous callers get 403, authenticated non-owners get 404 so that the
// brand's existence is not confirmed.
func AuthorizeView(id *identity.Identity, b *models.Brand) error {
	if CanViewBrand(id, b) {
		return nil
	}
	if id == nil || id.User == nil {
		return apperr.Authorization("Inactive brand")
	}
	return apperr.NotFound("Brand not found")
}
