package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandhub/internal/apperr"
	"brandhub/internal/models"
	"brandhub/internal/transport"
)

func newBrandService(t *testing.T) *BrandService {
	t.Helper()
	return &BrandService{Repo: newTestRepo(t)}
}

func TestBrandService_List_OwnerSeesInactiveNewestFirst(t *testing.T) {
	t.Parallel()

	svc := newBrandService(t)
	owner := createUser(t, svc.Repo, "alice@example.com")
	other := createUser(t, svc.Repo, "bob@example.com")

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	createBrand(t, svc.Repo, owner, "oldest", true, base)
	createBrand(t, svc.Repo, owner, "hidden", false, base.Add(time.Hour))
	createBrand(t, svc.Repo, owner, "newest", true, base.Add(2*time.Hour))
	createBrand(t, svc.Repo, other, "foreign", true, base.Add(3*time.Hour))

	brands, err := svc.List(context.Background(), asIdentity(owner))
	require.NoError(t, err)
	require.Len(t, brands, 3)
	assert.Equal(t, "newest", brands[0].Name)
	assert.Equal(t, "hidden", brands[1].Name)
	assert.Equal(t, "oldest", brands[2].Name)
}

func TestBrandService_Create(t *testing.T) {
	t.Parallel()

	svc := newBrandService(t)
	owner := createUser(t, svc.Repo, "alice@example.com")

	brand, err := svc.Create(context.Background(), asIdentity(owner), transport.CreateBrandRequest{
		Name:  "Acme",
		Email: "a@acme.com",
	})
	require.NoError(t, err)
	assert.True(t, brand.IsActive)
	assert.Equal(t, owner.ID, brand.OwnerID)
	assert.NotEqual(t, uuid.Nil, brand.ID)
}

func TestBrandService_Create_RequiresContactInfo(t *testing.T) {
	t.Parallel()

	svc := newBrandService(t)
	owner := createUser(t, svc.Repo, "alice@example.com")

	_, err := svc.Create(context.Background(), asIdentity(owner), transport.CreateBrandRequest{
		Name:  "Acme",
		About: "contactless",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperr.StatusOf(err))

	// Nothing reached storage.
	var count int64
	require.NoError(t, svc.Repo.DB.Model(&models.Brand{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestBrandService_Create_DuplicateNamePerOwner(t *testing.T) {
	t.Parallel()

	svc := newBrandService(t)
	alice := createUser(t, svc.Repo, "alice@example.com")
	bob := createUser(t, svc.Repo, "bob@example.com")

	req := transport.CreateBrandRequest{Name: "Acme", Email: "a@acme.com"}

	_, err := svc.Create(context.Background(), asIdentity(alice), req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), asIdentity(alice), req)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperr.StatusOf(err))

	// Same name under a different owner is fine.
	_, err = svc.Create(context.Background(), asIdentity(bob), req)
	require.NoError(t, err)
}

func TestBrandService_Get_VisibilityMatrix(t *testing.T) {
	t.Parallel()

	svc := newBrandService(t)
	owner := createUser(t, svc.Repo, "alice@example.com")
	other := createUser(t, svc.Repo, "bob@example.com")
	inactive := createBrand(t, svc.Repo, owner, "hidden", false, time.Now().UTC())

	ctx := context.Background()

	_, err := svc.Get(ctx, nil, inactive.ID)
	assert.Equal(t, http.StatusForbidden, apperr.StatusOf(err))

	_, err = svc.Get(ctx, asIdentity(other), inactive.ID)
	assert.Equal(t, http.StatusNotFound, apperr.StatusOf(err))

	got, err := svc.Get(ctx, asIdentity(owner), inactive.ID)
	require.NoError(t, err)
	assert.Equal(t, inactive.ID, got.ID)

	_, err = svc.Get(ctx, nil, uuid.New())
	assert.Equal(t, http.StatusNotFound, apperr.StatusOf(err))
}

func TestBrandService_Update_HidesForeignBrands(t *testing.T) {
	t.Parallel()

	svc := newBrandService(t)
	owner := createUser(t, svc.Repo, "alice@example.com")
	other := createUser(t, svc.Repo, "bob@example.com")
	brand := createBrand(t, svc.Repo, owner, "Acme", true, time.Now().UTC())

	inactive := false
	_, err := svc.Update(context.Background(), asIdentity(other), brand.ID, transport.UpdateBrandRequest{
		IsActive: &inactive,
	})
	require.Error(t, err)
	// Non-owners must not learn the brand exists.
	assert.Equal(t, http.StatusNotFound, apperr.StatusOf(err))

	got, err := svc.Update(context.Background(), asIdentity(owner), brand.ID, transport.UpdateBrandRequest{
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestBrandService_Delete_CascadesProducts(t *testing.T) {
	t.Parallel()

	svc := newBrandService(t)
	productSvc := &ProductService{Repo: svc.Repo}
	owner := createUser(t, svc.Repo, "alice@example.com")
	brand := createBrand(t, svc.Repo, owner, "Acme", true, time.Now().UTC())

	_, err := productSvc.Create(context.Background(), asIdentity(owner), brand.ID, transport.CreateProductRequest{
		Title:        "Widget",
		DiscountRate: 0.1,
	}, nil)
	require.NoError(t, err)

	deleted, err := svc.Delete(context.Background(), asIdentity(owner), brand.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", deleted.Name)

	products, err := svc.Repo.GetProductsByBrand(context.Background(), brand.ID)
	require.NoError(t, err)
	assert.Empty(t, products)
}
