package product

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"myfridge-backend/domain"
	"myfridge-backend/entities"
)

type fakeProductRepo struct {
	products     map[string]*entities.Product
	batchCalls   int
	createCalls  int
	softDeletes  []string
	hardDeletes  []string
	queriedPlans []QueryPlan
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entities.Product)}
}

func (f *fakeProductRepo) Query(_ context.Context, plan QueryPlan) ([]*entities.Product, error) {
	f.queriedPlans = append(f.queriedPlans, plan)
	var out []*entities.Product
	for _, p := range f.products {
		if !p.IsDeleted {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) GetProductByID(_ context.Context, id string, userID string) (*entities.Product, error) {
	p, ok := f.products[id]
	if !ok || p.UserID.String() != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeProductRepo) CreateProduct(_ context.Context, product *entities.Product) error {
	f.createCalls++
	f.products[product.ID.String()] = product
	return nil
}

func (f *fakeProductRepo) CreateProducts(_ context.Context, products []*entities.Product) error {
	f.batchCalls++
	for _, p := range products {
		f.products[p.ID.String()] = p
	}
	return nil
}

func (f *fakeProductRepo) UpdateProduct(_ context.Context, product *entities.Product) error {
	f.products[product.ID.String()] = product
	return nil
}

func (f *fakeProductRepo) DeleteProduct(_ context.Context, id string) error {
	f.hardDeletes = append(f.hardDeletes, id)
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) SoftDeleteProduct(_ context.Context, id string) error {
	f.softDeletes = append(f.softDeletes, id)
	if p, ok := f.products[id]; ok {
		p.IsDeleted = true
	}
	return nil
}

func (f *fakeProductRepo) GetProductsExpiringOn(_ context.Context, _ string) ([]*entities.Product, error) {
	return nil, nil
}

type fakeStorageRepo struct {
	places map[string]*entities.StoragePlace
}

func newFakeStorageRepo() *fakeStorageRepo {
	return &fakeStorageRepo{places: make(map[string]*entities.StoragePlace)}
}

func (f *fakeStorageRepo) CreateStoragePlace(_ context.Context, place *entities.StoragePlace) error {
	f.places[place.ID.String()] = place
	return nil
}

func (f *fakeStorageRepo) CreateStoragePlaces(_ context.Context, places []*entities.StoragePlace) error {
	for _, p := range places {
		f.places[p.ID.String()] = p
	}
	return nil
}

func (f *fakeStorageRepo) GetStoragePlaceByID(_ context.Context, id string) (*entities.StoragePlace, error) {
	p, ok := f.places[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeStorageRepo) GetStoragePlaces(_ context.Context, _ string) ([]*entities.StoragePlace, error) {
	return nil, nil
}

func (f *fakeStorageRepo) DeleteStoragePlace(_ context.Context, id string) error {
	delete(f.places, id)
	return nil
}

func seedProduct(repo *fakeProductRepo, userID uuid.UUID, favorite bool) *entities.Product {
	p := &entities.Product{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       "Milk",
		Quantity:   decimal.NewFromInt(1),
		Unit:       "l",
		IsFavorite: favorite,
	}
	repo.products[p.ID.String()] = p
	return p
}

func TestSmartDeleteFavoriteSoftDeletes(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, newFakeStorageRepo())

	userID := uuid.New()
	p := seedProduct(repo, userID, true)

	res, err := svc.SmartDeleteProduct(context.Background(), p.ID.String(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.DeleteModeSoft, res.Mode)

	// Record survives, flagged deleted.
	kept, ok := repo.products[p.ID.String()]
	require.True(t, ok)
	assert.True(t, kept.IsDeleted)
	assert.Empty(t, repo.hardDeletes)
}

func TestSmartDeleteNonFavoriteHardDeletes(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, newFakeStorageRepo())

	userID := uuid.New()
	p := seedProduct(repo, userID, false)

	res, err := svc.SmartDeleteProduct(context.Background(), p.ID.String(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.DeleteModeHard, res.Mode)

	_, ok := repo.products[p.ID.String()]
	assert.False(t, ok)
	assert.Empty(t, repo.softDeletes)
}

func TestSmartDeleteForeignProductNotFound(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, newFakeStorageRepo())

	p := seedProduct(repo, uuid.New(), false)

	_, err := svc.SmartDeleteProduct(context.Background(), p.ID.String(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestCreateProductRejectsForeignStoragePlace(t *testing.T) {
	repo := newFakeProductRepo()
	storageRepo := newFakeStorageRepo()
	svc := NewProductService(repo, storageRepo)

	owner := uuid.New()
	place := &entities.StoragePlace{ID: uuid.New(), UserID: owner, Name: "Fridge"}
	storageRepo.places[place.ID.String()] = place

	req := domain.CreateProductRequest{
		Name:           "Cheese",
		StoragePlaceID: place.ID.String(),
	}

	_, err := svc.CreateProduct(context.Background(), req, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrStoragePlaceNotOwned)

	// Rejected before any write.
	assert.Zero(t, repo.createCalls)
	assert.Empty(t, repo.products)
}

func TestCreateProductDefaults(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, newFakeStorageRepo())

	res, err := svc.CreateProduct(context.Background(), domain.CreateProductRequest{Name: "Eggs"}, uuid.NewString())
	require.NoError(t, err)

	assert.True(t, res.Quantity.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, "pcs", res.Unit)
	assert.Empty(t, res.ExpirationDate)
}

func TestCreateProductInvalidDate(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, newFakeStorageRepo())

	req := domain.CreateProductRequest{Name: "Ham", ExpirationDate: "13/01/2024"}
	_, err := svc.CreateProduct(context.Background(), req, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrInvalidExpirationDate)
	assert.Zero(t, repo.createCalls)
}

func TestCreateProductNegativeQuantity(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, newFakeStorageRepo())

	req := domain.CreateProductRequest{Name: "Ham", Quantity: decimal.NewFromInt(-2)}
	_, err := svc.CreateProduct(context.Background(), req, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNegativeQuantity)
}

func TestBatchCreateSingleWrite(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, newFakeStorageRepo())

	req := domain.BatchCreateProductsRequest{
		Items: []domain.CreateProductRequest{
			{Name: "Milk"},
			{Name: "Butter"},
			{Name: "Bread"},
		},
	}

	res, err := svc.CreateProductsBatch(context.Background(), req, uuid.NewString())
	require.NoError(t, err)

	assert.Len(t, res, 3)
	assert.Equal(t, 1, repo.batchCalls)
	assert.Zero(t, repo.createCalls)
}

func TestBatchCreateRejectedBeforeWrite(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, newFakeStorageRepo())

	req := domain.BatchCreateProductsRequest{
		Items: []domain.CreateProductRequest{
			{Name: "Milk"},
			{Name: "Butter", ExpirationDate: "not-a-date"},
		},
	}

	_, err := svc.CreateProductsBatch(context.Background(), req, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrInvalidExpirationDate)
	assert.Zero(t, repo.batchCalls)
	assert.Empty(t, repo.products)
}

func TestUpdateFavoriteTogglesFlag(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, newFakeStorageRepo())

	userID := uuid.New()
	p := seedProduct(repo, userID, false)

	require.NoError(t, svc.UpdateFavorite(context.Background(), p.ID.String(), true, userID.String()))
	assert.True(t, repo.products[p.ID.String()].IsFavorite)
}
