package storageplace

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"myfridge-backend/domain"
	"myfridge-backend/entities"
)

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

func (f *fakeStorageRepo) GetStoragePlaces(_ context.Context, userID string) ([]*entities.StoragePlace, error) {
	var out []*entities.StoragePlace
	for _, p := range f.places {
		if p.UserID.String() == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeStorageRepo) DeleteStoragePlace(_ context.Context, id string) error {
	delete(f.places, id)
	return nil
}

func TestBootstrapDefaults(t *testing.T) {
	repo := newFakeStorageRepo()
	svc := NewStorageService(repo)

	userID := uuid.NewString()
	require.NoError(t, svc.BootstrapDefaults(context.Background(), userID))

	places, err := svc.GetStoragePlaces(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, places, 3)

	names := make(map[string]bool)
	for _, p := range places {
		names[p.Name] = true
	}
	assert.True(t, names["Fridge"])
	assert.True(t, names["Freezer"])
	assert.True(t, names["Pantry"])
}

func TestDeleteStoragePlaceOwnership(t *testing.T) {
	repo := newFakeStorageRepo()
	svc := NewStorageService(repo)

	owner := uuid.New()
	place := &entities.StoragePlace{ID: uuid.New(), UserID: owner, Name: "Cellar"}
	repo.places[place.ID.String()] = place

	// Foreign user sees not-found, not forbidden; existence stays hidden.
	err := svc.DeleteStoragePlace(context.Background(), place.ID.String(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrStoragePlaceNotFound)
	assert.Contains(t, repo.places, place.ID.String())

	require.NoError(t, svc.DeleteStoragePlace(context.Background(), place.ID.String(), owner.String()))
	assert.NotContains(t, repo.places, place.ID.String())
}

func TestDeleteStoragePlaceMissing(t *testing.T) {
	svc := NewStorageService(newFakeStorageRepo())

	err := svc.DeleteStoragePlace(context.Background(), uuid.NewString(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrStoragePlaceNotFound)
}
