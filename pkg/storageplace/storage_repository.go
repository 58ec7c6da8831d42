package storageplace

import (
	"context"

	"gorm.io/gorm"

	"myfridge-backend/entities"
)

type (
	StorageRepository interface {
		CreateStoragePlace(ctx context.Context, place *entities.StoragePlace) error
		CreateStoragePlaces(ctx context.Context, places []*entities.StoragePlace) error
		GetStoragePlaceByID(ctx context.Context, id string) (*entities.StoragePlace, error)
		GetStoragePlaces(ctx context.Context, userID string) ([]*entities.StoragePlace, error)
		DeleteStoragePlace(ctx context.Context, id string) error
	}

	storageRepository struct {
		db *gorm.DB
	}
)

func NewStorageRepository(db *gorm.DB) StorageRepository {
	return &storageRepository{db: db}
}

func (r *storageRepository) CreateStoragePlace(ctx context.Context, place *entities.StoragePlace) error {
	return r.db.WithContext(ctx).Create(place).Error
}

func (r *storageRepository) CreateStoragePlaces(ctx context.Context, places []*entities.StoragePlace) error {
	return r.db.WithContext(ctx).Create(places).Error
}

func (r *storageRepository) GetStoragePlaceByID(ctx context.Context, id string) (*entities.StoragePlace, error) {
	var place entities.StoragePlace
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&place).Error; err != nil {
		return nil, err
	}
	return &place, nil
}

func (r *storageRepository) GetStoragePlaces(ctx context.Context, userID string) ([]*entities.StoragePlace, error) {
	var places []*entities.StoragePlace
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&places).Error; err != nil {
		return nil, err
	}
	return places, nil
}

func (r *storageRepository) DeleteStoragePlace(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.StoragePlace{}).Error
}
