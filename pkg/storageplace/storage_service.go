package storageplace

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"myfridge-backend/domain"
	"myfridge-backend/entities"
)

// DefaultStoragePlaces are created for every new account so the mobile app
// has somewhere to put products right away.
var DefaultStoragePlaces = []string{"Fridge", "Freezer", "Pantry"}

type (
	StorageService interface {
		GetStoragePlaces(ctx context.Context, userID string) ([]domain.StoragePlaceResponse, error)
		CreateStoragePlace(ctx context.Context, req domain.CreateStoragePlaceRequest, userID string) (domain.StoragePlaceResponse, error)
		DeleteStoragePlace(ctx context.Context, id string, userID string) error
		BootstrapDefaults(ctx context.Context, userID string) error
	}

	storageService struct {
		storageRepository StorageRepository
	}
)

func NewStorageService(storageRepository StorageRepository) StorageService {
	return &storageService{storageRepository: storageRepository}
}

func (s *storageService) GetStoragePlaces(ctx context.Context, userID string) ([]domain.StoragePlaceResponse, error) {
	places, err := s.storageRepository.GetStoragePlaces(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.StoragePlaceResponse, 0, len(places))
	for _, place := range places {
		response = append(response, domain.StoragePlaceResponse{
			ID:   place.ID.String(),
			Name: place.Name,
		})
	}
	return response, nil
}

func (s *storageService) CreateStoragePlace(ctx context.Context, req domain.CreateStoragePlaceRequest, userID string) (domain.StoragePlaceResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.StoragePlaceResponse{}, domain.ErrParseUUID
	}

	place := &entities.StoragePlace{
		ID:     uuid.New(),
		UserID: userUUID,
		Name:   req.Name,
	}

	if err := s.storageRepository.CreateStoragePlace(ctx, place); err != nil {
		return domain.StoragePlaceResponse{}, err
	}

	return domain.StoragePlaceResponse{
		ID:   place.ID.String(),
		Name: place.Name,
	}, nil
}

func (s *storageService) DeleteStoragePlace(ctx context.Context, id string, userID string) error {
	place, err := s.storageRepository.GetStoragePlaceByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrStoragePlaceNotFound
		}
		return err
	}

	if place.UserID.String() != userID {
		return domain.ErrStoragePlaceNotFound
	}

	return s.storageRepository.DeleteStoragePlace(ctx, id)
}

func (s *storageService) BootstrapDefaults(ctx context.Context, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	places := make([]*entities.StoragePlace, 0, len(DefaultStoragePlaces))
	for _, name := range DefaultStoragePlaces {
		places = append(places, &entities.StoragePlace{
			ID:     uuid.New(),
			UserID: userUUID,
			Name:   name,
		})
	}

	return s.storageRepository.CreateStoragePlaces(ctx, places)
}
