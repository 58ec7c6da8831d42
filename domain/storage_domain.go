package domain

import (
	"errors"
)

var (
	MessageSuccessGetStoragePlaces   = "storage places retrieved successfully"
	MessageSuccessCreateStoragePlace = "storage place created successfully"
	MessageSuccessDeleteStoragePlace = "storage place deleted successfully"

	MessageFailedGetStoragePlaces   = "failed to retrieve storage places"
	MessageFailedCreateStoragePlace = "failed to create storage place"
	MessageFailedDeleteStoragePlace = "failed to delete storage place"

	ErrStoragePlaceNotFound = errors.New("storage place not found")
	ErrStoragePlaceNotOwned = errors.New("storage place does not belong to user")
)

type (
	CreateStoragePlaceRequest struct {
		Name string `json:"name" validate:"required"`
	}

	StoragePlaceResponse struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
)
