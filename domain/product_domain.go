package domain

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	MessageSuccessGetProducts    = "products retrieved successfully"
	MessageSuccessGetProduct     = "product retrieved successfully"
	MessageSuccessCreateProduct  = "product created successfully"
	MessageSuccessCreateProducts = "products created successfully"
	MessageSuccessUpdateProduct  = "product updated successfully"
	MessageSuccessDeleteProduct  = "product deleted successfully"
	MessageSuccessUpdateFavorite = "favorite flag updated successfully"

	MessageFailedGetProducts    = "failed to retrieve products"
	MessageFailedGetProduct     = "failed to retrieve product"
	MessageFailedCreateProduct  = "failed to create product"
	MessageFailedCreateProducts = "failed to create products"
	MessageFailedUpdateProduct  = "failed to update product"
	MessageFailedDeleteProduct  = "failed to delete product"
	MessageFailedUpdateFavorite = "failed to update favorite flag"

	ErrProductNotFound       = errors.New("product not found")
	ErrInvalidExpirationDate = errors.New("invalid expiration date")
	ErrNegativeQuantity      = errors.New("quantity must not be negative")
)

// Smart-delete modes. Favorited products are soft-deleted so an accidental
// delete never loses them permanently; everything else is removed for real.
const (
	DeleteModeSoft = "soft"
	DeleteModeHard = "hard"
)

type (
	// ProductFilter carries one request's worth of list filtering. Nil
	// pointer fields mean "not filtered on". ExpiringInDays and
	// ExpirationCategory are mutually exclusive; days win when both are set.
	ProductFilter struct {
		SearchTerm         string
		IsFavorite         *bool
		StorageID          *uuid.UUID
		ExpiringInDays     *int
		ExpirationCategory string
		SortBy             string
		SortDescending     bool
	}

	CreateProductRequest struct {
		Name           string          `json:"name" validate:"required"`
		Quantity       decimal.Decimal `json:"quantity"`
		Unit           string          `json:"unit" validate:"omitempty"`
		ExpirationDate string          `json:"expiration_date" validate:"omitempty"`
		StoragePlaceID string          `json:"storage_place_id" validate:"omitempty,uuid"`
	}

	BatchCreateProductsRequest struct {
		Items []CreateProductRequest `json:"items" validate:"required,min=1,dive"`
	}

	UpdateProductRequest struct {
		Name           *string          `json:"name,omitempty"`
		Quantity       *decimal.Decimal `json:"quantity,omitempty"`
		Unit           *string          `json:"unit,omitempty"`
		ExpirationDate *string          `json:"expiration_date,omitempty"`
		StoragePlaceID *string          `json:"storage_place_id,omitempty" validate:"omitempty,uuid"`
		IsFavorite     *bool            `json:"is_favorite,omitempty"`
	}

	UpdateFavoriteRequest struct {
		IsFavorite *bool `json:"is_favorite" validate:"required"`
	}

	ProductResponse struct {
		ID                 string                `json:"id"`
		Name               string                `json:"name"`
		Quantity           decimal.Decimal       `json:"quantity"`
		Unit               string                `json:"unit"`
		ExpirationDate     string                `json:"expiration_date,omitempty"`
		ExpirationCategory string                `json:"expiration_category,omitempty"`
		IsFavorite         bool                  `json:"is_favorite"`
		StoragePlace       *StoragePlaceResponse `json:"storage_place,omitempty"`
		CreatedAt          string                `json:"created_at"`
	}

	SmartDeleteResponse struct {
		Mode string `json:"mode"`
	}
)
