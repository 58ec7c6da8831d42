package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID       `json:"user_id"`
	StoragePlaceID *uuid.UUID      `json:"storage_place_id,omitempty"`
	Name           string          `json:"name"`
	Quantity       decimal.Decimal `gorm:"type:numeric(12,3)" json:"quantity"`
	Unit           string          `json:"unit"`
	ExpirationDate *time.Time      `gorm:"type:date" json:"expiration_date,omitempty"`
	IsFavorite     bool            `json:"is_favorite"`
	IsDeleted      bool            `json:"is_deleted"`

	User         *User         `gorm:"foreignKey:UserID"`
	StoragePlace *StoragePlace `gorm:"foreignKey:StoragePlaceID"`
	Timestamp
}
