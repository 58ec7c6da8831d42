package entities

import (
	"github.com/google/uuid"
)

type StoragePlace struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`

	User     *User      `gorm:"foreignKey:UserID"`
	Products []*Product `gorm:"foreignKey:StoragePlaceID"`
	Timestamp
}
