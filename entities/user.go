package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email     string    `gorm:"uniqueIndex" json:"email"`
	Password  string    `json:"-"`
	PushToken string    `json:"push_token,omitempty"`

	Products      []*Product      `gorm:"foreignKey:UserID"`
	StoragePlaces []*StoragePlace `gorm:"foreignKey:UserID"`
	Timestamp
}
