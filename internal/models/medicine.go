package models

import (
	"time"
)

// Medicine represents an item in the medicine inventory
type Medicine struct {
	BaseModel
	Name       string    `gorm:"size:255;not null" json:"name"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	ExpiryDate time.Time `json:"expiryDate"`
}
