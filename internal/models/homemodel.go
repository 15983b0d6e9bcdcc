package models

import (
	"time"
)

// HomeModel represents a catalog house model with its gallery.
type HomeModel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"unique;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `json:"price"`
	Area        string    `json:"area"`
	Bedrooms    int       `json:"bedrooms"`
	Media       MediaList `gorm:"serializer:json" json:"media"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
