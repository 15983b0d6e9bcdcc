package models

import (
	"time"
)

// Service represents a service offering (design, permits, supervision...).
// Price carries whatever the admin typed; there is no cross-field
// validation at this layer.
type Service struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"unique;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Icon        string    `json:"icon"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
