package models

import (
	"time"
)

// Project represents a realized architecture project in the portfolio.
type Project struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"unique;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	// Year is free text on purpose; the client sends things like "2021-2023".
	Year      string    `json:"year"`
	Media     MediaList `gorm:"serializer:json" json:"media"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
