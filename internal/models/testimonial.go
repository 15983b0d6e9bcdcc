package models

import (
	"time"
)

// Testimonial is a client quote. Unlike the other content resources it has
// no uniqueness constraint and can be submitted anonymously through the
// public form.
type Testimonial struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	AuthorName string    `gorm:"default:Anonyme" json:"author_name"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Rating     int       `json:"rating"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
