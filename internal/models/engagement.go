package models

import (
	"time"
)

// MediaComment is a visitor comment on a gallery item. MediaID is the
// opaque id embedded in a resource's media array; there is deliberately no
// foreign key, the media may belong to any resource type.
type MediaComment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	MediaID    string    `gorm:"not null;index" json:"media_id"`
	AuthorName string    `gorm:"default:Anonyme" json:"author_name"`
	Content    string    `gorm:"type:text;not null" json:"comment_text"`
	CreatedAt  time.Time `json:"created_at"`
}

// MediaReaction is one reaction row on a gallery item. Every submission
// inserts a new row; nothing dedupes per visitor, so aggregated counts are
// inflatable by repeated calls.
type MediaReaction struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	MediaID      string    `gorm:"not null;index" json:"media_id"`
	ReactionType string    `gorm:"not null" json:"reaction_type"`
	CreatedAt    time.Time `json:"created_at"`
}

// MediaInteractions bundles everything known about one gallery item.
type MediaInteractions struct {
	Comments  []*MediaComment  `json:"comments"`
	Reactions map[string]int64 `json:"reactions"`
}
