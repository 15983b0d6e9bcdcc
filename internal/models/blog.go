package models

import (
	"time"
)

// BlogArticle represents a blog post. The table name is kept as lycka_blog
// for compatibility with the existing database.
type BlogArticle struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	Title     string        `gorm:"unique;not null" json:"title"`
	Content   string        `gorm:"type:text;not null" json:"content"`
	Author    string        `json:"author"`
	Media     MediaList     `gorm:"serializer:json" json:"media"`
	Comments  []BlogComment `gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// TableName keeps the legacy table name.
func (BlogArticle) TableName() string {
	return "lycka_blog"
}

// BlogComment is a reader comment on a blog article. This is the only real
// foreign key in the schema; comments are cascade-deleted with the article.
type BlogComment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ArticleID  uint      `gorm:"not null;index" json:"article_id"`
	AuthorName string    `gorm:"default:Anonyme" json:"author_name"`
	Content    string    `gorm:"type:text;not null" json:"comment_text"`
	CreatedAt  time.Time `json:"created_at"`
}
