package repository

import (
	"context"

	"github.com/bkerti/lycka-siteweb-sub000/internal/models"

	"gorm.io/gorm"
)

// BlogRepository defines persistence operations for blog articles and
// their comments. Comments ride on the article's foreign key and are
// cascade-deleted with it.
type BlogRepository interface {
	Create(ctx context.Context, article *models.BlogArticle) error
	GetByID(ctx context.Context, id uint) (*models.BlogArticle, error)
	// List returns articles newest first, without comments preloaded.
	List(ctx context.Context) ([]*models.BlogArticle, error)
	Update(ctx context.Context, article *models.BlogArticle) error
	Delete(ctx context.Context, id uint) (int64, error)

	CreateComment(ctx context.Context, comment *models.BlogComment) error
	ListComments(ctx context.Context, articleID uint) ([]*models.BlogComment, error)
	DeleteComment(ctx context.Context, id uint) (int64, error)
}

type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a new BlogRepository
func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(ctx context.Context, article *models.BlogArticle) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *blogRepository) GetByID(ctx context.Context, id uint) (*models.BlogArticle, error) {
	var article models.BlogArticle
	err := r.db.WithContext(ctx).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at desc")
		}).
		First(&article, id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *blogRepository) List(ctx context.Context) ([]*models.BlogArticle, error) {
	var articles []*models.BlogArticle
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&articles).Error
	return articles, err
}

func (r *blogRepository) Update(ctx context.Context, article *models.BlogArticle) error {
	return r.db.WithContext(ctx).Save(article).Error
}

func (r *blogRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.BlogArticle{}, id)
	return res.RowsAffected, res.Error
}

func (r *blogRepository) CreateComment(ctx context.Context, comment *models.BlogComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *blogRepository) ListComments(ctx context.Context, articleID uint) ([]*models.BlogComment, error) {
	var comments []*models.BlogComment
	err := r.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("created_at desc").
		Find(&comments).Error
	return comments, err
}

func (r *blogRepository) DeleteComment(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.BlogComment{}, id)
	return res.RowsAffected, res.Error
}
