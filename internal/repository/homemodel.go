package repository

import (
	"context"

	"github.com/bkerti/lycka-siteweb-sub000/internal/models"

	"gorm.io/gorm"
)

// HomeModelRepository defines persistence operations for house models.
type HomeModelRepository interface {
	Create(ctx context.Context, model *models.HomeModel) error
	GetByID(ctx context.Context, id uint) (*models.HomeModel, error)
	List(ctx context.Context) ([]*models.HomeModel, error)
	Update(ctx context.Context, model *models.HomeModel) error
	Delete(ctx context.Context, id uint) (int64, error)
}

type homeModelRepository struct {
	db *gorm.DB
}

// NewHomeModelRepository creates a new HomeModelRepository
func NewHomeModelRepository(db *gorm.DB) HomeModelRepository {
	return &homeModelRepository{db: db}
}

func (r *homeModelRepository) Create(ctx context.Context, model *models.HomeModel) error {
	return r.db.WithContext(ctx).Create(model).Error
}

func (r *homeModelRepository) GetByID(ctx context.Context, id uint) (*models.HomeModel, error) {
	var model models.HomeModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		return nil, err
	}
	return &model, nil
}

func (r *homeModelRepository) List(ctx context.Context) ([]*models.HomeModel, error) {
	var homeModels []*models.HomeModel
	err := r.db.WithContext(ctx).Order("name asc").Find(&homeModels).Error
	return homeModels, err
}

func (r *homeModelRepository) Update(ctx context.Context, model *models.HomeModel) error {
	return r.db.WithContext(ctx).Save(model).Error
}

func (r *homeModelRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.HomeModel{}, id)
	return res.RowsAffected, res.Error
}
