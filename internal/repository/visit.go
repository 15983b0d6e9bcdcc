package repository

import (
	"context"
	"time"

	"github.com/bkerti/lycka-siteweb-sub000/internal/models"

	"gorm.io/gorm"
)

// VisitRepository defines persistence operations for the append-only
// page-view log.
type VisitRepository interface {
	Create(ctx context.Context, visit *models.Visit) error
	// CountBuckets groups visits since the given instant by the trunc
	// unit ("hour", "day" or "month"). Truncation happens in UTC
	// regardless of the database server's timezone. The trunc unit only
	// ever comes from the analytics service's fixed enum, and it is
	// bound as a query parameter, never interpolated.
	CountBuckets(ctx context.Context, trunc string, since time.Time) ([]models.VisitBucket, error)
}

type visitRepository struct {
	db *gorm.DB
}

// NewVisitRepository creates a new VisitRepository
func NewVisitRepository(db *gorm.DB) VisitRepository {
	return &visitRepository{db: db}
}

func (r *visitRepository) Create(ctx context.Context, visit *models.Visit) error {
	return r.db.WithContext(ctx).Create(visit).Error
}

func (r *visitRepository) CountBuckets(ctx context.Context, trunc string, since time.Time) ([]models.VisitBucket, error) {
	var buckets []models.VisitBucket
	err := r.db.WithContext(ctx).Raw(
		`SELECT date_trunc(?, visited_at AT TIME ZONE 'UTC') AS bucket, count(*) AS count
		 FROM visits
		 WHERE visited_at >= ?
		 GROUP BY bucket
		 ORDER BY bucket`,
		trunc, since,
	).Scan(&buckets).Error
	return buckets, err
}
