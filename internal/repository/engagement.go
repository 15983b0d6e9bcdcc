package repository

import (
	"context"

	"github.com/bkerti/lycka-siteweb-sub000/internal/models"

	"gorm.io/gorm"
)

// EngagementRepository defines persistence operations for media comments
// and reactions. MediaID is an opaque caller-supplied string with no
// referential integrity.
type EngagementRepository interface {
	CreateComment(ctx context.Context, comment *models.MediaComment) error
	ListComments(ctx context.Context, mediaID string) ([]*models.MediaComment, error)
	DeleteComment(ctx context.Context, id uint) (int64, error)

	CreateReaction(ctx context.Context, reaction *models.MediaReaction) error
	CountReactions(ctx context.Context, mediaID string) (map[string]int64, error)

	// ListAll scans every engagement row and groups it per media id.
	// O(all rows); acceptable only at this project's scale, used for the
	// admin dashboard.
	ListAll(ctx context.Context) (map[string]*models.MediaInteractions, error)
}

type engagementRepository struct {
	db *gorm.DB
}

// NewEngagementRepository creates a new EngagementRepository
func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

func (r *engagementRepository) CreateComment(ctx context.Context, comment *models.MediaComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *engagementRepository) ListComments(ctx context.Context, mediaID string) ([]*models.MediaComment, error) {
	var comments []*models.MediaComment
	err := r.db.WithContext(ctx).
		Where("media_id = ?", mediaID).
		Order("created_at desc").
		Find(&comments).Error
	return comments, err
}

func (r *engagementRepository) DeleteComment(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.MediaComment{}, id)
	return res.RowsAffected, res.Error
}

func (r *engagementRepository) CreateReaction(ctx context.Context, reaction *models.MediaReaction) error {
	return r.db.WithContext(ctx).Create(reaction).Error
}

type reactionCount struct {
	MediaID      string
	ReactionType string
	Count        int64
}

func (r *engagementRepository) CountReactions(ctx context.Context, mediaID string) (map[string]int64, error) {
	var rows []reactionCount
	err := r.db.WithContext(ctx).
		Model(&models.MediaReaction{}).
		Select("reaction_type, count(*) as count").
		Where("media_id = ?", mediaID).
		Group("reaction_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.ReactionType] = row.Count
	}
	return counts, nil
}

func (r *engagementRepository) ListAll(ctx context.Context) (map[string]*models.MediaInteractions, error) {
	var comments []*models.MediaComment
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&comments).Error; err != nil {
		return nil, err
	}

	var reactions []reactionCount
	err := r.db.WithContext(ctx).
		Model(&models.MediaReaction{}).
		Select("media_id, reaction_type, count(*) as count").
		Group("media_id, reaction_type").
		Scan(&reactions).Error
	if err != nil {
		return nil, err
	}

	result := make(map[string]*models.MediaInteractions)
	get := func(mediaID string) *models.MediaInteractions {
		if m, ok := result[mediaID]; ok {
			return m
		}
		m := &models.MediaInteractions{
			Comments:  []*models.MediaComment{},
			Reactions: map[string]int64{},
		}
		result[mediaID] = m
		return m
	}

	for _, comment := range comments {
		m := get(comment.MediaID)
		m.Comments = append(m.Comments, comment)
	}
	for _, row := range reactions {
		get(row.MediaID).Reactions[row.ReactionType] = row.Count
	}

	return result, nil
}
