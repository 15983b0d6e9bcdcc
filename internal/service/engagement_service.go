// Package service implements the application's business logic on top of
// the repository layer.
package service

import (
	"context"
	"strings"
	"time"

	"github.com/bkerti/lycka-siteweb-sub000/internal/models"
	"github.com/bkerti/lycka-siteweb-sub000/internal/repository"
)

// DefaultAuthorName is used when a public submission leaves the name blank.
const DefaultAuthorName = "Anonyme"

// EngagementService handles comments and reactions on gallery media.
type EngagementService struct {
	repo repository.EngagementRepository
}

// NewEngagementService creates a new EngagementService.
func NewEngagementService(repo repository.EngagementRepository) *EngagementService {
	return &EngagementService{repo: repo}
}

// AddCommentInput carries one public comment submission. Honeypot is the
// hidden "subject" form field; humans leave it empty, bots fill it.
type AddCommentInput struct {
	MediaID     string
	AuthorName  string
	CommentText string
	Honeypot    string
}

const maxCommentLen = 10000

// AddComment stores a visitor comment. When the honeypot field is filled
// the comment is NOT persisted but the returned value still looks like a
// stored comment; the second return value reports whether the submission
// was trapped.
func (s *EngagementService) AddComment(ctx context.Context, in AddCommentInput) (*models.MediaComment, bool, error) {
	if strings.TrimSpace(in.MediaID) == "" {
		return nil, false, models.NewValidationError("Media ID is required")
	}
	if strings.TrimSpace(in.CommentText) == "" {
		return nil, false, models.NewValidationError("Comment text is required")
	}
	if len(in.CommentText) > maxCommentLen {
		return nil, false, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	author := strings.TrimSpace(in.AuthorName)
	if author == "" {
		author = DefaultAuthorName
	}

	comment := &models.MediaComment{
		MediaID:    in.MediaID,
		AuthorName: author,
		Content:    in.CommentText,
	}

	// Spam trap: respond as if the comment was stored, write nothing.
	// The fake row carries a plausible id so the trap stays invisible.
	if in.Honeypot != "" {
		comment.ID = models.DecoyID()
		comment.CreatedAt = time.Now().UTC()
		return comment, true, nil
	}

	if err := s.repo.CreateComment(ctx, comment); err != nil {
		return nil, false, err
	}
	return comment, false, nil
}

// ListComments returns all comments on a media item, newest first.
func (s *EngagementService) ListComments(ctx context.Context, mediaID string) ([]*models.MediaComment, error) {
	comments, err := s.repo.ListComments(ctx, mediaID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []*models.MediaComment{}
	}
	return comments, nil
}

// DeleteComment removes a comment by id; admin only at the route level.
func (s *EngagementService) DeleteComment(ctx context.Context, id uint) error {
	rows, err := s.repo.DeleteComment(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.NewNotFoundError("Comment", id)
	}
	return nil
}

// AddReactionInput carries one public reaction submission.
type AddReactionInput struct {
	MediaID      string
	ReactionType string
}

// AddReaction inserts one reaction row. The reaction type is not validated
// against any enum and nothing dedupes per visitor; repeated calls inflate
// the counts. The client treats its own toggle state as cosmetic.
func (s *EngagementService) AddReaction(ctx context.Context, in AddReactionInput) (*models.MediaReaction, error) {
	if strings.TrimSpace(in.MediaID) == "" {
		return nil, models.NewValidationError("Media ID is required")
	}
	if strings.TrimSpace(in.ReactionType) == "" {
		return nil, models.NewValidationError("Reaction type is required")
	}

	reaction := &models.MediaReaction{
		MediaID:      in.MediaID,
		ReactionType: in.ReactionType,
	}
	if err := s.repo.CreateReaction(ctx, reaction); err != nil {
		return nil, err
	}
	return reaction, nil
}

// CountReactions returns reaction counts per type for a media item.
func (s *EngagementService) CountReactions(ctx context.Context, mediaID string) (map[string]int64, error) {
	counts, err := s.repo.CountReactions(ctx, mediaID)
	if err != nil {
		return nil, err
	}
	if counts == nil {
		counts = map[string]int64{}
	}
	return counts, nil
}

// GetInteractions bundles comments and reaction counts for one media item.
func (s *EngagementService) GetInteractions(ctx context.Context, mediaID string) (*models.MediaInteractions, error) {
	comments, err := s.ListComments(ctx, mediaID)
	if err != nil {
		return nil, err
	}
	reactions, err := s.CountReactions(ctx, mediaID)
	if err != nil {
		return nil, err
	}
	return &models.MediaInteractions{
		Comments:  comments,
		Reactions: reactions,
	}, nil
}

// GetAllInteractions returns the full media id to interactions map for
// the admin dashboard.
func (s *EngagementService) GetAllInteractions(ctx context.Context) (map[string]*models.MediaInteractions, error) {
	return s.repo.ListAll(ctx)
}
