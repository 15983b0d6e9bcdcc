package service

import (
	"context"
	"testing"

	"github.com/bkerti/lycka-siteweb-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockEngagementRepository is a mock of the EngagementRepository interface
type MockEngagementRepository struct {
	mock.Mock
}

func (m *MockEngagementRepository) CreateComment(ctx context.Context, comment *models.MediaComment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockEngagementRepository) ListComments(ctx context.Context, mediaID string) ([]*models.MediaComment, error) {
	args := m.Called(ctx, mediaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MediaComment), args.Error(1)
}

func (m *MockEngagementRepository) DeleteComment(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEngagementRepository) CreateReaction(ctx context.Context, reaction *models.MediaReaction) error {
	args := m.Called(ctx, reaction)
	return args.Error(0)
}

func (m *MockEngagementRepository) CountReactions(ctx context.Context, mediaID string) (map[string]int64, error) {
	args := m.Called(ctx, mediaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockEngagementRepository) ListAll(ctx context.Context) (map[string]*models.MediaInteractions, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]*models.MediaInteractions), args.Error(1)
}

func TestAddComment_PersistsWithDefaults(t *testing.T) {
	repo := new(MockEngagementRepository)
	repo.On("CreateComment", mock.Anything, mock.Anything).Return(nil)
	s := NewEngagementService(repo)

	comment, trapped, err := s.AddComment(context.Background(), AddCommentInput{
		MediaID:     "media-42",
		CommentText: "Magnifique projet",
	})
	require.NoError(t, err)
	assert.False(t, trapped)
	assert.Equal(t, "Anonyme", comment.AuthorName)
	assert.Equal(t, "media-42", comment.MediaID)
	repo.AssertCalled(t, "CreateComment", mock.Anything, mock.Anything)
}

func TestAddComment_HoneypotSkipsWrite(t *testing.T) {
	repo := new(MockEngagementRepository)
	s := NewEngagementService(repo)

	comment, trapped, err := s.AddComment(context.Background(), AddCommentInput{
		MediaID:     "media-42",
		AuthorName:  "bot",
		CommentText: "buy things",
		Honeypot:    "re: your site",
	})
	require.NoError(t, err)
	assert.True(t, trapped)
	require.NotNil(t, comment)
	assert.Equal(t, "buy things", comment.Content)
	assert.NotZero(t, comment.ID)
	assert.False(t, comment.CreatedAt.IsZero())
	repo.AssertNotCalled(t, "CreateComment", mock.Anything, mock.Anything)
}

func TestAddComment_Validation(t *testing.T) {
	repo := new(MockEngagementRepository)
	s := NewEngagementService(repo)

	_, _, err := s.AddComment(context.Background(), AddCommentInput{MediaID: "m", CommentText: "   "})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

	_, _, err = s.AddComment(context.Background(), AddCommentInput{CommentText: "hello"})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestDeleteComment_NotFound(t *testing.T) {
	repo := new(MockEngagementRepository)
	repo.On("DeleteComment", mock.Anything, uint(7)).Return(int64(0), nil)
	s := NewEngagementService(repo)

	err := s.DeleteComment(context.Background(), 7)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestAddReaction_AnyTypeAccepted(t *testing.T) {
	repo := new(MockEngagementRepository)
	repo.On("CreateReaction", mock.Anything, mock.Anything).Return(nil)
	s := NewEngagementService(repo)

	reaction, err := s.AddReaction(context.Background(), AddReactionInput{
		MediaID:      "media-1",
		ReactionType: "banana",
	})
	require.NoError(t, err)
	assert.Equal(t, "banana", reaction.ReactionType)

	_, err = s.AddReaction(context.Background(), AddReactionInput{MediaID: "media-1"})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestGetInteractions_EmptyCollectionsNotNil(t *testing.T) {
	repo := new(MockEngagementRepository)
	repo.On("ListComments", mock.Anything, "media-9").Return(nil, nil)
	repo.On("CountReactions", mock.Anything, "media-9").Return(nil, nil)
	s := NewEngagementService(repo)

	interactions, err := s.GetInteractions(context.Background(), "media-9")
	require.NoError(t, err)
	assert.NotNil(t, interactions.Comments)
	assert.Empty(t, interactions.Comments)
	assert.NotNil(t, interactions.Reactions)
	assert.Empty(t, interactions.Reactions)
}
