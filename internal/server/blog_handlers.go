package server

import (
	"strings"
	"time"

	"github.com/bkerti/lycka-siteweb-sub000/internal/middleware"
	"github.com/bkerti/lycka-siteweb-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetBlogArticles handles GET /api/lycka-blog. Articles come back newest
// first without their comments; the detail endpoint preloads them.
func (s *Server) GetBlogArticles(c *fiber.Ctx) error {
	articles, err := s.blogRepo.List(c.Context())
	if err != nil {
		return respondStorageError(c, "Article", nil, err)
	}
	return c.JSON(articles)
}

// GetBlogArticle handles GET /api/lycka-blog/:id
func (s *Server) GetBlogArticle(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	article, err := s.blogRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondStorageError(c, "Article", id, err)
	}
	return c.JSON(article)
}

// CreateBlogArticle handles POST /api/lycka-blog (admin)
func (s *Server) CreateBlogArticle(c *fiber.Ctx) error {
	var req struct {
		Title   string           `json:"title"`
		Content string           `json:"content"`
		Author  string           `json:"author"`
		Media   models.MediaList `json:"media"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Title == "" || req.Content == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Title and content are required"))
	}

	article := &models.BlogArticle{
		Title:   req.Title,
		Content: req.Content,
		Author:  req.Author,
		Media:   req.Media,
	}
	if err := s.blogRepo.Create(c.Context(), article); err != nil {
		return respondStorageError(c, "Article", nil, err)
	}
	return c.Status(fiber.StatusCreated).JSON(article)
}

// UpdateBlogArticle handles PUT /api/lycka-blog/:id (admin)
func (s *Server) UpdateBlogArticle(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title   *string           `json:"title"`
		Content *string           `json:"content"`
		Author  *string           `json:"author"`
		Media   *models.MediaList `json:"media"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	article, err := s.blogRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondStorageError(c, "Article", id, err)
	}

	if req.Title != nil {
		if *req.Title == "" {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Title cannot be empty"))
		}
		article.Title = *req.Title
	}
	if req.Content != nil {
		if *req.Content == "" {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Content cannot be empty"))
		}
		article.Content = *req.Content
	}
	if req.Author != nil {
		article.Author = *req.Author
	}
	if req.Media != nil {
		article.Media = *req.Media
	}

	if err := s.blogRepo.Update(c.Context(), article); err != nil {
		return respondStorageError(c, "Article", id, err)
	}
	return c.JSON(article)
}

// DeleteBlogArticle handles DELETE /api/lycka-blog/:id (admin). Comments
// go with the article through the FK cascade.
func (s *Server) DeleteBlogArticle(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	rows, err := s.blogRepo.Delete(c.Context(), id)
	if err != nil {
		return respondStorageError(c, "Article", id, err)
	}
	if rows == 0 {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Article", id))
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetBlogComments handles GET /api/lycka-blog/:id/comments
func (s *Server) GetBlogComments(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	// 404 for comments on a nonexistent article.
	if _, err := s.blogRepo.GetByID(c.Context(), id); err != nil {
		return respondStorageError(c, "Article", id, err)
	}

	comments, err := s.blogRepo.ListComments(c.Context(), id)
	if err != nil {
		return respondStorageError(c, "Comment", nil, err)
	}
	if comments == nil {
		comments = []*models.BlogComment{}
	}
	return c.JSON(comments)
}

// CreateBlogComment handles POST /api/lycka-blog/:id/comments. Public
// anonymous form; the hidden "subject" field is a honeypot. A filled
// honeypot gets the normal success response with nothing written so the
// bot cannot tell it was caught.
func (s *Server) CreateBlogComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		AuthorName  string `json:"author_name"`
		CommentText string `json:"comment_text"`
		Subject     string `json:"subject"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if strings.TrimSpace(req.CommentText) == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Comment text is required"))
	}

	if _, err := s.blogRepo.GetByID(c.Context(), id); err != nil {
		return respondStorageError(c, "Article", id, err)
	}

	author := strings.TrimSpace(req.AuthorName)
	if author == "" {
		author = "Anonyme"
	}
	comment := &models.BlogComment{
		ArticleID:  id,
		AuthorName: author,
		Content:    req.CommentText,
	}

	if req.Subject != "" {
		middleware.SpamTrapped.WithLabelValues("blog_comment").Inc()
		comment.ID = models.DecoyID()
		comment.CreatedAt = time.Now().UTC()
		return c.Status(fiber.StatusCreated).JSON(comment)
	}

	if err := s.blogRepo.CreateComment(c.Context(), comment); err != nil {
		return respondStorageError(c, "Comment", nil, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// DeleteBlogComment handles DELETE /api/lycka-blog/comments/:commentId (admin)
func (s *Server) DeleteBlogComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	rows, err := s.blogRepo.DeleteComment(c.Context(), id)
	if err != nil {
		return respondStorageError(c, "Comment", id, err)
	}
	if rows == 0 {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Comment", id))
	}
	return c.SendStatus(fiber.StatusNoContent)
}
