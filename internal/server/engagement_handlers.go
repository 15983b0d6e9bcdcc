package server

import (
	"github.com/bkerti/lycka-siteweb-sub000/internal/middleware"
	"github.com/bkerti/lycka-siteweb-sub000/internal/models"
	"github.com/bkerti/lycka-siteweb-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateMediaComment handles POST /api/media/:mediaId/comments. Public;
// mediaId is the opaque id embedded in a resource's media array, nothing
// checks it points at real media.
func (s *Server) CreateMediaComment(c *fiber.Ctx) error {
	var req struct {
		AuthorName  string `json:"author_name"`
		CommentText string `json:"comment_text"`
		Subject     string `json:"subject"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, trapped, err := s.engagementService.AddComment(c.Context(), service.AddCommentInput{
		MediaID:     c.Params("mediaId"),
		AuthorName:  req.AuthorName,
		CommentText: req.CommentText,
		Honeypot:    req.Subject,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	if trapped {
		middleware.SpamTrapped.WithLabelValues("media_comment").Inc()
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetMediaComments handles GET /api/media/:mediaId/comments
func (s *Server) GetMediaComments(c *fiber.Ctx) error {
	comments, err := s.engagementService.ListComments(c.Context(), c.Params("mediaId"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(comments)
}

// DeleteMediaComment handles DELETE /api/media/comments/:commentId (admin)
func (s *Server) DeleteMediaComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	if err := s.engagementService.DeleteComment(c.Context(), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateMediaReaction handles POST /api/media/:mediaId/reactions
func (s *Server) CreateMediaReaction(c *fiber.Ctx) error {
	var req struct {
		ReactionType string `json:"reaction_type"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	reaction, err := s.engagementService.AddReaction(c.Context(), service.AddReactionInput{
		MediaID:      c.Params("mediaId"),
		ReactionType: req.ReactionType,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(reaction)
}

// GetMediaReactions handles GET /api/media/:mediaId/reactions
func (s *Server) GetMediaReactions(c *fiber.Ctx) error {
	counts, err := s.engagementService.CountReactions(c.Context(), c.Params("mediaId"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(counts)
}

// GetMediaInteractions handles GET /api/media/:mediaId/interactions
func (s *Server) GetMediaInteractions(c *fiber.Ctx) error {
	interactions, err := s.engagementService.GetInteractions(c.Context(), c.Params("mediaId"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(interactions)
}

// GetAllInteractions handles GET /api/media/interactions (admin). One big
// map for the dashboard; fine at this site's volume.
func (s *Server) GetAllInteractions(c *fiber.Ctx) error {
	all, err := s.engagementService.GetAllInteractions(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(all)
}
