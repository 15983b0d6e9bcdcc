package server

import (
	"strings"
	"time"

	"github.com/bkerti/lycka-siteweb-sub000/internal/middleware"
	"github.com/bkerti/lycka-siteweb-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetTestimonials handles GET /api/testimonials
func (s *Server) GetTestimonials(c *fiber.Ctx) error {
	testimonials, err := s.testimonialRepo.List(c.Context())
	if err != nil {
		return respondStorageError(c, "Testimonial", nil, err)
	}
	return c.JSON(testimonials)
}

// GetTestimonial handles GET /api/testimonials/:id
func (s *Server) GetTestimonial(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	testimonial, err := s.testimonialRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondStorageError(c, "Testimonial", id, err)
	}
	return c.JSON(testimonial)
}

// SubmitTestimonial handles POST /api/testimonials/submit, the public
// anonymous form. Same honeypot contract as blog comments.
func (s *Server) SubmitTestimonial(c *fiber.Ctx) error {
	var req struct {
		AuthorName string `json:"author_name"`
		Content    string `json:"content"`
		Rating     int    `json:"rating"`
		Subject    string `json:"subject"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if strings.TrimSpace(req.Content) == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Content is required"))
	}

	author := strings.TrimSpace(req.AuthorName)
	if author == "" {
		author = "Anonyme"
	}
	testimonial := &models.Testimonial{
		AuthorName: author,
		Content:    req.Content,
		Rating:     req.Rating,
	}

	if req.Subject != "" {
		middleware.SpamTrapped.WithLabelValues("testimonial").Inc()
		testimonial.ID = models.DecoyID()
		testimonial.CreatedAt = time.Now().UTC()
		return c.Status(fiber.StatusCreated).JSON(testimonial)
	}

	if err := s.testimonialRepo.Create(c.Context(), testimonial); err != nil {
		return respondStorageError(c, "Testimonial", nil, err)
	}
	return c.Status(fiber.StatusCreated).JSON(testimonial)
}

// CreateTestimonial handles POST /api/testimonials (admin)
func (s *Server) CreateTestimonial(c *fiber.Ctx) error {
	var req struct {
		AuthorName string `json:"author_name"`
		Content    string `json:"content"`
		Rating     int    `json:"rating"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Content == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Content is required"))
	}

	testimonial := &models.Testimonial{
		AuthorName: req.AuthorName,
		Content:    req.Content,
		Rating:     req.Rating,
	}
	if err := s.testimonialRepo.Create(c.Context(), testimonial); err != nil {
		return respondStorageError(c, "Testimonial", nil, err)
	}
	return c.Status(fiber.StatusCreated).JSON(testimonial)
}

// UpdateTestimonial handles PUT /api/testimonials/:id (admin)
func (s *Server) UpdateTestimonial(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		AuthorName *string `json:"author_name"`
		Content    *string `json:"content"`
		Rating     *int    `json:"rating"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	testimonial, err := s.testimonialRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondStorageError(c, "Testimonial", id, err)
	}

	if req.AuthorName != nil {
		testimonial.AuthorName = *req.AuthorName
	}
	if req.Content != nil {
		if *req.Content == "" {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Content cannot be empty"))
		}
		testimonial.Content = *req.Content
	}
	if req.Rating != nil {
		testimonial.Rating = *req.Rating
	}

	if err := s.testimonialRepo.Update(c.Context(), testimonial); err != nil {
		return respondStorageError(c, "Testimonial", id, err)
	}
	return c.JSON(testimonial)
}

// DeleteTestimonial handles DELETE /api/testimonials/:id (admin)
func (s *Server) DeleteTestimonial(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	rows, err := s.testimonialRepo.Delete(c.Context(), id)
	if err != nil {
		return respondStorageError(c, "Testimonial", id, err)
	}
	if rows == 0 {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Testimonial", id))
	}
	return c.SendStatus(fiber.StatusNoContent)
}
