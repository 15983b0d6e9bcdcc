package server

import (
	"github.com/bkerti/lycka-siteweb-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetServices handles GET /api/services
func (s *Server) GetServices(c *fiber.Ctx) error {
	services, err := s.serviceRepo.List(c.Context())
	if err != nil {
		return respondStorageError(c, "Service", nil, err)
	}
	return c.JSON(services)
}

// GetService handles GET /api/services/:id
func (s *Server) GetService(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	svc, err := s.serviceRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondStorageError(c, "Service", id, err)
	}
	return c.JSON(svc)
}

// CreateService handles POST /api/services (admin). Price passes through
// unchecked; negative values are the admin's problem.
func (s *Server) CreateService(c *fiber.Ctx) error {
	var req struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Icon        string  `json:"icon"`
		Price       float64 `json:"price"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Title == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Title is required"))
	}

	svc := &models.Service{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Price:       req.Price,
	}
	if err := s.serviceRepo.Create(c.Context(), svc); err != nil {
		return respondStorageError(c, "Service", nil, err)
	}
	return c.Status(fiber.StatusCreated).JSON(svc)
}

// UpdateService handles PUT /api/services/:id (admin)
func (s *Server) UpdateService(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title       *string  `json:"title"`
		Description *string  `json:"description"`
		Icon        *string  `json:"icon"`
		Price       *float64 `json:"price"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	svc, err := s.serviceRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondStorageError(c, "Service", id, err)
	}

	if req.Title != nil {
		if *req.Title == "" {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Title cannot be empty"))
		}
		svc.Title = *req.Title
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Icon != nil {
		svc.Icon = *req.Icon
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}

	if err := s.serviceRepo.Update(c.Context(), svc); err != nil {
		return respondStorageError(c, "Service", id, err)
	}
	return c.JSON(svc)
}

// DeleteService handles DELETE /api/services/:id (admin)
func (s *Server) DeleteService(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	rows, err := s.serviceRepo.Delete(c.Context(), id)
	if err != nil {
		return respondStorageError(c, "Service", id, err)
	}
	if rows == 0 {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Service", id))
	}
	return c.SendStatus(fiber.StatusNoContent)
}
