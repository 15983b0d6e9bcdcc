package server

import (
	"github.com/bkerti/lycka-siteweb-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetHomeModels handles GET /api/homemodels
func (s *Server) GetHomeModels(c *fiber.Ctx) error {
	homeModels, err := s.homeModelRepo.List(c.Context())
	if err != nil {
		return respondStorageError(c, "Home model", nil, err)
	}
	return c.JSON(homeModels)
}

// GetHomeModel handles GET /api/homemodels/:id
func (s *Server) GetHomeModel(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	model, err := s.homeModelRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondStorageError(c, "Home model", id, err)
	}
	return c.JSON(model)
}

// CreateHomeModel handles POST /api/homemodels (admin)
func (s *Server) CreateHomeModel(c *fiber.Ctx) error {
	var req struct {
		Name        string           `json:"name"`
		Description string           `json:"description"`
		Price       float64          `json:"price"`
		Area        string           `json:"area"`
		Bedrooms    int              `json:"bedrooms"`
		Media       models.MediaList `json:"media"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Name == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name is required"))
	}

	model := &models.HomeModel{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Area:        req.Area,
		Bedrooms:    req.Bedrooms,
		Media:       req.Media,
	}
	if err := s.homeModelRepo.Create(c.Context(), model); err != nil {
		return respondStorageError(c, "Home model", nil, err)
	}
	return c.Status(fiber.StatusCreated).JSON(model)
}

// UpdateHomeModel handles PUT /api/homemodels/:id (admin)
func (s *Server) UpdateHomeModel(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Name        *string           `json:"name"`
		Description *string           `json:"description"`
		Price       *float64          `json:"price"`
		Area        *string           `json:"area"`
		Bedrooms    *int              `json:"bedrooms"`
		Media       *models.MediaList `json:"media"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	model, err := s.homeModelRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondStorageError(c, "Home model", id, err)
	}

	if req.Name != nil {
		if *req.Name == "" {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Name cannot be empty"))
		}
		model.Name = *req.Name
	}
	if req.Description != nil {
		model.Description = *req.Description
	}
	if req.Price != nil {
		model.Price = *req.Price
	}
	if req.Area != nil {
		model.Area = *req.Area
	}
	if req.Bedrooms != nil {
		model.Bedrooms = *req.Bedrooms
	}
	if req.Media != nil {
		model.Media = *req.Media
	}

	if err := s.homeModelRepo.Update(c.Context(), model); err != nil {
		return respondStorageError(c, "Home model", id, err)
	}
	return c.JSON(model)
}

// DeleteHomeModel handles DELETE /api/homemodels/:id (admin)
func (s *Server) DeleteHomeModel(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	rows, err := s.homeModelRepo.Delete(c.Context(), id)
	if err != nil {
		return respondStorageError(c, "Home model", id, err)
	}
	if rows == 0 {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Home model", id))
	}
	return c.SendStatus(fiber.StatusNoContent)
}
