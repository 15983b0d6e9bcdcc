package server

import (
	"github.com/bkerti/lycka-siteweb-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetProjects handles GET /api/projects. Public; fixed title ordering, the
// client filters by category browser-side.
func (s *Server) GetProjects(c *fiber.Ctx) error {
	projects, err := s.projectRepo.List(c.Context())
	if err != nil {
		return respondStorageError(c, "Project", nil, err)
	}
	return c.JSON(projects)
}

// GetProject handles GET /api/projects/:id
func (s *Server) GetProject(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	project, err := s.projectRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondStorageError(c, "Project", id, err)
	}
	return c.JSON(project)
}

// CreateProject handles POST /api/projects (admin)
func (s *Server) CreateProject(c *fiber.Ctx) error {
	var req struct {
		Title       string           `json:"title"`
		Description string           `json:"description"`
		Category    string           `json:"category"`
		Location    string           `json:"location"`
		Year        string           `json:"year"`
		Media       models.MediaList `json:"media"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Title == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Title is required"))
	}

	project := &models.Project{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		Year:        req.Year,
		Media:       req.Media,
	}
	if err := s.projectRepo.Create(c.Context(), project); err != nil {
		return respondStorageError(c, "Project", nil, err)
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

// UpdateProject handles PUT /api/projects/:id (admin). Only the fields
// present in the request body are written; omitted fields keep their
// stored values.
func (s *Server) UpdateProject(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title       *string           `json:"title"`
		Description *string           `json:"description"`
		Category    *string           `json:"category"`
		Location    *string           `json:"location"`
		Year        *string           `json:"year"`
		Media       *models.MediaList `json:"media"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	project, err := s.projectRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondStorageError(c, "Project", id, err)
	}

	if req.Title != nil {
		if *req.Title == "" {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Title cannot be empty"))
		}
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Category != nil {
		project.Category = *req.Category
	}
	if req.Location != nil {
		project.Location = *req.Location
	}
	if req.Year != nil {
		project.Year = *req.Year
	}
	if req.Media != nil {
		project.Media = *req.Media
	}

	if err := s.projectRepo.Update(c.Context(), project); err != nil {
		return respondStorageError(c, "Project", id, err)
	}
	return c.JSON(project)
}

// DeleteProject handles DELETE /api/projects/:id (admin)
func (s *Server) DeleteProject(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	rows, err := s.projectRepo.Delete(c.Context(), id)
	if err != nil {
		return respondStorageError(c, "Project", id, err)
	}
	if rows == 0 {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Project", id))
	}
	return c.SendStatus(fiber.StatusNoContent)
}
