package server

import (
	"github.com/bkerti/lycka-siteweb-sub000/internal/database"
	"github.com/bkerti/lycka-siteweb-sub000/internal/models"
	"github.com/bkerti/lycka-siteweb-sub000/internal/seed"

	"github.com/gofiber/fiber/v2"
)

// DevReset handles POST /api/dev/reset. Drops every table, re-migrates
// and restores the built-in admin. The route is only registered outside
// production; see SetupRoutes.
func (s *Server) DevReset(c *fiber.Ctx) error {
	if err := database.Reset(s.db); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	if err := seed.EnsureAdmin(c.Context(), s.db); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	return c.JSON(fiber.Map{"status": "reset"})
}
