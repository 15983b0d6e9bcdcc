package server

import (
	"github.com/bkerti/lycka-siteweb-sub000/internal/models"
	"github.com/bkerti/lycka-siteweb-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UploadFile handles POST /api/upload?filename=… (admin). The body is the
// raw file bytes; no image processing or content sniffing happens here,
// the store serves whatever was sent under the Content-Type it came with.
func (s *Server) UploadFile(c *fiber.Ctx) error {
	filename := c.Query("filename")
	if filename == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("filename query parameter is required"))
	}

	url, err := s.uploadService.Upload(c.Context(), service.UploadInput{
		Filename:    filename,
		ContentType: c.Get(fiber.HeaderContentType),
		Content:     c.Body(),
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"url": url})
}
