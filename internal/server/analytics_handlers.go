package server

import (
	"github.com/bkerti/lycka-siteweb-sub000/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// RecordVisit handles POST /api/visits. The client fires one per page
// view and ignores the response body.
func (s *Server) RecordVisit(c *fiber.Ctx) error {
	if err := s.analyticsService.RecordVisit(c.Context()); err != nil {
		return respondServiceError(c, err)
	}
	middleware.VisitsRecorded.Inc()
	return c.SendStatus(fiber.StatusCreated)
}

// GetVisitsSummary handles GET /api/analytics/visits-summary?range= (admin).
// range is one of day, week, month, year; month when omitted. Responds with
// the bare ordered bucket array.
func (s *Server) GetVisitsSummary(c *fiber.Ctx) error {
	buckets, err := s.analyticsService.VisitsSummary(c.Context(), c.Query("range"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(buckets)
}
