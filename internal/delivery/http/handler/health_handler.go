package handler

import (
	"winestudy/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	return response.JSON(c, fiber.StatusOK, map[string]any{"status": "ok"})
}

// Root is mounted at the API group root and doubles as a liveness probe for
// clients that only see the /api prefix.
func (h *HealthHandler) Root(c fiber.Ctx) error {
	return response.JSON(c, fiber.StatusOK, map[string]any{
		"message": "WineStudy API v1.0",
		"status":  "healthy",
	})
}
