package handler

import (
	"winestudy/internal/delivery/http/middleware"
	"winestudy/internal/pkg/response"
	"winestudy/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SeedHandler struct {
	uc usecase.SeedUsecase
}

func NewSeedHandler(uc usecase.SeedUsecase) *SeedHandler {
	return &SeedHandler{uc: uc}
}

func (h *SeedHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/seed", h.SeedCore)
	r.Post("/seed/expand", h.SeedExpand)
	r.Post("/seed/grapes-complete", h.SeedGrapesComplete)
	r.Post("/seed/regions-complete", h.SeedRegionsComplete)
}

func (h *SeedHandler) SeedCore(c fiber.Ctx) error {
	report, err := h.uc.SeedCore(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalServerError, err)
	}
	return response.JSON(c, fiber.StatusOK, report)
}

func (h *SeedHandler) SeedExpand(c fiber.Ctx) error {
	report, err := h.uc.SeedExpand(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalServerError, err)
	}
	return response.JSON(c, fiber.StatusOK, report)
}

func (h *SeedHandler) SeedGrapesComplete(c fiber.Ctx) error {
	report, err := h.uc.SeedGrapesComplete(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalServerError, err)
	}
	return response.JSON(c, fiber.StatusOK, report)
}

func (h *SeedHandler) SeedRegionsComplete(c fiber.Ctx) error {
	report, err := h.uc.SeedRegionsComplete(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalServerError, err)
	}
	return response.JSON(c, fiber.StatusOK, report)
}
