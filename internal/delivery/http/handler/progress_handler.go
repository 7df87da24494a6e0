package handler

import (
	"winestudy/internal/delivery/http/middleware"
	"winestudy/internal/pkg/response"
	"winestudy/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProgressHandler struct {
	uc usecase.ProgressUsecase
}

func NewProgressHandler(uc usecase.ProgressUsecase) *ProgressHandler {
	return &ProgressHandler{uc: uc}
}

func (h *ProgressHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Snapshot)
}

func (h *ProgressHandler) Snapshot(c fiber.Ctx) error {
	usr, ok := middleware.UserFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.DetailUnauthorized, nil)
	}

	snap, err := h.uc.Snapshot(c.Context(), usr.UserID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalServerError, err)
	}
	return response.JSON(c, fiber.StatusOK, snap)
}
