package handler

import (
	"errors"

	"winestudy/internal/delivery/http/middleware"
	"winestudy/internal/pkg/response"
	"winestudy/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SearchHandler struct {
	uc usecase.SearchUsecase
}

func NewSearchHandler(uc usecase.SearchUsecase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

func (h *SearchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/search", h.Search)
}

func (h *SearchHandler) Search(c fiber.Ctx) error {
	results, err := h.uc.Search(c.Context(), c.Query("q"), c.Query("category"))
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyQuery) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Query parameter q is required", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalServerError, err)
	}
	return response.JSON(c, fiber.StatusOK, results)
}
