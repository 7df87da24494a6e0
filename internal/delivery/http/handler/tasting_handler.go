package handler

import (
	"errors"

	"winestudy/internal/delivery/http/middleware"
	"winestudy/internal/domain/tasting"
	"winestudy/internal/pkg/response"
	"winestudy/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type TastingHandler struct {
	uc usecase.TastingUsecase
}

type createTastingRequest struct {
	WineName   string         `json:"wine_name"`
	Vintage    *int           `json:"vintage"`
	GrapeIDs   []string       `json:"grape_ids"`
	RegionID   *string        `json:"region_id"`
	Appearance map[string]any `json:"appearance"`
	Nose       map[string]any `json:"nose"`
	Palate     map[string]any `json:"palate"`
	Conclusion map[string]any `json:"conclusion"`
	Notes      *string        `json:"notes"`
}

func NewTastingHandler(uc usecase.TastingUsecase) *TastingHandler {
	return &TastingHandler{uc: uc}
}

func (h *TastingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/:tasting_id", h.Get)
	r.Delete("/:tasting_id", h.Delete)
}

func (h *TastingHandler) Create(c fiber.Ctx) error {
	usr, ok := middleware.UserFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.DetailUnauthorized, nil)
	}

	var req createTastingRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.DetailBadRequest, err)
	}

	note, err := h.uc.Create(c.Context(), usr.UserID, usecase.CreateTastingInput{
		WineName:   req.WineName,
		Vintage:    req.Vintage,
		GrapeIDs:   req.GrapeIDs,
		RegionID:   req.RegionID,
		Appearance: req.Appearance,
		Nose:       req.Nose,
		Palate:     req.Palate,
		Conclusion: req.Conclusion,
		Notes:      req.Notes,
	})
	if err != nil {
		return mapTastingUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusCreated, note)
}

func (h *TastingHandler) List(c fiber.Ctx) error {
	usr, ok := middleware.UserFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.DetailUnauthorized, nil)
	}

	notes, err := h.uc.List(c.Context(), usr.UserID)
	if err != nil {
		return mapTastingUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, notes)
}

func (h *TastingHandler) Get(c fiber.Ctx) error {
	usr, ok := middleware.UserFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.DetailUnauthorized, nil)
	}

	note, err := h.uc.Get(c.Context(), usr.UserID, c.Params("tasting_id"))
	if err != nil {
		return mapTastingUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, note)
}

func (h *TastingHandler) Delete(c fiber.Ctx) error {
	usr, ok := middleware.UserFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.DetailUnauthorized, nil)
	}

	if err := h.uc.Delete(c.Context(), usr.UserID, c.Params("tasting_id")); err != nil {
		return mapTastingUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, map[string]any{"message": "Tasting deleted"})
}

func mapTastingUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidTasting):
		return middleware.NewAppError(fiber.StatusBadRequest, "wine_name required", err)
	case errors.Is(err, tasting.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Tasting not found", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalServerError, err)
	}
}
