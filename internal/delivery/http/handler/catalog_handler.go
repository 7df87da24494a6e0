package handler

import (
	"errors"

	"winestudy/internal/delivery/http/middleware"
	"winestudy/internal/domain/catalog"
	"winestudy/internal/pkg/response"
	"winestudy/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/countries", h.ListCountries)
	r.Get("/countries/:country_id", h.GetCountry)
	r.Get("/regions", h.ListRegions)
	r.Get("/regions/:region_id", h.GetRegion)
	r.Get("/grapes", h.ListGrapes)
	r.Get("/grapes/:grape_id", h.GetGrape)
	r.Get("/aromas", h.ListAromas)
	r.Get("/aromas/:tag_id/grapes", h.GrapesByAroma)
}

func (h *CatalogHandler) ListCountries(c fiber.Ctx) error {
	countries, err := h.uc.ListCountries(c.Context(), c.Query("world_type"))
	if err != nil {
		return mapCatalogUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, countries)
}

func (h *CatalogHandler) GetCountry(c fiber.Ctx) error {
	country, err := h.uc.GetCountry(c.Context(), c.Params("country_id"))
	if err != nil {
		return mapCatalogUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, country)
}

func (h *CatalogHandler) ListRegions(c fiber.Ctx) error {
	regions, err := h.uc.ListRegions(c.Context(), catalog.RegionFilter{
		CountryID: c.Query("country_id"),
		Grape:     c.Query("grape"),
	})
	if err != nil {
		return mapCatalogUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, regions)
}

func (h *CatalogHandler) GetRegion(c fiber.Ctx) error {
	region, err := h.uc.GetRegion(c.Context(), c.Params("region_id"))
	if err != nil {
		return mapCatalogUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, region)
}

func (h *CatalogHandler) ListGrapes(c fiber.Ctx) error {
	grapes, err := h.uc.ListGrapes(c.Context(), catalog.GrapeFilter{
		GrapeType: c.Query("grape_type"),
		Aroma:     c.Query("aroma"),
		Region:    c.Query("region"),
	})
	if err != nil {
		return mapCatalogUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, grapes)
}

func (h *CatalogHandler) GetGrape(c fiber.Ctx) error {
	grape, err := h.uc.GetGrape(c.Context(), c.Params("grape_id"))
	if err != nil {
		return mapCatalogUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, grape)
}

func (h *CatalogHandler) ListAromas(c fiber.Ctx) error {
	aromas, err := h.uc.ListAromas(c.Context(), c.Query("category"))
	if err != nil {
		return mapCatalogUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, aromas)
}

func (h *CatalogHandler) GrapesByAroma(c fiber.Ctx) error {
	grapes, err := h.uc.GrapesByAroma(c.Context(), c.Params("tag_id"))
	if err != nil {
		return mapCatalogUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, grapes)
}

func mapCatalogUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, catalog.ErrCountryNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Country not found", err)
	case errors.Is(err, catalog.ErrRegionNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Region not found", err)
	case errors.Is(err, catalog.ErrGrapeNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Grape not found", err)
	case errors.Is(err, catalog.ErrAromaNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Aroma not found", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalServerError, err)
	}
}
