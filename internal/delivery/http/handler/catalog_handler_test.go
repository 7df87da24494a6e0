package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"winestudy/internal/delivery/http/middleware"
	"winestudy/internal/domain/catalog"
	"winestudy/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type stubCatalogUsecase struct {
	countries []catalog.Country
	grapes    []catalog.Grape
	err       error

	gotWorldType string
	gotFilter    catalog.GrapeFilter
}

func (s *stubCatalogUsecase) ListCountries(_ context.Context, worldType string) ([]catalog.Country, error) {
	s.gotWorldType = worldType
	return s.countries, s.err
}
func (s *stubCatalogUsecase) GetCountry(context.Context, string) (catalog.Country, error) {
	if s.err != nil {
		return catalog.Country{}, s.err
	}
	return catalog.Country{}, catalog.ErrCountryNotFound
}
func (s *stubCatalogUsecase) ListRegions(context.Context, catalog.RegionFilter) ([]catalog.Region, error) {
	return nil, s.err
}
func (s *stubCatalogUsecase) GetRegion(context.Context, string) (catalog.Region, error) {
	return catalog.Region{}, s.err
}
func (s *stubCatalogUsecase) ListGrapes(_ context.Context, f catalog.GrapeFilter) ([]catalog.Grape, error) {
	s.gotFilter = f
	return s.grapes, s.err
}
func (s *stubCatalogUsecase) GetGrape(context.Context, string) (catalog.Grape, error) {
	return catalog.Grape{}, s.err
}
func (s *stubCatalogUsecase) ListAromas(context.Context, string) ([]catalog.AromaTag, error) {
	return nil, s.err
}
func (s *stubCatalogUsecase) GrapesByAroma(context.Context, string) ([]catalog.Grape, error) {
	return s.grapes, s.err
}

func newCatalogApp(uc *stubCatalogUsecase) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	NewCatalogHandler(uc).RegisterRoutes(app.Group("/api"))
	return app
}

func TestCatalogHandler_ListCountries_PlainArray(t *testing.T) {
	uc := &stubCatalogUsecase{countries: []catalog.Country{{CountryID: "france", NamePT: "França"}}}
	app := newCatalogApp(uc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/countries?world_type=old_world", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if uc.gotWorldType != "old_world" {
		t.Fatalf("filter not forwarded: %q", uc.gotWorldType)
	}

	// The wire format is a bare array, no envelope.
	var body []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body) != 1 || body[0]["country_id"] != "france" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestCatalogHandler_GetCountry_NotFoundDetail(t *testing.T) {
	app := newCatalogApp(&stubCatalogUsecase{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/countries/atlantis", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	var body response.ErrorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Detail != "Country not found" {
		t.Fatalf("unexpected detail %q", body.Detail)
	}
}

func TestCatalogHandler_ListGrapes_ForwardsFilters(t *testing.T) {
	uc := &stubCatalogUsecase{}
	app := newCatalogApp(uc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/grapes?grape_type=red&aroma=Cherry&region=bordeaux", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()

	want := catalog.GrapeFilter{GrapeType: "red", Aroma: "Cherry", Region: "bordeaux"}
	if uc.gotFilter != want {
		t.Fatalf("expected filter %+v, got %+v", want, uc.gotFilter)
	}
}
