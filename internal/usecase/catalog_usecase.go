package usecase

import (
	"context"

	"winestudy/internal/domain/catalog"
)

type CatalogUsecase interface {
	ListCountries(ctx context.Context, worldType string) ([]catalog.Country, error)
	GetCountry(ctx context.Context, countryID string) (catalog.Country, error)
	ListRegions(ctx context.Context, f catalog.RegionFilter) ([]catalog.Region, error)
	GetRegion(ctx context.Context, regionID string) (catalog.Region, error)
	ListGrapes(ctx context.Context, f catalog.GrapeFilter) ([]catalog.Grape, error)
	GetGrape(ctx context.Context, grapeID string) (catalog.Grape, error)
	ListAromas(ctx context.Context, category string) ([]catalog.AromaTag, error)
	GrapesByAroma(ctx context.Context, tagID string) ([]catalog.Grape, error)
}

type Catalog struct {
	repo catalog.Repository
}

func NewCatalogUsecase(repo catalog.Repository) *Catalog {
	return &Catalog{repo: repo}
}

func (c *Catalog) ListCountries(ctx context.Context, worldType string) ([]catalog.Country, error) {
	return c.repo.ListCountries(ctx, worldType)
}

func (c *Catalog) GetCountry(ctx context.Context, countryID string) (catalog.Country, error) {
	return c.repo.GetCountry(ctx, countryID)
}

func (c *Catalog) ListRegions(ctx context.Context, f catalog.RegionFilter) ([]catalog.Region, error) {
	return c.repo.ListRegions(ctx, f)
}

func (c *Catalog) GetRegion(ctx context.Context, regionID string) (catalog.Region, error) {
	return c.repo.GetRegion(ctx, regionID)
}

func (c *Catalog) ListGrapes(ctx context.Context, f catalog.GrapeFilter) ([]catalog.Grape, error) {
	return c.repo.ListGrapes(ctx, f)
}

func (c *Catalog) GetGrape(ctx context.Context, grapeID string) (catalog.Grape, error) {
	return c.repo.GetGrape(ctx, grapeID)
}

func (c *Catalog) ListAromas(ctx context.Context, category string) ([]catalog.AromaTag, error) {
	return c.repo.ListAromas(ctx, category)
}

// GrapesByAroma matches grapes whose aromatic or flavor notes contain the
// tag's English name; the join is by convention, not an enforced foreign key.
func (c *Catalog) GrapesByAroma(ctx context.Context, tagID string) ([]catalog.Grape, error) {
	tag, err := c.repo.GetAroma(ctx, tagID)
	if err != nil {
		return nil, err
	}
	return c.repo.ListGrapes(ctx, catalog.GrapeFilter{Aroma: tag.NameEN})
}
