package catalog

import (
	"context"
	"errors"
)

var (
	ErrCountryNotFound = errors.New("country not found")
	ErrRegionNotFound  = errors.New("region not found")
	ErrGrapeNotFound   = errors.New("grape not found")
	ErrAromaNotFound   = errors.New("aroma not found")
)

type RegionFilter struct {
	CountryID string
	Grape     string // membership in main_grapes
}

type GrapeFilter struct {
	GrapeType string
	Aroma     string // matches aromatic_notes or flavor_notes
	Region    string // membership in best_regions
}

type Repository interface {
	ListCountries(ctx context.Context, worldType string) ([]Country, error)
	GetCountry(ctx context.Context, countryID string) (Country, error)

	ListRegions(ctx context.Context, f RegionFilter) ([]Region, error)
	GetRegion(ctx context.Context, regionID string) (Region, error)

	ListGrapes(ctx context.Context, f GrapeFilter) ([]Grape, error)
	GetGrape(ctx context.Context, grapeID string) (Grape, error)

	ListAromas(ctx context.Context, category string) ([]AromaTag, error)
	GetAroma(ctx context.Context, tagID string) (AromaTag, error)

	// Case-insensitive substring search over names and descriptions.
	SearchCountries(ctx context.Context, q string, limit int) ([]Country, error)
	SearchRegions(ctx context.Context, q string, limit int) ([]Region, error)
	SearchGrapes(ctx context.Context, q string, limit int) ([]Grape, error)

	CountCountries(ctx context.Context) (int64, error)
	InsertCountries(ctx context.Context, items []Country) (int, error)
	ExistingRegionIDs(ctx context.Context) (map[string]bool, error)
	InsertRegions(ctx context.Context, items []Region) (int, error)
	ExistingGrapeIDs(ctx context.Context) (map[string]bool, error)
	InsertGrapes(ctx context.Context, items []Grape) (int, error)
	InsertAromas(ctx context.Context, items []AromaTag) (int, error)
}
