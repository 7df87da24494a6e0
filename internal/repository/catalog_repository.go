package repository

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"winestudy/internal/database"
	"winestudy/internal/domain/catalog"
)

const (
	countriesCollection = "countries"
	regionsCollection   = "regions"
	grapesCollection    = "grapes"
	aromasCollection    = "aroma_tags"
)

type CatalogRepository struct {
	db database.DB
}

func NewCatalogRepository(db database.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// substringRegex builds a case-insensitive substring match with the query
// quoted, so user input is never interpreted as a pattern.
func substringRegex(q string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
}

func (r *CatalogRepository) ListCountries(ctx context.Context, worldType string) ([]catalog.Country, error) {
	filter := bson.M{}
	if worldType != "" {
		filter["world_type"] = worldType
	}
	return findAll[catalog.Country](ctx, r.db.Collection(countriesCollection), filter, nil)
}

func (r *CatalogRepository) GetCountry(ctx context.Context, countryID string) (catalog.Country, error) {
	var c catalog.Country
	err := r.db.Collection(countriesCollection).FindOne(ctx, bson.M{"country_id": countryID}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return catalog.Country{}, catalog.ErrCountryNotFound
		}
		return catalog.Country{}, err
	}
	return c, nil
}

func (r *CatalogRepository) ListRegions(ctx context.Context, f catalog.RegionFilter) ([]catalog.Region, error) {
	filter := bson.M{}
	if f.CountryID != "" {
		filter["country_id"] = f.CountryID
	}
	if f.Grape != "" {
		filter["main_grapes"] = f.Grape
	}
	return findAll[catalog.Region](ctx, r.db.Collection(regionsCollection), filter, nil)
}

func (r *CatalogRepository) GetRegion(ctx context.Context, regionID string) (catalog.Region, error) {
	var reg catalog.Region
	err := r.db.Collection(regionsCollection).FindOne(ctx, bson.M{"region_id": regionID}).Decode(&reg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return catalog.Region{}, catalog.ErrRegionNotFound
		}
		return catalog.Region{}, err
	}
	return reg, nil
}

func (r *CatalogRepository) ListGrapes(ctx context.Context, f catalog.GrapeFilter) ([]catalog.Grape, error) {
	filter := bson.M{}
	if f.GrapeType != "" {
		filter["grape_type"] = f.GrapeType
	}
	if f.Aroma != "" {
		filter["$or"] = bson.A{
			bson.M{"aromatic_notes": f.Aroma},
			bson.M{"flavor_notes": f.Aroma},
		}
	}
	if f.Region != "" {
		filter["best_regions"] = f.Region
	}
	return findAll[catalog.Grape](ctx, r.db.Collection(grapesCollection), filter, nil)
}

func (r *CatalogRepository) GetGrape(ctx context.Context, grapeID string) (catalog.Grape, error) {
	var g catalog.Grape
	err := r.db.Collection(grapesCollection).FindOne(ctx, bson.M{"grape_id": grapeID}).Decode(&g)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return catalog.Grape{}, catalog.ErrGrapeNotFound
		}
		return catalog.Grape{}, err
	}
	return g, nil
}

func (r *CatalogRepository) ListAromas(ctx context.Context, category string) ([]catalog.AromaTag, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	return findAll[catalog.AromaTag](ctx, r.db.Collection(aromasCollection), filter, nil)
}

func (r *CatalogRepository) GetAroma(ctx context.Context, tagID string) (catalog.AromaTag, error) {
	var a catalog.AromaTag
	err := r.db.Collection(aromasCollection).FindOne(ctx, bson.M{"tag_id": tagID}).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return catalog.AromaTag{}, catalog.ErrAromaNotFound
		}
		return catalog.AromaTag{}, err
	}
	return a, nil
}

func (r *CatalogRepository) SearchCountries(ctx context.Context, q string, limit int) ([]catalog.Country, error) {
	re := substringRegex(q)
	filter := bson.M{"$or": bson.A{
		bson.M{"name_pt": re},
		bson.M{"name_en": re},
	}}
	opts := options.Find().SetLimit(int64(limit))
	return findAll[catalog.Country](ctx, r.db.Collection(countriesCollection), filter, opts)
}

func (r *CatalogRepository) SearchRegions(ctx context.Context, q string, limit int) ([]catalog.Region, error) {
	re := substringRegex(q)
	filter := bson.M{"$or": bson.A{
		bson.M{"name": re},
		bson.M{"description_pt": re},
		bson.M{"description_en": re},
	}}
	opts := options.Find().SetLimit(int64(limit))
	return findAll[catalog.Region](ctx, r.db.Collection(regionsCollection), filter, opts)
}

func (r *CatalogRepository) SearchGrapes(ctx context.Context, q string, limit int) ([]catalog.Grape, error) {
	re := substringRegex(q)
	filter := bson.M{"$or": bson.A{
		bson.M{"name": re},
		bson.M{"description_pt": re},
		bson.M{"description_en": re},
	}}
	opts := options.Find().SetLimit(int64(limit))
	return findAll[catalog.Grape](ctx, r.db.Collection(grapesCollection), filter, opts)
}

func (r *CatalogRepository) CountCountries(ctx context.Context) (int64, error) {
	return r.db.Collection(countriesCollection).CountDocuments(ctx, bson.M{})
}

func (r *CatalogRepository) InsertCountries(ctx context.Context, items []catalog.Country) (int, error) {
	return insertMany(ctx, r.db.Collection(countriesCollection), items)
}

func (r *CatalogRepository) ExistingRegionIDs(ctx context.Context) (map[string]bool, error) {
	return existingIDs(ctx, r.db.Collection(regionsCollection), "region_id")
}

func (r *CatalogRepository) InsertRegions(ctx context.Context, items []catalog.Region) (int, error) {
	return insertMany(ctx, r.db.Collection(regionsCollection), items)
}

func (r *CatalogRepository) ExistingGrapeIDs(ctx context.Context) (map[string]bool, error) {
	return existingIDs(ctx, r.db.Collection(grapesCollection), "grape_id")
}

func (r *CatalogRepository) InsertGrapes(ctx context.Context, items []catalog.Grape) (int, error) {
	return insertMany(ctx, r.db.Collection(grapesCollection), items)
}

func (r *CatalogRepository) InsertAromas(ctx context.Context, items []catalog.AromaTag) (int, error) {
	return insertMany(ctx, r.db.Collection(aromasCollection), items)
}
