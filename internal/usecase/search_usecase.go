package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"winestudy/internal/domain/catalog"
)

const (
	searchBucketLimit = 20
	searchCacheTTL    = 5 * time.Minute
)

var ErrEmptyQuery = errors.New("empty query")

type SearchResults struct {
	Grapes    []catalog.Grape   `json:"grapes"`
	Regions   []catalog.Region  `json:"regions"`
	Countries []catalog.Country `json:"countries"`
}

type SearchUsecase interface {
	Search(ctx context.Context, q, category string) (SearchResults, error)
}

type Search struct {
	repo  catalog.Repository
	cache SearchCache
}

func NewSearchUsecase(repo catalog.Repository, cache SearchCache) *Search {
	return &Search{repo: repo, cache: cache}
}

// Search runs a case-insensitive substring match across the catalog. An empty
// category searches every bucket; a named one restricts the scan. Cache
// failures fall through to the store.
func (s *Search) Search(ctx context.Context, q, category string) (SearchResults, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return SearchResults{}, ErrEmptyQuery
	}
	category = strings.TrimSpace(category)

	key := searchCacheKey(q, category)
	if s.cache != nil {
		var cached SearchResults
		if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return normalizeResults(cached), nil
		}
	}

	results := SearchResults{
		Grapes:    []catalog.Grape{},
		Regions:   []catalog.Region{},
		Countries: []catalog.Country{},
	}

	if category == "" || category == "grapes" {
		grapes, err := s.repo.SearchGrapes(ctx, q, searchBucketLimit)
		if err != nil {
			return SearchResults{}, err
		}
		results.Grapes = grapes
	}
	if category == "" || category == "regions" {
		regions, err := s.repo.SearchRegions(ctx, q, searchBucketLimit)
		if err != nil {
			return SearchResults{}, err
		}
		results.Regions = regions
	}
	if category == "" || category == "countries" {
		countries, err := s.repo.SearchCountries(ctx, q, searchBucketLimit)
		if err != nil {
			return SearchResults{}, err
		}
		results.Countries = countries
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, results, searchCacheTTL)
	}
	return results, nil
}

func searchCacheKey(q, category string) string {
	if category == "" {
		category = "all"
	}
	return "search:" + category + ":" + strings.ToLower(q)
}

func normalizeResults(r SearchResults) SearchResults {
	if r.Grapes == nil {
		r.Grapes = []catalog.Grape{}
	}
	if r.Regions == nil {
		r.Regions = []catalog.Region{}
	}
	if r.Countries == nil {
		r.Countries = []catalog.Country{}
	}
	return r
}
