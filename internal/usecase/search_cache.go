package usecase

import (
	"context"
	"time"
)

// SearchCache is satisfied by the redis cache; a nil cache disables caching.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
