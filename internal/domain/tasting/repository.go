package tasting

import (
	"context"
	"errors"
)

// ErrNotFound covers both an absent note and a note owned by another user;
// callers never learn which.
var ErrNotFound = errors.New("tasting not found")

type Repository interface {
	Create(ctx context.Context, n Note) error
	// ListByUser returns the caller's notes, newest first.
	ListByUser(ctx context.Context, userID string) ([]Note, error)
	GetForUser(ctx context.Context, tastingID, userID string) (Note, error)
	DeleteForUser(ctx context.Context, tastingID, userID string) error
}
