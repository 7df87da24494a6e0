package progress

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("progress not found")

type Repository interface {
	Create(ctx context.Context, p Progress) error
	GetByUser(ctx context.Context, userID string) (Progress, error)

	// Atomic single-document updates; cross-request coordination is delegated
	// to the store.
	IncTotalTastings(ctx context.Context, userID string, delta int) error
	AddCompletedLesson(ctx context.Context, userID, lessonID, lastActivity string) error
	IncQuizScore(ctx context.Context, userID, trackID string) error
}
