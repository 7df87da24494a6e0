package usecase

import (
	"context"
	"errors"

	"winestudy/internal/domain/progress"
)

type ProgressUsecase interface {
	Snapshot(ctx context.Context, userID string) (progress.Progress, error)
}

type Progress struct {
	repo progress.Repository
}

func NewProgressUsecase(repo progress.Repository) *Progress {
	return &Progress{repo: repo}
}

// Snapshot never 404s: a user without a stored record gets a zero-value
// snapshot.
func (p *Progress) Snapshot(ctx context.Context, userID string) (progress.Progress, error) {
	rec, err := p.repo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, progress.ErrNotFound) {
			return progress.Empty(userID, ""), nil
		}
		return progress.Progress{}, err
	}
	if rec.CompletedLessons == nil {
		rec.CompletedLessons = []string{}
	}
	if rec.QuizScores == nil {
		rec.QuizScores = map[string]int{}
	}
	if rec.Badges == nil {
		rec.Badges = []string{}
	}
	return rec, nil
}
