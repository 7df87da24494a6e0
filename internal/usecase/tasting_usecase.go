package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"winestudy/internal/domain/progress"
	"winestudy/internal/domain/tasting"
)

var ErrInvalidTasting = errors.New("invalid tasting")

type CreateTastingInput struct {
	WineName   string
	Vintage    *int
	GrapeIDs   []string
	RegionID   *string
	Appearance map[string]any
	Nose       map[string]any
	Palate     map[string]any
	Conclusion map[string]any
	Notes      *string
}

type TastingUsecase interface {
	Create(ctx context.Context, userID string, in CreateTastingInput) (tasting.Note, error)
	List(ctx context.Context, userID string) ([]tasting.Note, error)
	Get(ctx context.Context, userID, tastingID string) (tasting.Note, error)
	Delete(ctx context.Context, userID, tastingID string) error
}

type Tasting struct {
	repo     tasting.Repository
	progress progress.Repository

	now func() time.Time
}

func NewTastingUsecase(repo tasting.Repository, prog progress.Repository) *Tasting {
	return &Tasting{repo: repo, progress: prog, now: time.Now}
}

func (t *Tasting) Create(ctx context.Context, userID string, in CreateTastingInput) (tasting.Note, error) {
	if strings.TrimSpace(in.WineName) == "" {
		return tasting.Note{}, ErrInvalidTasting
	}

	grapeIDs := in.GrapeIDs
	if grapeIDs == nil {
		grapeIDs = []string{}
	}

	note := tasting.Note{
		TastingID:  newID("tasting"),
		UserID:     userID,
		WineName:   in.WineName,
		Vintage:    in.Vintage,
		GrapeIDs:   grapeIDs,
		RegionID:   in.RegionID,
		Appearance: emptyBag(in.Appearance),
		Nose:       emptyBag(in.Nose),
		Palate:     emptyBag(in.Palate),
		Conclusion: emptyBag(in.Conclusion),
		Notes:      in.Notes,
		CreatedAt:  nowUTC(t.now),
	}

	if err := t.repo.Create(ctx, note); err != nil {
		return tasting.Note{}, err
	}
	if err := t.progress.IncTotalTastings(ctx, userID, 1); err != nil {
		return tasting.Note{}, err
	}
	return note, nil
}

func (t *Tasting) List(ctx context.Context, userID string) ([]tasting.Note, error) {
	return t.repo.ListByUser(ctx, userID)
}

func (t *Tasting) Get(ctx context.Context, userID, tastingID string) (tasting.Note, error) {
	return t.repo.GetForUser(ctx, tastingID, userID)
}

// Delete only decrements the counter after an actual delete, so repeated
// create/delete pairs balance and the counter never drifts negative.
func (t *Tasting) Delete(ctx context.Context, userID, tastingID string) error {
	if err := t.repo.DeleteForUser(ctx, tastingID, userID); err != nil {
		return err
	}
	return t.progress.IncTotalTastings(ctx, userID, -1)
}

func emptyBag(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
