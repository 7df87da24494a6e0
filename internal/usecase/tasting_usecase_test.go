package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"winestudy/internal/domain/progress"
	"winestudy/internal/domain/tasting"
)

func TestTasting_Create_RequiresWineName(t *testing.T) {
	uc := NewTastingUsecase(&fakeTastingRepo{}, newFakeProgressRepo())

	_, err := uc.Create(context.Background(), "user_abc", CreateTastingInput{WineName: "   "})
	if !errors.Is(err, ErrInvalidTasting) {
		t.Fatalf("expected ErrInvalidTasting, got %v", err)
	}
}

func TestTasting_Create_DefaultsAndCounter(t *testing.T) {
	repo := &fakeTastingRepo{}
	prog := newFakeProgressRepo()
	uc := NewTastingUsecase(repo, prog)

	note, err := uc.Create(context.Background(), "user_abc", CreateTastingInput{WineName: "Barolo 2018"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.HasPrefix(note.TastingID, "tasting_") || len(note.TastingID) != len("tasting_")+12 {
		t.Fatalf("unexpected tasting id %q", note.TastingID)
	}
	if note.GrapeIDs == nil || note.Appearance == nil || note.Nose == nil || note.Palate == nil || note.Conclusion == nil {
		t.Fatalf("nil sections should be defaulted to empty values: %+v", note)
	}
	if got := prog.recs["user_abc"].TotalTastings; got != 1 {
		t.Fatalf("expected total_tastings 1, got %d", got)
	}
}

func TestTasting_Get_WrongOwnerIsNotFound(t *testing.T) {
	repo := &fakeTastingRepo{notes: []tasting.Note{{TastingID: "tasting_x", UserID: "user_owner"}}}
	uc := NewTastingUsecase(repo, newFakeProgressRepo())

	if _, err := uc.Get(context.Background(), "user_other", "tasting_x"); !errors.Is(err, tasting.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for wrong owner, got %v", err)
	}
	if _, err := uc.Get(context.Background(), "user_owner", "tasting_x"); err != nil {
		t.Fatalf("owner read failed: %v", err)
	}
}

func TestTasting_Delete_DecrementsOnlyOnActualDelete(t *testing.T) {
	repo := &fakeTastingRepo{notes: []tasting.Note{{TastingID: "tasting_x", UserID: "user_owner"}}}
	prog := newFakeProgressRepo()
	prog.recs["user_owner"] = progress.Progress{UserID: "user_owner", TotalTastings: 1}
	uc := NewTastingUsecase(repo, prog)

	if err := uc.Delete(context.Background(), "user_other", "tasting_x"); !errors.Is(err, tasting.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for wrong owner, got %v", err)
	}
	if got := prog.recs["user_owner"].TotalTastings; got != 1 {
		t.Fatalf("counter moved on failed delete: %d", got)
	}

	if err := uc.Delete(context.Background(), "user_owner", "tasting_x"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if got := prog.recs["user_owner"].TotalTastings; got != 0 {
		t.Fatalf("expected total_tastings 0 after delete, got %d", got)
	}
}
