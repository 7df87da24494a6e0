package usecase

import (
	"context"
	"testing"

	"winestudy/internal/domain/progress"
)

func TestProgress_Snapshot_MissingRecordIsZeroValue(t *testing.T) {
	uc := NewProgressUsecase(newFakeProgressRepo())

	snap, err := uc.Snapshot(context.Background(), "user_new")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if snap.UserID != "user_new" {
		t.Fatalf("unexpected user id %q", snap.UserID)
	}
	if snap.CompletedLessons == nil || snap.QuizScores == nil || snap.Badges == nil {
		t.Fatalf("zero snapshot must serialize with empty collections: %+v", snap)
	}
	if snap.TotalTastings != 0 || snap.CurrentStreak != 0 {
		t.Fatalf("zero snapshot has nonzero counters: %+v", snap)
	}
}

func TestProgress_Snapshot_NormalizesNilCollections(t *testing.T) {
	repo := newFakeProgressRepo(progress.Progress{UserID: "user_abc", TotalTastings: 3})
	uc := NewProgressUsecase(repo)

	snap, err := uc.Snapshot(context.Background(), "user_abc")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if snap.TotalTastings != 3 {
		t.Fatalf("expected counter preserved, got %d", snap.TotalTastings)
	}
	if snap.CompletedLessons == nil || snap.QuizScores == nil || snap.Badges == nil {
		t.Fatalf("stored nils must come back as empty collections: %+v", snap)
	}
}
