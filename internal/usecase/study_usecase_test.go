package usecase

import (
	"context"
	"errors"
	"testing"

	"winestudy/internal/domain/study"
)

func TestStudy_CompleteLesson_UnknownLesson(t *testing.T) {
	prog := newFakeProgressRepo()
	uc := NewStudyUsecase(&fakeStudyRepo{}, prog)

	err := uc.CompleteLesson(context.Background(), "user_abc", "lesson_missing")
	if !errors.Is(err, study.ErrLessonNotFound) {
		t.Fatalf("expected ErrLessonNotFound, got %v", err)
	}
	if len(prog.recs["user_abc"].CompletedLessons) != 0 {
		t.Fatalf("progress must not move for an unknown lesson")
	}
}

func TestStudy_CompleteLesson_Idempotent(t *testing.T) {
	repo := &fakeStudyRepo{lessons: []study.Lesson{{LessonID: "basic_1", TrackID: study.LevelBasic}}}
	prog := newFakeProgressRepo()
	uc := NewStudyUsecase(repo, prog)

	for i := 0; i < 2; i++ {
		if err := uc.CompleteLesson(context.Background(), "user_abc", "basic_1"); err != nil {
			t.Fatalf("complete %d: %v", i, err)
		}
	}
	if got := prog.recs["user_abc"].CompletedLessons; len(got) != 1 || got[0] != "basic_1" {
		t.Fatalf("expected single completed lesson, got %v", got)
	}
}

func TestStudy_GetTrack_Unknown(t *testing.T) {
	uc := NewStudyUsecase(&fakeStudyRepo{}, newFakeProgressRepo())

	_, err := uc.GetTrack(context.Background(), "missing")
	if !errors.Is(err, study.ErrTrackNotFound) {
		t.Fatalf("expected ErrTrackNotFound, got %v", err)
	}
}
