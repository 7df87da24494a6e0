package usecase

import (
	"context"
	"time"

	"winestudy/internal/domain/progress"
	"winestudy/internal/domain/study"
)

type StudyUsecase interface {
	ListTracks(ctx context.Context) ([]study.Track, error)
	GetTrack(ctx context.Context, trackID string) (study.Track, error)
	ListLessons(ctx context.Context, trackID string) ([]study.Lesson, error)
	GetLesson(ctx context.Context, lessonID string) (study.Lesson, error)
	CompleteLesson(ctx context.Context, userID, lessonID string) error
}

type Study struct {
	repo     study.Repository
	progress progress.Repository

	now func() time.Time
}

func NewStudyUsecase(repo study.Repository, prog progress.Repository) *Study {
	return &Study{repo: repo, progress: prog, now: time.Now}
}

func (s *Study) ListTracks(ctx context.Context) ([]study.Track, error) {
	return s.repo.ListTracks(ctx)
}

func (s *Study) GetTrack(ctx context.Context, trackID string) (study.Track, error) {
	return s.repo.GetTrack(ctx, trackID)
}

func (s *Study) ListLessons(ctx context.Context, trackID string) ([]study.Lesson, error) {
	return s.repo.ListLessonsByTrack(ctx, trackID)
}

func (s *Study) GetLesson(ctx context.Context, lessonID string) (study.Lesson, error) {
	return s.repo.GetLesson(ctx, lessonID)
}

// CompleteLesson records the lesson in the user's completed set. Completing
// the same lesson twice leaves a single entry.
func (s *Study) CompleteLesson(ctx context.Context, userID, lessonID string) error {
	if _, err := s.repo.GetLesson(ctx, lessonID); err != nil {
		return err
	}
	return s.progress.AddCompletedLesson(ctx, userID, lessonID, nowUTC(s.now))
}
