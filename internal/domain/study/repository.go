package study

import (
	"context"
	"errors"
)

var (
	ErrTrackNotFound    = errors.New("track not found")
	ErrLessonNotFound   = errors.New("lesson not found")
	ErrQuestionNotFound = errors.New("question not found")
)

type Repository interface {
	ListTracks(ctx context.Context) ([]Track, error)
	GetTrack(ctx context.Context, trackID string) (Track, error)

	// ListLessonsByTrack returns lessons sorted by ascending order field.
	ListLessonsByTrack(ctx context.Context, trackID string) ([]Lesson, error)
	GetLesson(ctx context.Context, lessonID string) (Lesson, error)

	ListQuestionsByTrack(ctx context.Context, trackID string, limit int) ([]QuizQuestion, error)
	GetQuestion(ctx context.Context, questionID string) (QuizQuestion, error)

	CountTracks(ctx context.Context) (int64, error)
	CountLessonsByTrack(ctx context.Context, trackID string) (int64, error)
	InsertTracks(ctx context.Context, items []Track) (int, error)
	InsertLessons(ctx context.Context, items []Lesson) (int, error)
	InsertQuestions(ctx context.Context, items []QuizQuestion) (int, error)
}
