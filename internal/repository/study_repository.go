package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"winestudy/internal/database"
	"winestudy/internal/domain/study"
)

const (
	tracksCollection    = "study_tracks"
	lessonsCollection   = "lessons"
	questionsCollection = "quiz_questions"
)

type StudyRepository struct {
	db database.DB
}

func NewStudyRepository(db database.DB) *StudyRepository {
	return &StudyRepository{db: db}
}

func (r *StudyRepository) ListTracks(ctx context.Context) ([]study.Track, error) {
	return findAll[study.Track](ctx, r.db.Collection(tracksCollection), bson.M{}, nil)
}

func (r *StudyRepository) GetTrack(ctx context.Context, trackID string) (study.Track, error) {
	var t study.Track
	err := r.db.Collection(tracksCollection).FindOne(ctx, bson.M{"track_id": trackID}).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return study.Track{}, study.ErrTrackNotFound
		}
		return study.Track{}, err
	}
	return t, nil
}

func (r *StudyRepository) ListLessonsByTrack(ctx context.Context, trackID string) ([]study.Lesson, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	return findAll[study.Lesson](ctx, r.db.Collection(lessonsCollection), bson.M{"track_id": trackID}, opts)
}

func (r *StudyRepository) GetLesson(ctx context.Context, lessonID string) (study.Lesson, error) {
	var l study.Lesson
	err := r.db.Collection(lessonsCollection).FindOne(ctx, bson.M{"lesson_id": lessonID}).Decode(&l)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return study.Lesson{}, study.ErrLessonNotFound
		}
		return study.Lesson{}, err
	}
	return l, nil
}

func (r *StudyRepository) ListQuestionsByTrack(ctx context.Context, trackID string, limit int) ([]study.QuizQuestion, error) {
	opts := options.Find().SetLimit(int64(limit))
	return findAll[study.QuizQuestion](ctx, r.db.Collection(questionsCollection), bson.M{"track_id": trackID}, opts)
}

func (r *StudyRepository) GetQuestion(ctx context.Context, questionID string) (study.QuizQuestion, error) {
	var q study.QuizQuestion
	err := r.db.Collection(questionsCollection).FindOne(ctx, bson.M{"question_id": questionID}).Decode(&q)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return study.QuizQuestion{}, study.ErrQuestionNotFound
		}
		return study.QuizQuestion{}, err
	}
	return q, nil
}

func (r *StudyRepository) CountTracks(ctx context.Context) (int64, error) {
	return r.db.Collection(tracksCollection).CountDocuments(ctx, bson.M{})
}

func (r *StudyRepository) CountLessonsByTrack(ctx context.Context, trackID string) (int64, error) {
	return r.db.Collection(lessonsCollection).CountDocuments(ctx, bson.M{"track_id": trackID})
}

func (r *StudyRepository) InsertTracks(ctx context.Context, items []study.Track) (int, error) {
	return insertMany(ctx, r.db.Collection(tracksCollection), items)
}

func (r *StudyRepository) InsertLessons(ctx context.Context, items []study.Lesson) (int, error) {
	return insertMany(ctx, r.db.Collection(lessonsCollection), items)
}

func (r *StudyRepository) InsertQuestions(ctx context.Context, items []study.QuizQuestion) (int, error) {
	return insertMany(ctx, r.db.Collection(questionsCollection), items)
}
