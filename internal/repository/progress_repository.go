package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"winestudy/internal/database"
	"winestudy/internal/domain/progress"
)

const progressCollection = "user_progress"

type ProgressRepository struct {
	db database.DB
}

func NewProgressRepository(db database.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

func (r *ProgressRepository) col() *mongo.Collection {
	return r.db.Collection(progressCollection)
}

func (r *ProgressRepository) Create(ctx context.Context, p progress.Progress) error {
	_, err := r.col().InsertOne(ctx, p)
	return err
}

func (r *ProgressRepository) GetByUser(ctx context.Context, userID string) (progress.Progress, error) {
	var p progress.Progress
	err := r.col().FindOne(ctx, bson.M{"user_id": userID}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return progress.Progress{}, progress.ErrNotFound
		}
		return progress.Progress{}, err
	}
	return p, nil
}

func (r *ProgressRepository) IncTotalTastings(ctx context.Context, userID string, delta int) error {
	_, err := r.col().UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$inc": bson.M{"total_tastings": delta}},
	)
	return err
}

func (r *ProgressRepository) AddCompletedLesson(ctx context.Context, userID, lessonID, lastActivity string) error {
	_, err := r.col().UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{
			"$addToSet": bson.M{"completed_lessons": lessonID},
			"$set":      bson.M{"last_activity": lastActivity},
		},
	)
	return err
}

func (r *ProgressRepository) IncQuizScore(ctx context.Context, userID, trackID string) error {
	_, err := r.col().UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$inc": bson.M{"quiz_scores." + trackID: 1}},
	)
	return err
}
