package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"winestudy/internal/database"
	"winestudy/internal/domain/tasting"
)

const tastingsCollection = "tastings"

type TastingRepository struct {
	db database.DB
}

func NewTastingRepository(db database.DB) *TastingRepository {
	return &TastingRepository{db: db}
}

func (r *TastingRepository) col() *mongo.Collection {
	return r.db.Collection(tastingsCollection)
}

func (r *TastingRepository) Create(ctx context.Context, n tasting.Note) error {
	_, err := r.col().InsertOne(ctx, n)
	return err
}

func (r *TastingRepository) ListByUser(ctx context.Context, userID string) ([]tasting.Note, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return findAll[tasting.Note](ctx, r.col(), bson.M{"user_id": userID}, opts)
}

// Ownership is part of the filter: a note belonging to another user is
// indistinguishable from a missing one.
func (r *TastingRepository) GetForUser(ctx context.Context, tastingID, userID string) (tasting.Note, error) {
	var n tasting.Note
	err := r.col().FindOne(ctx, bson.M{"tasting_id": tastingID, "user_id": userID}).Decode(&n)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return tasting.Note{}, tasting.ErrNotFound
		}
		return tasting.Note{}, err
	}
	return n, nil
}

func (r *TastingRepository) DeleteForUser(ctx context.Context, tastingID, userID string) error {
	res, err := r.col().DeleteOne(ctx, bson.M{"tasting_id": tastingID, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return tasting.ErrNotFound
	}
	return nil
}
