package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// findAll decodes every matching document. Callers get an empty (non-nil)
// slice on no matches, never an error.
func findAll[T any](ctx context.Context, col *mongo.Collection, filter bson.M, opts *options.FindOptions) ([]T, error) {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = col.Find(ctx, filter, opts)
	} else {
		cur, err = col.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func insertMany[T any](ctx context.Context, col *mongo.Collection, items []T) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	docs := make([]any, len(items))
	for i := range items {
		docs[i] = items[i]
	}
	res, err := col.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}

func existingIDs(ctx context.Context, col *mongo.Collection, field string) (map[string]bool, error) {
	opts := options.Find().SetProjection(bson.M{field: 1, "_id": 0})
	cur, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	ids := map[string]bool{}
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		if id, ok := doc[field].(string); ok {
			ids[id] = true
		}
	}
	return ids, cur.Err()
}
