package database

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// DB is the process-wide handle to the document store. Collections are
// addressed by name; all query semantics live in the repository layer.
type DB interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error

	Collection(name string) *mongo.Collection
}
