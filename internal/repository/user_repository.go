package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"winestudy/internal/database"
	"winestudy/internal/domain/user"
)

const usersCollection = "users"

type UserRepository struct {
	db database.DB
}

func NewUserRepository(db database.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) col() *mongo.Collection {
	return r.db.Collection(usersCollection)
}

func (r *UserRepository) Create(ctx context.Context, u user.User) error {
	_, err := r.col().InsertOne(ctx, u)
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (user.User, error) {
	return r.findOne(ctx, bson.M{"user_id": userID})
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (user.User, error) {
	var u user.User
	err := r.col().FindOne(ctx, filter).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	n, err := r.col().CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, userID, name string, picture *string) error {
	_, err := r.col().UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{"name": name, "picture": picture}},
	)
	return err
}

func (r *UserRepository) UpdateLanguage(ctx context.Context, userID, language string) error {
	_, err := r.col().UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{"preferred_language": language}},
	)
	return err
}
