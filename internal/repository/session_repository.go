package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"winestudy/internal/database"
	"winestudy/internal/domain/session"
)

const sessionsCollection = "user_sessions"

type SessionRepository struct {
	db database.DB
}

func NewSessionRepository(db database.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) col() *mongo.Collection {
	return r.db.Collection(sessionsCollection)
}

func (r *SessionRepository) Create(ctx context.Context, s session.Session) error {
	_, err := r.col().InsertOne(ctx, s)
	return err
}

func (r *SessionRepository) GetByToken(ctx context.Context, token string) (session.Session, error) {
	var s session.Session
	err := r.col().FindOne(ctx, bson.M{"session_token": token}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return session.Session{}, session.ErrNotFound
		}
		return session.Session{}, err
	}
	return s, nil
}

func (r *SessionRepository) DeleteByToken(ctx context.Context, token string) error {
	_, err := r.col().DeleteOne(ctx, bson.M{"session_token": token})
	return err
}
