// Package mongopersistence implements the repository interfaces on top of
// the official MongoDB driver.
package mongopersistence

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/HaqueArif/shine-on-server/internal/domain"
	"github.com/HaqueArif/shine-on-server/internal/repository"
)

// MongoUserRepository is the MongoDB implementation of UserRepository.
type MongoUserRepository struct {
	coll *mongo.Collection
}

// NewMongoUserRepository creates a MongoUserRepository over the given collection.
func NewMongoUserRepository(coll *mongo.Collection) *MongoUserRepository {
	if coll == nil {
		panic("collection cannot be nil for MongoUserRepository")
	}
	return &MongoUserRepository{coll: coll}
}

// EnsureIndexes creates the unique email index that backs the
// one-account-per-email invariant. Safe to call on every startup.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("mongo: ensure user indexes: %w", err)
	}
	return nil
}

// FindByEmail implements exact-match lookup by email.
func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("mongo: find user by email %q: %w", email, err)
	}
	return &user, nil
}

// Insert persists a new account document.
func (r *MongoUserRepository) Insert(ctx context.Context, user *domain.User) error {
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateEntry
		}
		return fmt.Errorf("mongo: insert user %q: %w", user.Email, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}
