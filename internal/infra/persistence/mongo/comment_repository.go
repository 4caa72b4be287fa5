package mongopersistence

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/HaqueArif/shine-on-server/internal/domain"
)

// MongoCommentRepository is the MongoDB implementation of CommentRepository.
type MongoCommentRepository struct {
	coll *mongo.Collection
}

// NewMongoCommentRepository creates a MongoCommentRepository over the given collection.
func NewMongoCommentRepository(coll *mongo.Collection) *MongoCommentRepository {
	if coll == nil {
		panic("collection cannot be nil for MongoCommentRepository")
	}
	return &MongoCommentRepository{coll: coll}
}

// List returns every comment record.
func (r *MongoCommentRepository) List(ctx context.Context) ([]domain.Comment, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("mongo: list comments: %w", err)
	}
	var comments []domain.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("mongo: decode comments: %w", err)
	}
	return comments, nil
}

// Insert persists a new comment record.
func (r *MongoCommentRepository) Insert(ctx context.Context, comment *domain.Comment) error {
	res, err := r.coll.InsertOne(ctx, comment)
	if err != nil {
		return fmt.Errorf("mongo: insert comment: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		comment.ID = oid
	}
	return nil
}
