package mongopersistence

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/HaqueArif/shine-on-server/internal/repository"
)

// MongoSupplyRepository is the MongoDB implementation of SupplyRepository.
// Supply documents are schemaless, so it works with raw bson.M values.
type MongoSupplyRepository struct {
	coll *mongo.Collection
}

// NewMongoSupplyRepository creates a MongoSupplyRepository over the given collection.
func NewMongoSupplyRepository(coll *mongo.Collection) *MongoSupplyRepository {
	if coll == nil {
		panic("collection cannot be nil for MongoSupplyRepository")
	}
	return &MongoSupplyRepository{coll: coll}
}

// List returns every supply document.
func (r *MongoSupplyRepository) List(ctx context.Context) ([]bson.M, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("mongo: list supplies: %w", err)
	}
	var items []bson.M
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("mongo: decode supplies: %w", err)
	}
	return items, nil
}

// Insert stores the given fields verbatim as a new document.
func (r *MongoSupplyRepository) Insert(ctx context.Context, fields bson.M) error {
	if _, err := r.coll.InsertOne(ctx, fields); err != nil {
		return fmt.Errorf("mongo: insert supply: %w", err)
	}
	return nil
}

// Update applies a $set of exactly the provided fields to the document with
// the given hex id and reports how many documents matched.
func (r *MongoSupplyRepository) Update(ctx context.Context, id string, fields bson.M) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, repository.ErrInvalidID
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return 0, fmt.Errorf("mongo: update supply %s: %w", id, err)
	}
	return res.MatchedCount, nil
}

// Delete removes the document with the given hex id.
func (r *MongoSupplyRepository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, repository.ErrInvalidID
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("mongo: delete supply %s: %w", id, err)
	}
	return res.DeletedCount, nil
}
