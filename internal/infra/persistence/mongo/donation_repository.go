package mongopersistence

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/HaqueArif/shine-on-server/internal/domain"
)

// MongoDonationRepository is the MongoDB implementation of DonationRepository.
type MongoDonationRepository struct {
	coll *mongo.Collection
}

// NewMongoDonationRepository creates a MongoDonationRepository over the given collection.
func NewMongoDonationRepository(coll *mongo.Collection) *MongoDonationRepository {
	if coll == nil {
		panic("collection cannot be nil for MongoDonationRepository")
	}
	return &MongoDonationRepository{coll: coll}
}

// List returns every donation record.
func (r *MongoDonationRepository) List(ctx context.Context) ([]domain.Donation, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("mongo: list donations: %w", err)
	}
	var donations []domain.Donation
	if err := cursor.All(ctx, &donations); err != nil {
		return nil, fmt.Errorf("mongo: decode donations: %w", err)
	}
	return donations, nil
}

// Insert persists a new donation record.
func (r *MongoDonationRepository) Insert(ctx context.Context, donation *domain.Donation) error {
	res, err := r.coll.InsertOne(ctx, donation)
	if err != nil {
		return fmt.Errorf("mongo: insert donation: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		donation.ID = oid
	}
	return nil
}
