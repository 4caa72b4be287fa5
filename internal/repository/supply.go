package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// SupplyRepository stores supply items as raw documents. The collection is
// schemaless on purpose: handlers forward client fields verbatim.
type SupplyRepository interface {
	// List returns every supply document, in no particular order.
	List(ctx context.Context) ([]bson.M, error)

	// Insert stores the given fields as a new document.
	Insert(ctx context.Context, fields bson.M) error

	// Update overwrites exactly the provided fields on the document with the
	// given hex id. Returns the number of matched documents, ErrInvalidID if
	// the id is not a well-formed ObjectID.
	Update(ctx context.Context, id string, fields bson.M) (int64, error)

	// Delete removes the document with the given hex id and returns how many
	// documents were removed (0 or 1). Returns ErrInvalidID for malformed ids.
	Delete(ctx context.Context, id string) (int64, error)
}
