// Package domain defines the document types stored in MongoDB.
package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// User represents a registered account.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	// Password holds the bcrypt hash, never the plaintext.
	Password string `bson:"password" json:"-"`
}
