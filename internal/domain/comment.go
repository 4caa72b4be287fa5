package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment wraps an arbitrary client payload with its submission time.
type Comment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Data        any                `bson:"data" json:"data"`
	CurrentDate time.Time          `bson:"currentDate" json:"currentDate"`
}
