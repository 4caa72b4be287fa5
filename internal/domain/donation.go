package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DonationStatusPending is the only status assigned at creation; donations are
// append-only and no workflow advances them in this service.
const DonationStatusPending = "Pending"

// Donation represents a single donation record. DonationInfo is stored verbatim
// as submitted by the client; the reporting code only reaches into
// donationInfo.donatedField.amount.
type Donation struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	DonationInfo map[string]any     `bson:"donationInfo" json:"donationInfo"`
	DonationDate time.Time          `bson:"donationDate" json:"donationDate"`
	Status       string             `bson:"status" json:"status"`
}
