package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Claim keeps patient as free text rather than a reference, matching the
// insurance intake forms it is fed from.
type Claim struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Patient      string             `json:"patient" bson:"patient"`
	Provider     string             `json:"provider" bson:"provider"`
	PolicyNumber string             `json:"policyNumber,omitempty" bson:"policyNumber,omitempty"`
	Amount       float64            `json:"amount" bson:"amount"`
	Status       string             `json:"status" bson:"status"`
	Date         time.Time          `json:"date" bson:"date"`
	Notes        string             `json:"notes,omitempty" bson:"notes,omitempty"`
}

const (
	ClaimApproved = "Approved"
	ClaimPending  = "Pending"
	ClaimRejected = "Rejected"
)
