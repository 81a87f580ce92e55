package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Patient struct {
	ID             primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Age            int                `json:"age" bson:"age"`
	Gender         string             `json:"gender" bson:"gender"`
	Phone          string             `json:"phone" bson:"phone"`
	Address        string             `json:"address,omitempty" bson:"address,omitempty"`
	BloodType      string             `json:"bloodType,omitempty" bson:"bloodType,omitempty"`
	Status         string             `json:"status" bson:"status"`
	MedicalHistory []string           `json:"medicalHistory" bson:"medicalHistory"`
	Allergies      []string           `json:"allergies" bson:"allergies"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
}

const (
	PatientStatusActive     = "Active"
	PatientStatusInactive   = "Inactive"
	PatientStatusStable     = "Stable"
	PatientStatusCritical   = "Critical"
	PatientStatusRecovering = "Recovering"
)

var Genders = []string{"Male", "Female", "Other"}
