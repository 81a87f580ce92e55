package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AvailabilityWindow struct {
	Day       string `json:"day" bson:"day"`
	StartTime string `json:"startTime" bson:"startTime"`
	EndTime   string `json:"endTime" bson:"endTime"`
}

type Staff struct {
	ID             primitive.ObjectID   `json:"_id,omitempty" bson:"_id,omitempty"`
	Name           string               `json:"name" bson:"name"`
	Role           string               `json:"role" bson:"role"`
	Department     string               `json:"department" bson:"department"`
	Email          string               `json:"email" bson:"email"`
	Phone          string               `json:"phone" bson:"phone"`
	Specialization string               `json:"specialization,omitempty" bson:"specialization,omitempty"`
	Status         string               `json:"status" bson:"status"`
	Availability   []AvailabilityWindow `json:"availability" bson:"availability"`
	CreatedAt      time.Time            `json:"createdAt" bson:"createdAt"`
}

const (
	StaffStatusActive   = "Active"
	StaffStatusOnLeave  = "On Leave"
	StaffStatusInactive = "Inactive"
)

var StaffRoles = []string{"Doctor", "Nurse", "Receptionist", "Admin", "Pharmacist", "Lab Technician"}
