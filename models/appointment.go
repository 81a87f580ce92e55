package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Appointment struct {
	ID             primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Patient        primitive.ObjectID `json:"patient" bson:"patient"`
	Doctor         string             `json:"doctor" bson:"doctor"`
	Date           time.Time          `json:"date" bson:"date"`
	Time           string             `json:"time" bson:"time"`
	Type           string             `json:"type" bson:"type"`
	Status         string             `json:"status" bson:"status"`
	Notes          string             `json:"notes,omitempty" bson:"notes,omitempty"`
	ReminderSent   bool               `json:"reminderSent" bson:"reminderSent"`
	ReminderStatus string             `json:"reminderStatus" bson:"reminderStatus"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
}

const (
	AppointmentScheduled = "Scheduled"
	AppointmentCompleted = "Completed"
	AppointmentCancelled = "Cancelled"
	AppointmentNoShow    = "No-show"

	AppointmentTypeCheckup = "Checkup"

	ReminderNone   = "None"
	ReminderSent   = "Sent"
	ReminderFailed = "Failed"
)
