package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InvoiceItem struct {
	Description string  `json:"description" bson:"description"`
	Cost        float64 `json:"cost" bson:"cost"`
	Quantity    int     `json:"quantity" bson:"quantity"`
}

type Invoice struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Patient       primitive.ObjectID `json:"patient" bson:"patient"`
	Appointment   primitive.ObjectID `json:"appointment,omitempty" bson:"appointment,omitempty"`
	Doctor        string             `json:"doctor,omitempty" bson:"doctor,omitempty"`
	Items         []InvoiceItem      `json:"items" bson:"items"`
	TotalAmount   float64            `json:"totalAmount" bson:"totalAmount"`
	Status        string             `json:"status" bson:"status"`
	PaymentMethod string             `json:"paymentMethod" bson:"paymentMethod"`
	Date          time.Time          `json:"date" bson:"date"`
	DueDate       time.Time          `json:"dueDate,omitempty" bson:"dueDate,omitempty"`
}

const (
	InvoicePending   = "Pending"
	InvoicePaid      = "Paid"
	InvoiceCancelled = "Cancelled"
	InvoiceOverdue   = "Overdue"

	PaymentNone = "None"
	PaymentCash = "Cash"
)
