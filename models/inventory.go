package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InventoryItem struct {
	ID                primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name              string             `json:"name" bson:"name"`
	Category          string             `json:"category" bson:"category"`
	Quantity          int                `json:"quantity" bson:"quantity"`
	Unit              string             `json:"unit" bson:"unit"`
	UnitPrice         float64            `json:"unitPrice" bson:"unitPrice"`
	Supplier          string             `json:"supplier,omitempty" bson:"supplier,omitempty"`
	ExpiryDate        time.Time          `json:"expiryDate,omitempty" bson:"expiryDate,omitempty"`
	LowStockThreshold int                `json:"lowStockThreshold" bson:"lowStockThreshold"`
	Status            string             `json:"status" bson:"status"`
	UpdatedAt         time.Time          `json:"updatedAt" bson:"updatedAt"`
}

const (
	StockIn      = "In Stock"
	StockLow     = "Low Stock"
	StockOut     = "Out of Stock"
	StockExpired = "Expired"

	DefaultLowStockThreshold = 10
)

var InventoryCategories = []string{"Medicine", "Equipment", "Consumables", "Surgical", "Other"}
