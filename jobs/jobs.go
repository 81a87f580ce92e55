package jobs

import (
	"context"
	"log"
	"time"

	"mediflow/config/db"
	"mediflow/models"
	"mediflow/util"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
)

func StartDailyScheduler() {
	c := cron.New()

	// Runs every day at 00:10 AM
	c.AddFunc("10 0 * * *", func() {
		log.Println("Running daily maintenance sweeps...")
		RunDailySweeps()
	})

	c.Start()
}

func RunDailySweeps() {
	if err := SweepOverdueInvoices(context.Background()); err != nil {
		log.Println("Error from overdue invoice sweep:", err)
	}
	if err := SweepExpiredInventory(context.Background()); err != nil {
		log.Println("Error from expired inventory sweep:", err)
	}
}

/*
* Pending invoices past their due date become Overdue
 */
func SweepOverdueInvoices(ctx context.Context) error {
	collection := db.OpenCollections(util.InvoiceCollection)
	filter := bson.M{
		"status":  models.InvoicePending,
		"dueDate": bson.M{"$lt": time.Now()},
	}
	update := bson.M{"$set": bson.M{"status": models.InvoiceOverdue}}
	updated, err := db.UpdateMany(ctx, collection, filter, update)
	if err != nil {
		return err
	}
	log.Println("Invoices marked overdue:", updated.ModifiedCount)
	return nil
}

/*
* Inventory past its expiry date becomes Expired
* Quantity-affecting writes never produce this state; only the sweep does
 */
func SweepExpiredInventory(ctx context.Context) error {
	collection := db.OpenCollections(util.InventoryCollection)
	filter := bson.M{
		"expiryDate": bson.M{"$gt": time.Time{}, "$lt": time.Now()},
		"status":     bson.M{"$ne": models.StockExpired},
	}
	update := bson.M{"$set": bson.M{"status": models.StockExpired, "updatedAt": time.Now()}}
	updated, err := db.UpdateMany(ctx, collection, filter, update)
	if err != nil {
		return err
	}
	log.Println("Inventory items marked expired:", updated.ModifiedCount)
	return nil
}
