package services

import (
	"errors"
	"log"
	"slices"
	"time"

	"mediflow/config/db"
	"mediflow/models"
	"mediflow/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ComputeStockStatus derives the stored status from quantity and threshold.
// It must hold after every quantity-affecting write.
func ComputeStockStatus(quantity, lowStockThreshold int) string {
	if lowStockThreshold <= 0 {
		lowStockThreshold = models.DefaultLowStockThreshold
	}
	switch {
	case quantity <= 0:
		return models.StockOut
	case quantity <= lowStockThreshold:
		return models.StockLow
	default:
		return models.StockIn
	}
}

// stockStatusStage recomputes status server-side from the post-update
// quantity and threshold, so the derived field lands in the same atomic
// write as the quantity change.
func stockStatusStage() bson.D {
	return bson.D{{Key: "$set", Value: bson.D{{Key: "status", Value: bson.D{{Key: "$switch", Value: bson.D{
		{Key: "branches", Value: bson.A{
			bson.D{
				{Key: "case", Value: bson.D{{Key: "$lte", Value: bson.A{"$quantity", 0}}}},
				{Key: "then", Value: models.StockOut},
			},
			bson.D{
				{Key: "case", Value: bson.D{{Key: "$lte", Value: bson.A{
					"$quantity",
					bson.D{{Key: "$ifNull", Value: bson.A{"$lowStockThreshold", models.DefaultLowStockThreshold}}},
				}}}},
				{Key: "then", Value: models.StockLow},
			},
		}},
		{Key: "default", Value: models.StockIn},
	}}}}}}}
}

func FetchAllItems(c *gin.Context) ([]models.InventoryItem, error) {
	collection := db.OpenCollections(util.InventoryCollection)
	items := []models.InventoryItem{}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	if err := db.FindAll(c, collection, bson.M{}, opts, &items); err != nil {
		log.Println("Error from findAll while fetching inventory:", err)
		return nil, err
	}
	return items, nil
}

func FetchItemByID(c *gin.Context, id string) (*models.InventoryItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, util.NotFoundError(util.ITEM_NOT_FOUND)
	}
	collection := db.OpenCollections(util.InventoryCollection)
	var item models.InventoryItem
	err = db.FindOne(c, collection, bson.M{"_id": oid}, &item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, util.NotFoundError(util.ITEM_NOT_FOUND)
	}
	if err != nil {
		log.Println("Error from findOne while fetching item:", err)
		return nil, err
	}
	return &item, nil
}

/*
* Reject a duplicate (name, category) pair
* Default the threshold and derive the initial status
 */
func CreateItem(c *gin.Context, item models.InventoryItem) (*models.InventoryItem, error) {
	if item.Name == "" || item.Category == "" || item.Unit == "" {
		return nil, util.ValidationError(util.ITEM_FIELDS_REQUIRED)
	}
	if !slices.Contains(models.InventoryCategories, item.Category) {
		return nil, util.ValidationError(util.INVALID_ITEM_CATEGORY)
	}

	collection := db.OpenCollections(util.InventoryCollection)
	existing := make(map[string]interface{})
	err := db.FindOne(c, collection, bson.M{"name": item.Name, "category": item.Category}, &existing)
	if err == nil {
		return nil, util.ConflictError(util.ITEM_ALREADY_EXISTS)
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		log.Println("Error from findOne while checking item:", err)
		return nil, err
	}

	if item.LowStockThreshold <= 0 {
		item.LowStockThreshold = models.DefaultLowStockThreshold
	}
	item.Status = ComputeStockStatus(item.Quantity, item.LowStockThreshold)
	item.ID = primitive.NilObjectID
	item.UpdatedAt = time.Now()

	inserted, err := db.CreateOne(c, collection, item)
	if err != nil {
		log.Println("Error from createOne while inserting item:", err)
		return nil, err
	}
	item.ID = inserted.InsertedID.(primitive.ObjectID)
	return &item, nil
}

/*
* Merge the partial payload and recompute status in one pipeline update
* The derived field can never be observed stale, even under racing writers
 */
func UpdateItemByID(c *gin.Context, id string, data map[string]interface{}) (*models.InventoryItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, util.NotFoundError(util.ITEM_NOT_FOUND)
	}
	delete(data, "_id")
	// status is derived, never client-set
	delete(data, "status")
	if err := coerceDateField(data, "expiryDate"); err != nil {
		return nil, err
	}
	data["updatedAt"] = time.Now()

	// a pipeline $set evaluates its values as expressions, so client
	// values go through $literal to keep "$supplier" a plain string
	setStage := bson.D{}
	for key, value := range data {
		setStage = append(setStage, bson.E{Key: key, Value: bson.D{{Key: "$literal", Value: value}}})
	}
	update := mongo.Pipeline{
		bson.D{{Key: "$set", Value: setStage}},
		stockStatusStage(),
	}

	collection := db.OpenCollections(util.InventoryCollection)
	var item models.InventoryItem
	err = db.FindOneAndUpdate(c, collection, bson.M{"_id": oid}, update, &item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, util.NotFoundError(util.ITEM_NOT_FOUND)
	}
	if err != nil {
		log.Println("Error from findOneAndUpdate while updating item:", err)
		return nil, err
	}
	return &item, nil
}

func DeleteItemByID(c *gin.Context, id string) (string, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", util.NotFoundError(util.ITEM_NOT_FOUND)
	}
	collection := db.OpenCollections(util.InventoryCollection)
	deleted, err := db.DeleteOne(c, collection, bson.M{"_id": oid})
	if err != nil {
		log.Println("Error from deleteOne while deleting item:", err)
		return "", err
	}
	if deleted.DeletedCount == 0 {
		return "", util.NotFoundError(util.ITEM_NOT_FOUND)
	}
	return "Item deleted", nil
}
