package services

import (
	"errors"
	"log"
	"slices"
	"strings"
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

func FetchAllStaff(c *gin.Context) ([]models.Staff, error) {
	collection := db.OpenCollections(util.StaffCollection)
	staff := []models.Staff{}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	if err := db.FindAll(c, collection, bson.M{}, opts, &staff); err != nil {
		log.Println("Error from findAll while fetching staff:", err)
		return nil, err
	}
	return staff, nil
}

func FetchStaffByID(c *gin.Context, id string) (*models.Staff, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, util.NotFoundError(util.STAFF_NOT_FOUND)
	}
	collection := db.OpenCollections(util.StaffCollection)
	var member models.Staff
	err = db.FindOne(c, collection, bson.M{"_id": oid}, &member)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, util.NotFoundError(util.STAFF_NOT_FOUND)
	}
	if err != nil {
		log.Println("Error from findOne while fetching staff:", err)
		return nil, err
	}
	return &member, nil
}

/*
* Validate required fields
* Reject a duplicate email before inserting
* Default department and employment status
 */
func CreateStaff(c *gin.Context, member models.Staff) (*models.Staff, error) {
	member.Email = strings.TrimSpace(strings.ToLower(member.Email))
	if member.Name == "" || member.Role == "" || member.Email == "" || member.Phone == "" {
		return nil, util.ValidationError(util.STAFF_FIELDS_REQUIRED)
	}
	if !slices.Contains(models.StaffRoles, member.Role) {
		return nil, util.ValidationError(util.INVALID_STAFF_ROLE)
	}

	collection := db.OpenCollections(util.StaffCollection)
	existing := make(map[string]interface{})
	err := db.FindOne(c, collection, bson.M{"email": member.Email}, &existing)
	if err == nil {
		return nil, util.ConflictError(util.STAFF_EMAIL_ALREADY_EXISTS)
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		log.Println("Error from findOne while checking staff email:", err)
		return nil, err
	}

	if member.Department == "" {
		member.Department = "General"
	}
	if member.Status == "" {
		member.Status = models.StaffStatusActive
	}
	if member.Availability == nil {
		member.Availability = []models.AvailabilityWindow{}
	}
	member.ID = primitive.NilObjectID
	member.CreatedAt = time.Now()

	inserted, err := db.CreateOne(c, collection, member)
	if err != nil {
		log.Println("Error from createOne while inserting staff:", err)
		return nil, err
	}
	member.ID = inserted.InsertedID.(primitive.ObjectID)
	return &member, nil
}

func UpdateStaffByID(c *gin.Context, id string, data map[string]interface{}) (*models.Staff, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, util.NotFoundError(util.STAFF_NOT_FOUND)
	}
	delete(data, "_id")
	if err := coerceDateField(data, "createdAt"); err != nil {
		return nil, err
	}

	collection := db.OpenCollections(util.StaffCollection)
	var member models.Staff
	err = db.FindOneAndUpdate(c, collection, bson.M{"_id": oid}, bson.M{"$set": data}, &member)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, util.NotFoundError(util.STAFF_NOT_FOUND)
	}
	if err != nil {
		log.Println("Error from findOneAndUpdate while updating staff:", err)
		return nil, err
	}
	return &member, nil
}
