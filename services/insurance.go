package services

import (
	"log"
	"time"

	"mediflow/config/db"
	"mediflow/models"
	"mediflow/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func FetchAllClaims(c *gin.Context) ([]models.Claim, error) {
	collection := db.OpenCollections(util.ClaimCollection)
	claims := []models.Claim{}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if err := db.FindAll(c, collection, bson.M{}, opts, &claims); err != nil {
		log.Println("Error from findAll while fetching claims:", err)
		return nil, err
	}
	return claims, nil
}

func CreateClaim(c *gin.Context, claim models.Claim) (*models.Claim, error) {
	if claim.Patient == "" || claim.Provider == "" || claim.Amount <= 0 {
		return nil, util.ValidationError(util.CLAIM_FIELDS_REQUIRED)
	}
	if claim.Status == "" {
		claim.Status = models.ClaimPending
	}
	if claim.Date.IsZero() {
		claim.Date = time.Now()
	}
	claim.ID = primitive.NilObjectID

	collection := db.OpenCollections(util.ClaimCollection)
	inserted, err := db.CreateOne(c, collection, claim)
	if err != nil {
		log.Println("Error from createOne while inserting claim:", err)
		return nil, err
	}
	claim.ID = inserted.InsertedID.(primitive.ObjectID)
	return &claim, nil
}
