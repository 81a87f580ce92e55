package services

import (
	"errors"
	"log"
	"time"

	"mediflow/config/db"
	"mediflow/config/redis"
	"mediflow/models"
	"mediflow/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func FetchAllPatients(c *gin.Context) ([]models.Patient, error) {
	collection := db.OpenCollections(util.PatientCollection)
	patients := []models.Patient{}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if err := db.FindAll(c, collection, bson.M{}, opts, &patients); err != nil {
		log.Println("Error from findAll while fetching patients:", err)
		return nil, err
	}
	return patients, nil
}

/*
* Treat a malformed id the same as a missing document
* Serve from cache when possible, else read and backfill the cache
 */
func FetchPatientByID(c *gin.Context, id string) (*models.Patient, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, util.NotFoundError(util.PATIENT_NOT_FOUND)
	}

	key := util.PatientKey + id
	var cached models.Patient
	if hit, err := redis.GetCache(c, key, &cached); err == nil && hit {
		return &cached, nil
	}

	collection := db.OpenCollections(util.PatientCollection)
	var patient models.Patient
	err = db.FindOne(c, collection, bson.M{"_id": oid}, &patient)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, util.NotFoundError(util.PATIENT_NOT_FOUND)
	}
	if err != nil {
		log.Println("Error from findOne while fetching patient:", err)
		return nil, err
	}
	if err := redis.SetCache(c, key, patient); err != nil {
		log.Println("Failed caching patient:", err)
	}
	return &patient, nil
}

/*
* Validate the required fields and the gender enum
* Default the status to Active and stamp createdAt
* Insert and return the stored document
 */
func CreatePatient(c *gin.Context, patient models.Patient) (*models.Patient, error) {
	if patient.Name == "" || patient.Age <= 0 || patient.Gender == "" || patient.Phone == "" {
		return nil, util.ValidationError(util.PATIENT_FIELDS_REQUIRED)
	}
	validGender := false
	for _, g := range models.Genders {
		if patient.Gender == g {
			validGender = true
			break
		}
	}
	if !validGender {
		return nil, util.ValidationError(util.INVALID_GENDER)
	}

	if patient.Status == "" {
		patient.Status = models.PatientStatusActive
	}
	if patient.MedicalHistory == nil {
		patient.MedicalHistory = []string{}
	}
	if patient.Allergies == nil {
		patient.Allergies = []string{}
	}
	patient.ID = primitive.NilObjectID
	patient.CreatedAt = time.Now()

	collection := db.OpenCollections(util.PatientCollection)
	inserted, err := db.CreateOne(c, collection, patient)
	if err != nil {
		log.Println("Error from createOne while inserting patient:", err)
		return nil, err
	}
	patient.ID = inserted.InsertedID.(primitive.ObjectID)
	return &patient, nil
}

/*
* Merge the partial payload with a $set
* Return the post update document and refresh the cache
 */
func UpdatePatientByID(c *gin.Context, id string, data map[string]interface{}) (*models.Patient, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, util.NotFoundError(util.PATIENT_NOT_FOUND)
	}
	delete(data, "_id")
	if err := coerceDateField(data, "createdAt"); err != nil {
		return nil, err
	}

	collection := db.OpenCollections(util.PatientCollection)
	var patient models.Patient
	err = db.FindOneAndUpdate(c, collection, bson.M{"_id": oid}, bson.M{"$set": data}, &patient)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, util.NotFoundError(util.PATIENT_NOT_FOUND)
	}
	if err != nil {
		log.Println("Error from findOneAndUpdate while updating patient:", err)
		return nil, err
	}

	key := util.PatientKey + id
	if err := redis.DeleteCache(c, key); err != nil {
		log.Println("Failed deleting old patient cache:", err)
	}
	if err := redis.SetCache(c, key, patient); err != nil {
		log.Println("Failed caching updated patient:", err)
	}
	return &patient, nil
}

/*
* Remove the patient document only
* Appointments and invoices keep their reference; readers tolerate the orphan
 */
func DeletePatientByID(c *gin.Context, id string) (string, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", util.NotFoundError(util.PATIENT_NOT_FOUND)
	}
	collection := db.OpenCollections(util.PatientCollection)
	deleted, err := db.DeleteOne(c, collection, bson.M{"_id": oid})
	if err != nil {
		log.Println("Error from deleteOne while deleting patient:", err)
		return "", err
	}
	if deleted.DeletedCount == 0 {
		return "", util.NotFoundError(util.PATIENT_NOT_FOUND)
	}
	if err := redis.DeleteCache(c, util.PatientKey+id); err != nil {
		log.Println("Failed deleting patient cache:", err)
	}
	return "Patient deleted", nil
}
