package services

import (
	"errors"
	"log"
	"time"

	"mediflow/config/db"
	"mediflow/models"
	"mediflow/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

/*
* Join the patient name and phone with a $lookup
* Sort newest first
 */
func FetchAllInvoices(c *gin.Context) ([]bson.M, error) {
	collection := db.OpenCollections(util.InvoiceCollection)
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: util.PatientCollection},
			{Key: "localField", Value: "patient"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "patientInfo"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$patientInfo"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		bson.D{{Key: "$addFields", Value: bson.D{
			{Key: "patientInfo", Value: bson.D{
				{Key: "name", Value: "$patientInfo.name"},
				{Key: "phone", Value: "$patientInfo.phone"},
			}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "date", Value: -1}}}},
	}

	invoices := []bson.M{}
	if err := db.Aggregate(c, collection, pipeline, &invoices); err != nil {
		log.Println("Error from aggregate while fetching invoices:", err)
		return nil, err
	}
	return invoices, nil
}

/*
* Require a patient reference and a positive total
* Derive the total from the line items when it is omitted
 */
func CreateInvoice(c *gin.Context, invoice models.Invoice) (*models.Invoice, error) {
	if invoice.TotalAmount <= 0 && len(invoice.Items) > 0 {
		for _, item := range invoice.Items {
			qty := item.Quantity
			if qty <= 0 {
				qty = 1
			}
			invoice.TotalAmount += item.Cost * float64(qty)
		}
	}
	if invoice.Patient.IsZero() || invoice.TotalAmount <= 0 {
		return nil, util.ValidationError(util.INVOICE_FIELDS_REQUIRED)
	}
	if invoice.Status == "" {
		invoice.Status = models.InvoicePending
	}
	if invoice.PaymentMethod == "" {
		invoice.PaymentMethod = models.PaymentNone
	}
	if invoice.Items == nil {
		invoice.Items = []models.InvoiceItem{}
	}
	if invoice.Date.IsZero() {
		invoice.Date = time.Now()
	}
	invoice.ID = primitive.NilObjectID

	collection := db.OpenCollections(util.InvoiceCollection)
	inserted, err := db.CreateOne(c, collection, invoice)
	if err != nil {
		log.Println("Error from createOne while inserting invoice:", err)
		return nil, err
	}
	invoice.ID = inserted.InsertedID.(primitive.ObjectID)
	return &invoice, nil
}

func PayInvoice(c *gin.Context, id string, paymentMethod string) (*models.Invoice, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, util.NotFoundError(util.INVOICE_NOT_FOUND)
	}
	if paymentMethod == "" {
		paymentMethod = models.PaymentCash
	}

	collection := db.OpenCollections(util.InvoiceCollection)
	var invoice models.Invoice
	update := bson.M{"$set": bson.M{"status": models.InvoicePaid, "paymentMethod": paymentMethod}}
	err = db.FindOneAndUpdate(c, collection, bson.M{"_id": oid}, update, &invoice)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, util.NotFoundError(util.INVOICE_NOT_FOUND)
	}
	if err != nil {
		log.Println("Error from findOneAndUpdate while paying invoice:", err)
		return nil, err
	}
	return &invoice, nil
}
