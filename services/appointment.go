package services

import (
	"errors"
	"fmt"
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

// Notifier is the outbound channel for appointment reminders. The default
// implementation logs the message; tests and real SMS gateways swap it.
type Notifier interface {
	Send(to string, message string) error
}

type smsLogNotifier struct{}

func (smsLogNotifier) Send(to string, message string) error {
	log.Printf("Sending SMS to %s: %q", to, message)
	return nil
}

var ReminderNotifier Notifier = smsLogNotifier{}

type BillingCode struct {
	Code string `json:"code"`
	Desc string `json:"desc"`
}

type CompleteVisitInput struct {
	ClinicalNotes string        `json:"clinicalNotes"`
	Codes         []BillingCode `json:"codes"`
}

type VisitResult struct {
	Msg         string             `json:"msg"`
	Appointment models.Appointment `json:"appointment"`
	Invoice     models.Invoice     `json:"invoice"`
}

const (
	feePerCode     = 150.0
	flatConsultFee = 200.0
	invoiceDueDays = 7
)

func appointmentLookupStages() mongo.Pipeline {
	return mongo.Pipeline{
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
	}
}

/*
* Join the patient name and phone with a $lookup
* Sort by date then time
 */
func FetchAllAppointments(c *gin.Context) ([]bson.M, error) {
	collection := db.OpenCollections(util.AppointmentCollection)
	pipeline := appointmentLookupStages()
	pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}}}})

	appointments := []bson.M{}
	if err := db.Aggregate(c, collection, pipeline, &appointments); err != nil {
		log.Println("Error from aggregate while fetching appointments:", err)
		return nil, err
	}
	return appointments, nil
}

func FetchAppointmentByID(c *gin.Context, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, util.NotFoundError(util.APPOINTMENT_NOT_FOUND)
	}
	collection := db.OpenCollections(util.AppointmentCollection)
	pipeline := mongo.Pipeline{bson.D{{Key: "$match", Value: bson.D{{Key: "_id", Value: oid}}}}}
	pipeline = append(pipeline, appointmentLookupStages()...)

	appointments := []bson.M{}
	if err := db.Aggregate(c, collection, pipeline, &appointments); err != nil {
		log.Println("Error from aggregate while fetching appointment:", err)
		return nil, err
	}
	if len(appointments) == 0 {
		return nil, util.NotFoundError(util.APPOINTMENT_NOT_FOUND)
	}
	return appointments[0], nil
}

/*
* Validate the required fields
* Default type Checkup, status Scheduled and reminder state None
 */
func CreateAppointment(c *gin.Context, appt models.Appointment) (*models.Appointment, error) {
	if appt.Patient.IsZero() || appt.Doctor == "" || appt.Date.IsZero() || appt.Time == "" {
		return nil, util.ValidationError(util.APPOINTMENT_FIELDS_REQUIRED)
	}
	if appt.Type == "" {
		appt.Type = models.AppointmentTypeCheckup
	}
	if appt.Status == "" {
		appt.Status = models.AppointmentScheduled
	}
	if appt.ReminderStatus == "" {
		appt.ReminderStatus = models.ReminderNone
	}
	appt.ID = primitive.NilObjectID
	appt.CreatedAt = time.Now()

	collection := db.OpenCollections(util.AppointmentCollection)
	inserted, err := db.CreateOne(c, collection, appt)
	if err != nil {
		log.Println("Error from createOne while inserting appointment:", err)
		return nil, err
	}
	appt.ID = inserted.InsertedID.(primitive.ObjectID)
	return &appt, nil
}

func UpdateAppointmentByID(c *gin.Context, id string, data map[string]interface{}) (*models.Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, util.NotFoundError(util.APPOINTMENT_NOT_FOUND)
	}
	delete(data, "_id")
	if raw, ok := data["patient"].(string); ok {
		pid, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return nil, util.ValidationError(util.APPOINTMENT_FIELDS_REQUIRED)
		}
		data["patient"] = pid
	}
	for _, key := range []string{"date", "createdAt"} {
		if err := coerceDateField(data, key); err != nil {
			return nil, err
		}
	}

	collection := db.OpenCollections(util.AppointmentCollection)
	var appt models.Appointment
	err = db.FindOneAndUpdate(c, collection, bson.M{"_id": oid}, bson.M{"$set": data}, &appt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, util.NotFoundError(util.APPOINTMENT_NOT_FOUND)
	}
	if err != nil {
		log.Println("Error from findOneAndUpdate while updating appointment:", err)
		return nil, err
	}
	return &appt, nil
}

// BuildReminderMessage formats the SMS body for an appointment reminder.
func BuildReminderMessage(doctor string, date time.Time, timeOfDay string) string {
	return fmt.Sprintf("Reminder: Your appointment with %s is on %s at %s.", doctor, date.Format("02 Jan 2006"), timeOfDay)
}

/*
* Load the appointment, 404 when missing
* Dispatch through the notifier; a missing patient just means an empty number
* Flip reminderSent and record Sent or Failed, then persist
* Calling twice dispatches twice; there is no deduplication
 */
func SendReminder(c *gin.Context, id string) (*models.Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, util.NotFoundError(util.APPOINTMENT_NOT_FOUND)
	}
	collection := db.OpenCollections(util.AppointmentCollection)
	var appt models.Appointment
	err = db.FindOne(c, collection, bson.M{"_id": oid}, &appt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, util.NotFoundError(util.APPOINTMENT_NOT_FOUND)
	}
	if err != nil {
		log.Println("Error from findOne while fetching appointment:", err)
		return nil, err
	}

	phone := ""
	var patient models.Patient
	err = db.FindOne(c, db.OpenCollections(util.PatientCollection), bson.M{"_id": appt.Patient}, &patient)
	if err != nil {
		log.Println("Reminder: patient lookup failed, sending without a number:", err)
	} else {
		phone = patient.Phone
	}

	status := models.ReminderSent
	if err := ReminderNotifier.Send(phone, BuildReminderMessage(appt.Doctor, appt.Date, appt.Time)); err != nil {
		log.Println("Reminder dispatch failed:", err)
		status = models.ReminderFailed
	}

	var updated models.Appointment
	update := bson.M{"$set": bson.M{"reminderSent": true, "reminderStatus": status}}
	if err := db.FindOneAndUpdate(c, collection, bson.M{"_id": oid}, update, &updated); err != nil {
		log.Println("Error from findOneAndUpdate while updating reminder state:", err)
		return nil, err
	}
	return &updated, nil
}

/*
* One line per billing code at the per code fee
* No codes means a single flat General Consultation line
 */
func BuildVisitInvoice(patientID primitive.ObjectID, appointmentID primitive.ObjectID, doctor string, codes []BillingCode, now time.Time) models.Invoice {
	invoice := models.Invoice{
		Patient:       patientID,
		Appointment:   appointmentID,
		Doctor:        doctor,
		Status:        models.InvoicePending,
		PaymentMethod: models.PaymentNone,
		Date:          now,
		DueDate:       now.Add(invoiceDueDays * 24 * time.Hour),
	}
	if len(codes) > 0 {
		invoice.TotalAmount = float64(len(codes)) * feePerCode
		for _, code := range codes {
			desc := code.Desc
			if desc == "" {
				desc = code.Code
			}
			invoice.Items = append(invoice.Items, models.InvoiceItem{Description: desc, Cost: feePerCode, Quantity: 1})
		}
		return invoice
	}
	invoice.TotalAmount = flatConsultFee
	invoice.Items = []models.InvoiceItem{{Description: "General Consultation", Cost: flatConsultFee, Quantity: 1}}
	return invoice
}

/*
* Run the whole visit closure inside one transaction:
* reject appointments already Completed or Cancelled,
* mark the appointment Completed with the clinical notes,
* append a dated entry to the patient history (missing patient tolerated),
* create the Pending invoice due in 7 days.
* Either every write lands or none of them do.
 */
func CompleteVisit(c *gin.Context, id string, input CompleteVisitInput) (*VisitResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, util.NotFoundError(util.APPOINTMENT_NOT_FOUND)
	}

	appointments := db.OpenCollections(util.AppointmentCollection)
	patients := db.OpenCollections(util.PatientCollection)
	invoices := db.OpenCollections(util.InvoiceCollection)

	now := time.Now()
	var result VisitResult

	err = db.WithTransaction(c, func(sc mongo.SessionContext) error {
		var appt models.Appointment
		err := db.FindOne(sc, appointments, bson.M{"_id": oid}, &appt)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return util.NotFoundError(util.APPOINTMENT_NOT_FOUND)
		}
		if err != nil {
			return err
		}
		if appt.Status == models.AppointmentCompleted {
			return util.ConflictError(util.VISIT_ALREADY_COMPLETED)
		}
		if appt.Status == models.AppointmentCancelled {
			return util.ConflictError(util.APPOINTMENT_ALREADY_CANCELLED)
		}

		update := bson.M{"$set": bson.M{"status": models.AppointmentCompleted, "notes": input.ClinicalNotes}}
		if err := db.FindOneAndUpdate(sc, appointments, bson.M{"_id": oid}, update, &appt); err != nil {
			return err
		}

		entry := fmt.Sprintf("[%s] %s", now.Format("01/02/2006"), input.ClinicalNotes)
		_, err = db.UpdateOne(sc, patients, bson.M{"_id": appt.Patient}, bson.M{"$push": bson.M{"medicalHistory": entry}})
		if err != nil {
			return err
		}

		invoice := BuildVisitInvoice(appt.Patient, appt.ID, appt.Doctor, input.Codes, now)
		inserted, err := db.CreateOne(sc, invoices, invoice)
		if err != nil {
			return err
		}
		invoice.ID = inserted.InsertedID.(primitive.ObjectID)

		result = VisitResult{
			Msg:         "Visit completed, records updated, and invoice generated.",
			Appointment: appt,
			Invoice:     invoice,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
