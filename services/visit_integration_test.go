package services

import (
	"context"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"mediflow/config/db"
	"mediflow/models"
	"mediflow/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// These tests run against a real MongoDB replica set (transactions need one).
// Set MONGO_URI to enable them, e.g.
//
//	MONGO_URI=mongodb://127.0.0.1:27017/?replicaSet=rs0 DB_NAME=mediflow_test go test ./services/
func testContext(t *testing.T) *gin.Context {
	t.Helper()
	if os.Getenv("MONGO_URI") == "" {
		t.Skip("MONGO_URI not set, skipping mongo integration test")
	}
	gin.SetMode(gin.TestMode)
	if db.Client == nil {
		require.NoError(t, db.Connect(context.Background()))
	}
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	return c
}

type countingNotifier struct {
	sent []string
}

func (n *countingNotifier) Send(to, message string) error {
	n.sent = append(n.sent, message)
	return nil
}

func TestCompleteVisitFlatFee(t *testing.T) {
	c := testContext(t)

	patient, err := CreatePatient(c, models.Patient{Name: "A", Age: 30, Gender: "Male", Phone: "1"})
	require.NoError(t, err)

	appt, err := CreateAppointment(c, models.Appointment{
		Patient: patient.ID,
		Doctor:  "Dr. X",
		Date:    time.Now().Add(24 * time.Hour),
		Time:    "09:00",
	})
	require.NoError(t, err)
	require.Equal(t, models.AppointmentScheduled, appt.Status)

	result, err := CompleteVisit(c, appt.ID.Hex(), CompleteVisitInput{ClinicalNotes: "flu symptoms"})
	require.NoError(t, err)

	assert.Equal(t, models.AppointmentCompleted, result.Appointment.Status)
	assert.Equal(t, "flu symptoms", result.Appointment.Notes)
	assert.Equal(t, 200.0, result.Invoice.TotalAmount)
	assert.Equal(t, models.InvoicePending, result.Invoice.Status)
	assert.False(t, result.Invoice.ID.IsZero())

	updated, err := FetchPatientByID(c, patient.ID.Hex())
	require.NoError(t, err)
	require.Len(t, updated.MedicalHistory, 1)
	assert.Contains(t, updated.MedicalHistory[0], "flu symptoms")
}

func TestCompleteVisitCodedFees(t *testing.T) {
	c := testContext(t)

	patient, err := CreatePatient(c, models.Patient{Name: "B", Age: 41, Gender: "Female", Phone: "2"})
	require.NoError(t, err)
	appt, err := CreateAppointment(c, models.Appointment{
		Patient: patient.ID,
		Doctor:  "Dr. Y",
		Date:    time.Now(),
		Time:    "10:30",
	})
	require.NoError(t, err)

	codes := []BillingCode{{Code: "99213", Desc: "Office visit"}, {Code: "87086", Desc: "Urine culture"}}
	result, err := CompleteVisit(c, appt.ID.Hex(), CompleteVisitInput{ClinicalNotes: "follow-up", Codes: codes})
	require.NoError(t, err)

	assert.Equal(t, 300.0, result.Invoice.TotalAmount)
	assert.Len(t, result.Invoice.Items, 2)
}

func TestCompleteVisitMissingAppointment(t *testing.T) {
	c := testContext(t)

	_, err := CompleteVisit(c, "64f000000000000000000000", CompleteVisitInput{ClinicalNotes: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestCompleteVisitToleratesDeletedPatient(t *testing.T) {
	c := testContext(t)

	patient, err := CreatePatient(c, models.Patient{Name: "C", Age: 55, Gender: "Other", Phone: "3"})
	require.NoError(t, err)
	appt, err := CreateAppointment(c, models.Appointment{
		Patient: patient.ID,
		Doctor:  "Dr. Z",
		Date:    time.Now(),
		Time:    "11:00",
	})
	require.NoError(t, err)

	_, err = DeletePatientByID(c, patient.ID.Hex())
	require.NoError(t, err)

	// orphaned reference: the visit still completes and bills
	result, err := CompleteVisit(c, appt.ID.Hex(), CompleteVisitInput{ClinicalNotes: "walk-in"})
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentCompleted, result.Appointment.Status)
	assert.Equal(t, 200.0, result.Invoice.TotalAmount)
}

func TestCompleteVisitRejectsFinalStates(t *testing.T) {
	c := testContext(t)

	patient, err := CreatePatient(c, models.Patient{Name: "E", Age: 62, Gender: "Female", Phone: "4"})
	require.NoError(t, err)
	appt, err := CreateAppointment(c, models.Appointment{
		Patient: patient.ID,
		Doctor:  "Dr. W",
		Date:    time.Now(),
		Time:    "12:00",
	})
	require.NoError(t, err)

	_, err = CompleteVisit(c, appt.ID.Hex(), CompleteVisitInput{ClinicalNotes: "first pass"})
	require.NoError(t, err)

	// completing twice must not bill twice
	_, err = CompleteVisit(c, appt.ID.Hex(), CompleteVisitInput{ClinicalNotes: "second pass"})
	require.Error(t, err)
	assert.ErrorIs(t, err, util.ErrConflict)
	assert.Equal(t, util.VISIT_ALREADY_COMPLETED, err.Error())

	invoices := []models.Invoice{}
	require.NoError(t, db.FindAll(c, db.OpenCollections(util.InvoiceCollection), bson.M{"appointment": appt.ID}, nil, &invoices))
	assert.Len(t, invoices, 1)

	cancelled, err := CreateAppointment(c, models.Appointment{
		Patient: patient.ID,
		Doctor:  "Dr. W",
		Date:    time.Now(),
		Time:    "13:00",
	})
	require.NoError(t, err)
	_, err = UpdateAppointmentByID(c, cancelled.ID.Hex(), map[string]interface{}{"status": models.AppointmentCancelled})
	require.NoError(t, err)

	_, err = CompleteVisit(c, cancelled.ID.Hex(), CompleteVisitInput{ClinicalNotes: "late"})
	require.Error(t, err)
	assert.ErrorIs(t, err, util.ErrConflict)
	assert.Equal(t, util.APPOINTMENT_ALREADY_CANCELLED, err.Error())
}

func TestUpdateAppointmentCoercesDateStrings(t *testing.T) {
	c := testContext(t)

	patient, err := CreatePatient(c, models.Patient{Name: "F", Age: 33, Gender: "Male", Phone: "555-9876"})
	require.NoError(t, err)
	appt, err := CreateAppointment(c, models.Appointment{
		Patient: patient.ID,
		Doctor:  "Dr. V",
		Date:    time.Now(),
		Time:    "15:00",
	})
	require.NoError(t, err)

	// a date-only string must land as a real date, not a BSON string
	moved, err := UpdateAppointmentByID(c, appt.ID.Hex(), map[string]interface{}{"date": "2026-09-02"})
	require.NoError(t, err)
	assert.Equal(t, 2026, moved.Date.Year())

	// typed reads of the document keep working afterwards
	_, err = SendReminder(c, appt.ID.Hex())
	require.NoError(t, err)

	_, err = UpdateAppointmentByID(c, appt.ID.Hex(), map[string]interface{}{"date": "whenever"})
	require.Error(t, err)
	assert.ErrorIs(t, err, util.ErrValidation)
}

func TestUpdateItemStoresClientValuesVerbatim(t *testing.T) {
	c := testContext(t)

	item, err := CreateItem(c, models.InventoryItem{
		Name:     "Saline " + time.Now().Format("150405.000"),
		Category: "Medicine",
		Quantity: 30,
		Unit:     "bags",
	})
	require.NoError(t, err)

	// dollar-prefixed strings are stored as-is, never read as field paths
	updated, err := UpdateItemByID(c, item.ID.Hex(), map[string]interface{}{
		"supplier":   "$lowStockThreshold",
		"expiryDate": "2027-01-31",
	})
	require.NoError(t, err)
	assert.Equal(t, "$lowStockThreshold", updated.Supplier)
	assert.Equal(t, 2027, updated.ExpiryDate.Year())

	items, err := FetchAllItems(c)
	require.NoError(t, err)
	assert.NotEmpty(t, items)
}

func TestSendReminderDispatchesEveryCall(t *testing.T) {
	c := testContext(t)

	patient, err := CreatePatient(c, models.Patient{Name: "D", Age: 29, Gender: "Male", Phone: "555-1234"})
	require.NoError(t, err)
	appt, err := CreateAppointment(c, models.Appointment{
		Patient: patient.ID,
		Doctor:  "Dr. X",
		Date:    time.Now().Add(48 * time.Hour),
		Time:    "14:00",
	})
	require.NoError(t, err)

	notifier := &countingNotifier{}
	old := ReminderNotifier
	ReminderNotifier = notifier
	defer func() { ReminderNotifier = old }()

	first, err := SendReminder(c, appt.ID.Hex())
	require.NoError(t, err)
	assert.True(t, first.ReminderSent)
	assert.Equal(t, models.ReminderSent, first.ReminderStatus)

	// second call flips nothing new but dispatches again
	second, err := SendReminder(c, appt.ID.Hex())
	require.NoError(t, err)
	assert.True(t, second.ReminderSent)
	assert.Len(t, notifier.sent, 2)
}

func TestInventoryStatusNeverStale(t *testing.T) {
	c := testContext(t)

	item, err := CreateItem(c, models.InventoryItem{
		Name:              "Gauze " + time.Now().Format("150405.000"),
		Category:          "Consumables",
		Quantity:          20,
		Unit:              "boxes",
		UnitPrice:         3.5,
		LowStockThreshold: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StockIn, item.Status)

	low, err := UpdateItemByID(c, item.ID.Hex(), map[string]interface{}{"quantity": 5})
	require.NoError(t, err)
	assert.Equal(t, models.StockLow, low.Status)

	out, err := UpdateItemByID(c, item.ID.Hex(), map[string]interface{}{"quantity": 0})
	require.NoError(t, err)
	assert.Equal(t, models.StockOut, out.Status)

	restocked, err := UpdateItemByID(c, item.ID.Hex(), map[string]interface{}{"quantity": 40})
	require.NoError(t, err)
	assert.Equal(t, models.StockIn, restocked.Status)

	// status is derived; a client cannot force it
	forced, err := UpdateItemByID(c, item.ID.Hex(), map[string]interface{}{"status": "Out of Stock"})
	require.NoError(t, err)
	assert.Equal(t, models.StockIn, forced.Status)

	var stored models.InventoryItem
	require.NoError(t, db.FindOne(c, db.OpenCollections(util.InventoryCollection), bson.M{"_id": item.ID}, &stored))
	assert.Equal(t, ComputeStockStatus(stored.Quantity, stored.LowStockThreshold), stored.Status)
}
