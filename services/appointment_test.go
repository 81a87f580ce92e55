package services

import (
	"testing"
	"time"

	"mediflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildVisitInvoiceWithCodes(t *testing.T) {
	patientID := primitive.NewObjectID()
	apptID := primitive.NewObjectID()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	codes := []BillingCode{
		{Code: "99213", Desc: "Office visit"},
		{Code: "87086", Desc: "Urine culture"},
		{Code: "99000"},
	}
	invoice := BuildVisitInvoice(patientID, apptID, "Dr. X", codes, now)

	assert.Equal(t, patientID, invoice.Patient)
	assert.Equal(t, apptID, invoice.Appointment)
	assert.Equal(t, "Dr. X", invoice.Doctor)
	assert.Equal(t, models.InvoicePending, invoice.Status)
	assert.Equal(t, models.PaymentNone, invoice.PaymentMethod)
	assert.Equal(t, 3*150.0, invoice.TotalAmount)
	assert.Equal(t, now.Add(7*24*time.Hour), invoice.DueDate)

	require.Len(t, invoice.Items, 3)
	assert.Equal(t, "Office visit", invoice.Items[0].Description)
	assert.Equal(t, 150.0, invoice.Items[0].Cost)
	assert.Equal(t, 1, invoice.Items[0].Quantity)
	// empty desc falls back to the raw code
	assert.Equal(t, "99000", invoice.Items[2].Description)
}

func TestBuildVisitInvoiceWithoutCodes(t *testing.T) {
	now := time.Now()
	invoice := BuildVisitInvoice(primitive.NewObjectID(), primitive.NewObjectID(), "Dr. X", nil, now)

	assert.Equal(t, 200.0, invoice.TotalAmount)
	require.Len(t, invoice.Items, 1)
	assert.Equal(t, "General Consultation", invoice.Items[0].Description)
	assert.Equal(t, 200.0, invoice.Items[0].Cost)
	assert.Equal(t, models.InvoicePending, invoice.Status)
}

func TestBuildVisitInvoiceEmptyCodesMeansFlatFee(t *testing.T) {
	invoice := BuildVisitInvoice(primitive.NewObjectID(), primitive.NewObjectID(), "", []BillingCode{}, time.Now())
	assert.Equal(t, 200.0, invoice.TotalAmount)
	require.Len(t, invoice.Items, 1)
}

func TestBuildReminderMessage(t *testing.T) {
	date := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)
	msg := BuildReminderMessage("Dr. Strange", date, "09:00")
	assert.Equal(t, "Reminder: Your appointment with Dr. Strange is on 02 Apr 2026 at 09:00.", msg)
}
