package services

import (
	"log"
	"strconv"
	"time"

	"mediflow/config/db"
	"mediflow/config/redis"
	"mediflow/models"
	"mediflow/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type StatCard struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Color  string `json:"color"`
}

const statsCacheTTL = 60 * time.Second

/*
* Sum totalAmount over paid invoices
 */
func paidRevenue(c *gin.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "status", Value: models.InvoicePaid}}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$totalAmount"}}},
		}}},
	}
	results := []struct {
		Total float64 `bson:"total"`
	}{}
	if err := db.Aggregate(c, db.OpenCollections(util.InvoiceCollection), pipeline, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

/*
* Shape the cards per role like the dashboard expects
* Cached for a minute per role
 */
func FetchDashboardStats(c *gin.Context, role string, userID string) ([]StatCard, error) {
	key := util.StatsKey + role
	cached := []StatCard{}
	if hit, err := redis.GetCache(c, key, &cached); err == nil && hit {
		return cached, nil
	}

	patients := db.OpenCollections(util.PatientCollection)
	appointments := db.OpenCollections(util.AppointmentCollection)
	invoices := db.OpenCollections(util.InvoiceCollection)

	var stats []StatCard
	switch role {
	case "admin", "billing", "receptionist":
		patientCount, err := db.CountDocuments(c, patients, nil)
		if err != nil {
			return nil, err
		}
		revenue, err := paidRevenue(c)
		if err != nil {
			return nil, err
		}
		appointmentCount, err := db.CountDocuments(c, appointments, nil)
		if err != nil {
			return nil, err
		}
		pendingInvoices, err := db.CountDocuments(c, invoices, bson.M{"status": models.InvoicePending})
		if err != nil {
			return nil, err
		}
		stats = []StatCard{
			{Title: "Total Patients", Value: strconv.FormatInt(patientCount, 10), Change: "Hospital wide", Color: "text-blue-600"},
			{Title: "Revenue", Value: "$" + strconv.FormatFloat(revenue, 'f', -1, 64), Change: "Total Collection", Color: "text-green-600"},
			{Title: "Appointments", Value: strconv.FormatInt(appointmentCount, 10), Change: "Total Scheduled", Color: "text-purple-600"},
			{Title: "Pending Invoices", Value: strconv.FormatInt(pendingInvoices, 10), Change: "Unpaid", Color: "text-orange-600"},
		}
	case "doctor":
		patientCount, err := db.CountDocuments(c, patients, bson.M{"assignedDoctor": userID})
		if err != nil {
			return nil, err
		}
		appointmentCount, err := db.CountDocuments(c, appointments, bson.M{"doctor": userID})
		if err != nil {
			return nil, err
		}
		completedToday, err := db.CountDocuments(c, appointments, bson.M{
			"doctor": userID,
			"status": models.AppointmentCompleted,
			"date":   bson.M{"$gte": startOfDay(time.Now())},
		})
		if err != nil {
			return nil, err
		}
		critical, err := db.CountDocuments(c, patients, bson.M{"status": models.PatientStatusCritical})
		if err != nil {
			return nil, err
		}
		stats = []StatCard{
			{Title: "My Patients", Value: strconv.FormatInt(patientCount, 10), Change: "Assigned to you", Color: "text-blue-600"},
			{Title: "Appointments", Value: strconv.FormatInt(appointmentCount, 10), Change: "Your schedule", Color: "text-purple-600"},
			{Title: "Critical Alerts", Value: strconv.FormatInt(critical, 10), Change: "Need attention", Color: "text-red-600"},
			{Title: "Consultations", Value: strconv.FormatInt(completedToday, 10), Change: "Completed today", Color: "text-green-600"},
		}
	default:
		patientCount, err := db.CountDocuments(c, patients, nil)
		if err != nil {
			return nil, err
		}
		critical, err := db.CountDocuments(c, patients, bson.M{"status": models.PatientStatusCritical})
		if err != nil {
			return nil, err
		}
		scheduled, err := db.CountDocuments(c, appointments, bson.M{"status": models.AppointmentScheduled})
		if err != nil {
			return nil, err
		}
		stats = []StatCard{
			{Title: "Total Patients", Value: strconv.FormatInt(patientCount, 10), Change: "Monitoring", Color: "text-blue-600"},
			{Title: "Scheduled Visits", Value: strconv.FormatInt(scheduled, 10), Change: "Upcoming", Color: "text-orange-600"},
			{Title: "Critical Patients", Value: strconv.FormatInt(critical, 10), Change: "Need attention", Color: "text-red-400"},
		}
	}

	if err := redis.SetCacheTTL(c, key, stats, statsCacheTTL); err != nil {
		log.Println("Failed caching dashboard stats:", err)
	}
	return stats, nil
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
