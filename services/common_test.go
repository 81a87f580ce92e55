package services

import (
	"errors"
	"testing"
	"time"

	"mediflow/models"
	"mediflow/util"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		name string
		raw  interface{}
		ok   bool
	}{
		{"date only", "2026-09-02", true},
		{"rfc3339", "2026-09-02T10:30:00Z", true},
		{"rfc3339 nano", "2026-09-02T10:30:00.123456789Z", true},
		{"already a time", time.Now(), true},
		{"garbage string", "next tuesday", false},
		{"number", 1725235200, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := normalizeDate(tc.raw)
			assert.Equal(t, tc.ok, ok)
		})
	}
}

func TestCoerceDateField(t *testing.T) {
	t.Run("string becomes a time value", func(t *testing.T) {
		data := map[string]interface{}{"date": "2026-09-02"}
		assert.NoError(t, coerceDateField(data, "date"))
		coerced, ok := data["date"].(time.Time)
		assert.True(t, ok)
		assert.Equal(t, 2026, coerced.Year())
	})

	t.Run("missing key is a no-op", func(t *testing.T) {
		data := map[string]interface{}{"doctor": "Dr. Rao"}
		assert.NoError(t, coerceDateField(data, "date"))
		assert.NotContains(t, data, "date")
	})

	t.Run("unparseable value rejected", func(t *testing.T) {
		data := map[string]interface{}{"date": "soon"}
		err := coerceDateField(data, "date")
		assert.True(t, errors.Is(err, util.ErrValidation))
	})
}

// A partial update must never store a date field as a string, or every
// later typed read of the document fails to decode.
func TestCoercedDateDecodesIntoAppointment(t *testing.T) {
	data := map[string]interface{}{"date": "2026-09-02", "doctor": "Dr. Rao"}
	assert.NoError(t, coerceDateField(data, "date"))

	raw, err := bson.Marshal(data)
	assert.NoError(t, err)

	var appt models.Appointment
	assert.NoError(t, bson.Unmarshal(raw, &appt))
	assert.Equal(t, 2026, appt.Date.Year())

	// the uncoerced payload is exactly what a typed read chokes on
	stale, err := bson.Marshal(map[string]interface{}{"date": "2026-09-02"})
	assert.NoError(t, err)
	assert.Error(t, bson.Unmarshal(stale, &appt))
}
