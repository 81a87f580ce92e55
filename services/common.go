package services

import (
	"time"

	"mediflow/util"
)

// Layouts accepted for date fields on partial updates. Create paths bind
// straight into time.Time; the untyped merge paths must coerce here so a
// string never lands in a BSON date field and poisons later typed reads.
var dateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"}

func normalizeDate(raw interface{}) (time.Time, bool) {
	switch v := raw.(type) {
	case time.Time:
		return v, true
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

/*
* Coerce the field to a real time.Time when present
* Reject values no layout can parse
 */
func coerceDateField(data map[string]interface{}, key string) error {
	raw, ok := data[key]
	if !ok || raw == nil {
		return nil
	}
	t, ok := normalizeDate(raw)
	if !ok {
		return util.ValidationError(util.INVALID_DATE_FORMAT)
	}
	data[key] = t
	return nil
}
