package service

import (
	"time"

	"mailtriage/internal/model"
)

// requiredFields is checked in this order; the first violation wins.
var requiredFields = []string{"id", "from", "subject", "body", "timestamp"}

// ValidateEmail checks a raw record for structural well-formedness and
// returns the typed email. For each field, presence is checked before type;
// the timestamp format is checked last. No side effects.
func ValidateEmail(raw model.RawEmail) (*model.Email, error) {
	for _, field := range requiredFields {
		v, ok := raw[field]
		if !ok {
			return nil, &ValidationError{Reason: "missing field: " + field}
		}
		if _, ok := v.(string); !ok {
			return nil, &ValidationError{Reason: "invalid value for field: " + field}
		}
	}

	ts := raw["timestamp"].(string)
	if !validTimestamp(ts) {
		return nil, &ValidationError{Reason: "invalid timestamp format"}
	}

	return &model.Email{
		ID:        raw["id"].(string),
		From:      raw["from"].(string),
		Subject:   raw["subject"].(string),
		Body:      raw["body"].(string),
		Timestamp: ts,
	}, nil
}

// timestampLayouts lists the accepted ISO-8601 forms, from the fully
// qualified RFC3339 down to a bare date.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func validTimestamp(ts string) bool {
	for _, layout := range timestampLayouts {
		if _, err := time.Parse(layout, ts); err == nil {
			return true
		}
	}
	return false
}
