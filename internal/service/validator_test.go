package service

import (
	"errors"
	"testing"

	"mailtriage/internal/model"
)

func validRaw() model.RawEmail {
	return model.RawEmail{
		"id":        "001",
		"from":      "customer@example.com",
		"subject":   "Broken product received",
		"body":      "It arrived damaged.",
		"timestamp": "2024-03-15T10:30:00Z",
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(model.RawEmail)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(r model.RawEmail) {},
		},
		{
			name:   "valid-zoneless-timestamp",
			mutate: func(r model.RawEmail) { r["timestamp"] = "2024-03-15T10:30:00" },
		},
		{
			name:   "valid-minute-precision-timestamp",
			mutate: func(r model.RawEmail) { r["timestamp"] = "2024-03-15T10:30" },
		},
		{
			name:   "valid-date-only-timestamp",
			mutate: func(r model.RawEmail) { r["timestamp"] = "2024-03-15" },
		},
		{
			name:    "missing-id",
			mutate:  func(r model.RawEmail) { delete(r, "id") },
			wantErr: "missing field: id",
		},
		{
			name:    "missing-timestamp",
			mutate:  func(r model.RawEmail) { delete(r, "timestamp") },
			wantErr: "missing field: timestamp",
		},
		{
			name:    "non-string-subject",
			mutate:  func(r model.RawEmail) { r["subject"] = 42 },
			wantErr: "invalid value for field: subject",
		},
		{
			name:    "bad-timestamp",
			mutate:  func(r model.RawEmail) { r["timestamp"] = "yesterday" },
			wantErr: "invalid timestamp format",
		},
		{
			// missing-field 优先于 type error
			name: "missing-beats-type",
			mutate: func(r model.RawEmail) {
				delete(r, "from")
				r["subject"] = 42
			},
			wantErr: "missing field: from",
		},
		{
			name: "type-beats-timestamp",
			mutate: func(r model.RawEmail) {
				r["body"] = []string{"x"}
				r["timestamp"] = "yesterday"
			},
			wantErr: "invalid value for field: body",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			raw := validRaw()
			test.mutate(raw)

			email, err := ValidateEmail(raw)
			if test.wantErr == "" {
				if err != nil {
					t.Fatalf("ValidateEmail: %v", err)
				}
				if email.ID != "001" {
					t.Fatalf("email.ID = %q, want 001", email.ID)
				}
				return
			}

			if err == nil {
				t.Fatalf("expected error %q, got none", test.wantErr)
			}
			if err.Error() != test.wantErr {
				t.Fatalf("error = %q, want %q", err.Error(), test.wantErr)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error is %T, want *ValidationError", err)
			}
		})
	}
}
