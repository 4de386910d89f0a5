package model

// RawEmail is an email record as received, before validation. Kept untyped
// so the validator can tell a missing field from a non-string one.
type RawEmail map[string]any

// Email is a validated email. Immutable once built.
type Email struct {
	ID        string `json:"id"`
	From      string `json:"from"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Timestamp string `json:"timestamp"` // ISO-8601, kept verbatim
}
