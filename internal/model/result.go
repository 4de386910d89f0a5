package model

// ProcessingResult is the per-email outcome of a pipeline run. Created once
// per email and never mutated after the pipeline completes.
//
// Success implies a classification was set, a response template existed and
// the dispatch sequence completed. Error is set iff Success is false.
type ProcessingResult struct {
	EmailID        string   `json:"email_id"`
	Success        bool     `json:"success"`
	Classification Category `json:"classification,omitempty"`
	ResponseSent   bool     `json:"response_sent"`
	Error          string   `json:"error,omitempty"`
}
