package mq

import "time"

// ResponseSendPayload 邮件回复事件的 payload
type ResponseSendPayload struct {
	EmailID  string    `json:"email_id"`
	Kind     string    `json:"kind"` // standard / complaint
	Response string    `json:"response"`
	QueuedAt time.Time `json:"queued_at"`
}

type TicketCreatePayload struct {
	EmailID  string    `json:"email_id"`
	Urgency  string    `json:"urgency"` // urgent / support
	Category string    `json:"category,omitempty"`
	Context  string    `json:"context"`
	QueuedAt time.Time `json:"queued_at"`
}

type FeedbackRecordedPayload struct {
	EmailID    string    `json:"email_id"`
	Feedback   string    `json:"feedback"`
	RecordedAt time.Time `json:"recorded_at"`
}
