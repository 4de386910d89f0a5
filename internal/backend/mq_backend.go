package backend

import (
	"context"
	"time"

	mqcontracts "mailtriage/contracts/mq"
	"mailtriage/internal/model"
	"mailtriage/pkg/mq"
)

// MQ adapters publish dispatch actions as events on the triage exchange,
// for the actual mailer / ticket system to consume downstream.

const (
	routingKeyResponseSend     = "response.send"
	routingKeyTicketCreate     = "ticket.create"
	routingKeyFeedbackRecorded = "feedback.recorded"
)

type MQMessenger struct {
	publisher *mq.Publisher
}

func NewMQMessenger(publisher *mq.Publisher) *MQMessenger {
	return &MQMessenger{publisher: publisher}
}

func (m *MQMessenger) SendStandardResponse(ctx context.Context, emailID, response string) error {
	return m.publisher.Publish(routingKeyResponseSend, mqcontracts.ResponseSendPayload{
		EmailID:  emailID,
		Kind:     "standard",
		Response: response,
		QueuedAt: time.Now(),
	})
}

func (m *MQMessenger) SendComplaintResponse(ctx context.Context, emailID, response string) error {
	return m.publisher.Publish(routingKeyResponseSend, mqcontracts.ResponseSendPayload{
		EmailID:  emailID,
		Kind:     "complaint",
		Response: response,
		QueuedAt: time.Now(),
	})
}

type MQTicketing struct {
	publisher *mq.Publisher
}

func NewMQTicketing(publisher *mq.Publisher) *MQTicketing {
	return &MQTicketing{publisher: publisher}
}

func (t *MQTicketing) CreateUrgentTicket(ctx context.Context, emailID string, category model.Category, details string) error {
	return t.publisher.Publish(routingKeyTicketCreate, mqcontracts.TicketCreatePayload{
		EmailID:  emailID,
		Urgency:  "urgent",
		Category: category.String(),
		Context:  details,
		QueuedAt: time.Now(),
	})
}

func (t *MQTicketing) CreateSupportTicket(ctx context.Context, emailID, details string) error {
	return t.publisher.Publish(routingKeyTicketCreate, mqcontracts.TicketCreatePayload{
		EmailID:  emailID,
		Urgency:  "support",
		Context:  details,
		QueuedAt: time.Now(),
	})
}

type MQFeedback struct {
	publisher *mq.Publisher
}

func NewMQFeedback(publisher *mq.Publisher) *MQFeedback {
	return &MQFeedback{publisher: publisher}
}

func (f *MQFeedback) Record(ctx context.Context, emailID, feedback string) error {
	return f.publisher.Publish(routingKeyFeedbackRecorded, mqcontracts.FeedbackRecordedPayload{
		EmailID:    emailID,
		Feedback:   feedback,
		RecordedAt: time.Now(),
	})
}
