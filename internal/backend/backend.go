// Package backend defines the external collaborators the dispatcher acts
// against: the outbound messaging service, the ticketing system and the
// customer feedback log. The pipeline only ever sees these interfaces;
// which adapter sits behind them is a deployment decision.
package backend

import (
	"context"

	"mailtriage/internal/model"
)

// Messenger sends canned responses back to customers.
type Messenger interface {
	SendStandardResponse(ctx context.Context, emailID, response string) error
	SendComplaintResponse(ctx context.Context, emailID, response string) error
}

// Ticketing opens tickets in the downstream ticket system.
type Ticketing interface {
	CreateUrgentTicket(ctx context.Context, emailID string, category model.Category, details string) error
	CreateSupportTicket(ctx context.Context, emailID, details string) error
}

// FeedbackLog records customer feedback.
type FeedbackLog interface {
	Record(ctx context.Context, emailID, feedback string) error
}
