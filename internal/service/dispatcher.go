package service

import (
	"context"

	"go.uber.org/zap"

	"mailtriage/internal/backend"
	"mailtriage/internal/model"
	"mailtriage/pkg/metrics"
)

// Dispatcher executes the category-specific action sequence against the
// external collaborators. It never inspects action results beyond
// success/failure; the first failing action aborts the sequence.
type Dispatcher struct {
	messenger backend.Messenger
	ticketing backend.Ticketing
	feedback  backend.FeedbackLog
	logger    *zap.Logger
}

func NewDispatcher(
	messenger backend.Messenger,
	ticketing backend.Ticketing,
	feedback backend.FeedbackLog,
	logger *zap.Logger,
) *Dispatcher {
	return &Dispatcher{
		messenger: messenger,
		ticketing: ticketing,
		feedback:  feedback,
		logger:    logger,
	}
}

// Dispatch runs the action sequence for the category. The mapping is an
// explicit switch over the closed enum rather than a handler table.
func (d *Dispatcher) Dispatch(ctx context.Context, email *model.Email, category model.Category, response string) error {
	switch category {
	case model.CategoryComplaint:
		if err := d.messenger.SendComplaintResponse(ctx, email.ID, response); err != nil {
			return &DispatchError{Action: "send complaint response", Err: err}
		}
		metrics.IncrementDispatchAction("send_complaint")

		if err := d.ticketing.CreateUrgentTicket(ctx, email.ID, category, email.Body); err != nil {
			return &DispatchError{Action: "create urgent ticket", Err: err}
		}
		metrics.IncrementDispatchAction("urgent_ticket")

	case model.CategoryInquiry:
		if err := d.messenger.SendStandardResponse(ctx, email.ID, response); err != nil {
			return &DispatchError{Action: "send standard response", Err: err}
		}
		metrics.IncrementDispatchAction("send_standard")

	case model.CategoryFeedback:
		// Feedback is recorded only; no outbound message.
		if err := d.feedback.Record(ctx, email.ID, email.Body); err != nil {
			return &DispatchError{Action: "record feedback", Err: err}
		}
		metrics.IncrementDispatchAction("feedback_record")

	case model.CategorySupportRequest:
		if err := d.messenger.SendStandardResponse(ctx, email.ID, response); err != nil {
			return &DispatchError{Action: "send standard response", Err: err}
		}
		metrics.IncrementDispatchAction("send_standard")

		if err := d.ticketing.CreateSupportTicket(ctx, email.ID, email.Body); err != nil {
			return &DispatchError{Action: "create support ticket", Err: err}
		}
		metrics.IncrementDispatchAction("support_ticket")

	case model.CategoryOther:
		if err := d.messenger.SendStandardResponse(ctx, email.ID, response); err != nil {
			return &DispatchError{Action: "send standard response", Err: err}
		}
		metrics.IncrementDispatchAction("send_standard")

	default:
		return &DispatchError{Action: "dispatch", Err: errUnknownCategory(category)}
	}

	d.logger.Debug("Dispatch sequence completed",
		zap.String("email_id", email.ID),
		zap.String("category", category.String()),
	)
	return nil
}

type errUnknownCategory model.Category

func (e errUnknownCategory) Error() string {
	return "no handler for category " + string(e)
}
