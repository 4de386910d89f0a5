package backend

import (
	"context"

	"go.uber.org/zap"

	"mailtriage/internal/model"
)

// Log-only adapters. Default wiring: they record the action and do nothing
// else, which is exactly what a dry run or a local demo needs.

type LogMessenger struct {
	logger *zap.Logger
}

func NewLogMessenger(logger *zap.Logger) *LogMessenger {
	return &LogMessenger{logger: logger}
}

func (m *LogMessenger) SendStandardResponse(ctx context.Context, emailID, response string) error {
	m.logger.Info("Sending standard response",
		zap.String("email_id", emailID),
		zap.Int("response_len", len(response)),
	)
	return nil
}

func (m *LogMessenger) SendComplaintResponse(ctx context.Context, emailID, response string) error {
	m.logger.Info("Sending complaint response",
		zap.String("email_id", emailID),
		zap.Int("response_len", len(response)),
	)
	return nil
}

type LogTicketing struct {
	logger *zap.Logger
}

func NewLogTicketing(logger *zap.Logger) *LogTicketing {
	return &LogTicketing{logger: logger}
}

func (t *LogTicketing) CreateUrgentTicket(ctx context.Context, emailID string, category model.Category, details string) error {
	t.logger.Info("Creating urgent ticket",
		zap.String("email_id", emailID),
		zap.String("category", category.String()),
	)
	return nil
}

func (t *LogTicketing) CreateSupportTicket(ctx context.Context, emailID, details string) error {
	t.logger.Info("Creating support ticket",
		zap.String("email_id", emailID),
	)
	return nil
}

type LogFeedback struct {
	logger *zap.Logger
}

func NewLogFeedback(logger *zap.Logger) *LogFeedback {
	return &LogFeedback{logger: logger}
}

func (f *LogFeedback) Record(ctx context.Context, emailID, feedback string) error {
	f.logger.Info("Logging customer feedback",
		zap.String("email_id", emailID),
		zap.Int("feedback_len", len(feedback)),
	)
	return nil
}
