package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"mailtriage/internal/model"
	"mailtriage/pkg/metrics"
)

// Pipeline sequences validate → classify → respond → dispatch for each
// email. Per-email states: received → validated → classified → responded →
// dispatched → done, with errored absorbing from any stage. No retries;
// the first failure is terminal for that email and emails are independent.
type Pipeline struct {
	classifier *Classifier
	dispatcher *Dispatcher
	logger     *zap.Logger
}

func NewPipeline(classifier *Classifier, dispatcher *Dispatcher, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		classifier: classifier,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// ProcessBatch processes a finite batch sequentially and returns exactly
// one result per input email, in input order. It never fails as a whole.
func (p *Pipeline) ProcessBatch(ctx context.Context, batch []model.RawEmail) []model.ProcessingResult {
	results := make([]model.ProcessingResult, 0, len(batch))
	for _, raw := range batch {
		results = append(results, p.Process(ctx, raw))
	}
	return results
}

// Process runs one email through the full pipeline.
func (p *Pipeline) Process(ctx context.Context, raw model.RawEmail) model.ProcessingResult {
	result := model.ProcessingResult{EmailID: rawID(raw)}

	// received → validated
	email, err := ValidateEmail(raw)
	if err != nil {
		return p.errored(result, "validated", err)
	}

	// validated → classified
	category, err := p.classifier.Classify(ctx, email)
	if err != nil {
		return p.errored(result, "classified", err)
	}
	result.Classification = category

	// classified → responded
	response, err := RespondTo(email, category)
	if err != nil {
		return p.errored(result, "responded", err)
	}

	// responded → dispatched
	if err := p.dispatch(ctx, email, category, response); err != nil {
		return p.errored(result, "dispatched", err)
	}

	// done
	result.Success = true
	result.ResponseSent = true
	metrics.IncrementEmailProcessed("success")
	p.logger.Info("Email processed",
		zap.String("email_id", result.EmailID),
		zap.String("category", category.String()),
	)
	return result
}

// dispatch shields the pipeline from panicking collaborators.
func (p *Pipeline) dispatch(ctx context.Context, email *model.Email, category model.Category, response string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("Panic in dispatch recovered",
				zap.String("email_id", email.ID),
				zap.Any("panic", r),
			)
			err = &DispatchError{Action: "dispatch", Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	return p.dispatcher.Dispatch(ctx, email, category, response)
}

func (p *Pipeline) errored(result model.ProcessingResult, stage string, err error) model.ProcessingResult {
	result.Error = err.Error()
	metrics.IncrementEmailProcessed("failed")
	p.logger.Warn("Email errored",
		zap.String("email_id", result.EmailID),
		zap.String("stage", stage),
		zap.Error(err),
	)
	return result
}

func rawID(raw model.RawEmail) string {
	if id, ok := raw["id"].(string); ok {
		return id
	}
	return ""
}
