package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"mailtriage/internal/model"
	"mailtriage/internal/oracle"
	"mailtriage/pkg/metrics"
	"mailtriage/pkg/util"
)

// Oracle is the remote classification oracle: prompt in, free-form text out.
type Oracle interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Classifier maps an email onto the closed category set via the oracle.
// The verdict cache is optional; pass nil to classify every email remotely.
type Classifier struct {
	oracle Oracle
	cache  *util.CategoryCache
	logger *zap.Logger
}

func NewClassifier(o Oracle, cache *util.CategoryCache, logger *zap.Logger) *Classifier {
	return &Classifier{
		oracle: o,
		cache:  cache,
		logger: logger,
	}
}

// Classify returns the email's category, or a ClassificationError when the
// oracle fails or replies outside the known set. It never panics and never
// aborts the batch.
func (c *Classifier) Classify(ctx context.Context, email *model.Email) (model.Category, error) {
	if c.cache != nil {
		key := util.VerdictKey(email.Subject, email.Body)
		if cached, ok := c.cache.Get(ctx, key); ok {
			if category, valid := model.ParseCategory(cached); valid {
				c.logger.Info("Email classified from cache",
					zap.String("email_id", email.ID),
					zap.String("category", cached),
				)
				return category, nil
			}
		}
	}

	reply, err := c.oracle.Complete(ctx, buildPrompt(email))
	if err != nil {
		c.logger.Error("Oracle call failed",
			zap.String("email_id", email.ID),
			zap.String("error_kind", oracle.KindOf(err)),
			zap.Error(err),
		)
		metrics.IncrementClassification("invalid")
		return "", &ClassificationError{Err: err}
	}

	normalized := strings.ToLower(strings.TrimSpace(reply))
	category, ok := model.ParseCategory(normalized)
	if !ok {
		c.logger.Warn("Invalid classification from oracle",
			zap.String("email_id", email.ID),
			zap.String("reply", normalized),
		)
		metrics.IncrementClassification("invalid")
		return "", &ClassificationError{Err: fmt.Errorf("unknown category %q", normalized)}
	}

	if c.cache != nil {
		c.cache.Set(ctx, util.VerdictKey(email.Subject, email.Body), normalized)
	}

	c.logger.Info("Email classified",
		zap.String("email_id", email.ID),
		zap.String("category", normalized),
	)
	metrics.IncrementClassification(normalized)
	return category, nil
}

func buildPrompt(email *model.Email) string {
	names := make([]string, 0, len(model.Categories))
	for _, c := range model.Categories {
		names = append(names, c.String())
	}

	return fmt.Sprintf(
		"You are an intelligent email customer support assistant. "+
			"Your task is to classify the following email into one of the categories: %s.\n\n"+
			"Email Subject: %s\n"+
			"Email Body: %s\n\n"+
			"Respond with only the category name in lowercase.\n",
		strings.Join(names, ", "),
		email.Subject,
		email.Body,
	)
}
