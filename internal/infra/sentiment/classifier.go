package sentiment

import (
	"context"
	"log/slog"

	"eventora/internal/domain/review"
)

// FallbackClassifier tries the primary classifier first and silently degrades
// to the fallback when it fails. Review submission never fails because the
// remote API is down.
type FallbackClassifier struct {
	primary  review.Classifier
	fallback review.Classifier
	logger   *slog.Logger
}

func NewFallbackClassifier(primary, fallback review.Classifier, logger *slog.Logger) *FallbackClassifier {
	return &FallbackClassifier{primary: primary, fallback: fallback, logger: logger}
}

func (c *FallbackClassifier) Classify(ctx context.Context, text, locale string) (review.Score, error) {
	score, err := c.primary.Classify(ctx, text, locale)
	if err == nil {
		return score, nil
	}
	c.logger.WarnContext(ctx, "sentiment API unavailable, using keyword fallback",
		slog.String("error", err.Error()))
	return c.fallback.Classify(ctx, text, locale)
}
