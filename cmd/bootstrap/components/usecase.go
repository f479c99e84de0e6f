package components

import (
	"log/slog"

	"eventora/internal/domain/review"
	"eventora/internal/infra/sentiment"
	"eventora/internal/pkg/clock"
	"eventora/internal/pkg/config"
	"eventora/internal/usecase"
	"eventora/internal/usecase/commands"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			NewSentimentClassifier,
			fx.As(new(review.Classifier)),
		),
		commands.NewRequestUseCase,
		commands.NewCalendarUseCase,
		commands.NewMessageUseCase,
		commands.NewReviewUseCase,
		commands.NewGalleryUseCase,
		commands.NewPromotionUseCase,
		usecase.NewTokenValidator,
	),
)

// NewSentimentClassifier wires the remote analyzer with the keyword fallback
// so review submission keeps working when the API is down.
func NewSentimentClassifier(cfg config.SentimentConfig, logger *slog.Logger) *sentiment.FallbackClassifier {
	return sentiment.NewFallbackClassifier(
		sentiment.NewRemoteClassifier(cfg),
		sentiment.NewKeywordClassifier(),
		logger,
	)
}
