//go:build unit

package sentiment_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"eventora/internal/domain/review"
	"eventora/internal/infra/sentiment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordClassifier(t *testing.T) {
	ctx := context.Background()
	c := sentiment.NewKeywordClassifier()

	cases := []struct {
		name     string
		text     string
		expected float64
	}{
		{"positive keyword", "Excelente servicio, muy recomendado", 0.5},
		{"positive via stem match", "La comida estaba buenísima", 0.5},
		{"negative keyword", "Pésimo, llegaron tarde y todo sucio", -0.5},
		{"mixed hits are neutral", "Buen lugar pero el servicio fue malo", 0},
		{"no keywords", "El evento fue el sábado en la finca", 0},
		{"case insensitive", "TERRIBLE experiencia", -0.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score, err := c.Classify(ctx, tc.text, "es")
			require.NoError(t, err)
			assert.Equal(t, tc.expected, score.Value)
		})
	}
}

func TestKeywordClassifier_FeedsRating(t *testing.T) {
	ctx := context.Background()
	c := sentiment.NewKeywordClassifier()

	score, err := c.Classify(ctx, "excelente", "es")
	require.NoError(t, err)
	assert.Equal(t, 0.75, review.RatingFromScore(score.Value))
	assert.Equal(t, review.SentimentPositive, review.BucketScore(score.Value))

	score, err = c.Classify(ctx, "horrible", "es")
	require.NoError(t, err)
	assert.Equal(t, 0.25, review.RatingFromScore(score.Value))
	assert.Equal(t, review.SentimentNegative, review.BucketScore(score.Value))
}

type stubClassifier struct {
	score review.Score
	err   error
	calls int
}

func (s *stubClassifier) Classify(_ context.Context, _, _ string) (review.Score, error) {
	s.calls++
	return s.score, s.err
}

func TestFallbackClassifier(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("primary result wins when it succeeds", func(t *testing.T) {
		primary := &stubClassifier{score: review.Score{Value: 0.8}}
		fallback := &stubClassifier{score: review.Score{Value: -0.5}}

		c := sentiment.NewFallbackClassifier(primary, fallback, logger)
		score, err := c.Classify(ctx, "excelente", "es")
		require.NoError(t, err)
		assert.Equal(t, 0.8, score.Value)
		assert.Zero(t, fallback.calls)
	})

	t.Run("degrades to the fallback on failure", func(t *testing.T) {
		primary := &stubClassifier{err: errors.New("api unreachable")}
		fallback := &stubClassifier{score: review.Score{Value: 0.5}}

		c := sentiment.NewFallbackClassifier(primary, fallback, logger)
		score, err := c.Classify(ctx, "excelente", "es")
		require.NoError(t, err)
		assert.Equal(t, 0.5, score.Value)
		assert.Equal(t, 1, fallback.calls)
	})
}
