//go:build unit

package review_test

import (
	"strings"
	"testing"

	"eventora/internal/domain/review"
	"eventora/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComment(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		c, err := review.NewComment("  muy buen servicio  ")
		require.NoError(t, err)
		assert.Equal(t, "muy buen servicio", c.String())
	})

	t.Run("empty comment", func(t *testing.T) {
		_, err := review.NewComment("   ")
		require.ErrorIs(t, err, review.ErrEmptyComment)
	})

	t.Run("maximum length boundary", func(t *testing.T) {
		_, err := review.NewComment(strings.Repeat("a", review.MaxCommentLength))
		require.NoError(t, err)

		_, err = review.NewComment(strings.Repeat("a", review.MaxCommentLength+1))
		require.ErrorIs(t, err, review.ErrCommentTooLong)
	})
}

func TestNewReview(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewReviewBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.Visible())
		assert.False(t, actual.Reported())
		assert.Nil(t, actual.ReportReason())
		assert.Equal(t, 0.75, actual.Rating())
		assert.Equal(t, review.SentimentPositive, actual.Sentiment())
	})

	t.Run("rating outside the unit interval", func(t *testing.T) {
		for _, rating := range []float64{-0.01, 1.01} {
			actual, err := builder.NewReviewBuilder().
				With(func(b *builder.ReviewBuilder) { b.Rating = rating }).
				BuildDomain()
			require.Nil(t, actual)
			require.ErrorIs(t, err, review.ErrInvalidRating)
		}
	})

	t.Run("rating boundaries are valid", func(t *testing.T) {
		for _, rating := range []float64{0, 1} {
			_, err := builder.NewReviewBuilder().
				With(func(b *builder.ReviewBuilder) { b.Rating = rating }).
				BuildDomain()
			require.NoError(t, err)
		}
	})
}

func TestReview_Report(t *testing.T) {
	t.Run("flags with the given reason", func(t *testing.T) {
		r, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, r.Report("contenido ofensivo"))
		assert.True(t, r.Reported())
		require.NotNil(t, r.ReportReason())
		assert.Equal(t, "contenido ofensivo", *r.ReportReason())
		assert.True(t, r.Visible(), "reporting alone must not hide the review")
	})

	t.Run("first reason wins", func(t *testing.T) {
		r, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, r.Report("primera"))
		require.NoError(t, r.Report("segunda"))
		assert.Equal(t, "primera", *r.ReportReason())
	})

	t.Run("empty reason rejected", func(t *testing.T) {
		r, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)
		require.ErrorIs(t, r.Report("  "), review.ErrEmptyReportReason)
	})
}

func TestReview_SetVisibility(t *testing.T) {
	t.Run("hiding keeps the report", func(t *testing.T) {
		r, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, r.Report("spam"))

		r.SetVisibility(false)
		assert.False(t, r.Visible())
		assert.True(t, r.Reported())
	})

	t.Run("restoring clears the report", func(t *testing.T) {
		r, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, r.Report("spam"))
		r.SetVisibility(false)

		r.SetVisibility(true)
		assert.True(t, r.Visible())
		assert.False(t, r.Reported())
		assert.Nil(t, r.ReportReason())
	})
}
