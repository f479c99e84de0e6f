//go:build unit

package review_test

import (
	"testing"

	"eventora/internal/domain/review"

	"github.com/stretchr/testify/assert"
)

func TestBucketScore(t *testing.T) {
	cases := []struct {
		name     string
		score    float64
		expected review.Sentiment
	}{
		{"strongly positive", 0.9, review.SentimentPositive},
		{"positive threshold inclusive", 0.25, review.SentimentPositive},
		{"just under positive threshold", 0.24, review.SentimentNeutral},
		{"zero", 0, review.SentimentNeutral},
		{"just above negative threshold", -0.24, review.SentimentNeutral},
		{"negative threshold inclusive", -0.25, review.SentimentNegative},
		{"strongly negative", -1, review.SentimentNegative},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, review.BucketScore(c.score))
		})
	}
}

func TestRatingFromScore(t *testing.T) {
	cases := []struct {
		score    float64
		expected float64
	}{
		{-1, 0},
		{-0.5, 0.25},
		{0, 0.5},
		{0.5, 0.75},
		{1, 1},
		{0.333, 0.67},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, review.RatingFromScore(c.score))
	}
}
