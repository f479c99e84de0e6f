package review

import (
	"context"
	"math"
)

// Sentiment buckets a classifier score. Wire values match what the platform
// already stores.
type Sentiment string

const (
	SentimentPositive Sentiment = "positivo"
	SentimentNeutral  Sentiment = "neutro"
	SentimentNegative Sentiment = "negativo"
)

const (
	positiveThreshold = 0.25
	negativeThreshold = -0.25
)

// Score is a classifier output in [-1, 1].
type Score struct {
	Value     float64
	Magnitude float64
}

// Classifier turns free-text comments into a sentiment score. The remote
// implementation may fail or time out; callers fall back to the local
// keyword heuristic and never surface the failure.
type Classifier interface {
	Classify(ctx context.Context, text, locale string) (Score, error)
}

// BucketScore maps a score to its 3-way sentiment bucket.
func BucketScore(score float64) Sentiment {
	switch {
	case score >= positiveThreshold:
		return SentimentPositive
	case score <= negativeThreshold:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// RatingFromScore maps [-1,1] linearly onto [0,1], rounded to two decimals.
func RatingFromScore(score float64) float64 {
	return math.Round((score+1)/2*100) / 100
}
