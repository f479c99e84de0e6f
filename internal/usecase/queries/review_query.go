package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ReviewFilter narrows public review listings.
type ReviewFilter struct {
	Sentiment *string
	MinRating *float64
	Limit     int32
}

type ReviewView struct {
	ID          uuid.UUID `json:"id"`
	ClientName  string    `json:"client_name"`
	ProviderID  uuid.UUID `json:"provider_id"`
	Comment     string    `json:"comment"`
	Rating      float64   `json:"rating"`
	Sentiment   string    `json:"sentiment"`
	PublishedAt time.Time `json:"published_at"`
}

// ReportedReviewView is the moderation queue row; it keeps fields the public
// view omits.
type ReportedReviewView struct {
	ID           uuid.UUID `json:"id"`
	ClientID     uuid.UUID `json:"client_id"`
	ProviderID   uuid.UUID `json:"provider_id"`
	RequestID    uuid.UUID `json:"request_id"`
	Comment      string    `json:"comment"`
	Rating       float64   `json:"rating"`
	Sentiment    string    `json:"sentiment"`
	Visible      bool      `json:"visible"`
	ReportReason *string   `json:"report_reason,omitempty"`
	PublishedAt  time.Time `json:"published_at"`
}

// ReviewStats aggregates a provider's visible reviews.
type ReviewStats struct {
	Total         int     `json:"total"`
	AverageRating float64 `json:"average_rating"`
	Positive      int     `json:"positive"`
	Neutral       int     `json:"neutral"`
	Negative      int     `json:"negative"`
}

type ReviewQueryService interface {
	// ListForProvider returns visible reviews only, newest first.
	ListForProvider(ctx context.Context, providerID uuid.UUID, filter ReviewFilter) ([]ReviewView, error)
	Stats(ctx context.Context, providerID uuid.UUID) (ReviewStats, error)
	// ListReported is the admin moderation queue.
	ListReported(ctx context.Context) ([]ReportedReviewView, error)
}
