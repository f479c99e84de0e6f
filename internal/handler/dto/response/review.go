package response

import (
	"eventora/internal/usecase/queries"
)

type ReviewResponse struct {
	ID          string  `json:"id"`
	ClientName  string  `json:"client_name"`
	ProviderID  string  `json:"provider_id"`
	Comment     string  `json:"comment"`
	Rating      float64 `json:"rating"`
	Sentiment   string  `json:"sentiment"`
	PublishedAt int64   `json:"published_at"`
}

func FromReviews(items []queries.ReviewView) []ReviewResponse {
	res := make([]ReviewResponse, len(items))
	for i, r := range items {
		res[i] = ReviewResponse{
			ID:          r.ID.String(),
			ClientName:  r.ClientName,
			ProviderID:  r.ProviderID.String(),
			Comment:     r.Comment,
			Rating:      r.Rating,
			Sentiment:   r.Sentiment,
			PublishedAt: r.PublishedAt.Unix(),
		}
	}
	return res
}

type ReviewStatsResponse struct {
	Total         int     `json:"total"`
	AverageRating float64 `json:"average_rating"`
	Positive      int     `json:"positive"`
	Neutral       int     `json:"neutral"`
	Negative      int     `json:"negative"`
}

func FromReviewStats(s queries.ReviewStats) ReviewStatsResponse {
	return ReviewStatsResponse(s)
}

type ReportedReviewResponse struct {
	ID           string  `json:"id"`
	ClientID     string  `json:"client_id"`
	ProviderID   string  `json:"provider_id"`
	RequestID    string  `json:"request_id"`
	Comment      string  `json:"comment"`
	Rating       float64 `json:"rating"`
	Sentiment    string  `json:"sentiment"`
	Visible      bool    `json:"visible"`
	ReportReason *string `json:"report_reason,omitempty"`
	PublishedAt  int64   `json:"published_at"`
}

func FromReportedReviews(items []queries.ReportedReviewView) []ReportedReviewResponse {
	res := make([]ReportedReviewResponse, len(items))
	for i, r := range items {
		res[i] = ReportedReviewResponse{
			ID:           r.ID.String(),
			ClientID:     r.ClientID.String(),
			ProviderID:   r.ProviderID.String(),
			RequestID:    r.RequestID.String(),
			Comment:      r.Comment,
			Rating:       r.Rating,
			Sentiment:    r.Sentiment,
			Visible:      r.Visible,
			ReportReason: r.ReportReason,
			PublishedAt:  r.PublishedAt.Unix(),
		}
	}
	return res
}
