//go:build unit

package builder

import (
	"time"

	domreview "eventora/internal/domain/review"
	reqdto "eventora/internal/handler/dto/request"
	"eventora/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ClientID   uuid.UUID
	ProviderID uuid.UUID
	RequestID  uuid.UUID
	Comment    string
	Rating     float64
	Sentiment  domreview.Sentiment
	Now        time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		ClientID:   uuid.New(),
		ProviderID: uuid.New(),
		RequestID:  uuid.New(),
		Comment:    "Excelente servicio, todo perfecto",
		Rating:     0.75,
		Sentiment:  domreview.SentimentPositive,
		Now:        time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(b)
	return b
}

func (b *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	comment, err := domreview.NewComment(b.Comment)
	if err != nil {
		return nil, err
	}
	return domreview.NewReview(b.ClientID, b.ProviderID, b.RequestID, comment, b.Rating, b.Sentiment, b.Now)
}

func (b *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		RequestID: b.RequestID,
		Comment:   b.Comment,
	}
}

func (b *ReviewBuilder) BuildView() queries.ReviewView {
	return queries.ReviewView{
		ID:          uuid.New(),
		ClientName:  "Laura Gómez",
		ProviderID:  b.ProviderID,
		Comment:     b.Comment,
		Rating:      b.Rating,
		Sentiment:   string(b.Sentiment),
		PublishedAt: b.Now,
	}
}
