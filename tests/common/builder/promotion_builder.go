//go:build unit

package builder

import (
	"time"

	dompromotion "eventora/internal/domain/promotion"

	"github.com/google/uuid"
)

type PromotionBuilder struct {
	ProviderID    uuid.UUID
	Title         string
	Description   *string
	OriginalPrice float64
	PromoPrice    float64
	StartDate     time.Time
	EndDate       time.Time
	Now           time.Time
}

func NewPromotionBuilder() *PromotionBuilder {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	return &PromotionBuilder{
		ProviderID:    uuid.New(),
		Title:         "Descuento de temporada",
		OriginalPrice: 1000,
		PromoPrice:    750,
		StartDate:     now,
		EndDate:       now.AddDate(0, 1, 0),
		Now:           now,
	}
}

func (b *PromotionBuilder) With(mutate func(*PromotionBuilder)) *PromotionBuilder {
	mutate(b)
	return b
}

func (b *PromotionBuilder) BuildDomain() (*dompromotion.Promotion, error) {
	return dompromotion.NewPromotion(
		b.ProviderID, b.Title, b.Description,
		b.OriginalPrice, b.PromoPrice,
		b.StartDate, b.EndDate, b.Now,
	)
}
