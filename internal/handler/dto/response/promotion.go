package response

import (
	"eventora/internal/usecase/queries"
)

type PromotionResponse struct {
	ID            string  `json:"id"`
	ProviderID    string  `json:"provider_id"`
	Title         string  `json:"title"`
	Description   *string `json:"description,omitempty"`
	OriginalPrice float64 `json:"original_price"`
	PromoPrice    float64 `json:"promo_price"`
	DiscountPct   int32   `json:"discount_pct"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Active        bool    `json:"active"`
	CreatedAt     int64   `json:"created_at"`
}

func FromPromotion(p *queries.PromotionView) *PromotionResponse {
	return &PromotionResponse{
		ID:            p.ID.String(),
		ProviderID:    p.ProviderID.String(),
		Title:         p.Title,
		Description:   p.Description,
		OriginalPrice: p.OriginalPrice,
		PromoPrice:    p.PromoPrice,
		DiscountPct:   p.DiscountPct,
		StartDate:     p.StartDate.Format(dateLayout),
		EndDate:       p.EndDate.Format(dateLayout),
		Active:        p.Active,
		CreatedAt:     p.CreatedAt.Unix(),
	}
}

func FromPromotions(items []queries.PromotionView) []PromotionResponse {
	res := make([]PromotionResponse, len(items))
	for i := range items {
		res[i] = *FromPromotion(&items[i])
	}
	return res
}
