package queries

import (
	"context"
	"time"

	"eventora/internal/domain/quota"

	"github.com/google/uuid"
)

type PromotionView struct {
	ID            uuid.UUID `json:"id"`
	ProviderID    uuid.UUID `json:"provider_id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description,omitempty"`
	OriginalPrice float64   `json:"original_price"`
	PromoPrice    float64   `json:"promo_price"`
	DiscountPct   int32     `json:"discount_pct"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
}

// PromotionSearchFilter narrows the public cross-provider search.
type PromotionSearchFilter struct {
	MaxPrice    *float64
	MinDiscount *int32
	Limit       int32
}

type PromotionQueryService interface {
	// ListForProvider is the owner's view; activeOnly narrows it to rows
	// still switched on.
	ListForProvider(ctx context.Context, providerID uuid.UUID, activeOnly bool) ([]PromotionView, error)
	// ListCurrent is the public per-provider view: active promotions inside
	// their window.
	ListCurrent(ctx context.Context, providerID uuid.UUID) ([]PromotionView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*PromotionView, error)
	// SearchActive is the public marketplace search across providers.
	SearchActive(ctx context.Context, filter PromotionSearchFilter) ([]PromotionView, error)
	Quota(ctx context.Context, providerID uuid.UUID) (quota.Info, error)
}
