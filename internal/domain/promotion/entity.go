package promotion

import (
	"errors"
	"math"
	"strings"
	"time"

	"eventora/internal/domain/calendar"

	"github.com/google/uuid"
)

// QuotaResource names the promotion quota in QuotaExceeded conditions. Only
// rows that are active and not yet expired count against it.
const QuotaResource = "active_promotions"

var (
	ErrEmptyTitle        = errors.New("promotion title is required")
	ErrPriceOrder        = errors.New("promotional price must be strictly below the original price")
	ErrNonPositivePrices = errors.New("prices must be positive")
	ErrDateOrder         = errors.New("end date must not precede start date")
)

// Promotion is a time-bounded discounted offer. The discount percentage is
// derived from the two prices, never stored independently of them.
type Promotion struct {
	id            uuid.UUID
	providerID    uuid.UUID
	title         string
	description   *string
	originalPrice float64
	promoPrice    float64
	startDate     time.Time
	endDate       time.Time
	active        bool
	createdAt     time.Time
}

func NewPromotion(providerID uuid.UUID, title string, description *string, originalPrice, promoPrice float64, startDate, endDate time.Time, now time.Time) (*Promotion, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	if originalPrice <= 0 || promoPrice <= 0 {
		return nil, ErrNonPositivePrices
	}
	if promoPrice >= originalPrice {
		return nil, ErrPriceOrder
	}
	start, end := calendar.Day(startDate), calendar.Day(endDate)
	if end.Before(start) {
		return nil, ErrDateOrder
	}

	return &Promotion{
		id:            uuid.New(),
		providerID:    providerID,
		title:         strings.TrimSpace(title),
		description:   description,
		originalPrice: originalPrice,
		promoPrice:    promoPrice,
		startDate:     start,
		endDate:       end,
		active:        true,
		createdAt:     now,
	}, nil
}

func ReconstructPromotion(id, providerID uuid.UUID, title string, description *string, originalPrice, promoPrice float64, startDate, endDate time.Time, active bool, createdAt time.Time) *Promotion {
	return &Promotion{
		id:            id,
		providerID:    providerID,
		title:         title,
		description:   description,
		originalPrice: originalPrice,
		promoPrice:    promoPrice,
		startDate:     startDate,
		endDate:       endDate,
		active:        active,
		createdAt:     createdAt,
	}
}

func (p *Promotion) ID() uuid.UUID         { return p.id }
func (p *Promotion) ProviderID() uuid.UUID { return p.providerID }
func (p *Promotion) Title() string         { return p.title }
func (p *Promotion) Description() *string  { return p.description }
func (p *Promotion) OriginalPrice() float64 { return p.originalPrice }
func (p *Promotion) PromoPrice() float64   { return p.promoPrice }
func (p *Promotion) StartDate() time.Time  { return p.startDate }
func (p *Promotion) EndDate() time.Time    { return p.endDate }
func (p *Promotion) Active() bool          { return p.active }
func (p *Promotion) CreatedAt() time.Time  { return p.createdAt }

// ApplyUpdate rewrites the editable fields under the same validation rules as
// creation. Activity state is untouched.
func (p *Promotion) ApplyUpdate(title string, description *string, originalPrice, promoPrice float64, startDate, endDate time.Time) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if originalPrice <= 0 || promoPrice <= 0 {
		return ErrNonPositivePrices
	}
	if promoPrice >= originalPrice {
		return ErrPriceOrder
	}
	start, end := calendar.Day(startDate), calendar.Day(endDate)
	if end.Before(start) {
		return ErrDateOrder
	}
	p.title = strings.TrimSpace(title)
	p.description = description
	p.originalPrice = originalPrice
	p.promoPrice = promoPrice
	p.startDate = start
	p.endDate = end
	return nil
}

func (p *Promotion) Deactivate() {
	p.active = false
}

// DiscountPct derives the rounded discount percentage.
func (p *Promotion) DiscountPct() int32 {
	return DiscountPct(p.originalPrice, p.promoPrice)
}

func DiscountPct(original, promo float64) int32 {
	return int32(math.Round((original - promo) / original * 100))
}

// IsCurrent reports whether the promotion is active and inside its window.
func (p *Promotion) IsCurrent(now time.Time) bool {
	today := calendar.Day(now)
	return p.active && !today.Before(p.startDate) && !today.After(p.endDate)
}
