package readstore

import (
	"context"

	"eventora/internal/domain/promotion"
	"eventora/internal/domain/quota"
	"eventora/internal/infra"
	"eventora/internal/infra/db"
	"eventora/internal/pkg/config"
	"eventora/internal/pkg/pgconv"
	"eventora/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type PromotionReadStore struct {
	db    db.DBTX
	limit quota.Limit
}

func NewPromotionReadStore(dbtx db.DBTX, cfg config.QuotaConfig) *PromotionReadStore {
	return &PromotionReadStore{
		db:    dbtx,
		limit: quota.Limit{Resource: promotion.QuotaResource, Max: cfg.ActivePromotions},
	}
}

const promotionColumns = `
id, provider_id, title, description, original_price, promo_price,
start_date, end_date, active, created_at`

const listProviderPromotionsQuery = `
SELECT ` + promotionColumns + `
FROM promotions
WHERE provider_id = $1 AND ($2::boolean IS FALSE OR active)
ORDER BY created_at DESC`

func (s *PromotionReadStore) ListForProvider(ctx context.Context, providerID uuid.UUID, activeOnly bool) ([]queries.PromotionView, error) {
	return s.list(ctx, listProviderPromotionsQuery, pgconv.UUIDToPgtype(providerID), activeOnly)
}

const listCurrentPromotionsQuery = `
SELECT ` + promotionColumns + `
FROM promotions
WHERE provider_id = $1
  AND active
  AND CURRENT_DATE BETWEEN start_date AND end_date
ORDER BY created_at DESC`

func (s *PromotionReadStore) ListCurrent(ctx context.Context, providerID uuid.UUID) ([]queries.PromotionView, error) {
	return s.list(ctx, listCurrentPromotionsQuery, pgconv.UUIDToPgtype(providerID))
}

const getPromotionQuery = `
SELECT ` + promotionColumns + `
FROM promotions
WHERE id = $1`

func (s *PromotionReadStore) GetByID(ctx context.Context, id uuid.UUID) (*queries.PromotionView, error) {
	views, err := s.list(ctx, getPromotionQuery, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, infra.WrapRepoErr(pgx.ErrNoRows, "promotion not found")
	}
	return &views[0], nil
}

// Discount is recomputed in SQL so the filter and the rendered value cannot
// drift apart.
const searchActiveQuery = `
SELECT ` + promotionColumns + `
FROM promotions
WHERE active
  AND CURRENT_DATE BETWEEN start_date AND end_date
  AND ($1::numeric IS NULL OR promo_price <= $1)
  AND ($2::integer IS NULL OR round((original_price - promo_price) / original_price * 100) >= $2)
ORDER BY created_at DESC
LIMIT $3`

func (s *PromotionReadStore) SearchActive(ctx context.Context, filter queries.PromotionSearchFilter) ([]queries.PromotionView, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.list(ctx, searchActiveQuery, filter.MaxPrice, filter.MinDiscount, limit)
}

func (s *PromotionReadStore) list(ctx context.Context, query string, args ...any) ([]queries.PromotionView, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(err, "failed to list promotions")
	}
	defer rows.Close()

	views := make([]queries.PromotionView, 0)
	for rows.Next() {
		var (
			view               queries.PromotionView
			id, provID         pgtype.UUID
			description        pgtype.Text
			original, promo    pgtype.Numeric
			startDate, endDate pgtype.Date
			createdAt          pgtype.Timestamptz
		)
		err := rows.Scan(&id, &provID, &view.Title, &description, &original,
			&promo, &startDate, &endDate, &view.Active, &createdAt)
		if err != nil {
			return nil, infra.WrapRepoErr(err, "failed to scan promotion row")
		}
		originalPrice, err := pgconv.Float64FromNumeric(original)
		if err != nil {
			return nil, infra.WrapRepoErr(err, "stored original price is invalid")
		}
		promoPrice, err := pgconv.Float64FromNumeric(promo)
		if err != nil {
			return nil, infra.WrapRepoErr(err, "stored promo price is invalid")
		}
		view.ID = uuid.UUID(id.Bytes)
		view.ProviderID = uuid.UUID(provID.Bytes)
		view.Description = pgconv.StringPtrFromPgtype(description)
		view.OriginalPrice = originalPrice
		view.PromoPrice = promoPrice
		view.DiscountPct = promotion.DiscountPct(originalPrice, promoPrice)
		view.StartDate = pgconv.DateFromPgtype(startDate)
		view.EndDate = pgconv.DateFromPgtype(endDate)
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(err, "failed to iterate promotions")
	}
	return views, nil
}

const countActivePromotionsReadQuery = `
SELECT count(*) FROM promotions
WHERE provider_id = $1 AND active AND end_date >= CURRENT_DATE`

func (s *PromotionReadStore) Quota(ctx context.Context, providerID uuid.UUID) (quota.Info, error) {
	var used int
	err := s.db.QueryRow(ctx, countActivePromotionsReadQuery, pgconv.UUIDToPgtype(providerID)).Scan(&used)
	if err != nil {
		return quota.Info{}, infra.WrapRepoErr(err, "failed to count active promotions")
	}
	return s.limit.InfoFor(used), nil
}
