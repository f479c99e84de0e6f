package repository

import (
	"context"
	"time"

	"eventora/internal/domain/calendar"
	"eventora/internal/domain/promotion"
	"eventora/internal/infra"
	"eventora/internal/infra/db"
	"eventora/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type PromotionRepository struct {
	db db.DBTX
}

func NewPromotionRepository(dbtx db.DBTX) *PromotionRepository {
	return &PromotionRepository{db: dbtx}
}

// Only active, unexpired rows count against the quota. The count and the
// insert run as one statement.
const insertPromotionWithinQuotaQuery = `
INSERT INTO promotions (
    id, provider_id, title, description, original_price, promo_price,
    start_date, end_date, active, created_at
)
SELECT $1, $2, $3, $4, $5, $6, $7, $8, TRUE, $9
WHERE (SELECT count(*)
       FROM promotions
       WHERE provider_id = $2 AND active AND end_date >= $10) < $11`

func (r *PromotionRepository) CreateWithinQuota(ctx context.Context, promo *promotion.Promotion, limit int) (bool, error) {
	tag, err := r.db.Exec(ctx, insertPromotionWithinQuotaQuery,
		pgconv.UUIDToPgtype(promo.ID()),
		pgconv.UUIDToPgtype(promo.ProviderID()),
		promo.Title(),
		pgconv.StringPtrToPgtype(promo.Description()),
		promo.OriginalPrice(),
		promo.PromoPrice(),
		pgconv.DateToPgtype(promo.StartDate()),
		pgconv.DateToPgtype(promo.EndDate()),
		pgconv.TimeToPgtype(promo.CreatedAt()),
		pgconv.DateToPgtype(calendar.Day(promo.CreatedAt())),
		limit,
	)
	if err != nil {
		return false, infra.WrapRepoErr(err, "failed to insert promotion")
	}
	return tag.RowsAffected() == 1, nil
}

const selectPromotionQuery = `
SELECT id, provider_id, title, description, original_price, promo_price,
       start_date, end_date, active, created_at
FROM promotions
WHERE id = $1
FOR UPDATE`

func (r *PromotionRepository) Get(ctx context.Context, id uuid.UUID) (*promotion.Promotion, error) {
	row := r.db.QueryRow(ctx, selectPromotionQuery, pgconv.UUIDToPgtype(id))

	var (
		rowID, providerID          pgtype.UUID
		title                      string
		description                pgtype.Text
		originalPrice, promoPrice  pgtype.Numeric
		startDate, endDate         pgtype.Date
		active                     bool
		createdAt                  pgtype.Timestamptz
	)
	err := row.Scan(&rowID, &providerID, &title, &description, &originalPrice,
		&promoPrice, &startDate, &endDate, &active, &createdAt)
	if err != nil {
		return nil, infra.WrapRepoErr(err, "failed to load promotion")
	}

	original, err := pgconv.Float64FromNumeric(originalPrice)
	if err != nil {
		return nil, infra.WrapRepoErr(err, "stored original price is invalid")
	}
	promo, err := pgconv.Float64FromNumeric(promoPrice)
	if err != nil {
		return nil, infra.WrapRepoErr(err, "stored promo price is invalid")
	}

	return promotion.ReconstructPromotion(
		uuid.UUID(rowID.Bytes),
		uuid.UUID(providerID.Bytes),
		title,
		pgconv.StringPtrFromPgtype(description),
		original,
		promo,
		pgconv.DateFromPgtype(startDate),
		pgconv.DateFromPgtype(endDate),
		active,
		pgconv.TimeFromPgtype(createdAt),
	), nil
}

const updatePromotionQuery = `
UPDATE promotions
SET title          = $2,
    description    = $3,
    original_price = $4,
    promo_price    = $5,
    start_date     = $6,
    end_date       = $7,
    active         = $8
WHERE id = $1`

func (r *PromotionRepository) Update(ctx context.Context, promo *promotion.Promotion) error {
	tag, err := r.db.Exec(ctx, updatePromotionQuery,
		pgconv.UUIDToPgtype(promo.ID()),
		promo.Title(),
		pgconv.StringPtrToPgtype(promo.Description()),
		promo.OriginalPrice(),
		promo.PromoPrice(),
		pgconv.DateToPgtype(promo.StartDate()),
		pgconv.DateToPgtype(promo.EndDate()),
		promo.Active(),
	)
	if err != nil {
		return infra.WrapRepoErr(err, "failed to update promotion")
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(pgx.ErrNoRows, "promotion not found for update")
	}
	return nil
}

const deletePromotionQuery = `DELETE FROM promotions WHERE id = $1`

func (r *PromotionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deletePromotionQuery, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr(err, "failed to delete promotion")
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(pgx.ErrNoRows, "promotion not found for delete")
	}
	return nil
}

const deactivateExpiredQuery = `
UPDATE promotions
SET active = FALSE
WHERE active AND end_date < $1`

func (r *PromotionRepository) DeactivateExpired(ctx context.Context, today time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, deactivateExpiredQuery, pgconv.DateToPgtype(calendar.Day(today)))
	if err != nil {
		return 0, infra.WrapRepoErr(err, "failed to deactivate expired promotions")
	}
	return tag.RowsAffected(), nil
}
