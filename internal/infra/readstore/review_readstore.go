package readstore

import (
	"context"

	"eventora/internal/infra"
	"eventora/internal/infra/db"
	"eventora/internal/pkg/pgconv"
	"eventora/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

const listReviewsQuery = `
SELECT rv.id, u.name, rv.provider_id, rv.comment, rv.rating, rv.sentiment, rv.published_at
FROM reviews rv
JOIN users u ON u.id = rv.client_id
WHERE rv.provider_id = $1
  AND rv.visible
  AND ($2::text IS NULL OR rv.sentiment = $2)
  AND ($3::numeric IS NULL OR rv.rating >= $3)
ORDER BY rv.published_at DESC
LIMIT $4`

func (s *ReviewReadStore) ListForProvider(ctx context.Context, providerID uuid.UUID, filter queries.ReviewFilter) ([]queries.ReviewView, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.db.Query(ctx, listReviewsQuery,
		pgconv.UUIDToPgtype(providerID),
		pgconv.StringPtrToPgtype(filter.Sentiment),
		filter.MinRating,
		limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(err, "failed to list reviews")
	}
	defer rows.Close()

	views := make([]queries.ReviewView, 0)
	for rows.Next() {
		var (
			view        queries.ReviewView
			id, provID  pgtype.UUID
			rating      pgtype.Numeric
			publishedAt pgtype.Timestamptz
		)
		err := rows.Scan(&id, &view.ClientName, &provID, &view.Comment,
			&rating, &view.Sentiment, &publishedAt)
		if err != nil {
			return nil, infra.WrapRepoErr(err, "failed to scan review row")
		}
		value, err := pgconv.Float64FromNumeric(rating)
		if err != nil {
			return nil, infra.WrapRepoErr(err, "stored review rating is invalid")
		}
		view.ID = uuid.UUID(id.Bytes)
		view.ProviderID = uuid.UUID(provID.Bytes)
		view.Rating = value
		view.PublishedAt = pgconv.TimeFromPgtype(publishedAt)
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(err, "failed to iterate reviews")
	}
	return views, nil
}

const reviewStatsQuery = `
SELECT count(*),
       COALESCE(avg(rating), 0),
       count(*) FILTER (WHERE sentiment = 'positivo'),
       count(*) FILTER (WHERE sentiment = 'neutro'),
       count(*) FILTER (WHERE sentiment = 'negativo')
FROM reviews
WHERE provider_id = $1 AND visible`

func (s *ReviewReadStore) Stats(ctx context.Context, providerID uuid.UUID) (queries.ReviewStats, error) {
	var (
		stats queries.ReviewStats
		avg   pgtype.Numeric
	)
	err := s.db.QueryRow(ctx, reviewStatsQuery, pgconv.UUIDToPgtype(providerID)).
		Scan(&stats.Total, &avg, &stats.Positive, &stats.Neutral, &stats.Negative)
	if err != nil {
		return queries.ReviewStats{}, infra.WrapRepoErr(err, "failed to load review stats")
	}
	average, err := pgconv.Float64FromNumeric(avg)
	if err != nil {
		return queries.ReviewStats{}, infra.WrapRepoErr(err, "stored rating average is invalid")
	}
	stats.AverageRating = average
	return stats, nil
}

const listReportedQuery = `
SELECT id, client_id, provider_id, request_id, comment, rating, sentiment,
       visible, report_reason, published_at
FROM reviews
WHERE reported
ORDER BY published_at DESC`

func (s *ReviewReadStore) ListReported(ctx context.Context) ([]queries.ReportedReviewView, error) {
	rows, err := s.db.Query(ctx, listReportedQuery)
	if err != nil {
		return nil, infra.WrapRepoErr(err, "failed to list reported reviews")
	}
	defer rows.Close()

	views := make([]queries.ReportedReviewView, 0)
	for rows.Next() {
		var (
			view                       queries.ReportedReviewView
			id, clientID, provID, reqID pgtype.UUID
			rating                     pgtype.Numeric
			reportReason               pgtype.Text
			publishedAt                pgtype.Timestamptz
		)
		err := rows.Scan(&id, &clientID, &provID, &reqID, &view.Comment,
			&rating, &view.Sentiment, &view.Visible, &reportReason, &publishedAt)
		if err != nil {
			return nil, infra.WrapRepoErr(err, "failed to scan reported review")
		}
		value, err := pgconv.Float64FromNumeric(rating)
		if err != nil {
			return nil, infra.WrapRepoErr(err, "stored review rating is invalid")
		}
		view.ID = uuid.UUID(id.Bytes)
		view.ClientID = uuid.UUID(clientID.Bytes)
		view.ProviderID = uuid.UUID(provID.Bytes)
		view.RequestID = uuid.UUID(reqID.Bytes)
		view.Rating = value
		view.ReportReason = pgconv.StringPtrFromPgtype(reportReason)
		view.PublishedAt = pgconv.TimeFromPgtype(publishedAt)
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(err, "failed to iterate reported reviews")
	}
	return views, nil
}
