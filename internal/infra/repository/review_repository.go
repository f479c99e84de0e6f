package repository

import (
	"context"

	"eventora/internal/domain/review"
	"eventora/internal/infra"
	"eventora/internal/infra/db"
	"eventora/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewRepository struct {
	db db.DBTX
}

func NewReviewRepository(dbtx db.DBTX) *ReviewRepository {
	return &ReviewRepository{db: dbtx}
}

const insertReviewQuery = `
INSERT INTO reviews (
    id, client_id, provider_id, request_id, comment, rating, sentiment,
    visible, reported, report_reason, published_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) error {
	_, err := r.db.Exec(ctx, insertReviewQuery,
		pgconv.UUIDToPgtype(rev.ID()),
		pgconv.UUIDToPgtype(rev.ClientID()),
		pgconv.UUIDToPgtype(rev.ProviderID()),
		pgconv.UUIDToPgtype(rev.RequestID()),
		rev.Comment().String(),
		rev.Rating(),
		string(rev.Sentiment()),
		rev.Visible(),
		rev.Reported(),
		pgconv.StringPtrToPgtype(rev.ReportReason()),
		pgconv.TimeToPgtype(rev.PublishedAt()),
	)
	return infra.WrapRepoErr(err, "failed to insert review")
}

const selectReviewQuery = `
SELECT id, client_id, provider_id, request_id, comment, rating, sentiment,
       visible, reported, report_reason, published_at
FROM reviews
WHERE id = $1
FOR UPDATE`

func (r *ReviewRepository) Get(ctx context.Context, id uuid.UUID) (*review.Review, error) {
	row := r.db.QueryRow(ctx, selectReviewQuery, pgconv.UUIDToPgtype(id))

	var (
		rowID, clientID, providerID, requestID pgtype.UUID
		comment                                string
		rating                                 pgtype.Numeric
		sentiment                              string
		visible, reported                      bool
		reportReason                           pgtype.Text
		publishedAt                            pgtype.Timestamptz
	)
	err := row.Scan(&rowID, &clientID, &providerID, &requestID, &comment, &rating,
		&sentiment, &visible, &reported, &reportReason, &publishedAt)
	if err != nil {
		return nil, infra.WrapRepoErr(err, "failed to load review")
	}

	c, err := review.NewComment(comment)
	if err != nil {
		return nil, infra.WrapRepoErr(err, "stored review comment is invalid")
	}
	ratingValue, err := pgconv.Float64FromNumeric(rating)
	if err != nil {
		return nil, infra.WrapRepoErr(err, "stored review rating is invalid")
	}

	return review.ReconstructReview(
		uuid.UUID(rowID.Bytes),
		uuid.UUID(clientID.Bytes),
		uuid.UUID(providerID.Bytes),
		uuid.UUID(requestID.Bytes),
		c,
		ratingValue,
		review.Sentiment(sentiment),
		visible,
		reported,
		pgconv.StringPtrFromPgtype(reportReason),
		pgconv.TimeFromPgtype(publishedAt),
	), nil
}

const updateReviewQuery = `
UPDATE reviews
SET visible = $2, reported = $3, report_reason = $4
WHERE id = $1`

func (r *ReviewRepository) Update(ctx context.Context, rev *review.Review) error {
	tag, err := r.db.Exec(ctx, updateReviewQuery,
		pgconv.UUIDToPgtype(rev.ID()),
		rev.Visible(),
		rev.Reported(),
		pgconv.StringPtrToPgtype(rev.ReportReason()),
	)
	if err != nil {
		return infra.WrapRepoErr(err, "failed to update review")
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(pgx.ErrNoRows, "review not found for update")
	}
	return nil
}

const deleteReviewQuery = `DELETE FROM reviews WHERE id = $1`

func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteReviewQuery, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr(err, "failed to delete review")
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(pgx.ErrNoRows, "review not found for delete")
	}
	return nil
}
