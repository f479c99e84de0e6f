package repository

import (
	"context"

	"eventora/internal/infra"
	"eventora/internal/infra/db"
	"eventora/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// CommandReads answers the validation lookups commands make before writing.
type CommandReads struct {
	db db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{db: dbtx}
}

const countOwnedServicesQuery = `
SELECT count(*) FROM provider_services WHERE provider_id = $1 AND id = ANY($2)`

func (r *CommandReads) ServicesBelongToProvider(ctx context.Context, serviceIDs []uuid.UUID, providerID uuid.UUID) (bool, error) {
	ids := make([]pgtype.UUID, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		ids = append(ids, pgconv.UUIDToPgtype(id))
	}

	var owned int
	err := r.db.QueryRow(ctx, countOwnedServicesQuery, pgconv.UUIDToPgtype(providerID), ids).Scan(&owned)
	if err != nil {
		return false, infra.WrapRepoErr(err, "failed to check service ownership")
	}
	return owned == len(serviceIDs), nil
}

const requestHasReviewQuery = `
SELECT EXISTS (SELECT 1 FROM reviews WHERE request_id = $1)`

func (r *CommandReads) RequestHasReview(ctx context.Context, requestID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, requestHasReviewQuery, pgconv.UUIDToPgtype(requestID)).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr(err, "failed to check for existing review")
	}
	return exists, nil
}
