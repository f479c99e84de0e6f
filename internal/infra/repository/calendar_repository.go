package repository

import (
	"context"
	"time"

	"eventora/internal/domain/calendar"
	"eventora/internal/infra"
	"eventora/internal/infra/db"
	"eventora/internal/pkg/clock"
	"eventora/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CalendarRepository struct {
	db  db.DBTX
	clk clock.Clock
}

func NewCalendarRepository(dbtx db.DBTX, clk clock.Clock) *CalendarRepository {
	return &CalendarRepository{db: dbtx, clk: clk}
}

const upsertEntryQuery = `
INSERT INTO calendar_entries (provider_id, date, available, reason, linked_request_id, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (provider_id, date)
DO UPDATE SET available         = EXCLUDED.available,
              reason            = EXCLUDED.reason,
              linked_request_id = EXCLUDED.linked_request_id,
              updated_at        = EXCLUDED.updated_at`

func (r *CalendarRepository) Upsert(ctx context.Context, entry *calendar.Entry) error {
	_, err := r.db.Exec(ctx, upsertEntryQuery,
		pgconv.UUIDToPgtype(entry.ProviderID()),
		pgconv.DateToPgtype(entry.Date()),
		entry.Available(),
		pgconv.StringPtrToPgtype(entry.Reason()),
		pgconv.UUIDPtrToPgtype(entry.LinkedRequestID()),
		pgconv.TimeToPgtype(entry.UpdatedAt()),
	)
	return infra.WrapRepoErr(err, "failed to upsert calendar entry")
}

const selectEntryQuery = `
SELECT provider_id, date, available, reason, linked_request_id, updated_at
FROM calendar_entries
WHERE provider_id = $1 AND date = $2
FOR UPDATE`

func (r *CalendarRepository) Get(ctx context.Context, providerID uuid.UUID, date time.Time) (*calendar.Entry, error) {
	row := r.db.QueryRow(ctx, selectEntryQuery,
		pgconv.UUIDToPgtype(providerID), pgconv.DateToPgtype(date))

	var (
		rowProviderID   pgtype.UUID
		rowDate         pgtype.Date
		available       bool
		reason          pgtype.Text
		linkedRequestID pgtype.UUID
		updatedAt       pgtype.Timestamptz
	)
	err := row.Scan(&rowProviderID, &rowDate, &available, &reason, &linkedRequestID, &updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr(err, "failed to load calendar entry")
	}

	return calendar.ReconstructEntry(
		uuid.UUID(rowProviderID.Bytes),
		pgconv.DateFromPgtype(rowDate),
		available,
		pgconv.StringPtrFromPgtype(reason),
		pgconv.UUIDPtrFromPgtype(linkedRequestID),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

const deleteEntryQuery = `
DELETE FROM calendar_entries WHERE provider_id = $1 AND date = $2`

func (r *CalendarRepository) Delete(ctx context.Context, providerID uuid.UUID, date time.Time) error {
	_, err := r.db.Exec(ctx, deleteEntryQuery,
		pgconv.UUIDToPgtype(providerID), pgconv.DateToPgtype(date))
	return infra.WrapRepoErr(err, "failed to delete calendar entry")
}

// Past days without a booking link are rewritten as unavailable so they stop
// showing as open in public availability. Booked days keep their reason.
const sweepPastDatesQuery = `
UPDATE calendar_entries
SET available = FALSE, reason = $2, updated_at = $3
WHERE date < $1
  AND available = TRUE
  AND linked_request_id IS NULL`

func (r *CalendarRepository) SweepPastDates(ctx context.Context, today time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, sweepPastDatesQuery,
		pgconv.DateToPgtype(calendar.Day(today)),
		calendar.ReasonPastDate,
		pgconv.TimeToPgtype(r.clk.Now()),
	)
	if err != nil {
		return 0, infra.WrapRepoErr(err, "failed to sweep past calendar dates")
	}
	return tag.RowsAffected(), nil
}
