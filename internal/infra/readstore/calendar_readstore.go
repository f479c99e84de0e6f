package readstore

import (
	"context"
	"time"

	"eventora/internal/domain/calendar"
	"eventora/internal/infra"
	"eventora/internal/infra/db"
	"eventora/internal/pkg/pgconv"
	"eventora/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CalendarReadStore struct {
	db db.DBTX
}

func NewCalendarReadStore(dbtx db.DBTX) *CalendarReadStore {
	return &CalendarReadStore{db: dbtx}
}

// Booked days are joined with their request so the owner sees what the date
// is held for.
const listEntriesQuery = `
SELECT e.date, e.available, e.reason, e.linked_request_id, e.updated_at,
       r.event_type, r.guest_count, u.name
FROM calendar_entries e
LEFT JOIN service_requests r ON r.id = e.linked_request_id
LEFT JOIN users u ON u.id = r.client_id
WHERE e.provider_id = $1
  AND e.date BETWEEN $2 AND $3
  AND ($4::boolean IS NULL OR e.available = $4)
ORDER BY e.date`

func (s *CalendarReadStore) ListEntries(ctx context.Context, providerID uuid.UUID, filter queries.CalendarListFilter) ([]queries.CalendarEntryView, error) {
	rows, err := s.db.Query(ctx, listEntriesQuery,
		pgconv.UUIDToPgtype(providerID),
		pgconv.DateToPgtype(calendar.Day(filter.From)),
		pgconv.DateToPgtype(calendar.Day(filter.To)),
		filter.Available,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(err, "failed to list calendar entries")
	}
	defer rows.Close()

	views := make([]queries.CalendarEntryView, 0)
	for rows.Next() {
		var (
			view            queries.CalendarEntryView
			date            pgtype.Date
			reason          pgtype.Text
			linkedRequestID pgtype.UUID
			updatedAt       pgtype.Timestamptz
			eventType       pgtype.Text
			guestCount      pgtype.Int4
			clientName      pgtype.Text
		)
		err := rows.Scan(&date, &view.Available, &reason, &linkedRequestID, &updatedAt,
			&eventType, &guestCount, &clientName)
		if err != nil {
			return nil, infra.WrapRepoErr(err, "failed to scan calendar entry")
		}
		view.Date = pgconv.DateFromPgtype(date)
		view.Reason = pgconv.StringPtrFromPgtype(reason)
		view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
		if requestID := pgconv.UUIDPtrFromPgtype(linkedRequestID); requestID != nil {
			view.Booking = &queries.BookingContext{
				RequestID:  *requestID,
				EventType:  eventType.String,
				GuestCount: pgconv.Int32PtrFromPgtype(guestCount),
				ClientName: clientName.String,
			}
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(err, "failed to iterate calendar entries")
	}
	return views, nil
}

// Days without a stored entry come back available; generate_series fills the
// gaps so the caller always receives one row per day of the range. The series
// starts no earlier than today: past days are never reported, whatever range
// the caller asked for.
const publicAvailabilityQuery = `
SELECT d.day::date,
       COALESCE(e.available, TRUE),
       CASE WHEN e.available = FALSE THEN e.reason END
FROM generate_series(GREATEST($2::date, CURRENT_DATE), $3::date, interval '1 day') AS d(day)
LEFT JOIN calendar_entries e
       ON e.provider_id = $1 AND e.date = d.day::date
ORDER BY d.day`

func (s *CalendarReadStore) PublicAvailability(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]calendar.DayView, error) {
	rows, err := s.db.Query(ctx, publicAvailabilityQuery,
		pgconv.UUIDToPgtype(providerID),
		pgconv.DateToPgtype(calendar.Day(from)),
		pgconv.DateToPgtype(calendar.Day(to)),
	)
	if err != nil {
		return nil, infra.WrapRepoErr(err, "failed to load public availability")
	}
	defer rows.Close()

	days := make([]calendar.DayView, 0)
	for rows.Next() {
		var (
			day    calendar.DayView
			date   pgtype.Date
			reason pgtype.Text
		)
		if err := rows.Scan(&date, &day.Available, &reason); err != nil {
			return nil, infra.WrapRepoErr(err, "failed to scan availability day")
		}
		day.Date = pgconv.DateFromPgtype(date)
		day.Reason = pgconv.StringPtrFromPgtype(reason)
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(err, "failed to iterate availability days")
	}
	return days, nil
}

const calendarStatsQuery = `
SELECT count(*) FILTER (WHERE NOT available)                                AS blocked,
       count(*) FILTER (WHERE linked_request_id IS NOT NULL)                AS booked
FROM calendar_entries
WHERE provider_id = $1 AND date BETWEEN $2 AND $3`

func (s *CalendarReadStore) Stats(ctx context.Context, providerID uuid.UUID, from, to time.Time) (queries.CalendarStats, error) {
	fromDay, toDay := calendar.Day(from), calendar.Day(to)

	var blocked, booked int
	err := s.db.QueryRow(ctx, calendarStatsQuery,
		pgconv.UUIDToPgtype(providerID),
		pgconv.DateToPgtype(fromDay),
		pgconv.DateToPgtype(toDay),
	).Scan(&blocked, &booked)
	if err != nil {
		return queries.CalendarStats{}, infra.WrapRepoErr(err, "failed to load calendar stats")
	}

	total := int(toDay.Sub(fromDay).Hours()/24) + 1
	if total < 0 {
		total = 0
	}
	return queries.CalendarStats{
		TotalDays:     total,
		AvailableDays: total - blocked,
		BlockedDays:   blocked,
		BookedDays:    booked,
	}, nil
}
