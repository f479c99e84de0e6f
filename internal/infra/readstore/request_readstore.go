package readstore

import (
	"context"

	"eventora/internal/domain/actor"
	"eventora/internal/infra"
	"eventora/internal/infra/db"
	"eventora/internal/pkg/pgconv"
	"eventora/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const defaultListLimit = 50

type RequestReadStore struct {
	db db.DBTX
}

func NewRequestReadStore(dbtx db.DBTX) *RequestReadStore {
	return &RequestReadStore{db: dbtx}
}

const listRequestsQuery = `
SELECT r.id, r.client_id, c.name, r.provider_id, p.name,
       r.event_date, r.event_type, r.status, r.response_price,
       r.sent_at, r.responded_at
FROM service_requests r
JOIN users c ON c.id = r.client_id
JOIN users p ON p.id = r.provider_id
WHERE ($1::uuid IS NULL OR r.client_id = $1)
  AND ($2::uuid IS NULL OR r.provider_id = $2)
  AND ($3::text IS NULL OR r.status = $3)
ORDER BY r.sent_at DESC
LIMIT $4`

func (s *RequestReadStore) ListForActor(ctx context.Context, actorID uuid.UUID, role actor.Role, filter queries.RequestFilter) ([]queries.RequestListItem, error) {
	var clientID, providerID pgtype.UUID
	switch role {
	case actor.RoleProvider:
		providerID = pgconv.UUIDToPgtype(actorID)
	default:
		clientID = pgconv.UUIDToPgtype(actorID)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.db.Query(ctx, listRequestsQuery,
		clientID, providerID, pgconv.StringPtrToPgtype(filter.Status), limit)
	if err != nil {
		return nil, infra.WrapRepoErr(err, "failed to list service requests")
	}
	defer rows.Close()

	items := make([]queries.RequestListItem, 0)
	for rows.Next() {
		var (
			item          queries.RequestListItem
			id, cID, pID  pgtype.UUID
			eventDate     pgtype.Date
			responsePrice pgtype.Numeric
			sentAt        pgtype.Timestamptz
			respondedAt   pgtype.Timestamptz
		)
		err := rows.Scan(&id, &cID, &item.ClientName, &pID, &item.ProviderName,
			&eventDate, &item.EventType, &item.Status, &responsePrice,
			&sentAt, &respondedAt)
		if err != nil {
			return nil, infra.WrapRepoErr(err, "failed to scan service request row")
		}
		price, err := pgconv.Float64PtrFromNumeric(responsePrice)
		if err != nil {
			return nil, infra.WrapRepoErr(err, "stored response price is invalid")
		}
		item.ID = uuid.UUID(id.Bytes)
		item.ClientID = uuid.UUID(cID.Bytes)
		item.ProviderID = uuid.UUID(pID.Bytes)
		item.EventDate = pgconv.DateFromPgtype(eventDate)
		item.ResponsePrice = price
		item.SentAt = pgconv.TimeFromPgtype(sentAt)
		item.RespondedAt = pgconv.TimePtrFromPgtype(respondedAt)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(err, "failed to iterate service requests")
	}
	return items, nil
}

const requestDetailQuery = `
SELECT r.id, r.client_id, c.name, r.provider_id, p.name,
       r.event_date, r.guest_count, r.event_type, r.budget_estimate, r.description,
       r.status, r.response_message, r.response_price, r.response_details,
       r.response_available_date, r.sent_at, r.responded_at, r.accepted_at
FROM service_requests r
JOIN users c ON c.id = r.client_id
JOIN users p ON p.id = r.provider_id
WHERE r.id = $1`

const requestDetailServicesQuery = `
SELECT s.id, s.name, s.price
FROM request_services rs
JOIN provider_services s ON s.id = rs.service_id
WHERE rs.request_id = $1
ORDER BY s.name`

func (s *RequestReadStore) GetDetail(ctx context.Context, id uuid.UUID) (*queries.RequestDetail, error) {
	row := s.db.QueryRow(ctx, requestDetailQuery, pgconv.UUIDToPgtype(id))

	var (
		detail                  queries.RequestDetail
		rowID, cID, pID         pgtype.UUID
		eventDate               pgtype.Date
		guestCount              pgtype.Int4
		budgetEstimate          pgtype.Numeric
		description             pgtype.Text
		respMessage             pgtype.Text
		respPrice               pgtype.Numeric
		respDetails             pgtype.Text
		respAvailableDate       pgtype.Date
		sentAt                  pgtype.Timestamptz
		respondedAt, acceptedAt pgtype.Timestamptz
	)
	err := row.Scan(&rowID, &cID, &detail.ClientName, &pID, &detail.ProviderName,
		&eventDate, &guestCount, &detail.EventType, &budgetEstimate, &description,
		&detail.Status, &respMessage, &respPrice, &respDetails,
		&respAvailableDate, &sentAt, &respondedAt, &acceptedAt)
	if err != nil {
		return nil, infra.WrapRepoErr(err, "failed to load service request detail")
	}

	budget, err := pgconv.Float64PtrFromNumeric(budgetEstimate)
	if err != nil {
		return nil, infra.WrapRepoErr(err, "stored budget estimate is invalid")
	}

	detail.ID = uuid.UUID(rowID.Bytes)
	detail.ClientID = uuid.UUID(cID.Bytes)
	detail.ProviderID = uuid.UUID(pID.Bytes)
	detail.EventDate = pgconv.DateFromPgtype(eventDate)
	detail.GuestCount = pgconv.Int32PtrFromPgtype(guestCount)
	detail.BudgetEstimate = budget
	detail.Description = pgconv.StringPtrFromPgtype(description)
	detail.SentAt = pgconv.TimeFromPgtype(sentAt)
	detail.RespondedAt = pgconv.TimePtrFromPgtype(respondedAt)
	detail.AcceptedAt = pgconv.TimePtrFromPgtype(acceptedAt)

	if respMessage.Valid {
		price, err := pgconv.Float64FromNumeric(respPrice)
		if err != nil {
			return nil, infra.WrapRepoErr(err, "stored response price is invalid")
		}
		detail.Response = &queries.ProposalView{
			Message:       respMessage.String,
			Price:         price,
			Details:       pgconv.StringPtrFromPgtype(respDetails),
			AvailableDate: pgconv.DatePtrFromPgtype(respAvailableDate),
		}
	}

	services, err := s.loadServices(ctx, id)
	if err != nil {
		return nil, err
	}
	detail.Services = services

	return &detail, nil
}

const requestStatsQuery = `
SELECT count(*),
       count(*) FILTER (WHERE status = 'Pendiente'),
       count(*) FILTER (WHERE status = 'Respondida'),
       count(*) FILTER (WHERE status = 'Aceptada'),
       count(*) FILTER (WHERE status = 'Rechazada'),
       count(*) FILTER (WHERE status = 'Cancelada')
FROM service_requests
WHERE ($1::uuid IS NULL OR client_id = $1)
  AND ($2::uuid IS NULL OR provider_id = $2)`

func (s *RequestReadStore) Stats(ctx context.Context, actorID uuid.UUID, role actor.Role) (queries.RequestStats, error) {
	var clientID, providerID pgtype.UUID
	switch role {
	case actor.RoleProvider:
		providerID = pgconv.UUIDToPgtype(actorID)
	default:
		clientID = pgconv.UUIDToPgtype(actorID)
	}

	var stats queries.RequestStats
	err := s.db.QueryRow(ctx, requestStatsQuery, clientID, providerID).Scan(
		&stats.Total, &stats.Pending, &stats.Answered,
		&stats.Accepted, &stats.Rejected, &stats.Canceled,
	)
	if err != nil {
		return queries.RequestStats{}, infra.WrapRepoErr(err, "failed to load request stats")
	}
	return stats, nil
}

func (s *RequestReadStore) loadServices(ctx context.Context, requestID uuid.UUID) ([]queries.RequestedService, error) {
	rows, err := s.db.Query(ctx, requestDetailServicesQuery, pgconv.UUIDToPgtype(requestID))
	if err != nil {
		return nil, infra.WrapRepoErr(err, "failed to load requested services")
	}
	defer rows.Close()

	services := make([]queries.RequestedService, 0)
	for rows.Next() {
		var (
			svc   queries.RequestedService
			id    pgtype.UUID
			price pgtype.Numeric
		)
		if err := rows.Scan(&id, &svc.Name, &price); err != nil {
			return nil, infra.WrapRepoErr(err, "failed to scan requested service")
		}
		value, err := pgconv.Float64FromNumeric(price)
		if err != nil {
			return nil, infra.WrapRepoErr(err, "stored service price is invalid")
		}
		svc.ID = uuid.UUID(id.Bytes)
		svc.Price = value
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(err, "failed to iterate requested services")
	}
	return services, nil
}
