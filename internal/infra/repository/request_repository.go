package repository

import (
	"context"

	"eventora/internal/domain/request"
	"eventora/internal/infra"
	"eventora/internal/infra/db"
	"eventora/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type RequestRepository struct {
	db db.DBTX
}

func NewRequestRepository(dbtx db.DBTX) *RequestRepository {
	return &RequestRepository{db: dbtx}
}

const insertRequestQuery = `
INSERT INTO service_requests (
    id, client_id, provider_id, event_date, guest_count, event_type,
    budget_estimate, description, status, sent_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

const insertRequestServiceQuery = `
INSERT INTO request_services (request_id, service_id) VALUES ($1, $2)`

func (r *RequestRepository) Create(ctx context.Context, req *request.ServiceRequest) error {
	_, err := r.db.Exec(ctx, insertRequestQuery,
		pgconv.UUIDToPgtype(req.ID()),
		pgconv.UUIDToPgtype(req.ClientID()),
		pgconv.UUIDToPgtype(req.ProviderID()),
		pgconv.DateToPgtype(req.EventDate()),
		pgconv.Int32PtrToPgtype(req.GuestCount()),
		req.EventType(),
		req.BudgetEstimate(),
		pgconv.StringPtrToPgtype(req.Description()),
		req.Status().String(),
		pgconv.TimeToPgtype(req.SentAt()),
	)
	if err != nil {
		return infra.WrapRepoErr(err, "failed to insert service request")
	}

	for _, serviceID := range req.ServiceIDs() {
		if _, err := r.db.Exec(ctx, insertRequestServiceQuery,
			pgconv.UUIDToPgtype(req.ID()),
			pgconv.UUIDToPgtype(serviceID),
		); err != nil {
			return infra.WrapRepoErr(err, "failed to insert requested service")
		}
	}
	return nil
}

const selectRequestForUpdateQuery = `
SELECT id, client_id, provider_id, event_date, guest_count, event_type,
       budget_estimate, description, status,
       response_message, response_price, response_details, response_available_date,
       sent_at, responded_at, accepted_at
FROM service_requests
WHERE id = $1
FOR UPDATE`

const selectRequestServicesQuery = `
SELECT service_id FROM request_services WHERE request_id = $1`

func (r *RequestRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*request.ServiceRequest, error) {
	row := r.db.QueryRow(ctx, selectRequestForUpdateQuery, pgconv.UUIDToPgtype(id))

	var (
		rowID, clientID, providerID pgtype.UUID
		eventDate                   pgtype.Date
		guestCount                  pgtype.Int4
		eventType                   string
		budgetEstimate              pgtype.Numeric
		description                 pgtype.Text
		status                      string
		respMessage                 pgtype.Text
		respPrice                   pgtype.Numeric
		respDetails                 pgtype.Text
		respAvailableDate           pgtype.Date
		sentAt                      pgtype.Timestamptz
		respondedAt, acceptedAt     pgtype.Timestamptz
	)
	err := row.Scan(
		&rowID, &clientID, &providerID, &eventDate, &guestCount, &eventType,
		&budgetEstimate, &description, &status,
		&respMessage, &respPrice, &respDetails, &respAvailableDate,
		&sentAt, &respondedAt, &acceptedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(err, "failed to load service request")
	}

	serviceIDs, err := r.loadServiceIDs(ctx, id)
	if err != nil {
		return nil, err
	}

	st, err := request.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr(err, "stored request status is invalid")
	}
	budget, err := pgconv.Float64PtrFromNumeric(budgetEstimate)
	if err != nil {
		return nil, infra.WrapRepoErr(err, "stored budget estimate is invalid")
	}

	var proposal *request.Proposal
	if respMessage.Valid {
		price, err := pgconv.Float64FromNumeric(respPrice)
		if err != nil {
			return nil, infra.WrapRepoErr(err, "stored response price is invalid")
		}
		proposal = &request.Proposal{
			Message:       respMessage.String,
			Price:         price,
			Details:       pgconv.StringPtrFromPgtype(respDetails),
			AvailableDate: pgconv.DatePtrFromPgtype(respAvailableDate),
		}
	}

	return request.ReconstructServiceRequest(
		uuid.UUID(rowID.Bytes),
		uuid.UUID(clientID.Bytes),
		uuid.UUID(providerID.Bytes),
		pgconv.DateFromPgtype(eventDate),
		pgconv.Int32PtrFromPgtype(guestCount),
		eventType,
		budget,
		pgconv.StringPtrFromPgtype(description),
		st,
		proposal,
		serviceIDs,
		pgconv.TimeFromPgtype(sentAt),
		pgconv.TimePtrFromPgtype(respondedAt),
		pgconv.TimePtrFromPgtype(acceptedAt),
	), nil
}

func (r *RequestRepository) loadServiceIDs(ctx context.Context, requestID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, selectRequestServicesQuery, pgconv.UUIDToPgtype(requestID))
	if err != nil {
		return nil, infra.WrapRepoErr(err, "failed to load requested services")
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id pgtype.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr(err, "failed to scan requested service")
		}
		ids = append(ids, uuid.UUID(id.Bytes))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(err, "failed to iterate requested services")
	}
	return ids, nil
}

const updateRequestQuery = `
UPDATE service_requests
SET status                  = $2,
    response_message        = $3,
    response_price          = $4,
    response_details        = $5,
    response_available_date = $6,
    responded_at            = $7,
    accepted_at             = $8
WHERE id = $1`

func (r *RequestRepository) Update(ctx context.Context, req *request.ServiceRequest) error {
	var (
		respMessage       pgtype.Text
		respPrice         *float64
		respDetails       pgtype.Text
		respAvailableDate pgtype.Date
	)
	if p := req.Response(); p != nil {
		respMessage = pgconv.StringToPgtype(p.Message)
		price := p.Price
		respPrice = &price
		respDetails = pgconv.StringPtrToPgtype(p.Details)
		respAvailableDate = pgconv.DatePtrToPgtype(p.AvailableDate)
	}

	tag, err := r.db.Exec(ctx, updateRequestQuery,
		pgconv.UUIDToPgtype(req.ID()),
		req.Status().String(),
		respMessage,
		respPrice,
		respDetails,
		respAvailableDate,
		pgconv.TimePtrToPgtype(req.RespondedAt()),
		pgconv.TimePtrToPgtype(req.AcceptedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr(err, "failed to update service request")
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(pgx.ErrNoRows, "service request not found for update")
	}
	return nil
}
