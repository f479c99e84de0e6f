package request

import (
	"errors"
	"strings"
	"time"

	"eventora/internal/domain/calendar"

	"github.com/google/uuid"
)

var (
	ErrEventDateInPast  = errors.New("event date must be today or later")
	ErrEmptyEventType   = errors.New("event type is required")
	ErrDuplicateService = errors.New("requested services must be distinct")
	ErrNotPending       = errors.New("request is not pending")
	ErrNotAnswered      = errors.New("request has not been answered")
	ErrNotParty         = errors.New("actor is not a party to this request")
	ErrEmptyResponse    = errors.New("response message is required")
	ErrNonPositivePrice = errors.New("proposed price must be positive")
	ErrTerminalState    = errors.New("request is in a terminal state")
)

// Proposal is the provider's answer to a pending request.
type Proposal struct {
	Message       string
	Price         float64
	Details       *string
	AvailableDate *time.Time
}

// ServiceRequest is a client's proposal to engage one provider for an event on
// a specific date, together with the set of catalog services it asks for.
// The service set is fixed at creation.
type ServiceRequest struct {
	id             uuid.UUID
	clientID       uuid.UUID
	providerID     uuid.UUID
	eventDate      time.Time
	guestCount     *int32
	eventType      string
	budgetEstimate *float64
	description    *string
	status         Status
	response       *Proposal
	serviceIDs     []uuid.UUID
	sentAt         time.Time
	respondedAt    *time.Time
	acceptedAt     *time.Time
}

func NewServiceRequest(
	clientID, providerID uuid.UUID,
	eventDate time.Time,
	guestCount *int32,
	eventType string,
	budgetEstimate *float64,
	description *string,
	serviceIDs []uuid.UUID,
	now time.Time,
) (*ServiceRequest, error) {
	if calendar.IsPast(eventDate, now) {
		return nil, ErrEventDateInPast
	}
	if strings.TrimSpace(eventType) == "" {
		return nil, ErrEmptyEventType
	}

	seen := make(map[uuid.UUID]struct{}, len(serviceIDs))
	for _, id := range serviceIDs {
		if _, dup := seen[id]; dup {
			return nil, ErrDuplicateService
		}
		seen[id] = struct{}{}
	}

	return &ServiceRequest{
		id:             uuid.New(),
		clientID:       clientID,
		providerID:     providerID,
		eventDate:      calendar.Day(eventDate),
		guestCount:     guestCount,
		eventType:      strings.TrimSpace(eventType),
		budgetEstimate: budgetEstimate,
		description:    description,
		status:         StatusPending,
		serviceIDs:     serviceIDs,
		sentAt:         now,
	}, nil
}

func ReconstructServiceRequest(
	id, clientID, providerID uuid.UUID,
	eventDate time.Time,
	guestCount *int32,
	eventType string,
	budgetEstimate *float64,
	description *string,
	status Status,
	response *Proposal,
	serviceIDs []uuid.UUID,
	sentAt time.Time,
	respondedAt, acceptedAt *time.Time,
) *ServiceRequest {
	return &ServiceRequest{
		id:             id,
		clientID:       clientID,
		providerID:     providerID,
		eventDate:      calendar.Day(eventDate),
		guestCount:     guestCount,
		eventType:      eventType,
		budgetEstimate: budgetEstimate,
		description:    description,
		status:         status,
		response:       response,
		serviceIDs:     serviceIDs,
		sentAt:         sentAt,
		respondedAt:    respondedAt,
		acceptedAt:     acceptedAt,
	}
}

func (r *ServiceRequest) ID() uuid.UUID            { return r.id }
func (r *ServiceRequest) ClientID() uuid.UUID      { return r.clientID }
func (r *ServiceRequest) ProviderID() uuid.UUID    { return r.providerID }
func (r *ServiceRequest) EventDate() time.Time     { return r.eventDate }
func (r *ServiceRequest) GuestCount() *int32       { return r.guestCount }
func (r *ServiceRequest) EventType() string        { return r.eventType }
func (r *ServiceRequest) BudgetEstimate() *float64 { return r.budgetEstimate }
func (r *ServiceRequest) Description() *string     { return r.description }
func (r *ServiceRequest) Status() Status           { return r.status }
func (r *ServiceRequest) Response() *Proposal      { return r.response }
func (r *ServiceRequest) ServiceIDs() []uuid.UUID  { return r.serviceIDs }
func (r *ServiceRequest) SentAt() time.Time        { return r.sentAt }
func (r *ServiceRequest) RespondedAt() *time.Time  { return r.respondedAt }
func (r *ServiceRequest) AcceptedAt() *time.Time   { return r.acceptedAt }

// IsParty reports whether the given principal is one of the two named parties.
func (r *ServiceRequest) IsParty(actorID uuid.UUID, isProvider bool) bool {
	if isProvider {
		return r.providerID == actorID
	}
	return r.clientID == actorID
}

// Respond moves Pendiente → Respondida with the provider's proposal.
func (r *ServiceRequest) Respond(providerID uuid.UUID, p Proposal, now time.Time) error {
	if r.providerID != providerID {
		return ErrNotParty
	}
	if r.status != StatusPending {
		return ErrNotPending
	}
	if strings.TrimSpace(p.Message) == "" {
		return ErrEmptyResponse
	}
	if p.Price <= 0 {
		return ErrNonPositivePrice
	}
	r.status = StatusAnswered
	r.response = &p
	r.respondedAt = &now
	return nil
}

// Accept moves Respondida → Aceptada. The caller must block the provider's
// calendar for the event date in the same transaction.
func (r *ServiceRequest) Accept(clientID uuid.UUID, now time.Time) error {
	if r.clientID != clientID {
		return ErrNotParty
	}
	if r.status != StatusAnswered {
		return ErrNotAnswered
	}
	r.status = StatusAccepted
	r.acceptedAt = &now
	return nil
}

// Reject is available to either party from Pendiente or Respondida.
func (r *ServiceRequest) Reject(actorID uuid.UUID, isProvider bool) error {
	if !r.IsParty(actorID, isProvider) {
		return ErrNotParty
	}
	if !r.status.CanTransitionTo(StatusRejected) {
		return ErrTerminalState
	}
	r.status = StatusRejected
	return nil
}

// Cancel is reserved to the owning client and only from Pendiente. The
// request is retained in state Cancelada rather than deleted, so the thread
// and audit history survive.
func (r *ServiceRequest) Cancel(clientID uuid.UUID) error {
	if r.clientID != clientID {
		return ErrNotParty
	}
	if r.status != StatusPending {
		return ErrNotPending
	}
	r.status = StatusCanceled
	return nil
}

// AcceptsMessages reports whether the thread attached to this request is
// still writable.
func (r *ServiceRequest) AcceptsMessages() bool {
	return r.status != StatusCanceled
}
