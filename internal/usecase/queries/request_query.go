package queries

import (
	"context"
	"time"

	"eventora/internal/domain/actor"

	"github.com/google/uuid"
)

// RequestFilter narrows request listings. A nil Status means all states.
type RequestFilter struct {
	Status *string
	Limit  int32
}

type RequestListItem struct {
	ID               uuid.UUID  `json:"id"`
	ClientID         uuid.UUID  `json:"client_id"`
	ClientName       string     `json:"client_name"`
	ProviderID       uuid.UUID  `json:"provider_id"`
	ProviderName     string     `json:"provider_name"`
	EventDate        time.Time  `json:"event_date"`
	EventType        string     `json:"event_type"`
	Status           string     `json:"status"`
	ResponsePrice    *float64   `json:"response_price,omitempty"`
	SentAt           time.Time  `json:"sent_at"`
	RespondedAt      *time.Time `json:"responded_at,omitempty"`
}

type RequestedService struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price float64   `json:"price"`
}

type ProposalView struct {
	Message       string     `json:"message"`
	Price         float64    `json:"price"`
	Details       *string    `json:"details,omitempty"`
	AvailableDate *time.Time `json:"available_date,omitempty"`
}

type RequestDetail struct {
	ID             uuid.UUID          `json:"id"`
	ClientID       uuid.UUID          `json:"client_id"`
	ClientName     string             `json:"client_name"`
	ProviderID     uuid.UUID          `json:"provider_id"`
	ProviderName   string             `json:"provider_name"`
	EventDate      time.Time          `json:"event_date"`
	GuestCount     *int32             `json:"guest_count,omitempty"`
	EventType      string             `json:"event_type"`
	BudgetEstimate *float64           `json:"budget_estimate,omitempty"`
	Description    *string            `json:"description,omitempty"`
	Status         string             `json:"status"`
	Response       *ProposalView      `json:"response,omitempty"`
	Services       []RequestedService `json:"services"`
	SentAt         time.Time          `json:"sent_at"`
	RespondedAt    *time.Time         `json:"responded_at,omitempty"`
	AcceptedAt     *time.Time         `json:"accepted_at,omitempty"`
}

// RequestStats is the per-actor lifecycle breakdown.
type RequestStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Answered int `json:"answered"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
	Canceled int `json:"canceled"`
}

// RequestQueryService serves the read side of the request lifecycle. Listings
// are scoped to the caller's side of the marketplace; detail access is
// limited to the two parties.
type RequestQueryService interface {
	ListForActor(ctx context.Context, actorID uuid.UUID, role actor.Role, filter RequestFilter) ([]RequestListItem, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*RequestDetail, error)
	Stats(ctx context.Context, actorID uuid.UUID, role actor.Role) (RequestStats, error)
}
