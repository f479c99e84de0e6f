//go:build unit

package builder

import (
	"time"

	domrequest "eventora/internal/domain/request"
	reqdto "eventora/internal/handler/dto/request"
	"eventora/internal/usecase/commands"
	"eventora/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceRequestBuilder struct {
	ClientID       uuid.UUID
	ProviderID     uuid.UUID
	EventDate      time.Time
	GuestCount     *int32
	EventType      string
	BudgetEstimate *float64
	Description    *string
	ServiceIDs     []uuid.UUID
	Now            time.Time
}

func NewServiceRequestBuilder() *ServiceRequestBuilder {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	guests := int32(80)
	budget := 2500.0
	return &ServiceRequestBuilder{
		ClientID:       uuid.New(),
		ProviderID:     uuid.New(),
		EventDate:      now.AddDate(0, 0, 14),
		GuestCount:     &guests,
		EventType:      "boda",
		BudgetEstimate: &budget,
		ServiceIDs:     []uuid.UUID{uuid.New(), uuid.New()},
		Now:            now,
	}
}

func (b *ServiceRequestBuilder) With(mutate func(*ServiceRequestBuilder)) *ServiceRequestBuilder {
	mutate(b)
	return b
}

func (b *ServiceRequestBuilder) BuildDomain() (*domrequest.ServiceRequest, error) {
	return domrequest.NewServiceRequest(
		b.ClientID, b.ProviderID, b.EventDate, b.GuestCount,
		b.EventType, b.BudgetEstimate, b.Description, b.ServiceIDs, b.Now,
	)
}

func (b *ServiceRequestBuilder) BuildCreateInput() commands.CreateRequestInput {
	return commands.CreateRequestInput{
		ProviderID:     b.ProviderID,
		EventDate:      b.EventDate,
		GuestCount:     b.GuestCount,
		EventType:      b.EventType,
		BudgetEstimate: b.BudgetEstimate,
		Description:    b.Description,
		ServiceIDs:     b.ServiceIDs,
	}
}

func (b *ServiceRequestBuilder) BuildCreateRequestDTO() reqdto.CreateServiceRequest {
	return reqdto.CreateServiceRequest{
		ProviderID:     b.ProviderID,
		EventDate:      b.EventDate.Format("2006-01-02"),
		GuestCount:     b.GuestCount,
		EventType:      b.EventType,
		BudgetEstimate: b.BudgetEstimate,
		Description:    b.Description,
		ServiceIDs:     b.ServiceIDs,
	}
}

// BuildDetail returns the read-side projection a freshly created request
// would produce.
func (b *ServiceRequestBuilder) BuildDetail() *queries.RequestDetail {
	return &queries.RequestDetail{
		ID:             uuid.New(),
		ClientID:       b.ClientID,
		ClientName:     "Laura Gómez",
		ProviderID:     b.ProviderID,
		ProviderName:   "Eventos del Valle",
		EventDate:      b.EventDate,
		GuestCount:     b.GuestCount,
		EventType:      b.EventType,
		BudgetEstimate: b.BudgetEstimate,
		Description:    b.Description,
		Status:         "Pendiente",
		Services:       []queries.RequestedService{},
		SentAt:         b.Now,
	}
}

// BuildProposal returns a valid provider answer for lifecycle tests.
func (b *ServiceRequestBuilder) BuildProposal() domrequest.Proposal {
	details := "Incluye sonido e iluminación"
	return domrequest.Proposal{
		Message: "Podemos atender su evento",
		Price:   1800,
		Details: &details,
	}
}
