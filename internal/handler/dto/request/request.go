package request

import (
	"time"

	"eventora/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateServiceRequest struct {
	ProviderID     uuid.UUID   `json:"provider_id" binding:"required"`
	EventDate      string      `json:"event_date" binding:"required"`
	GuestCount     *int32      `json:"guest_count" binding:"omitempty,min=1"`
	EventType      string      `json:"event_type" binding:"required,max=100"`
	BudgetEstimate *float64    `json:"budget_estimate" binding:"omitempty,gt=0"`
	Description    *string     `json:"description" binding:"omitempty,max=2000"`
	ServiceIDs     []uuid.UUID `json:"service_ids" binding:"omitempty,dive,required"`
}

func (r *CreateServiceRequest) ToInput() (commands.CreateRequestInput, error) {
	eventDate, err := ParseDate(r.EventDate)
	if err != nil {
		return commands.CreateRequestInput{}, err
	}
	return commands.CreateRequestInput{
		ProviderID:     r.ProviderID,
		EventDate:      eventDate,
		GuestCount:     r.GuestCount,
		EventType:      r.EventType,
		BudgetEstimate: r.BudgetEstimate,
		Description:    r.Description,
		ServiceIDs:     r.ServiceIDs,
	}, nil
}

type RespondRequest struct {
	Message       string   `json:"message" binding:"required,max=2000"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	Details       *string  `json:"details" binding:"omitempty,max=2000"`
	AvailableDate *string  `json:"available_date" binding:"omitempty"`
}

func (r *RespondRequest) ToInput() (commands.RespondInput, error) {
	var availableDate *time.Time
	if r.AvailableDate != nil {
		d, err := ParseDate(*r.AvailableDate)
		if err != nil {
			return commands.RespondInput{}, err
		}
		availableDate = &d
	}
	return commands.RespondInput{
		Message:       r.Message,
		Price:         r.Price,
		Details:       r.Details,
		AvailableDate: availableDate,
	}, nil
}
