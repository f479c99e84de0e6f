package queries

import (
	"context"
	"time"

	"eventora/internal/domain/calendar"

	"github.com/google/uuid"
)

// CalendarListFilter narrows the owner's calendar listing. Nil Available
// means both blocked and available entries.
type CalendarListFilter struct {
	From      time.Time
	To        time.Time
	Available *bool
}

// BookingContext is the linked request's display data shown on booked days.
type BookingContext struct {
	RequestID  uuid.UUID `json:"request_id"`
	EventType  string    `json:"event_type"`
	GuestCount *int32    `json:"guest_count,omitempty"`
	ClientName string    `json:"client_name"`
}

// CalendarEntryView is the owner's view of one marked day, including the
// reason and booking context the public view hides.
type CalendarEntryView struct {
	Date      time.Time       `json:"date"`
	Available bool            `json:"available"`
	Reason    *string         `json:"reason,omitempty"`
	Booking   *BookingContext `json:"booking,omitempty"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CalendarStats summarizes a date range of the owner's calendar.
type CalendarStats struct {
	TotalDays     int `json:"total_days"`
	AvailableDays int `json:"available_days"`
	BlockedDays   int `json:"blocked_days"`
	BookedDays    int `json:"booked_days"`
}

type CalendarQueryService interface {
	// ListEntries returns the owner's marked days inside the range.
	ListEntries(ctx context.Context, providerID uuid.UUID, filter CalendarListFilter) ([]CalendarEntryView, error)
	// PublicAvailability materializes every day of the range, open-world:
	// days without an entry come back available with no reason.
	PublicAvailability(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]calendar.DayView, error)
	Stats(ctx context.Context, providerID uuid.UUID, from, to time.Time) (CalendarStats, error)
}
