package calendar

import (
	"time"

	"github.com/google/uuid"
)

const (
	// Reasons written by the system rather than the provider.
	ReasonBooked   = "Reservado"
	ReasonPastDate = "Fecha pasada"
)

// Entry is a per-date override on a provider's calendar. Absence of an entry
// means the date is open (open-world default); an entry with a linked request
// is a confirmed booking and must not be deleted while the link exists.
type Entry struct {
	providerID      uuid.UUID
	date            time.Time
	available       bool
	reason          *string
	linkedRequestID *uuid.UUID
	updatedAt       time.Time
}

func ReconstructEntry(providerID uuid.UUID, date time.Time, available bool, reason *string, linkedRequestID *uuid.UUID, updatedAt time.Time) *Entry {
	return &Entry{
		providerID:      providerID,
		date:            Day(date),
		available:       available,
		reason:          reason,
		linkedRequestID: linkedRequestID,
		updatedAt:       updatedAt,
	}
}

func (e *Entry) ProviderID() uuid.UUID       { return e.providerID }
func (e *Entry) Date() time.Time             { return e.date }
func (e *Entry) Available() bool             { return e.available }
func (e *Entry) Reason() *string             { return e.reason }
func (e *Entry) LinkedRequestID() *uuid.UUID { return e.linkedRequestID }
func (e *Entry) UpdatedAt() time.Time        { return e.updatedAt }

func (e *Entry) IsBooked() bool {
	return e.linkedRequestID != nil
}

// DayView is one day of a provider's public availability; gaps in the stored
// calendar materialize as open days.
type DayView struct {
	Date      time.Time `json:"date"`
	Available bool      `json:"available"`
	Reason    *string   `json:"reason,omitempty"`
}

// Day truncates a timestamp to calendar-day granularity. All ledger
// comparisons happen at this granularity.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsPast reports whether date falls strictly before today as seen by now.
func IsPast(date, now time.Time) bool {
	return Day(date).Before(Day(now))
}
