package response

import (
	"eventora/internal/domain/calendar"
	"eventora/internal/usecase/queries"
)

type BookingContextResponse struct {
	RequestID  string `json:"request_id"`
	EventType  string `json:"event_type"`
	GuestCount *int32 `json:"guest_count,omitempty"`
	ClientName string `json:"client_name"`
}

type CalendarEntryResponse struct {
	Date      string                  `json:"date"`
	Available bool                    `json:"available"`
	Reason    *string                 `json:"reason,omitempty"`
	Booking   *BookingContextResponse `json:"booking,omitempty"`
	UpdatedAt int64                   `json:"updated_at"`
}

func FromCalendarEntries(entries []queries.CalendarEntryView) []CalendarEntryResponse {
	res := make([]CalendarEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = CalendarEntryResponse{
			Date:      e.Date.Format(dateLayout),
			Available: e.Available,
			Reason:    e.Reason,
			UpdatedAt: e.UpdatedAt.Unix(),
		}
		if e.Booking != nil {
			res[i].Booking = &BookingContextResponse{
				RequestID:  e.Booking.RequestID.String(),
				EventType:  e.Booking.EventType,
				GuestCount: e.Booking.GuestCount,
				ClientName: e.Booking.ClientName,
			}
		}
	}
	return res
}

type AvailabilityDayResponse struct {
	Date      string  `json:"date"`
	Available bool    `json:"available"`
	Reason    *string `json:"reason,omitempty"`
}

func FromAvailability(days []calendar.DayView) []AvailabilityDayResponse {
	res := make([]AvailabilityDayResponse, len(days))
	for i, d := range days {
		res[i] = AvailabilityDayResponse{
			Date:      d.Date.Format(dateLayout),
			Available: d.Available,
			Reason:    d.Reason,
		}
	}
	return res
}

type CalendarStatsResponse struct {
	TotalDays     int `json:"total_days"`
	AvailableDays int `json:"available_days"`
	BlockedDays   int `json:"blocked_days"`
	BookedDays    int `json:"booked_days"`
}

func FromCalendarStats(s queries.CalendarStats) CalendarStatsResponse {
	return CalendarStatsResponse(s)
}
