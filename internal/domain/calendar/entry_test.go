//go:build unit

package calendar_test

import (
	"testing"
	"time"

	"eventora/internal/domain/calendar"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDay(t *testing.T) {
	loc, err := time.LoadLocation("America/Bogota")
	if err != nil {
		loc = time.UTC
	}

	in := time.Date(2026, 7, 15, 23, 45, 12, 999, loc)
	assert.Equal(t, time.Date(2026, 7, 15, 0, 0, 0, 0, loc), calendar.Day(in))
}

func TestIsPast(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	assert.True(t, calendar.IsPast(now.AddDate(0, 0, -1), now))
	assert.False(t, calendar.IsPast(now, now), "today is not past")
	assert.False(t, calendar.IsPast(now.Add(-8*time.Hour), now), "earlier same day is not past")
	assert.False(t, calendar.IsPast(now.AddDate(0, 0, 1), now))
}

func TestEntry_IsBooked(t *testing.T) {
	providerID := uuid.New()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	date := now.AddDate(0, 0, 5)

	reason := calendar.ReasonBooked
	linked := uuid.New()
	booked := calendar.ReconstructEntry(providerID, date, false, &reason, &linked, now)
	assert.True(t, booked.IsBooked())

	manual := "Mantenimiento"
	blocked := calendar.ReconstructEntry(providerID, date, false, &manual, nil, now)
	assert.False(t, blocked.IsBooked())
}

func TestReconstructEntry_TruncatesDate(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	e := calendar.ReconstructEntry(uuid.New(), now.Add(14*time.Hour), true, nil, nil, now)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), e.Date())
}
