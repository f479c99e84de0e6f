//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"eventora/internal/domain/calendar"
	"eventora/internal/pkg/clock"
	"eventora/internal/pkg/errs"
	"eventora/internal/usecase/commands"
	"eventora/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarBlock(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	providerID := uuid.New()

	t.Run("blocks a future day and invalidates the cache", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		cache := &availabilityRecorder{}
		uc := commands.NewCalendarUseCase(uow, clock.NewMockClock(now), cache)

		reason := "Mantenimiento"
		date := now.AddDate(0, 0, 3)
		require.NoError(t, uc.Block(ctx, providerID, date, &reason))

		entry := uow.TX.CalendarRepo.Entry(providerID, date)
		require.NotNil(t, entry)
		assert.False(t, entry.Available())
		assert.Equal(t, "Mantenimiento", *entry.Reason())
		assert.Equal(t, []uuid.UUID{providerID}, cache.providers)
	})

	t.Run("rejects past dates without opening a transaction", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		uc := commands.NewCalendarUseCase(uow, clock.NewMockClock(now), &availabilityRecorder{})

		err := uc.Block(ctx, providerID, now.AddDate(0, 0, -1), nil)
		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Zero(t, uow.Began)
	})

	t.Run("booked days cannot be overwritten by a block", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		uc := commands.NewCalendarUseCase(uow, clock.NewMockClock(now), &availabilityRecorder{})

		date := now.AddDate(0, 0, 5)
		reason := calendar.ReasonBooked
		linked := uuid.New()
		uow.TX.CalendarRepo.Seed(calendar.ReconstructEntry(providerID, date, false, &reason, &linked, now))

		err := uc.Block(ctx, providerID, date, nil)
		assert.ErrorIs(t, err, errs.ErrInvalidState)

		entry := uow.TX.CalendarRepo.Entry(providerID, date)
		require.NotNil(t, entry)
		assert.Equal(t, linked, *entry.LinkedRequestID())
	})

	t.Run("a booked day in the batch rolls back every prior write", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		uc := commands.NewCalendarUseCase(uow, clock.NewMockClock(now), &availabilityRecorder{})

		first := now.AddDate(0, 0, 4)
		booked := now.AddDate(0, 0, 5)
		reason := calendar.ReasonBooked
		linked := uuid.New()
		uow.TX.CalendarRepo.Seed(calendar.ReconstructEntry(providerID, booked, false, &reason, &linked, now))

		holiday := "Vacaciones"
		err := uc.BlockMany(ctx, providerID, []time.Time{first, booked}, &holiday)
		assert.ErrorIs(t, err, errs.ErrInvalidState)

		assert.Nil(t, uow.TX.CalendarRepo.Entry(providerID, first))
		entry := uow.TX.CalendarRepo.Entry(providerID, booked)
		require.NotNil(t, entry)
		assert.Equal(t, linked, *entry.LinkedRequestID())
	})
}

func TestCalendarUnblock(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	providerID := uuid.New()

	t.Run("block then unblock leaves the day available with reason and link cleared", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		uc := commands.NewCalendarUseCase(uow, clock.NewMockClock(now), &availabilityRecorder{})

		date := now.AddDate(0, 0, 2)
		reason := "Mantenimiento"
		require.NoError(t, uc.Block(ctx, providerID, date, &reason))
		require.NoError(t, uc.Unblock(ctx, providerID, date))

		entry := uow.TX.CalendarRepo.Entry(providerID, date)
		require.NotNil(t, entry)
		assert.True(t, entry.Available())
		assert.Nil(t, entry.Reason())
		assert.Nil(t, entry.LinkedRequestID())
	})

	t.Run("unblocking an unmarked day is a no-op upsert", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		uc := commands.NewCalendarUseCase(uow, clock.NewMockClock(now), &availabilityRecorder{})

		date := now.AddDate(0, 0, 2)
		require.NoError(t, uc.Unblock(ctx, providerID, date))

		entry := uow.TX.CalendarRepo.Entry(providerID, date)
		require.NotNil(t, entry)
		assert.True(t, entry.Available())
	})

	t.Run("unblock releases a booked day and clears its link", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		cache := &availabilityRecorder{}
		uc := commands.NewCalendarUseCase(uow, clock.NewMockClock(now), cache)

		date := now.AddDate(0, 0, 5)
		reason := calendar.ReasonBooked
		linked := uuid.New()
		uow.TX.CalendarRepo.Seed(calendar.ReconstructEntry(providerID, date, false, &reason, &linked, now))

		require.NoError(t, uc.Unblock(ctx, providerID, date))

		entry := uow.TX.CalendarRepo.Entry(providerID, date)
		require.NotNil(t, entry)
		assert.True(t, entry.Available())
		assert.Nil(t, entry.Reason())
		assert.Nil(t, entry.LinkedRequestID())
		assert.Equal(t, []uuid.UUID{providerID}, cache.providers)
	})
}

func TestCalendarDeleteDate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	providerID := uuid.New()

	t.Run("removes an unlinked entry", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		uc := commands.NewCalendarUseCase(uow, clock.NewMockClock(now), &availabilityRecorder{})

		date := now.AddDate(0, 0, 2)
		require.NoError(t, uc.Block(ctx, providerID, date, nil))
		require.NoError(t, uc.DeleteDate(ctx, providerID, date))
		assert.Nil(t, uow.TX.CalendarRepo.Entry(providerID, date))
	})

	t.Run("refuses a day held by a booking and keeps the row", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		uc := commands.NewCalendarUseCase(uow, clock.NewMockClock(now), &availabilityRecorder{})

		date := now.AddDate(0, 0, 5)
		reason := calendar.ReasonBooked
		linked := uuid.New()
		uow.TX.CalendarRepo.Seed(calendar.ReconstructEntry(providerID, date, false, &reason, &linked, now))

		err := uc.DeleteDate(ctx, providerID, date)
		assert.ErrorIs(t, err, errs.ErrInvalidState)

		entry := uow.TX.CalendarRepo.Entry(providerID, date)
		require.NotNil(t, entry)
		assert.Equal(t, linked, *entry.LinkedRequestID())
	})

	t.Run("unknown entries surface as not found", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		uc := commands.NewCalendarUseCase(uow, clock.NewMockClock(now), &availabilityRecorder{})

		err := uc.DeleteDate(ctx, providerID, now.AddDate(0, 0, 2))
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestCalendarSweepPastDates(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	providerID := uuid.New()

	uow := fake.NewUnitOfWork()
	uc := commands.NewCalendarUseCase(uow, clock.NewMockClock(now), &availabilityRecorder{})

	// one open past day, one already-closed past day, one open future day
	uow.TX.CalendarRepo.Seed(calendar.ReconstructEntry(providerID, now.AddDate(0, 0, -2), true, nil, nil, now))
	reason := calendar.ReasonPastDate
	uow.TX.CalendarRepo.Seed(calendar.ReconstructEntry(providerID, now.AddDate(0, 0, -5), false, &reason, nil, now))
	uow.TX.CalendarRepo.Seed(calendar.ReconstructEntry(providerID, now.AddDate(0, 0, 2), true, nil, nil, now))

	swept, err := uc.SweepPastDates(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), swept)

	closed := uow.TX.CalendarRepo.Entry(providerID, now.AddDate(0, 0, -2))
	require.NotNil(t, closed)
	assert.False(t, closed.Available())
	assert.Equal(t, calendar.ReasonPastDate, *closed.Reason())

	future := uow.TX.CalendarRepo.Entry(providerID, now.AddDate(0, 0, 2))
	assert.True(t, future.Available())
}
