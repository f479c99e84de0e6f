package commands

import (
	"context"
	"time"

	"eventora/internal/domain/calendar"
	"eventora/internal/infra"
	"eventora/internal/pkg/clock"
	"eventora/internal/pkg/errs"
	"eventora/internal/usecase/shared"

	"github.com/google/uuid"
)

// CalendarCommands mutates a provider's availability ledger. Every write
// invalidates the provider's cached public availability.
type CalendarCommands interface {
	Block(ctx context.Context, providerID uuid.UUID, date time.Time, reason *string) error
	BlockMany(ctx context.Context, providerID uuid.UUID, dates []time.Time, reason *string) error
	Unblock(ctx context.Context, providerID uuid.UUID, date time.Time) error
	UnblockMany(ctx context.Context, providerID uuid.UUID, dates []time.Time) error
	DeleteDate(ctx context.Context, providerID uuid.UUID, date time.Time) error
	SweepPastDates(ctx context.Context) (int64, error)
}

type calendarUseCaseImpl struct {
	uow   shared.UnitOfWork
	clk   clock.Clock
	cache AvailabilityInvalidator
}

func NewCalendarUseCase(uow shared.UnitOfWork, clk clock.Clock, cache AvailabilityInvalidator) CalendarCommands {
	return &calendarUseCaseImpl{uow: uow, clk: clk, cache: cache}
}

// Block marks a day unavailable with the provider's reason. Days already held
// by a booking cannot be overwritten.
func (uc *calendarUseCaseImpl) Block(ctx context.Context, providerID uuid.UUID, date time.Time, reason *string) error {
	return uc.blockMany(ctx, providerID, []time.Time{date}, reason)
}

// BlockMany blocks a set of days in one all-or-nothing transaction.
func (uc *calendarUseCaseImpl) BlockMany(ctx context.Context, providerID uuid.UUID, dates []time.Time, reason *string) error {
	return uc.blockMany(ctx, providerID, dates, reason)
}

func (uc *calendarUseCaseImpl) blockMany(ctx context.Context, providerID uuid.UUID, dates []time.Time, reason *string) error {
	now := uc.clk.Now()
	for _, date := range dates {
		if calendar.IsPast(date, now) {
			return errs.Mark(errs.New("cannot block a past date"), errs.ErrValidation)
		}
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, date := range dates {
			if err := ensureNotBooked(ctx, tx, providerID, date); err != nil {
				return err
			}
			entry := calendar.ReconstructEntry(providerID, date, false, reason, nil, now)
			if err := tx.Calendar().Upsert(ctx, entry); err != nil {
				return markRepoErr(err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.cache.InvalidateAvailability(ctx, providerID)
	return nil
}

// Unblock reopens a day, clearing the reason and any booking link. Idempotent:
// unblocking an open or unmarked day writes the same available entry. The
// ledger trusts the caller here; ownership was checked at the boundary.
func (uc *calendarUseCaseImpl) Unblock(ctx context.Context, providerID uuid.UUID, date time.Time) error {
	return uc.UnblockMany(ctx, providerID, []time.Time{date})
}

// UnblockMany reopens a set of days in one all-or-nothing transaction.
func (uc *calendarUseCaseImpl) UnblockMany(ctx context.Context, providerID uuid.UUID, dates []time.Time) error {
	now := uc.clk.Now()
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, date := range dates {
			entry := calendar.ReconstructEntry(providerID, date, true, nil, nil, now)
			if err := tx.Calendar().Upsert(ctx, entry); err != nil {
				return markRepoErr(err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.cache.InvalidateAvailability(ctx, providerID)
	return nil
}

// DeleteDate removes the day's entry outright, restoring the open-world
// default. Days held by a confirmed booking keep their row; releasing a
// booking goes through Unblock.
func (uc *calendarUseCaseImpl) DeleteDate(ctx context.Context, providerID uuid.UUID, date time.Time) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entry, err := tx.Calendar().Get(ctx, providerID, date)
		if err != nil {
			return markRepoErr(err)
		}
		if entry.IsBooked() {
			return errs.Mark(errs.New("date is held by a confirmed booking"), errs.ErrInvalidState)
		}
		return markRepoErr(tx.Calendar().Delete(ctx, providerID, date))
	})
	if err != nil {
		return err
	}

	uc.cache.InvalidateAvailability(ctx, providerID)
	return nil
}

func ensureNotBooked(ctx context.Context, tx shared.Tx, providerID uuid.UUID, date time.Time) error {
	entry, err := tx.Calendar().Get(ctx, providerID, date)
	if err != nil {
		if infra.IsKind(err, infra.NotFound) {
			return nil
		}
		return markRepoErr(err)
	}
	if entry.IsBooked() {
		return errs.Mark(errs.New("date is held by a confirmed booking"), errs.ErrInvalidState)
	}
	return nil
}

// SweepPastDates closes out past open days; run by the background sweeper.
func (uc *calendarUseCaseImpl) SweepPastDates(ctx context.Context) (int64, error) {
	var swept int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Calendar().SweepPastDates(ctx, uc.clk.Now())
		if err != nil {
			return markRepoErr(err)
		}
		swept = n
		return nil
	})
	return swept, err
}
