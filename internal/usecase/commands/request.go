package commands

import (
	"context"
	"errors"
	"time"

	"eventora/internal/domain/calendar"
	"eventora/internal/domain/request"
	"eventora/internal/pkg/clock"
	"eventora/internal/pkg/errs"
	"eventora/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRequestInput struct {
	ProviderID     uuid.UUID
	EventDate      time.Time
	GuestCount     *int32
	EventType      string
	BudgetEstimate *float64
	Description    *string
	ServiceIDs     []uuid.UUID
}

type RespondInput struct {
	Message       string
	Price         float64
	Details       *string
	AvailableDate *time.Time
}

// RequestCommands drives the request lifecycle. Accepting a request blocks
// the provider's calendar for the event date inside the same transaction, so
// a request can never be accepted without its date being held.
type RequestCommands interface {
	Create(ctx context.Context, clientID uuid.UUID, input CreateRequestInput) (uuid.UUID, error)
	Respond(ctx context.Context, providerID, requestID uuid.UUID, input RespondInput) error
	Accept(ctx context.Context, clientID, requestID uuid.UUID) error
	Reject(ctx context.Context, actorID uuid.UUID, isProvider bool, requestID uuid.UUID) error
	Cancel(ctx context.Context, clientID, requestID uuid.UUID) error
}

type requestUseCaseImpl struct {
	uow   shared.UnitOfWork
	clk   clock.Clock
	cache AvailabilityInvalidator
}

func NewRequestUseCase(uow shared.UnitOfWork, clk clock.Clock, cache AvailabilityInvalidator) RequestCommands {
	return &requestUseCaseImpl{uow: uow, clk: clk, cache: cache}
}

func (uc *requestUseCaseImpl) Create(ctx context.Context, clientID uuid.UUID, input CreateRequestInput) (uuid.UUID, error) {
	req, err := request.NewServiceRequest(
		clientID, input.ProviderID, input.EventDate, input.GuestCount,
		input.EventType, input.BudgetEstimate, input.Description,
		input.ServiceIDs, uc.clk.Now(),
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if len(input.ServiceIDs) > 0 {
			owned, err := tx.Reads().ServicesBelongToProvider(ctx, input.ServiceIDs, input.ProviderID)
			if err != nil {
				return markRepoErr(err)
			}
			if !owned {
				return errs.Mark(errs.New("requested services do not belong to the provider"), errs.ErrValidation)
			}
		}
		if err := tx.Requests().Create(ctx, req); err != nil {
			return markRepoErr(err)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return req.ID(), nil
}

func (uc *requestUseCaseImpl) Respond(ctx context.Context, providerID, requestID uuid.UUID, input RespondInput) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.Requests().GetForUpdate(ctx, requestID)
		if err != nil {
			return markRepoErr(err)
		}
		proposal := request.Proposal{
			Message:       input.Message,
			Price:         input.Price,
			Details:       input.Details,
			AvailableDate: input.AvailableDate,
		}
		if err := req.Respond(providerID, proposal, uc.clk.Now()); err != nil {
			return markDomainErr(err)
		}
		if err := tx.Requests().Update(ctx, req); err != nil {
			return markRepoErr(err)
		}
		return nil
	})
}

// Accept transitions the request and books the provider's calendar for the
// event date atomically. Fails when the date is already held by another
// booking.
func (uc *requestUseCaseImpl) Accept(ctx context.Context, clientID, requestID uuid.UUID) error {
	var providerID uuid.UUID
	now := uc.clk.Now()

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.Requests().GetForUpdate(ctx, requestID)
		if err != nil {
			return markRepoErr(err)
		}
		if err := req.Accept(clientID, now); err != nil {
			return markDomainErr(err)
		}
		if err := ensureNotBooked(ctx, tx, req.ProviderID(), req.EventDate()); err != nil {
			return err
		}

		reason := calendar.ReasonBooked
		linked := req.ID()
		entry := calendar.ReconstructEntry(req.ProviderID(), req.EventDate(), false, &reason, &linked, now)
		if err := tx.Calendar().Upsert(ctx, entry); err != nil {
			return markRepoErr(err)
		}
		if err := tx.Requests().Update(ctx, req); err != nil {
			return markRepoErr(err)
		}
		providerID = req.ProviderID()
		return nil
	})
	if err != nil {
		return err
	}

	uc.cache.InvalidateAvailability(ctx, providerID)
	return nil
}

func (uc *requestUseCaseImpl) Reject(ctx context.Context, actorID uuid.UUID, isProvider bool, requestID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.Requests().GetForUpdate(ctx, requestID)
		if err != nil {
			return markRepoErr(err)
		}
		if err := req.Reject(actorID, isProvider); err != nil {
			return markDomainErr(err)
		}
		return markRepoErr(tx.Requests().Update(ctx, req))
	})
}

func (uc *requestUseCaseImpl) Cancel(ctx context.Context, clientID, requestID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.Requests().GetForUpdate(ctx, requestID)
		if err != nil {
			return markRepoErr(err)
		}
		if err := req.Cancel(clientID); err != nil {
			return markDomainErr(err)
		}
		return markRepoErr(tx.Requests().Update(ctx, req))
	})
}

// markDomainErr sorts request lifecycle errors into the sentinel taxonomy:
// wrong actor is a permission failure, wrong state a conflict, anything else
// bad input.
func markDomainErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, request.ErrNotParty):
		return errs.Mark(err, errs.ErrPermissionDenied)
	case errors.Is(err, request.ErrNotPending),
		errors.Is(err, request.ErrNotAnswered),
		errors.Is(err, request.ErrTerminalState):
		return errs.Mark(err, errs.ErrInvalidState)
	default:
		return errs.Mark(err, errs.ErrValidation)
	}
}
