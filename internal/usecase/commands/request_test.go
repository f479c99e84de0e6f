//go:build unit

package commands_test

import (
	"context"
	"testing"

	"eventora/internal/domain/calendar"
	"eventora/internal/domain/request"
	"eventora/internal/pkg/clock"
	"eventora/internal/pkg/errs"
	"eventora/internal/usecase/commands"
	"eventora/tests/common/builder"
	"eventora/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type availabilityRecorder struct {
	providers []uuid.UUID
}

func (r *availabilityRecorder) InvalidateAvailability(_ context.Context, providerID uuid.UUID) {
	r.providers = append(r.providers, providerID)
}

type statsRecorder struct {
	providers []uuid.UUID
}

func (r *statsRecorder) InvalidateStats(_ context.Context, providerID uuid.UUID) {
	r.providers = append(r.providers, providerID)
}

// seedAnswered stores a request that already carries a provider proposal.
func seedAnswered(t *testing.T, uow *fake.UnitOfWork, b *builder.ServiceRequestBuilder) *request.ServiceRequest {
	t.Helper()
	req, err := b.BuildDomain()
	require.NoError(t, err)
	require.NoError(t, req.Respond(b.ProviderID, b.BuildProposal(), b.Now))
	uow.TX.RequestRepo.Seed(req)
	return req
}

func TestRequestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the request when services belong to the provider", func(t *testing.T) {
		b := builder.NewServiceRequestBuilder()
		uow := fake.NewUnitOfWork()
		cache := &availabilityRecorder{}
		uc := commands.NewRequestUseCase(uow, clock.NewMockClock(b.Now), cache)

		id, err := uc.Create(ctx, b.ClientID, b.BuildCreateInput())
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)

		stored, err := uow.TX.RequestRepo.GetForUpdate(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, request.StatusPending, stored.Status())
	})

	t.Run("rejects services owned by another provider", func(t *testing.T) {
		b := builder.NewServiceRequestBuilder()
		uow := fake.NewUnitOfWork()
		uow.TX.ReadsStub.ServicesOwned = false
		uc := commands.NewRequestUseCase(uow, clock.NewMockClock(b.Now), &availabilityRecorder{})

		_, err := uc.Create(ctx, b.ClientID, b.BuildCreateInput())
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("rejects a past event date before opening a transaction", func(t *testing.T) {
		b := builder.NewServiceRequestBuilder().With(func(b *builder.ServiceRequestBuilder) {
			b.EventDate = b.Now.AddDate(0, 0, -1)
		})
		uow := fake.NewUnitOfWork()
		uc := commands.NewRequestUseCase(uow, clock.NewMockClock(b.Now), &availabilityRecorder{})

		_, err := uc.Create(ctx, b.ClientID, b.BuildCreateInput())
		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Zero(t, uow.Began)
	})
}

func TestRequestAccept(t *testing.T) {
	ctx := context.Background()

	t.Run("books the event date in the same transaction", func(t *testing.T) {
		b := builder.NewServiceRequestBuilder()
		uow := fake.NewUnitOfWork()
		cache := &availabilityRecorder{}
		uc := commands.NewRequestUseCase(uow, clock.NewMockClock(b.Now), cache)
		req := seedAnswered(t, uow, b)

		require.NoError(t, uc.Accept(ctx, b.ClientID, req.ID()))

		assert.Equal(t, 1, uow.Began, "accept and block must share one transaction")

		stored, err := uow.TX.RequestRepo.GetForUpdate(ctx, req.ID())
		require.NoError(t, err)
		assert.Equal(t, request.StatusAccepted, stored.Status())

		entry := uow.TX.CalendarRepo.Entry(b.ProviderID, b.EventDate)
		require.NotNil(t, entry, "event date must be held in the ledger")
		assert.False(t, entry.Available())
		assert.Equal(t, calendar.ReasonBooked, *entry.Reason())
		require.NotNil(t, entry.LinkedRequestID())
		assert.Equal(t, req.ID(), *entry.LinkedRequestID())

		assert.Equal(t, []uuid.UUID{b.ProviderID}, cache.providers)
	})

	t.Run("fails when the date is held by another booking", func(t *testing.T) {
		b := builder.NewServiceRequestBuilder()
		uow := fake.NewUnitOfWork()
		uc := commands.NewRequestUseCase(uow, clock.NewMockClock(b.Now), &availabilityRecorder{})
		req := seedAnswered(t, uow, b)

		reason := calendar.ReasonBooked
		other := uuid.New()
		uow.TX.CalendarRepo.Seed(calendar.ReconstructEntry(
			b.ProviderID, b.EventDate, false, &reason, &other, b.Now))

		err := uc.Accept(ctx, b.ClientID, req.ID())
		assert.ErrorIs(t, err, errs.ErrInvalidState)

		entry := uow.TX.CalendarRepo.Entry(b.ProviderID, b.EventDate)
		assert.Equal(t, other, *entry.LinkedRequestID(), "existing booking must not be overwritten")
	})

	t.Run("fails for a request that was never answered", func(t *testing.T) {
		b := builder.NewServiceRequestBuilder()
		uow := fake.NewUnitOfWork()
		uc := commands.NewRequestUseCase(uow, clock.NewMockClock(b.Now), &availabilityRecorder{})

		req, err := b.BuildDomain()
		require.NoError(t, err)
		uow.TX.RequestRepo.Seed(req)

		err = uc.Accept(ctx, b.ClientID, req.ID())
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Nil(t, uow.TX.CalendarRepo.Entry(b.ProviderID, b.EventDate))
	})

	t.Run("fails with not found for an unknown request", func(t *testing.T) {
		b := builder.NewServiceRequestBuilder()
		uow := fake.NewUnitOfWork()
		uc := commands.NewRequestUseCase(uow, clock.NewMockClock(b.Now), &availabilityRecorder{})

		err := uc.Accept(ctx, b.ClientID, uuid.New())
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestRequestReject(t *testing.T) {
	ctx := context.Background()

	t.Run("stranger cannot reject", func(t *testing.T) {
		b := builder.NewServiceRequestBuilder()
		uow := fake.NewUnitOfWork()
		uc := commands.NewRequestUseCase(uow, clock.NewMockClock(b.Now), &availabilityRecorder{})
		req := seedAnswered(t, uow, b)

		err := uc.Reject(ctx, uuid.New(), false, req.ID())
		assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	})

	t.Run("provider rejects an answered request", func(t *testing.T) {
		b := builder.NewServiceRequestBuilder()
		uow := fake.NewUnitOfWork()
		uc := commands.NewRequestUseCase(uow, clock.NewMockClock(b.Now), &availabilityRecorder{})
		req := seedAnswered(t, uow, b)

		require.NoError(t, uc.Reject(ctx, b.ProviderID, true, req.ID()))

		stored, err := uow.TX.RequestRepo.GetForUpdate(ctx, req.ID())
		require.NoError(t, err)
		assert.Equal(t, request.StatusRejected, stored.Status())
	})
}

func TestRequestCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("client cancels a pending request", func(t *testing.T) {
		b := builder.NewServiceRequestBuilder()
		uow := fake.NewUnitOfWork()
		uc := commands.NewRequestUseCase(uow, clock.NewMockClock(b.Now), &availabilityRecorder{})

		req, err := b.BuildDomain()
		require.NoError(t, err)
		uow.TX.RequestRepo.Seed(req)

		require.NoError(t, uc.Cancel(ctx, b.ClientID, req.ID()))

		stored, err := uow.TX.RequestRepo.GetForUpdate(ctx, req.ID())
		require.NoError(t, err)
		assert.Equal(t, request.StatusCanceled, stored.Status())
	})

	t.Run("answered requests cannot be canceled", func(t *testing.T) {
		b := builder.NewServiceRequestBuilder()
		uow := fake.NewUnitOfWork()
		uc := commands.NewRequestUseCase(uow, clock.NewMockClock(b.Now), &availabilityRecorder{})
		req := seedAnswered(t, uow, b)

		err := uc.Cancel(ctx, b.ClientID, req.ID())
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}
