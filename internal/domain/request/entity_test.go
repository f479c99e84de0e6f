//go:build unit

package request_test

import (
	"testing"
	"time"

	"eventora/internal/domain/request"
	"eventora/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type creationCase struct {
	name   string
	mutate func(*builder.ServiceRequestBuilder)
	errIs  error
}

func TestNewServiceRequest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewServiceRequestBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, request.StatusPending, actual.Status())
		assert.Equal(t, b.ClientID, actual.ClientID())
		assert.Equal(t, b.ProviderID, actual.ProviderID())
		assert.Len(t, actual.ServiceIDs(), 2)
		assert.Nil(t, actual.Response())
		assert.Nil(t, actual.RespondedAt())
		assert.Nil(t, actual.AcceptedAt())
	})

	t.Run("event date is truncated to day granularity", func(t *testing.T) {
		b := builder.NewServiceRequestBuilder()
		b.EventDate = time.Date(2026, 4, 1, 18, 30, 0, 0, time.UTC)

		actual, err := b.BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), actual.EventDate())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []creationCase{
			{
				name:   "event date today is allowed",
				mutate: func(b *builder.ServiceRequestBuilder) { b.EventDate = b.Now },
			},
			{
				name:   "event date in the past",
				mutate: func(b *builder.ServiceRequestBuilder) { b.EventDate = b.Now.AddDate(0, 0, -1) },
				errIs:  request.ErrEventDateInPast,
			},
			{
				name:   "empty event type",
				mutate: func(b *builder.ServiceRequestBuilder) { b.EventType = "   " },
				errIs:  request.ErrEmptyEventType,
			},
			{
				name: "duplicate service ids",
				mutate: func(b *builder.ServiceRequestBuilder) {
					id := uuid.New()
					b.ServiceIDs = []uuid.UUID{id, id}
				},
				errIs: request.ErrDuplicateService,
			},
			{
				name:   "empty service set is allowed",
				mutate: func(b *builder.ServiceRequestBuilder) { b.ServiceIDs = nil },
			},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				actual, err := builder.NewServiceRequestBuilder().With(c.mutate).BuildDomain()
				if c.errIs == nil {
					require.NoError(t, err)
					require.NotNil(t, actual)
				} else {
					require.Nil(t, actual)
					require.ErrorIs(t, err, c.errIs)
				}
			})
		}
	})
}

func TestServiceRequest_Respond(t *testing.T) {
	b := builder.NewServiceRequestBuilder()
	now := b.Now.Add(time.Hour)

	t.Run("pending request accepts a proposal", func(t *testing.T) {
		req, err := b.BuildDomain()
		require.NoError(t, err)

		err = req.Respond(b.ProviderID, b.BuildProposal(), now)
		require.NoError(t, err)

		assert.Equal(t, request.StatusAnswered, req.Status())
		require.NotNil(t, req.Response())
		assert.Equal(t, 1800.0, req.Response().Price)
		require.NotNil(t, req.RespondedAt())
		assert.Equal(t, now, *req.RespondedAt())
	})

	t.Run("only the owning provider may respond", func(t *testing.T) {
		req, err := b.BuildDomain()
		require.NoError(t, err)

		err = req.Respond(uuid.New(), b.BuildProposal(), now)
		require.ErrorIs(t, err, request.ErrNotParty)
		assert.Equal(t, request.StatusPending, req.Status())
	})

	t.Run("empty message rejected", func(t *testing.T) {
		req, err := b.BuildDomain()
		require.NoError(t, err)

		p := b.BuildProposal()
		p.Message = "  "
		require.ErrorIs(t, req.Respond(b.ProviderID, p, now), request.ErrEmptyResponse)
	})

	t.Run("non-positive price rejected", func(t *testing.T) {
		req, err := b.BuildDomain()
		require.NoError(t, err)

		p := b.BuildProposal()
		p.Price = 0
		require.ErrorIs(t, req.Respond(b.ProviderID, p, now), request.ErrNonPositivePrice)
	})

	t.Run("answering twice fails", func(t *testing.T) {
		req, err := b.BuildDomain()
		require.NoError(t, err)

		require.NoError(t, req.Respond(b.ProviderID, b.BuildProposal(), now))
		require.ErrorIs(t, req.Respond(b.ProviderID, b.BuildProposal(), now), request.ErrNotPending)
	})
}

func TestServiceRequest_Accept(t *testing.T) {
	b := builder.NewServiceRequestBuilder()
	now := b.Now.Add(time.Hour)

	answered := func(t *testing.T) *request.ServiceRequest {
		t.Helper()
		req, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, req.Respond(b.ProviderID, b.BuildProposal(), now))
		return req
	}

	t.Run("client accepts an answered request", func(t *testing.T) {
		req := answered(t)

		require.NoError(t, req.Accept(b.ClientID, now))
		assert.Equal(t, request.StatusAccepted, req.Status())
		require.NotNil(t, req.AcceptedAt())
		assert.True(t, req.Status().IsTerminal())
	})

	t.Run("pending request cannot be accepted", func(t *testing.T) {
		req, err := b.BuildDomain()
		require.NoError(t, err)

		require.ErrorIs(t, req.Accept(b.ClientID, now), request.ErrNotAnswered)
	})

	t.Run("only the owning client may accept", func(t *testing.T) {
		req := answered(t)
		require.ErrorIs(t, req.Accept(uuid.New(), now), request.ErrNotParty)
	})

	t.Run("provider cannot accept on behalf of the client", func(t *testing.T) {
		req := answered(t)
		require.ErrorIs(t, req.Accept(b.ProviderID, now), request.ErrNotParty)
	})
}

func TestServiceRequest_Reject(t *testing.T) {
	b := builder.NewServiceRequestBuilder()
	now := b.Now.Add(time.Hour)

	t.Run("either party may reject a pending request", func(t *testing.T) {
		req, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, req.Reject(b.ClientID, false))
		assert.Equal(t, request.StatusRejected, req.Status())

		req, err = b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, req.Reject(b.ProviderID, true))
		assert.Equal(t, request.StatusRejected, req.Status())
	})

	t.Run("answered request may still be rejected", func(t *testing.T) {
		req, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, req.Respond(b.ProviderID, b.BuildProposal(), now))

		require.NoError(t, req.Reject(b.ClientID, false))
		assert.Equal(t, request.StatusRejected, req.Status())
	})

	t.Run("terminal request cannot be rejected", func(t *testing.T) {
		req, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, req.Respond(b.ProviderID, b.BuildProposal(), now))
		require.NoError(t, req.Accept(b.ClientID, now))

		require.ErrorIs(t, req.Reject(b.ProviderID, true), request.ErrTerminalState)
	})

	t.Run("stranger cannot reject", func(t *testing.T) {
		req, err := b.BuildDomain()
		require.NoError(t, err)
		require.ErrorIs(t, req.Reject(uuid.New(), false), request.ErrNotParty)
	})
}

func TestServiceRequest_Cancel(t *testing.T) {
	b := builder.NewServiceRequestBuilder()
	now := b.Now.Add(time.Hour)

	t.Run("client cancels a pending request", func(t *testing.T) {
		req, err := b.BuildDomain()
		require.NoError(t, err)

		require.NoError(t, req.Cancel(b.ClientID))
		assert.Equal(t, request.StatusCanceled, req.Status())
		assert.False(t, req.AcceptsMessages())
	})

	t.Run("answered request cannot be canceled", func(t *testing.T) {
		req, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, req.Respond(b.ProviderID, b.BuildProposal(), now))

		require.ErrorIs(t, req.Cancel(b.ClientID), request.ErrNotPending)
	})

	t.Run("provider cannot cancel", func(t *testing.T) {
		req, err := b.BuildDomain()
		require.NoError(t, err)
		require.ErrorIs(t, req.Cancel(b.ProviderID), request.ErrNotParty)
	})
}

func TestStatus(t *testing.T) {
	t.Run("parsing accepts only known wire values", func(t *testing.T) {
		for _, s := range []string{"Pendiente", "Respondida", "Aceptada", "Rechazada", "Cancelada"} {
			_, err := request.NewStatus(s)
			require.NoError(t, err, s)
		}
		_, err := request.NewStatus("pending")
		require.ErrorIs(t, err, request.ErrInvalidStatus)
	})

	t.Run("transition table", func(t *testing.T) {
		assert.True(t, request.StatusPending.CanTransitionTo(request.StatusAnswered))
		assert.True(t, request.StatusPending.CanTransitionTo(request.StatusRejected))
		assert.True(t, request.StatusPending.CanTransitionTo(request.StatusCanceled))
		assert.False(t, request.StatusPending.CanTransitionTo(request.StatusAccepted))

		assert.True(t, request.StatusAnswered.CanTransitionTo(request.StatusAccepted))
		assert.True(t, request.StatusAnswered.CanTransitionTo(request.StatusRejected))
		assert.False(t, request.StatusAnswered.CanTransitionTo(request.StatusCanceled))

		for _, terminal := range []request.Status{request.StatusAccepted, request.StatusRejected, request.StatusCanceled} {
			assert.True(t, terminal.IsTerminal(), terminal)
			for _, next := range []request.Status{request.StatusPending, request.StatusAnswered, request.StatusAccepted, request.StatusRejected, request.StatusCanceled} {
				assert.False(t, terminal.CanTransitionTo(next))
			}
		}
	})
}
