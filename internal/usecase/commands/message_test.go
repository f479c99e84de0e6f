//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"eventora/internal/domain/actor"
	"eventora/internal/domain/message"
	"eventora/internal/pkg/clock"
	"eventora/internal/pkg/errs"
	"eventora/internal/usecase/commands"
	"eventora/tests/common/builder"
	"eventora/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageSend(t *testing.T) {
	ctx := context.Background()

	t.Run("replying marks the counterpart's messages read first", func(t *testing.T) {
		b := builder.NewServiceRequestBuilder()
		uow := fake.NewUnitOfWork()
		clk := clock.NewMockClock(b.Now)
		uc := commands.NewMessageUseCase(uow, clk)
		req := seedAnswered(t, uow, b)

		fromClient, err := uc.Send(ctx, b.ClientID, actor.RoleClient, req.ID(), "¿Tienen disponibilidad?")
		require.NoError(t, err)

		clk.Add(time.Minute)
		_, err = uc.Send(ctx, b.ProviderID, actor.RoleProvider, req.ID(), "Sí, la fecha está libre")
		require.NoError(t, err)

		var clientMsg, providerMsg *message.Message
		for _, msg := range uow.TX.MessageRepo.All() {
			if msg.ID() == fromClient {
				clientMsg = msg
			} else {
				providerMsg = msg
			}
		}
		require.NotNil(t, clientMsg)
		require.NotNil(t, providerMsg)
		assert.True(t, clientMsg.Read(), "reply flips the earlier message")
		assert.False(t, providerMsg.Read(), "the reply itself stays unread")
	})

	t.Run("canceled requests reject new messages", func(t *testing.T) {
		b := builder.NewServiceRequestBuilder()
		uow := fake.NewUnitOfWork()
		uc := commands.NewMessageUseCase(uow, clock.NewMockClock(b.Now))

		req, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, req.Cancel(b.ClientID))
		uow.TX.RequestRepo.Seed(req)

		_, err = uc.Send(ctx, b.ClientID, actor.RoleClient, req.ID(), "hola")
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("third parties cannot write to the thread", func(t *testing.T) {
		b := builder.NewServiceRequestBuilder()
		uow := fake.NewUnitOfWork()
		uc := commands.NewMessageUseCase(uow, clock.NewMockClock(b.Now))
		req := seedAnswered(t, uow, b)

		_, err := uc.Send(ctx, uuid.New(), actor.RoleClient, req.ID(), "hola")
		assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	})
}

func TestMessageDelete(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (commands.MessageCommands, *fake.UnitOfWork, *clock.MockClock, *builder.ServiceRequestBuilder, uuid.UUID) {
		t.Helper()
		b := builder.NewServiceRequestBuilder()
		uow := fake.NewUnitOfWork()
		clk := clock.NewMockClock(b.Now)
		uc := commands.NewMessageUseCase(uow, clk)
		req := seedAnswered(t, uow, b)

		id, err := uc.Send(ctx, b.ClientID, actor.RoleClient, req.ID(), "mensaje equivocado")
		require.NoError(t, err)
		return uc, uow, clk, b, id
	}

	t.Run("sender retracts within the window", func(t *testing.T) {
		uc, uow, clk, b, id := setup(t)
		clk.Add(message.DeleteWindow - time.Second)

		require.NoError(t, uc.Delete(ctx, b.ClientID, actor.RoleClient, id))
		_, err := uow.TX.MessageRepo.Get(ctx, id)
		assert.Error(t, err)
	})

	t.Run("window boundary is exclusive", func(t *testing.T) {
		uc, _, clk, b, id := setup(t)
		clk.Add(message.DeleteWindow)

		err := uc.Delete(ctx, b.ClientID, actor.RoleClient, id)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("only the sender may retract", func(t *testing.T) {
		uc, _, _, b, id := setup(t)

		err := uc.Delete(ctx, b.ProviderID, actor.RoleProvider, id)
		assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	})
}
