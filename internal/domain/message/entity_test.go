//go:build unit

package message_test

import (
	"testing"
	"time"

	"eventora/internal/domain/actor"
	"eventora/internal/domain/message"
	"eventora/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewMessageBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.False(t, actual.Read(), "new messages start unread")
		assert.Nil(t, actual.ReadAt())
	})

	t.Run("content is trimmed", func(t *testing.T) {
		actual, err := builder.NewMessageBuilder().
			With(func(b *builder.MessageBuilder) { b.Content = "  hola  " }).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "hola", actual.Content())
	})

	t.Run("empty content", func(t *testing.T) {
		_, err := builder.NewMessageBuilder().
			With(func(b *builder.MessageBuilder) { b.Content = "   " }).
			BuildDomain()
		require.ErrorIs(t, err, message.ErrEmptyContent)
	})

	t.Run("admin cannot author thread messages", func(t *testing.T) {
		_, err := builder.NewMessageBuilder().
			With(func(b *builder.MessageBuilder) { b.SenderRole = actor.RoleAdmin }).
			BuildDomain()
		require.ErrorIs(t, err, message.ErrInvalidSender)
	})
}

func TestMessage_CanDelete(t *testing.T) {
	b := builder.NewMessageBuilder()
	msg, err := b.BuildDomain()
	require.NoError(t, err)

	t.Run("sender within the window", func(t *testing.T) {
		require.NoError(t, msg.CanDelete(b.SenderID, b.SenderRole, b.Now.Add(message.DeleteWindow-time.Second)))
	})

	t.Run("window boundary is exclusive", func(t *testing.T) {
		require.ErrorIs(t,
			msg.CanDelete(b.SenderID, b.SenderRole, b.Now.Add(message.DeleteWindow)),
			message.ErrDeleteWindow)
	})

	t.Run("someone else's message", func(t *testing.T) {
		require.ErrorIs(t, msg.CanDelete(uuid.New(), b.SenderRole, b.Now), message.ErrNotSender)
	})

	t.Run("same id but different role", func(t *testing.T) {
		require.ErrorIs(t, msg.CanDelete(b.SenderID, actor.RoleProvider, b.Now), message.ErrNotSender)
	})
}
