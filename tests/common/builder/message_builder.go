//go:build unit

package builder

import (
	"time"

	"eventora/internal/domain/actor"
	dommessage "eventora/internal/domain/message"

	"github.com/google/uuid"
)

type MessageBuilder struct {
	RequestID  uuid.UUID
	SenderID   uuid.UUID
	SenderRole actor.Role
	Content    string
	Now        time.Time
}

func NewMessageBuilder() *MessageBuilder {
	return &MessageBuilder{
		RequestID:  uuid.New(),
		SenderID:   uuid.New(),
		SenderRole: actor.RoleClient,
		Content:    "¿Tienen disponibilidad para esa fecha?",
		Now:        time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func (b *MessageBuilder) With(mutate func(*MessageBuilder)) *MessageBuilder {
	mutate(b)
	return b
}

func (b *MessageBuilder) BuildDomain() (*dommessage.Message, error) {
	return dommessage.NewMessage(b.RequestID, b.SenderID, b.SenderRole, b.Content, b.Now)
}
