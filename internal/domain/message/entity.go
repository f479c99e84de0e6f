package message

import (
	"errors"
	"strings"
	"time"

	"eventora/internal/domain/actor"

	"github.com/google/uuid"
)

// DeleteWindow is how long a sender can retract their own message.
const DeleteWindow = 5 * time.Minute

var (
	ErrEmptyContent  = errors.New("message content cannot be empty")
	ErrNotSender     = errors.New("only the sender may delete a message")
	ErrDeleteWindow  = errors.New("delete window has elapsed")
	ErrInvalidSender = errors.New("sender must be the client or the provider of the request")
)

// Message is one entry in a request's append-only thread. New messages start
// unread; read state flips in bulk when the counterpart opens or replies to
// the thread.
type Message struct {
	id         uuid.UUID
	requestID  uuid.UUID
	senderID   uuid.UUID
	senderRole actor.Role
	content    string
	sentAt     time.Time
	read       bool
	readAt     *time.Time
}

func NewMessage(requestID, senderID uuid.UUID, senderRole actor.Role, content string, now time.Time) (*Message, error) {
	if senderRole != actor.RoleClient && senderRole != actor.RoleProvider {
		return nil, ErrInvalidSender
	}
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, ErrEmptyContent
	}

	return &Message{
		id:         uuid.New(),
		requestID:  requestID,
		senderID:   senderID,
		senderRole: senderRole,
		content:    trimmed,
		sentAt:     now,
	}, nil
}

func ReconstructMessage(id, requestID, senderID uuid.UUID, senderRole actor.Role, content string, sentAt time.Time, read bool, readAt *time.Time) *Message {
	return &Message{
		id:         id,
		requestID:  requestID,
		senderID:   senderID,
		senderRole: senderRole,
		content:    content,
		sentAt:     sentAt,
		read:       read,
		readAt:     readAt,
	}
}

func (m *Message) ID() uuid.UUID          { return m.id }
func (m *Message) RequestID() uuid.UUID   { return m.requestID }
func (m *Message) SenderID() uuid.UUID    { return m.senderID }
func (m *Message) SenderRole() actor.Role { return m.senderRole }
func (m *Message) Content() string        { return m.content }
func (m *Message) SentAt() time.Time      { return m.sentAt }
func (m *Message) Read() bool             { return m.read }
func (m *Message) ReadAt() *time.Time     { return m.readAt }

// CanDelete checks sender identity and the retraction window.
func (m *Message) CanDelete(actorID uuid.UUID, role actor.Role, now time.Time) error {
	if m.senderID != actorID || m.senderRole != role {
		return ErrNotSender
	}
	if now.Sub(m.sentAt) >= DeleteWindow {
		return ErrDeleteWindow
	}
	return nil
}
