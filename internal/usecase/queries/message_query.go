package queries

import (
	"context"
	"time"

	"eventora/internal/domain/actor"

	"github.com/google/uuid"
)

type MessageView struct {
	ID         uuid.UUID  `json:"id"`
	RequestID  uuid.UUID  `json:"request_id"`
	SenderID   uuid.UUID  `json:"sender_id"`
	SenderRole string     `json:"sender_role"`
	SenderName string     `json:"sender_name"`
	Content    string     `json:"content"`
	SentAt     time.Time  `json:"sent_at"`
	Read       bool       `json:"read"`
	ReadAt     *time.Time `json:"read_at,omitempty"`
}

// ConversationView is one row of the inbox: the counterpart, the latest
// message and how many messages the caller has not read yet.
type ConversationView struct {
	RequestID       uuid.UUID `json:"request_id"`
	CounterpartID   uuid.UUID `json:"counterpart_id"`
	CounterpartName string    `json:"counterpart_name"`
	RequestStatus   string    `json:"request_status"`
	LastMessage     string    `json:"last_message"`
	LastSentAt      time.Time `json:"last_sent_at"`
	UnreadCount     int       `json:"unread_count"`
}

type MessageQueryService interface {
	// Thread returns a request's messages oldest first.
	Thread(ctx context.Context, requestID uuid.UUID) ([]MessageView, error)
	// Conversations returns one row per request thread the actor is party
	// to, newest activity first.
	Conversations(ctx context.Context, actorID uuid.UUID, role actor.Role) ([]ConversationView, error)
	UnreadCount(ctx context.Context, actorID uuid.UUID) (int, error)
}
