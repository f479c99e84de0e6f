package readstore

import (
	"context"
	"sort"

	"eventora/internal/domain/actor"
	"eventora/internal/infra"
	"eventora/internal/infra/db"
	"eventora/internal/pkg/pgconv"
	"eventora/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type MessageReadStore struct {
	db db.DBTX
}

func NewMessageReadStore(dbtx db.DBTX) *MessageReadStore {
	return &MessageReadStore{db: dbtx}
}

const threadQuery = `
SELECT m.id, m.request_id, m.sender_id, m.sender_role, u.name,
       m.content, m.sent_at, m.read, m.read_at
FROM messages m
JOIN users u ON u.id = m.sender_id
WHERE m.request_id = $1
ORDER BY m.sent_at`

func (s *MessageReadStore) Thread(ctx context.Context, requestID uuid.UUID) ([]queries.MessageView, error) {
	rows, err := s.db.Query(ctx, threadQuery, pgconv.UUIDToPgtype(requestID))
	if err != nil {
		return nil, infra.WrapRepoErr(err, "failed to load message thread")
	}
	defer rows.Close()

	views := make([]queries.MessageView, 0)
	for rows.Next() {
		var (
			view         queries.MessageView
			id, reqID    pgtype.UUID
			senderID     pgtype.UUID
			sentAt       pgtype.Timestamptz
			readAt       pgtype.Timestamptz
		)
		err := rows.Scan(&id, &reqID, &senderID, &view.SenderRole, &view.SenderName,
			&view.Content, &sentAt, &view.Read, &readAt)
		if err != nil {
			return nil, infra.WrapRepoErr(err, "failed to scan message row")
		}
		view.ID = uuid.UUID(id.Bytes)
		view.RequestID = uuid.UUID(reqID.Bytes)
		view.SenderID = uuid.UUID(senderID.Bytes)
		view.SentAt = pgconv.TimeFromPgtype(sentAt)
		view.ReadAt = pgconv.TimePtrFromPgtype(readAt)
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(err, "failed to iterate message thread")
	}
	return views, nil
}

// One row per thread: DISTINCT ON picks the newest message, the lateral-free
// subquery counts what the caller has not read.
const conversationsQuery = `
SELECT DISTINCT ON (m.request_id)
       m.request_id,
       cp.id,
       cp.name,
       r.status,
       m.content,
       m.sent_at,
       (SELECT count(*) FROM messages um
        WHERE um.request_id = m.request_id AND um.sender_id <> $1 AND um.read = FALSE)
FROM messages m
JOIN service_requests r ON r.id = m.request_id
JOIN users cp ON cp.id = CASE WHEN r.client_id = $1 THEN r.provider_id ELSE r.client_id END
WHERE r.client_id = $1 OR r.provider_id = $1
ORDER BY m.request_id, m.sent_at DESC, m.id DESC`

func (s *MessageReadStore) Conversations(ctx context.Context, actorID uuid.UUID, _ actor.Role) ([]queries.ConversationView, error) {
	rows, err := s.db.Query(ctx, conversationsQuery, pgconv.UUIDToPgtype(actorID))
	if err != nil {
		return nil, infra.WrapRepoErr(err, "failed to load conversations")
	}
	defer rows.Close()

	views := make([]queries.ConversationView, 0)
	for rows.Next() {
		var (
			view          queries.ConversationView
			requestID     pgtype.UUID
			counterpartID pgtype.UUID
			lastSentAt    pgtype.Timestamptz
		)
		err := rows.Scan(&requestID, &counterpartID, &view.CounterpartName,
			&view.RequestStatus, &view.LastMessage, &lastSentAt, &view.UnreadCount)
		if err != nil {
			return nil, infra.WrapRepoErr(err, "failed to scan conversation row")
		}
		view.RequestID = uuid.UUID(requestID.Bytes)
		view.CounterpartID = uuid.UUID(counterpartID.Bytes)
		view.LastSentAt = pgconv.TimeFromPgtype(lastSentAt)
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(err, "failed to iterate conversations")
	}

	// DISTINCT ON orders by request for row selection; the inbox itself is
	// newest activity first.
	sort.Slice(views, func(i, j int) bool {
		return views[i].LastSentAt.After(views[j].LastSentAt)
	})
	return views, nil
}

const unreadCountQuery = `
SELECT count(*)
FROM messages m
JOIN service_requests r ON r.id = m.request_id
WHERE (r.client_id = $1 OR r.provider_id = $1)
  AND m.sender_id <> $1
  AND m.read = FALSE`

func (s *MessageReadStore) UnreadCount(ctx context.Context, actorID uuid.UUID) (int, error) {
	var n int
	err := s.db.QueryRow(ctx, unreadCountQuery, pgconv.UUIDToPgtype(actorID)).Scan(&n)
	if err != nil {
		return 0, infra.WrapRepoErr(err, "failed to count unread messages")
	}
	return n, nil
}
