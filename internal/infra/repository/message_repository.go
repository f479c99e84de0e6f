package repository

import (
	"context"

	"eventora/internal/domain/actor"
	"eventora/internal/domain/message"
	"eventora/internal/infra"
	"eventora/internal/infra/db"
	"eventora/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type MessageRepository struct {
	db db.DBTX
}

func NewMessageRepository(dbtx db.DBTX) *MessageRepository {
	return &MessageRepository{db: dbtx}
}

const insertMessageQuery = `
INSERT INTO messages (id, request_id, sender_id, sender_role, content, sent_at, read)
VALUES ($1, $2, $3, $4, $5, $6, FALSE)`

func (r *MessageRepository) Create(ctx context.Context, msg *message.Message) error {
	_, err := r.db.Exec(ctx, insertMessageQuery,
		pgconv.UUIDToPgtype(msg.ID()),
		pgconv.UUIDToPgtype(msg.RequestID()),
		pgconv.UUIDToPgtype(msg.SenderID()),
		string(msg.SenderRole()),
		msg.Content(),
		pgconv.TimeToPgtype(msg.SentAt()),
	)
	return infra.WrapRepoErr(err, "failed to insert message")
}

const selectMessageQuery = `
SELECT id, request_id, sender_id, sender_role, content, sent_at, read, read_at
FROM messages
WHERE id = $1`

func (r *MessageRepository) Get(ctx context.Context, id uuid.UUID) (*message.Message, error) {
	row := r.db.QueryRow(ctx, selectMessageQuery, pgconv.UUIDToPgtype(id))

	var (
		rowID, requestID, senderID pgtype.UUID
		senderRole                 string
		content                    string
		sentAt                     pgtype.Timestamptz
		read                       bool
		readAt                     pgtype.Timestamptz
	)
	err := row.Scan(&rowID, &requestID, &senderID, &senderRole, &content, &sentAt, &read, &readAt)
	if err != nil {
		return nil, infra.WrapRepoErr(err, "failed to load message")
	}

	role, err := actor.NewRole(senderRole)
	if err != nil {
		return nil, infra.WrapRepoErr(err, "stored sender role is invalid")
	}

	return message.ReconstructMessage(
		uuid.UUID(rowID.Bytes),
		uuid.UUID(requestID.Bytes),
		uuid.UUID(senderID.Bytes),
		role,
		content,
		pgconv.TimeFromPgtype(sentAt),
		read,
		pgconv.TimePtrFromPgtype(readAt),
	), nil
}

const deleteMessageQuery = `DELETE FROM messages WHERE id = $1`

func (r *MessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteMessageQuery, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr(err, "failed to delete message")
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(pgx.ErrNoRows, "message not found for delete")
	}
	return nil
}

const markReadQuery = `
UPDATE messages
SET read = TRUE, read_at = now()
WHERE request_id = $1
  AND sender_id <> $2
  AND read = FALSE`

func (r *MessageRepository) MarkRead(ctx context.Context, requestID, readerID uuid.UUID) error {
	_, err := r.db.Exec(ctx, markReadQuery,
		pgconv.UUIDToPgtype(requestID), pgconv.UUIDToPgtype(readerID))
	return infra.WrapRepoErr(err, "failed to mark messages read")
}
