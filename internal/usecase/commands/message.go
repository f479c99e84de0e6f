package commands

import (
	"context"
	"errors"

	"eventora/internal/domain/actor"
	"eventora/internal/domain/message"
	"eventora/internal/domain/request"
	"eventora/internal/pkg/clock"
	"eventora/internal/pkg/errs"
	"eventora/internal/usecase/shared"

	"github.com/google/uuid"
)

type MessageCommands interface {
	Send(ctx context.Context, actorID uuid.UUID, role actor.Role, requestID uuid.UUID, content string) (uuid.UUID, error)
	MarkThreadRead(ctx context.Context, actorID uuid.UUID, role actor.Role, requestID uuid.UUID) error
	Delete(ctx context.Context, actorID uuid.UUID, role actor.Role, messageID uuid.UUID) error
}

type messageUseCaseImpl struct {
	uow shared.UnitOfWork
	clk clock.Clock
}

func NewMessageUseCase(uow shared.UnitOfWork, clk clock.Clock) MessageCommands {
	return &messageUseCaseImpl{uow: uow, clk: clk}
}

// Send appends to the thread. Replying counts as reading: the counterpart's
// unread messages flip before the new one lands, so the sender's own message
// stays unread for the other side.
func (uc *messageUseCaseImpl) Send(ctx context.Context, actorID uuid.UUID, role actor.Role, requestID uuid.UUID, content string) (uuid.UUID, error) {
	msg, err := message.NewMessage(requestID, actorID, role, content, uc.clk.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.Requests().GetForUpdate(ctx, requestID)
		if err != nil {
			return markRepoErr(err)
		}
		if !req.IsParty(actorID, role == actor.RoleProvider) {
			return errs.Mark(request.ErrNotParty, errs.ErrPermissionDenied)
		}
		if !req.AcceptsMessages() {
			return errs.Mark(errs.New("thread is closed for canceled request"), errs.ErrInvalidState)
		}

		if err := tx.Messages().MarkRead(ctx, requestID, actorID); err != nil {
			return markRepoErr(err)
		}
		if err := tx.Messages().Create(ctx, msg); err != nil {
			return markRepoErr(err)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return msg.ID(), nil
}

// MarkThreadRead flips every counterpart message in the thread; used when the
// actor opens the conversation.
func (uc *messageUseCaseImpl) MarkThreadRead(ctx context.Context, actorID uuid.UUID, role actor.Role, requestID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.Requests().GetForUpdate(ctx, requestID)
		if err != nil {
			return markRepoErr(err)
		}
		if !req.IsParty(actorID, role == actor.RoleProvider) {
			return errs.Mark(request.ErrNotParty, errs.ErrPermissionDenied)
		}
		return markRepoErr(tx.Messages().MarkRead(ctx, requestID, actorID))
	})
}

// Delete retracts the actor's own message inside the retraction window.
func (uc *messageUseCaseImpl) Delete(ctx context.Context, actorID uuid.UUID, role actor.Role, messageID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		msg, err := tx.Messages().Get(ctx, messageID)
		if err != nil {
			return markRepoErr(err)
		}
		if err := msg.CanDelete(actorID, role, uc.clk.Now()); err != nil {
			switch {
			case errors.Is(err, message.ErrNotSender):
				return errs.Mark(err, errs.ErrPermissionDenied)
			default:
				return errs.Mark(err, errs.ErrInvalidState)
			}
		}
		return markRepoErr(tx.Messages().Delete(ctx, messageID))
	})
}
