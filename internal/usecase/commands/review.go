package commands

import (
	"context"

	"eventora/internal/domain/calendar"
	"eventora/internal/domain/request"
	"eventora/internal/domain/review"
	"eventora/internal/pkg/clock"
	"eventora/internal/pkg/config"
	"eventora/internal/pkg/errs"
	"eventora/internal/usecase/shared"

	"github.com/google/uuid"
)

// ReviewCommands gates review creation behind the request lifecycle and runs
// the comment through the sentiment classifier. Classifier failures never
// block submission; the fallback heuristic answers instead.
type ReviewCommands interface {
	Submit(ctx context.Context, clientID, requestID uuid.UUID, commentText string) (uuid.UUID, error)
	Report(ctx context.Context, reviewID uuid.UUID, reason string) error
	SetVisibility(ctx context.Context, reviewID uuid.UUID, visible bool) error
	Delete(ctx context.Context, actorID uuid.UUID, isAdmin bool, reviewID uuid.UUID) error
}

type reviewUseCaseImpl struct {
	uow        shared.UnitOfWork
	clk        clock.Clock
	classifier review.Classifier
	locale     string
	cache      ReviewStatsInvalidator
}

func NewReviewUseCase(uow shared.UnitOfWork, clk clock.Clock, classifier review.Classifier, cfg config.SentimentConfig, cache ReviewStatsInvalidator) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clk: clk, classifier: classifier, locale: cfg.Locale, cache: cache}
}

// Submit checks, in order: request exists, owned by the client, accepted,
// event already happened, no prior review. Then it derives rating and
// sentiment and stores the review.
func (uc *reviewUseCaseImpl) Submit(ctx context.Context, clientID, requestID uuid.UUID, commentText string) (uuid.UUID, error) {
	comment, err := review.NewComment(commentText)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrValidation)
	}

	now := uc.clk.Now()

	var (
		reviewID   uuid.UUID
		providerID uuid.UUID
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.Requests().GetForUpdate(ctx, requestID)
		if err != nil {
			return markRepoErr(err)
		}
		if req.ClientID() != clientID {
			return errs.Mark(request.ErrNotParty, errs.ErrPermissionDenied)
		}
		if req.Status() != request.StatusAccepted {
			return errs.Mark(review.ErrRequestNotEligible, errs.ErrInvalidState)
		}
		if !calendar.IsPast(req.EventDate(), now) {
			return errs.Mark(errs.New("event has not happened yet"), errs.ErrInvalidState)
		}

		exists, err := tx.Reads().RequestHasReview(ctx, requestID)
		if err != nil {
			return markRepoErr(err)
		}
		if exists {
			return errs.Mark(review.ErrReviewExists, errs.ErrInvalidState)
		}

		// Every guard passed; only now does the comment leave the process.
		score, err := uc.classifier.Classify(ctx, comment.String(), uc.locale)
		if err != nil {
			// The fallback classifier never fails; reaching this means it was
			// wired out, which is a programming error.
			return errs.Wrap(err, "sentiment classification failed")
		}

		providerID = req.ProviderID()
		rev, err := review.NewReview(
			clientID, providerID, requestID, comment,
			review.RatingFromScore(score.Value), review.BucketScore(score.Value), now,
		)
		if err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}
		reviewID = rev.ID()
		return markRepoErr(tx.Reviews().Create(ctx, rev))
	})
	if err != nil {
		return uuid.Nil, err
	}

	uc.cache.InvalidateStats(ctx, providerID)
	return reviewID, nil
}

// Report flags a review for moderation. Any authenticated user may report.
func (uc *reviewUseCaseImpl) Report(ctx context.Context, reviewID uuid.UUID, reason string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, err := tx.Reviews().Get(ctx, reviewID)
		if err != nil {
			return markRepoErr(err)
		}
		if err := rev.Report(reason); err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}
		return markRepoErr(tx.Reviews().Update(ctx, rev))
	})
}

// SetVisibility is the admin moderation verdict; restoring visibility clears
// the report.
func (uc *reviewUseCaseImpl) SetVisibility(ctx context.Context, reviewID uuid.UUID, visible bool) error {
	var providerID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, err := tx.Reviews().Get(ctx, reviewID)
		if err != nil {
			return markRepoErr(err)
		}
		rev.SetVisibility(visible)
		providerID = rev.ProviderID()
		return markRepoErr(tx.Reviews().Update(ctx, rev))
	})
	if err != nil {
		return err
	}

	uc.cache.InvalidateStats(ctx, providerID)
	return nil
}

// Delete removes a review. Clients may delete their own; admins any.
func (uc *reviewUseCaseImpl) Delete(ctx context.Context, actorID uuid.UUID, isAdmin bool, reviewID uuid.UUID) error {
	var providerID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, err := tx.Reviews().Get(ctx, reviewID)
		if err != nil {
			return markRepoErr(err)
		}
		if !isAdmin && rev.ClientID() != actorID {
			return errs.Mark(errs.New("review belongs to another client"), errs.ErrPermissionDenied)
		}
		providerID = rev.ProviderID()
		return markRepoErr(tx.Reviews().Delete(ctx, reviewID))
	})
	if err != nil {
		return err
	}

	uc.cache.InvalidateStats(ctx, providerID)
	return nil
}
