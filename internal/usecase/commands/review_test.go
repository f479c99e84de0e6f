//go:build unit

package commands_test

import (
	"context"
	"testing"

	"eventora/internal/domain/request"
	"eventora/internal/domain/review"
	"eventora/internal/pkg/clock"
	"eventora/internal/pkg/config"
	"eventora/internal/pkg/errs"
	"eventora/internal/usecase/commands"
	"eventora/tests/common/builder"
	"eventora/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClassifier struct {
	score review.Score
	calls int
}

func (c *fixedClassifier) Classify(context.Context, string, string) (review.Score, error) {
	c.calls++
	return c.score, nil
}

// seedCompleted stores an accepted request whose event date is behind the
// given clock.
func seedCompleted(t *testing.T, uow *fake.UnitOfWork, b *builder.ServiceRequestBuilder) *request.ServiceRequest {
	t.Helper()
	req, err := b.BuildDomain()
	require.NoError(t, err)
	require.NoError(t, req.Respond(b.ProviderID, b.BuildProposal(), b.Now))
	require.NoError(t, req.Accept(b.ClientID, b.Now))
	uow.TX.RequestRepo.Seed(req)
	return req
}

func newReviewUseCase(uow *fake.UnitOfWork, clk clock.Clock, score float64, cache commands.ReviewStatsInvalidator) commands.ReviewCommands {
	return commands.NewReviewUseCase(
		uow, clk,
		&fixedClassifier{score: review.Score{Value: score}},
		config.NewTestConfig().Sentiment,
		cache,
	)
}

func TestReviewSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("derives rating and sentiment from the classifier score", func(t *testing.T) {
		b := builder.NewServiceRequestBuilder()
		uow := fake.NewUnitOfWork()
		cache := &statsRecorder{}
		afterEvent := clock.NewMockClock(b.EventDate.AddDate(0, 0, 1))
		uc := newReviewUseCase(uow, afterEvent, 0.5, cache)
		req := seedCompleted(t, uow, b)

		id, err := uc.Submit(ctx, b.ClientID, req.ID(), "Excelente servicio, todo perfecto")
		require.NoError(t, err)

		stored, err := uow.TX.ReviewRepo.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, review.SentimentPositive, stored.Sentiment())
		assert.InDelta(t, 0.75, stored.Rating(), 1e-9)
		assert.True(t, stored.Visible())
		assert.Equal(t, []uuid.UUID{b.ProviderID}, cache.providers)
	})

	t.Run("rejects before the event has happened", func(t *testing.T) {
		b := builder.NewServiceRequestBuilder()
		uow := fake.NewUnitOfWork()
		uc := newReviewUseCase(uow, clock.NewMockClock(b.Now), 0.5, &statsRecorder{})
		req := seedCompleted(t, uow, b)

		_, err := uc.Submit(ctx, b.ClientID, req.ID(), "Excelente")
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("rejects a request that was never accepted", func(t *testing.T) {
		b := builder.NewServiceRequestBuilder()
		uow := fake.NewUnitOfWork()
		afterEvent := clock.NewMockClock(b.EventDate.AddDate(0, 0, 1))
		uc := newReviewUseCase(uow, afterEvent, 0.5, &statsRecorder{})

		req, err := b.BuildDomain()
		require.NoError(t, err)
		uow.TX.RequestRepo.Seed(req)

		_, err = uc.Submit(ctx, b.ClientID, req.ID(), "Excelente")
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("rejects a second review for the same request", func(t *testing.T) {
		b := builder.NewServiceRequestBuilder()
		uow := fake.NewUnitOfWork()
		uow.TX.ReadsStub.HasReview = true
		afterEvent := clock.NewMockClock(b.EventDate.AddDate(0, 0, 1))
		uc := newReviewUseCase(uow, afterEvent, 0.5, &statsRecorder{})
		req := seedCompleted(t, uow, b)

		_, err := uc.Submit(ctx, b.ClientID, req.ID(), "Excelente")
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("only the requesting client may review", func(t *testing.T) {
		b := builder.NewServiceRequestBuilder()
		uow := fake.NewUnitOfWork()
		afterEvent := clock.NewMockClock(b.EventDate.AddDate(0, 0, 1))
		uc := newReviewUseCase(uow, afterEvent, 0.5, &statsRecorder{})
		req := seedCompleted(t, uow, b)

		_, err := uc.Submit(ctx, uuid.New(), req.ID(), "Excelente")
		assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	})

	t.Run("the comment never reaches the classifier when a guard rejects", func(t *testing.T) {
		b := builder.NewServiceRequestBuilder()
		uow := fake.NewUnitOfWork()
		cls := &fixedClassifier{score: review.Score{Value: 0.5}}
		afterEvent := clock.NewMockClock(b.EventDate.AddDate(0, 0, 1))
		uc := commands.NewReviewUseCase(uow, afterEvent, cls, config.NewTestConfig().Sentiment, &statsRecorder{})
		req := seedCompleted(t, uow, b)

		_, err := uc.Submit(ctx, uuid.New(), req.ID(), "Excelente")
		assert.ErrorIs(t, err, errs.ErrPermissionDenied)
		assert.Zero(t, cls.calls)

		_, err = uc.Submit(ctx, b.ClientID, uuid.New(), "Excelente")
		assert.ErrorIs(t, err, errs.ErrNotFound)
		assert.Zero(t, cls.calls)

		_, err = uc.Submit(ctx, b.ClientID, req.ID(), "Excelente")
		require.NoError(t, err)
		assert.Equal(t, 1, cls.calls)
	})
}

func TestReviewModeration(t *testing.T) {
	ctx := context.Background()

	seedReview := func(t *testing.T, uow *fake.UnitOfWork) *review.Review {
		t.Helper()
		rev, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)
		uow.TX.ReviewRepo.Seed(rev)
		return rev
	}

	t.Run("report flags without hiding", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		uc := newReviewUseCase(uow, clock.NewRealClock(), 0, &statsRecorder{})
		rev := seedReview(t, uow)

		require.NoError(t, uc.Report(ctx, rev.ID(), "contenido ofensivo"))

		stored, err := uow.TX.ReviewRepo.Get(ctx, rev.ID())
		require.NoError(t, err)
		assert.True(t, stored.Reported())
		assert.True(t, stored.Visible())
	})

	t.Run("restoring visibility clears the report and refreshes stats", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		cache := &statsRecorder{}
		uc := newReviewUseCase(uow, clock.NewRealClock(), 0, cache)
		rev := seedReview(t, uow)
		require.NoError(t, rev.Report("spam"))
		rev.SetVisibility(false)

		require.NoError(t, uc.SetVisibility(ctx, rev.ID(), true))

		stored, err := uow.TX.ReviewRepo.Get(ctx, rev.ID())
		require.NoError(t, err)
		assert.True(t, stored.Visible())
		assert.False(t, stored.Reported())
		assert.Equal(t, []uuid.UUID{rev.ProviderID()}, cache.providers)
	})

	t.Run("only the author or an admin may delete", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		uc := newReviewUseCase(uow, clock.NewRealClock(), 0, &statsRecorder{})
		rev := seedReview(t, uow)

		err := uc.Delete(ctx, uuid.New(), false, rev.ID())
		assert.ErrorIs(t, err, errs.ErrPermissionDenied)

		require.NoError(t, uc.Delete(ctx, uuid.New(), true, rev.ID()))
		_, err = uow.TX.ReviewRepo.Get(ctx, rev.ID())
		assert.Error(t, err)
	})
}
