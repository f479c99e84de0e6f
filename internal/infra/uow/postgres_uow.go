package uow

import (
	"context"
	"math/rand"
	"time"

	"eventora/internal/infra"
	"eventora/internal/infra/repository"
	"eventora/internal/pkg/clock"
	"eventora/internal/pkg/errs"
	"eventora/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	maxRetries     = 3
	baseBackoff    = 10 * time.Millisecond
	maxBackoff     = 200 * time.Millisecond
	backoffJitterK = 0.5
)

type PostgresUnitOfWork struct {
	pool *pgxpool.Pool
	clk  clock.Clock
}

func NewPostgresUnitOfWork(pool *pgxpool.Pool, clk clock.Clock) *PostgresUnitOfWork {
	return &PostgresUnitOfWork{pool: pool, clk: clk}
}

// Within runs fn in a serializable transaction, retrying on serialization
// failures with exponential backoff and jitter.
func (u *PostgresUnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return errs.Wrap(ctx.Err(), "transaction canceled while retrying")
			case <-time.After(backoff(attempt)):
			}
		}

		err := u.runOnce(ctx, fn)
		if err == nil {
			return nil
		}
		if !infra.IsKind(err, infra.SerializationFailed) {
			return err
		}
		lastErr = err
	}
	return errs.Wrap(lastErr, "transaction gave up after serialization retries")
}

func (u *PostgresUnitOfWork) runOnce(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return infra.WrapRepoErr(err, "failed to begin transaction")
	}
	defer func() { _ = pgxTx.Rollback(ctx) }()

	if err := fn(ctx, newTx(pgxTx, u.clk)); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return infra.WrapRepoErr(err, "failed to commit transaction")
	}
	return nil
}

func backoff(attempt int) time.Duration {
	d := baseBackoff << uint(attempt)
	if d > maxBackoff {
		d = maxBackoff
	}
	jitter := time.Duration(rand.Int63n(int64(float64(d) * backoffJitterK)))
	return d + jitter
}

// tx hands out repositories lazily; each getter caches its instance for the
// life of the transaction.
type tx struct {
	db  pgx.Tx
	clk clock.Clock

	requests   shared.RequestRepository
	calendar   shared.CalendarRepository
	messages   shared.MessageRepository
	reviews    shared.ReviewRepository
	gallery    shared.GalleryRepository
	promotions shared.PromotionRepository
	reads      shared.CommandReads
}

func newTx(db pgx.Tx, clk clock.Clock) *tx {
	return &tx{db: db, clk: clk}
}

func (t *tx) Requests() shared.RequestRepository {
	if t.requests == nil {
		t.requests = repository.NewRequestRepository(t.db)
	}
	return t.requests
}

func (t *tx) Calendar() shared.CalendarRepository {
	if t.calendar == nil {
		t.calendar = repository.NewCalendarRepository(t.db, t.clk)
	}
	return t.calendar
}

func (t *tx) Messages() shared.MessageRepository {
	if t.messages == nil {
		t.messages = repository.NewMessageRepository(t.db)
	}
	return t.messages
}

func (t *tx) Reviews() shared.ReviewRepository {
	if t.reviews == nil {
		t.reviews = repository.NewReviewRepository(t.db)
	}
	return t.reviews
}

func (t *tx) Gallery() shared.GalleryRepository {
	if t.gallery == nil {
		t.gallery = repository.NewGalleryRepository(t.db)
	}
	return t.gallery
}

func (t *tx) Promotions() shared.PromotionRepository {
	if t.promotions == nil {
		t.promotions = repository.NewPromotionRepository(t.db)
	}
	return t.promotions
}

func (t *tx) Reads() shared.CommandReads {
	if t.reads == nil {
		t.reads = repository.NewCommandReads(t.db)
	}
	return t.reads
}
