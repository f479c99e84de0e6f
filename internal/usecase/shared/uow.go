package shared

import (
	"context"
	"time"

	"eventora/internal/domain/calendar"
	"eventora/internal/domain/gallery"
	"eventora/internal/domain/message"
	"eventora/internal/domain/promotion"
	"eventora/internal/domain/request"
	"eventora/internal/domain/review"

	"github.com/google/uuid"
)

// UnitOfWork runs a function inside a single database transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
// Serialization conflicts are retried by the implementation.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes the write-side repositories bound to the ongoing transaction.
// Repositories are constructed lazily so a command only pays for what it
// touches.
type Tx interface {
	Requests() RequestRepository
	Calendar() CalendarRepository
	Messages() MessageRepository
	Reviews() ReviewRepository
	Gallery() GalleryRepository
	Promotions() PromotionRepository
	Reads() CommandReads
}

type RequestRepository interface {
	Create(ctx context.Context, req *request.ServiceRequest) error
	// GetForUpdate loads the request with a row lock so concurrent state
	// transitions serialize on the same row.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*request.ServiceRequest, error)
	Update(ctx context.Context, req *request.ServiceRequest) error
}

type CalendarRepository interface {
	// Upsert writes a day entry keyed by (provider, date), replacing any
	// previous entry for that day.
	Upsert(ctx context.Context, entry *calendar.Entry) error
	Get(ctx context.Context, providerID uuid.UUID, date time.Time) (*calendar.Entry, error)
	Delete(ctx context.Context, providerID uuid.UUID, date time.Time) error
	// SweepPastDates marks every unmarked past day as unavailable and
	// returns how many rows were written.
	SweepPastDates(ctx context.Context, today time.Time) (int64, error)
}

type MessageRepository interface {
	Create(ctx context.Context, msg *message.Message) error
	Get(ctx context.Context, id uuid.UUID) (*message.Message, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// MarkRead flags every message in the request not sent by readerID.
	MarkRead(ctx context.Context, requestID, readerID uuid.UUID) error
}

type ReviewRepository interface {
	Create(ctx context.Context, rev *review.Review) error
	Get(ctx context.Context, id uuid.UUID) (*review.Review, error)
	Update(ctx context.Context, rev *review.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type GalleryRepository interface {
	// CreateWithinQuota inserts the photo only while the provider holds
	// fewer than limit photos. It reports false when the quota is full.
	// The check and the insert are a single statement.
	CreateWithinQuota(ctx context.Context, photo *gallery.Photo, limit int) (bool, error)
	Get(ctx context.Context, id uuid.UUID) (*gallery.Photo, error)
	Update(ctx context.Context, photo *gallery.Photo) error
	Delete(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, providerID uuid.UUID, items []gallery.OrderItem) error
}

type PromotionRepository interface {
	// CreateWithinQuota inserts the promotion only while the provider has
	// fewer than limit active promotions. It reports false when the quota
	// is full. The check and the insert are a single statement.
	CreateWithinQuota(ctx context.Context, promo *promotion.Promotion, limit int) (bool, error)
	Get(ctx context.Context, id uuid.UUID) (*promotion.Promotion, error)
	Update(ctx context.Context, promo *promotion.Promotion) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeactivateExpired turns off every active promotion whose end date has
	// passed and returns how many rows changed.
	DeactivateExpired(ctx context.Context, today time.Time) (int64, error)
}

// CommandReads are the read-only lookups commands need for validation.
// They run on the same transaction as the writes.
type CommandReads interface {
	ServicesBelongToProvider(ctx context.Context, serviceIDs []uuid.UUID, providerID uuid.UUID) (bool, error)
	RequestHasReview(ctx context.Context, requestID uuid.UUID) (bool, error)
}
