//go:build unit

package fake

import (
	"context"
	"errors"
	"maps"
	"time"

	"eventora/internal/domain/calendar"
	"eventora/internal/domain/gallery"
	"eventora/internal/domain/message"
	"eventora/internal/domain/promotion"
	"eventora/internal/domain/request"
	"eventora/internal/domain/review"
	"eventora/internal/infra"
	"eventora/internal/usecase/shared"

	"github.com/google/uuid"
)

// UnitOfWork runs the function against in-memory stores. It counts
// invocations so tests can assert a command stayed inside one transaction
// scope, and it rewinds the stores when the function fails so batch commands
// show the same all-or-nothing behavior a real transaction gives them.
// Aggregates are rewound by reference only; a command that mutates a loaded
// aggregate in place before failing is not undone.
type UnitOfWork struct {
	TX       *Tx
	Began    int
	FailWith error
}

func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{TX: NewTx()}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if u.FailWith != nil {
		return u.FailWith
	}
	u.Began++
	snap := u.TX.snapshot()
	if err := fn(ctx, u.TX); err != nil {
		u.TX.restore(snap)
		return err
	}
	return nil
}

type Tx struct {
	RequestRepo   *RequestRepo
	CalendarRepo  *CalendarRepo
	MessageRepo   *MessageRepo
	ReviewRepo    *ReviewRepo
	GalleryRepo   *GalleryRepo
	PromotionRepo *PromotionRepo
	ReadsStub     *Reads
}

func NewTx() *Tx {
	return &Tx{
		RequestRepo:   &RequestRepo{store: map[uuid.UUID]*request.ServiceRequest{}},
		CalendarRepo:  &CalendarRepo{store: map[string]*calendar.Entry{}},
		MessageRepo:   &MessageRepo{store: map[uuid.UUID]*message.Message{}},
		ReviewRepo:    &ReviewRepo{store: map[uuid.UUID]*review.Review{}},
		GalleryRepo:   &GalleryRepo{store: map[uuid.UUID]*gallery.Photo{}},
		PromotionRepo: &PromotionRepo{store: map[uuid.UUID]*promotion.Promotion{}},
		ReadsStub:     &Reads{ServicesOwned: true},
	}
}

type txSnapshot struct {
	requests   map[uuid.UUID]*request.ServiceRequest
	calendar   map[string]*calendar.Entry
	messages   map[uuid.UUID]*message.Message
	reviews    map[uuid.UUID]*review.Review
	gallery    map[uuid.UUID]*gallery.Photo
	promotions map[uuid.UUID]*promotion.Promotion
}

func (t *Tx) snapshot() txSnapshot {
	return txSnapshot{
		requests:   maps.Clone(t.RequestRepo.store),
		calendar:   maps.Clone(t.CalendarRepo.store),
		messages:   maps.Clone(t.MessageRepo.store),
		reviews:    maps.Clone(t.ReviewRepo.store),
		gallery:    maps.Clone(t.GalleryRepo.store),
		promotions: maps.Clone(t.PromotionRepo.store),
	}
}

func (t *Tx) restore(snap txSnapshot) {
	t.RequestRepo.store = snap.requests
	t.CalendarRepo.store = snap.calendar
	t.MessageRepo.store = snap.messages
	t.ReviewRepo.store = snap.reviews
	t.GalleryRepo.store = snap.gallery
	t.PromotionRepo.store = snap.promotions
}

func (t *Tx) Requests() shared.RequestRepository     { return t.RequestRepo }
func (t *Tx) Calendar() shared.CalendarRepository    { return t.CalendarRepo }
func (t *Tx) Messages() shared.MessageRepository     { return t.MessageRepo }
func (t *Tx) Reviews() shared.ReviewRepository       { return t.ReviewRepo }
func (t *Tx) Gallery() shared.GalleryRepository      { return t.GalleryRepo }
func (t *Tx) Promotions() shared.PromotionRepository { return t.PromotionRepo }
func (t *Tx) Reads() shared.CommandReads             { return t.ReadsStub }

func notFound() error {
	return &infra.RepositoryError{Kind: infra.NotFound, Err: errors.New("no rows")}
}

type RequestRepo struct {
	store map[uuid.UUID]*request.ServiceRequest
}

func (r *RequestRepo) Create(_ context.Context, req *request.ServiceRequest) error {
	r.store[req.ID()] = req
	return nil
}

func (r *RequestRepo) GetForUpdate(_ context.Context, id uuid.UUID) (*request.ServiceRequest, error) {
	req, ok := r.store[id]
	if !ok {
		return nil, notFound()
	}
	return req, nil
}

func (r *RequestRepo) Update(_ context.Context, req *request.ServiceRequest) error {
	if _, ok := r.store[req.ID()]; !ok {
		return notFound()
	}
	r.store[req.ID()] = req
	return nil
}

func (r *RequestRepo) Seed(req *request.ServiceRequest) { r.store[req.ID()] = req }

type CalendarRepo struct {
	store map[string]*calendar.Entry
}

func dayKey(providerID uuid.UUID, date time.Time) string {
	return providerID.String() + "|" + calendar.Day(date).Format("2006-01-02")
}

func (r *CalendarRepo) Upsert(_ context.Context, entry *calendar.Entry) error {
	r.store[dayKey(entry.ProviderID(), entry.Date())] = entry
	return nil
}

func (r *CalendarRepo) Get(_ context.Context, providerID uuid.UUID, date time.Time) (*calendar.Entry, error) {
	entry, ok := r.store[dayKey(providerID, date)]
	if !ok {
		return nil, notFound()
	}
	return entry, nil
}

func (r *CalendarRepo) Delete(_ context.Context, providerID uuid.UUID, date time.Time) error {
	delete(r.store, dayKey(providerID, date))
	return nil
}

func (r *CalendarRepo) SweepPastDates(_ context.Context, today time.Time) (int64, error) {
	var swept int64
	for key, entry := range r.store {
		if entry.Available() && calendar.IsPast(entry.Date(), today) {
			reason := calendar.ReasonPastDate
			r.store[key] = calendar.ReconstructEntry(
				entry.ProviderID(), entry.Date(), false, &reason, nil, today)
			swept++
		}
	}
	return swept, nil
}

// Entry reads a stored day directly so tests can assert ledger writes.
func (r *CalendarRepo) Entry(providerID uuid.UUID, date time.Time) *calendar.Entry {
	return r.store[dayKey(providerID, date)]
}

func (r *CalendarRepo) Seed(entry *calendar.Entry) {
	r.store[dayKey(entry.ProviderID(), entry.Date())] = entry
}

type MessageRepo struct {
	store map[uuid.UUID]*message.Message
}

func (r *MessageRepo) Create(_ context.Context, msg *message.Message) error {
	r.store[msg.ID()] = msg
	return nil
}

func (r *MessageRepo) Get(_ context.Context, id uuid.UUID) (*message.Message, error) {
	msg, ok := r.store[id]
	if !ok {
		return nil, notFound()
	}
	return msg, nil
}

func (r *MessageRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store[id]; !ok {
		return notFound()
	}
	delete(r.store, id)
	return nil
}

func (r *MessageRepo) MarkRead(_ context.Context, requestID, readerID uuid.UUID) error {
	for id, msg := range r.store {
		if msg.RequestID() == requestID && msg.SenderID() != readerID && !msg.Read() {
			readAt := time.Now()
			r.store[id] = message.ReconstructMessage(
				msg.ID(), msg.RequestID(), msg.SenderID(), msg.SenderRole(),
				msg.Content(), msg.SentAt(), true, &readAt)
		}
	}
	return nil
}

func (r *MessageRepo) All() []*message.Message {
	msgs := make([]*message.Message, 0, len(r.store))
	for _, msg := range r.store {
		msgs = append(msgs, msg)
	}
	return msgs
}

type ReviewRepo struct {
	store map[uuid.UUID]*review.Review
}

func (r *ReviewRepo) Create(_ context.Context, rev *review.Review) error {
	r.store[rev.ID()] = rev
	return nil
}

func (r *ReviewRepo) Get(_ context.Context, id uuid.UUID) (*review.Review, error) {
	rev, ok := r.store[id]
	if !ok {
		return nil, notFound()
	}
	return rev, nil
}

func (r *ReviewRepo) Update(_ context.Context, rev *review.Review) error {
	if _, ok := r.store[rev.ID()]; !ok {
		return notFound()
	}
	r.store[rev.ID()] = rev
	return nil
}

func (r *ReviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store[id]; !ok {
		return notFound()
	}
	delete(r.store, id)
	return nil
}

func (r *ReviewRepo) Seed(rev *review.Review) { r.store[rev.ID()] = rev }

type GalleryRepo struct {
	store map[uuid.UUID]*gallery.Photo
}

func (r *GalleryRepo) CreateWithinQuota(_ context.Context, photo *gallery.Photo, limit int) (bool, error) {
	count := 0
	for _, p := range r.store {
		if p.ProviderID() == photo.ProviderID() {
			count++
		}
	}
	if count >= limit {
		return false, nil
	}
	r.store[photo.ID()] = photo
	return true, nil
}

func (r *GalleryRepo) Get(_ context.Context, id uuid.UUID) (*gallery.Photo, error) {
	photo, ok := r.store[id]
	if !ok {
		return nil, notFound()
	}
	return photo, nil
}

func (r *GalleryRepo) Update(_ context.Context, photo *gallery.Photo) error {
	if _, ok := r.store[photo.ID()]; !ok {
		return notFound()
	}
	r.store[photo.ID()] = photo
	return nil
}

func (r *GalleryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store[id]; !ok {
		return notFound()
	}
	delete(r.store, id)
	return nil
}

func (r *GalleryRepo) Reorder(_ context.Context, providerID uuid.UUID, items []gallery.OrderItem) error {
	for _, item := range items {
		photo, ok := r.store[item.PhotoID]
		if !ok || photo.ProviderID() != providerID {
			return notFound()
		}
		order := item.OrderIndex
		photo.ApplyUpdate(nil, &order)
	}
	return nil
}

func (r *GalleryRepo) Seed(photo *gallery.Photo) { r.store[photo.ID()] = photo }

type PromotionRepo struct {
	store map[uuid.UUID]*promotion.Promotion
}

func (r *PromotionRepo) CreateWithinQuota(_ context.Context, promo *promotion.Promotion, limit int) (bool, error) {
	count := 0
	for _, p := range r.store {
		if p.ProviderID() == promo.ProviderID() && p.Active() {
			count++
		}
	}
	if count >= limit {
		return false, nil
	}
	r.store[promo.ID()] = promo
	return true, nil
}

func (r *PromotionRepo) Get(_ context.Context, id uuid.UUID) (*promotion.Promotion, error) {
	promo, ok := r.store[id]
	if !ok {
		return nil, notFound()
	}
	return promo, nil
}

func (r *PromotionRepo) Update(_ context.Context, promo *promotion.Promotion) error {
	if _, ok := r.store[promo.ID()]; !ok {
		return notFound()
	}
	r.store[promo.ID()] = promo
	return nil
}

func (r *PromotionRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store[id]; !ok {
		return notFound()
	}
	delete(r.store, id)
	return nil
}

func (r *PromotionRepo) DeactivateExpired(_ context.Context, today time.Time) (int64, error) {
	var changed int64
	for _, promo := range r.store {
		if promo.Active() && calendar.Day(promo.EndDate()).Before(calendar.Day(today)) {
			promo.Deactivate()
			changed++
		}
	}
	return changed, nil
}

func (r *PromotionRepo) Seed(promo *promotion.Promotion) { r.store[promo.ID()] = promo }

// Reads answers the validation lookups with stubbed values.
type Reads struct {
	ServicesOwned bool
	HasReview     bool
	Err           error
}

func (r *Reads) ServicesBelongToProvider(context.Context, []uuid.UUID, uuid.UUID) (bool, error) {
	return r.ServicesOwned, r.Err
}

func (r *Reads) RequestHasReview(context.Context, uuid.UUID) (bool, error) {
	return r.HasReview, r.Err
}
