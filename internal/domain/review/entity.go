package review

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxCommentLength = 1000

var (
	ErrEmptyComment       = errors.New("comment cannot be empty")
	ErrCommentTooLong     = errors.New("comment exceeds maximum length")
	ErrRequestNotEligible = errors.New("request is not eligible for review")
	ErrReviewExists       = errors.New("review already exists for this request")
	ErrInvalidRating      = errors.New("rating must be between 0 and 1")
	ErrEmptyReportReason  = errors.New("report reason is required")
)

type Comment struct {
	text string
}

func NewComment(s string) (Comment, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Comment{}, ErrEmptyComment
	}
	if len(t) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{text: t}, nil
}

func (c Comment) String() string { return c.text }

// Review is the one-shot verdict a client leaves after an accepted, completed
// request. Rating and sentiment are derived from the comment, never supplied
// by the caller.
type Review struct {
	id           uuid.UUID
	clientID     uuid.UUID
	providerID   uuid.UUID
	requestID    uuid.UUID
	comment      Comment
	rating       float64
	sentiment    Sentiment
	visible      bool
	reported     bool
	reportReason *string
	publishedAt  time.Time
}

func NewReview(clientID, providerID, requestID uuid.UUID, comment Comment, rating float64, sentiment Sentiment, now time.Time) (*Review, error) {
	if rating < 0 || rating > 1 {
		return nil, ErrInvalidRating
	}
	return &Review{
		id:          uuid.New(),
		clientID:    clientID,
		providerID:  providerID,
		requestID:   requestID,
		comment:     comment,
		rating:      rating,
		sentiment:   sentiment,
		visible:     true,
		publishedAt: now,
	}, nil
}

func ReconstructReview(id, clientID, providerID, requestID uuid.UUID, comment Comment, rating float64, sentiment Sentiment, visible, reported bool, reportReason *string, publishedAt time.Time) *Review {
	return &Review{
		id:           id,
		clientID:     clientID,
		providerID:   providerID,
		requestID:    requestID,
		comment:      comment,
		rating:       rating,
		sentiment:    sentiment,
		visible:      visible,
		reported:     reported,
		reportReason: reportReason,
		publishedAt:  publishedAt,
	}
}

func (r *Review) ID() uuid.UUID          { return r.id }
func (r *Review) ClientID() uuid.UUID    { return r.clientID }
func (r *Review) ProviderID() uuid.UUID  { return r.providerID }
func (r *Review) RequestID() uuid.UUID   { return r.requestID }
func (r *Review) Comment() Comment       { return r.comment }
func (r *Review) Rating() float64        { return r.rating }
func (r *Review) Sentiment() Sentiment   { return r.sentiment }
func (r *Review) Visible() bool          { return r.visible }
func (r *Review) Reported() bool         { return r.reported }
func (r *Review) ReportReason() *string  { return r.reportReason }
func (r *Review) PublishedAt() time.Time { return r.publishedAt }

// Report flags the review for moderation. Reporting is idempotent; the first
// reason wins.
func (r *Review) Report(reason string) error {
	t := strings.TrimSpace(reason)
	if t == "" {
		return ErrEmptyReportReason
	}
	if r.reported {
		return nil
	}
	r.reported = true
	r.reportReason = &t
	return nil
}

// SetVisibility is the moderation verdict. Hiding keeps the row so the
// provider's history stays auditable.
func (r *Review) SetVisibility(visible bool) {
	r.visible = visible
	if visible {
		r.reported = false
		r.reportReason = nil
	}
}
