package cache

import (
	"context"
	"fmt"
	"time"

	"eventora/internal/domain/calendar"
	"eventora/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	availabilityPrefix = "availability:"
	reviewStatsPrefix  = "review_stats:"
)

func availabilityKey(providerID uuid.UUID, from, to time.Time) string {
	return fmt.Sprintf("%s%s:%s:%s",
		availabilityPrefix, providerID,
		from.Format("2006-01-02"), to.Format("2006-01-02"))
}

// CachedCalendarQueries serves public availability through the cache; the
// owner's views always hit the database.
type CachedCalendarQueries struct {
	queries.CalendarQueryService
	store *Store
}

func NewCachedCalendarQueries(inner queries.CalendarQueryService, store *Store) *CachedCalendarQueries {
	return &CachedCalendarQueries{CalendarQueryService: inner, store: store}
}

func (c *CachedCalendarQueries) PublicAvailability(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]calendar.DayView, error) {
	key := availabilityKey(providerID, from, to)

	var cached []calendar.DayView
	if c.store.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	days, err := c.CalendarQueryService.PublicAvailability(ctx, providerID, from, to)
	if err != nil {
		return nil, err
	}
	c.store.SetJSON(ctx, key, days)
	return days, nil
}

// InvalidateAvailability drops every cached range for the provider. Called
// after any write that changes the provider's calendar.
func (c *CachedCalendarQueries) InvalidateAvailability(ctx context.Context, providerID uuid.UUID) {
	c.store.DeleteByPrefix(ctx, availabilityPrefix+providerID.String())
}

// CachedReviewQueries serves the per-provider stats aggregate through the
// cache.
type CachedReviewQueries struct {
	queries.ReviewQueryService
	store *Store
}

func NewCachedReviewQueries(inner queries.ReviewQueryService, store *Store) *CachedReviewQueries {
	return &CachedReviewQueries{ReviewQueryService: inner, store: store}
}

func (c *CachedReviewQueries) Stats(ctx context.Context, providerID uuid.UUID) (queries.ReviewStats, error) {
	key := reviewStatsPrefix + providerID.String()

	var cached queries.ReviewStats
	if c.store.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	stats, err := c.ReviewQueryService.Stats(ctx, providerID)
	if err != nil {
		return queries.ReviewStats{}, err
	}
	c.store.SetJSON(ctx, key, stats)
	return stats, nil
}

func (c *CachedReviewQueries) InvalidateStats(ctx context.Context, providerID uuid.UUID) {
	c.store.Delete(ctx, reviewStatsPrefix+providerID.String())
}
