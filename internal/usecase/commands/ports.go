package commands

import (
	"context"

	"github.com/google/uuid"
)

// AvailabilityInvalidator drops cached public availability after a calendar
// write. Implementations must not fail the surrounding command.
type AvailabilityInvalidator interface {
	InvalidateAvailability(ctx context.Context, providerID uuid.UUID)
}

// ReviewStatsInvalidator drops the cached stats aggregate after a review
// write.
type ReviewStatsInvalidator interface {
	InvalidateStats(ctx context.Context, providerID uuid.UUID)
}
