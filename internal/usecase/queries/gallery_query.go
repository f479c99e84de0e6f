package queries

import (
	"context"
	"time"

	"eventora/internal/domain/quota"

	"github.com/google/uuid"
)

type PhotoView struct {
	ID          uuid.UUID `json:"id"`
	ProviderID  uuid.UUID `json:"provider_id"`
	URL         string    `json:"url"`
	Description *string   `json:"description,omitempty"`
	OrderIndex  int32     `json:"order_index"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

type GalleryQueryService interface {
	// List returns the provider's photos in display order.
	List(ctx context.Context, providerID uuid.UUID) ([]PhotoView, error)
	Quota(ctx context.Context, providerID uuid.UUID) (quota.Info, error)
}
