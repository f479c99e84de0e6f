package gallery

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// QuotaResource names the gallery quota in QuotaExceeded conditions.
const QuotaResource = "gallery_photos"

var ErrEmptyURL = errors.New("photo url is required")

// Photo is one slot in a provider's bounded gallery.
type Photo struct {
	id          uuid.UUID
	providerID  uuid.UUID
	url         string
	description *string
	orderIndex  int32
	uploadedAt  time.Time
}

func NewPhoto(providerID uuid.UUID, url string, description *string, orderIndex int32, now time.Time) (*Photo, error) {
	if strings.TrimSpace(url) == "" {
		return nil, ErrEmptyURL
	}
	return &Photo{
		id:          uuid.New(),
		providerID:  providerID,
		url:         strings.TrimSpace(url),
		description: description,
		orderIndex:  orderIndex,
		uploadedAt:  now,
	}, nil
}

func ReconstructPhoto(id, providerID uuid.UUID, url string, description *string, orderIndex int32, uploadedAt time.Time) *Photo {
	return &Photo{
		id:          id,
		providerID:  providerID,
		url:         url,
		description: description,
		orderIndex:  orderIndex,
		uploadedAt:  uploadedAt,
	}
}

func (p *Photo) ID() uuid.UUID         { return p.id }
func (p *Photo) ProviderID() uuid.UUID { return p.providerID }
func (p *Photo) URL() string           { return p.url }
func (p *Photo) Description() *string  { return p.description }
func (p *Photo) OrderIndex() int32     { return p.orderIndex }
func (p *Photo) UploadedAt() time.Time { return p.uploadedAt }

// ApplyUpdate overwrites only the fields provided; nil means keep.
func (p *Photo) ApplyUpdate(description *string, orderIndex *int32) {
	if description != nil {
		p.description = description
	}
	if orderIndex != nil {
		p.orderIndex = *orderIndex
	}
}

// OrderItem is one element of a full-gallery reorder batch.
type OrderItem struct {
	PhotoID    uuid.UUID
	OrderIndex int32
}
