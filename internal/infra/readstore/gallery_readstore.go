package readstore

import (
	"context"

	"eventora/internal/domain/gallery"
	"eventora/internal/domain/quota"
	"eventora/internal/infra"
	"eventora/internal/infra/db"
	"eventora/internal/pkg/config"
	"eventora/internal/pkg/pgconv"
	"eventora/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type GalleryReadStore struct {
	db    db.DBTX
	limit quota.Limit
}

func NewGalleryReadStore(dbtx db.DBTX, cfg config.QuotaConfig) *GalleryReadStore {
	return &GalleryReadStore{
		db:    dbtx,
		limit: quota.Limit{Resource: gallery.QuotaResource, Max: cfg.GalleryPhotos},
	}
}

const listPhotosQuery = `
SELECT id, provider_id, url, description, order_index, uploaded_at
FROM gallery_photos
WHERE provider_id = $1
ORDER BY order_index, uploaded_at`

func (s *GalleryReadStore) List(ctx context.Context, providerID uuid.UUID) ([]queries.PhotoView, error) {
	rows, err := s.db.Query(ctx, listPhotosQuery, pgconv.UUIDToPgtype(providerID))
	if err != nil {
		return nil, infra.WrapRepoErr(err, "failed to list gallery photos")
	}
	defer rows.Close()

	views := make([]queries.PhotoView, 0)
	for rows.Next() {
		var (
			view        queries.PhotoView
			id, provID  pgtype.UUID
			description pgtype.Text
			uploadedAt  pgtype.Timestamptz
		)
		err := rows.Scan(&id, &provID, &view.URL, &description, &view.OrderIndex, &uploadedAt)
		if err != nil {
			return nil, infra.WrapRepoErr(err, "failed to scan gallery photo")
		}
		view.ID = uuid.UUID(id.Bytes)
		view.ProviderID = uuid.UUID(provID.Bytes)
		view.Description = pgconv.StringPtrFromPgtype(description)
		view.UploadedAt = pgconv.TimeFromPgtype(uploadedAt)
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(err, "failed to iterate gallery photos")
	}
	return views, nil
}

const countPhotosQuery = `
SELECT count(*) FROM gallery_photos WHERE provider_id = $1`

func (s *GalleryReadStore) Quota(ctx context.Context, providerID uuid.UUID) (quota.Info, error) {
	var used int
	err := s.db.QueryRow(ctx, countPhotosQuery, pgconv.UUIDToPgtype(providerID)).Scan(&used)
	if err != nil {
		return quota.Info{}, infra.WrapRepoErr(err, "failed to count gallery photos")
	}
	return s.limit.InfoFor(used), nil
}
