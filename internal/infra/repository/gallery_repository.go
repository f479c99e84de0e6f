package repository

import (
	"context"

	"eventora/internal/domain/gallery"
	"eventora/internal/infra"
	"eventora/internal/infra/db"
	"eventora/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type GalleryRepository struct {
	db db.DBTX
}

func NewGalleryRepository(dbtx db.DBTX) *GalleryRepository {
	return &GalleryRepository{db: dbtx}
}

// The count and the insert run as one statement, so two concurrent uploads
// cannot both pass the quota check.
const insertPhotoWithinQuotaQuery = `
INSERT INTO gallery_photos (id, provider_id, url, description, order_index, uploaded_at)
SELECT $1, $2, $3, $4, $5, $6
WHERE (SELECT count(*) FROM gallery_photos WHERE provider_id = $2) < $7`

func (r *GalleryRepository) CreateWithinQuota(ctx context.Context, photo *gallery.Photo, limit int) (bool, error) {
	tag, err := r.db.Exec(ctx, insertPhotoWithinQuotaQuery,
		pgconv.UUIDToPgtype(photo.ID()),
		pgconv.UUIDToPgtype(photo.ProviderID()),
		photo.URL(),
		pgconv.StringPtrToPgtype(photo.Description()),
		photo.OrderIndex(),
		pgconv.TimeToPgtype(photo.UploadedAt()),
		limit,
	)
	if err != nil {
		return false, infra.WrapRepoErr(err, "failed to insert gallery photo")
	}
	return tag.RowsAffected() == 1, nil
}

const selectPhotoQuery = `
SELECT id, provider_id, url, description, order_index, uploaded_at
FROM gallery_photos
WHERE id = $1`

func (r *GalleryRepository) Get(ctx context.Context, id uuid.UUID) (*gallery.Photo, error) {
	row := r.db.QueryRow(ctx, selectPhotoQuery, pgconv.UUIDToPgtype(id))

	var (
		rowID, providerID pgtype.UUID
		url               string
		description       pgtype.Text
		orderIndex        int32
		uploadedAt        pgtype.Timestamptz
	)
	err := row.Scan(&rowID, &providerID, &url, &description, &orderIndex, &uploadedAt)
	if err != nil {
		return nil, infra.WrapRepoErr(err, "failed to load gallery photo")
	}

	return gallery.ReconstructPhoto(
		uuid.UUID(rowID.Bytes),
		uuid.UUID(providerID.Bytes),
		url,
		pgconv.StringPtrFromPgtype(description),
		orderIndex,
		pgconv.TimeFromPgtype(uploadedAt),
	), nil
}

const updatePhotoQuery = `
UPDATE gallery_photos
SET description = $2, order_index = $3
WHERE id = $1`

func (r *GalleryRepository) Update(ctx context.Context, photo *gallery.Photo) error {
	tag, err := r.db.Exec(ctx, updatePhotoQuery,
		pgconv.UUIDToPgtype(photo.ID()),
		pgconv.StringPtrToPgtype(photo.Description()),
		photo.OrderIndex(),
	)
	if err != nil {
		return infra.WrapRepoErr(err, "failed to update gallery photo")
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(pgx.ErrNoRows, "gallery photo not found for update")
	}
	return nil
}

const deletePhotoQuery = `DELETE FROM gallery_photos WHERE id = $1`

func (r *GalleryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deletePhotoQuery, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr(err, "failed to delete gallery photo")
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(pgx.ErrNoRows, "gallery photo not found for delete")
	}
	return nil
}

const reorderPhotoQuery = `
UPDATE gallery_photos
SET order_index = $3
WHERE id = $1 AND provider_id = $2`

// Reorder applies the batch within the surrounding transaction; a photo
// belonging to another provider makes the whole batch fail.
func (r *GalleryRepository) Reorder(ctx context.Context, providerID uuid.UUID, items []gallery.OrderItem) error {
	for _, item := range items {
		tag, err := r.db.Exec(ctx, reorderPhotoQuery,
			pgconv.UUIDToPgtype(item.PhotoID),
			pgconv.UUIDToPgtype(providerID),
			item.OrderIndex,
		)
		if err != nil {
			return infra.WrapRepoErr(err, "failed to reorder gallery photo")
		}
		if tag.RowsAffected() == 0 {
			return infra.WrapRepoErr(pgx.ErrNoRows, "gallery photo not found in provider's gallery")
		}
	}
	return nil
}
