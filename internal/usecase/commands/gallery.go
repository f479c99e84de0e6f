package commands

import (
	"context"

	"eventora/internal/domain/gallery"
	"eventora/internal/pkg/clock"
	"eventora/internal/pkg/config"
	"eventora/internal/pkg/errs"
	"eventora/internal/usecase/shared"

	"github.com/google/uuid"
)

type AddPhotoInput struct {
	URL         string
	Description *string
	OrderIndex  int32
}

type UpdatePhotoInput struct {
	Description *string
	OrderIndex  *int32
}

type GalleryCommands interface {
	AddPhoto(ctx context.Context, providerID uuid.UUID, input AddPhotoInput) (uuid.UUID, error)
	UpdatePhoto(ctx context.Context, providerID, photoID uuid.UUID, input UpdatePhotoInput) error
	DeletePhoto(ctx context.Context, providerID, photoID uuid.UUID) error
	Reorder(ctx context.Context, providerID uuid.UUID, items []gallery.OrderItem) error
}

type galleryUseCaseImpl struct {
	uow   shared.UnitOfWork
	clk   clock.Clock
	limit int
}

func NewGalleryUseCase(uow shared.UnitOfWork, clk clock.Clock, cfg config.QuotaConfig) GalleryCommands {
	return &galleryUseCaseImpl{uow: uow, clk: clk, limit: cfg.GalleryPhotos}
}

// AddPhoto inserts under the gallery quota. The quota check happens in the
// same statement as the insert.
func (uc *galleryUseCaseImpl) AddPhoto(ctx context.Context, providerID uuid.UUID, input AddPhotoInput) (uuid.UUID, error) {
	photo, err := gallery.NewPhoto(providerID, input.URL, input.Description, input.OrderIndex, uc.clk.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inserted, err := tx.Gallery().CreateWithinQuota(ctx, photo, uc.limit)
		if err != nil {
			return markRepoErr(err)
		}
		if !inserted {
			return errs.NewQuotaExceeded(gallery.QuotaResource, uc.limit)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return photo.ID(), nil
}

func (uc *galleryUseCaseImpl) UpdatePhoto(ctx context.Context, providerID, photoID uuid.UUID, input UpdatePhotoInput) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		photo, err := tx.Gallery().Get(ctx, photoID)
		if err != nil {
			return markRepoErr(err)
		}
		if photo.ProviderID() != providerID {
			return errs.Mark(errs.New("photo belongs to another provider"), errs.ErrPermissionDenied)
		}
		photo.ApplyUpdate(input.Description, input.OrderIndex)
		return markRepoErr(tx.Gallery().Update(ctx, photo))
	})
}

func (uc *galleryUseCaseImpl) DeletePhoto(ctx context.Context, providerID, photoID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		photo, err := tx.Gallery().Get(ctx, photoID)
		if err != nil {
			return markRepoErr(err)
		}
		if photo.ProviderID() != providerID {
			return errs.Mark(errs.New("photo belongs to another provider"), errs.ErrPermissionDenied)
		}
		return markRepoErr(tx.Gallery().Delete(ctx, photoID))
	})
}

// Reorder applies the full display-order batch atomically.
func (uc *galleryUseCaseImpl) Reorder(ctx context.Context, providerID uuid.UUID, items []gallery.OrderItem) error {
	if len(items) == 0 {
		return errs.Mark(errs.New("reorder batch is empty"), errs.ErrValidation)
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return markRepoErr(tx.Gallery().Reorder(ctx, providerID, items))
	})
}
