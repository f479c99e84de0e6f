package commands

import (
	"context"
	"time"

	"eventora/internal/domain/promotion"
	"eventora/internal/pkg/clock"
	"eventora/internal/pkg/config"
	"eventora/internal/pkg/errs"
	"eventora/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreatePromotionInput struct {
	Title         string
	Description   *string
	OriginalPrice float64
	PromoPrice    float64
	StartDate     time.Time
	EndDate       time.Time
}

// UpdatePromotionInput carries only the fields the caller wants changed.
type UpdatePromotionInput struct {
	Title         *string
	Description   *string
	OriginalPrice *float64
	PromoPrice    *float64
	StartDate     *time.Time
	EndDate       *time.Time
	Active        *bool
}

type PromotionCommands interface {
	Create(ctx context.Context, providerID uuid.UUID, input CreatePromotionInput) (uuid.UUID, error)
	Update(ctx context.Context, providerID, promotionID uuid.UUID, input UpdatePromotionInput) error
	Delete(ctx context.Context, providerID, promotionID uuid.UUID) error
	DeactivateExpired(ctx context.Context) (int64, error)
}

type promotionUseCaseImpl struct {
	uow   shared.UnitOfWork
	clk   clock.Clock
	limit int
}

func NewPromotionUseCase(uow shared.UnitOfWork, clk clock.Clock, cfg config.QuotaConfig) PromotionCommands {
	return &promotionUseCaseImpl{uow: uow, clk: clk, limit: cfg.ActivePromotions}
}

// Create inserts under the active-promotion quota; the count and insert are
// one statement.
func (uc *promotionUseCaseImpl) Create(ctx context.Context, providerID uuid.UUID, input CreatePromotionInput) (uuid.UUID, error) {
	promo, err := promotion.NewPromotion(
		providerID, input.Title, input.Description,
		input.OriginalPrice, input.PromoPrice,
		input.StartDate, input.EndDate, uc.clk.Now(),
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inserted, err := tx.Promotions().CreateWithinQuota(ctx, promo, uc.limit)
		if err != nil {
			return markRepoErr(err)
		}
		if !inserted {
			return errs.NewQuotaExceeded(promotion.QuotaResource, uc.limit)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return promo.ID(), nil
}

// Update coalesces: absent fields keep their stored values.
func (uc *promotionUseCaseImpl) Update(ctx context.Context, providerID, promotionID uuid.UUID, input UpdatePromotionInput) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		promo, err := tx.Promotions().Get(ctx, promotionID)
		if err != nil {
			return markRepoErr(err)
		}
		if promo.ProviderID() != providerID {
			return errs.Mark(errs.New("promotion belongs to another provider"), errs.ErrPermissionDenied)
		}

		title := promo.Title()
		if input.Title != nil {
			title = *input.Title
		}
		description := promo.Description()
		if input.Description != nil {
			description = input.Description
		}
		originalPrice := promo.OriginalPrice()
		if input.OriginalPrice != nil {
			originalPrice = *input.OriginalPrice
		}
		promoPrice := promo.PromoPrice()
		if input.PromoPrice != nil {
			promoPrice = *input.PromoPrice
		}
		startDate := promo.StartDate()
		if input.StartDate != nil {
			startDate = *input.StartDate
		}
		endDate := promo.EndDate()
		if input.EndDate != nil {
			endDate = *input.EndDate
		}

		if err := promo.ApplyUpdate(title, description, originalPrice, promoPrice, startDate, endDate); err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}
		if input.Active != nil && !*input.Active {
			promo.Deactivate()
		}
		return markRepoErr(tx.Promotions().Update(ctx, promo))
	})
}

func (uc *promotionUseCaseImpl) Delete(ctx context.Context, providerID, promotionID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		promo, err := tx.Promotions().Get(ctx, promotionID)
		if err != nil {
			return markRepoErr(err)
		}
		if promo.ProviderID() != providerID {
			return errs.Mark(errs.New("promotion belongs to another provider"), errs.ErrPermissionDenied)
		}
		return markRepoErr(tx.Promotions().Delete(ctx, promotionID))
	})
}

// DeactivateExpired turns off promotions past their end date; run by the
// background sweeper.
func (uc *promotionUseCaseImpl) DeactivateExpired(ctx context.Context) (int64, error) {
	var deactivated int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Promotions().DeactivateExpired(ctx, uc.clk.Now())
		if err != nil {
			return markRepoErr(err)
		}
		deactivated = n
		return nil
	})
	return deactivated, err
}
