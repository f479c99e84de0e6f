package request

import (
	"eventora/internal/usecase/commands"
)

type CreatePromotionRequest struct {
	Title         string  `json:"title" binding:"required,max=150"`
	Description   *string `json:"description" binding:"omitempty,max=1000"`
	OriginalPrice float64 `json:"original_price" binding:"required,gt=0"`
	PromoPrice    float64 `json:"promo_price" binding:"required,gt=0"`
	StartDate     string  `json:"start_date" binding:"required"`
	EndDate       string  `json:"end_date" binding:"required"`
}

func (r *CreatePromotionRequest) ToInput() (commands.CreatePromotionInput, error) {
	startDate, err := ParseDate(r.StartDate)
	if err != nil {
		return commands.CreatePromotionInput{}, err
	}
	endDate, err := ParseDate(r.EndDate)
	if err != nil {
		return commands.CreatePromotionInput{}, err
	}
	return commands.CreatePromotionInput{
		Title:         r.Title,
		Description:   r.Description,
		OriginalPrice: r.OriginalPrice,
		PromoPrice:    r.PromoPrice,
		StartDate:     startDate,
		EndDate:       endDate,
	}, nil
}

type UpdatePromotionRequest struct {
	Title         *string  `json:"title" binding:"omitempty,max=150"`
	Description   *string  `json:"description" binding:"omitempty,max=1000"`
	OriginalPrice *float64 `json:"original_price" binding:"omitempty,gt=0"`
	PromoPrice    *float64 `json:"promo_price" binding:"omitempty,gt=0"`
	StartDate     *string  `json:"start_date" binding:"omitempty"`
	EndDate       *string  `json:"end_date" binding:"omitempty"`
	Active        *bool    `json:"active" binding:"omitempty"`
}

func (r *UpdatePromotionRequest) ToInput() (commands.UpdatePromotionInput, error) {
	input := commands.UpdatePromotionInput{
		Title:         r.Title,
		Description:   r.Description,
		OriginalPrice: r.OriginalPrice,
		PromoPrice:    r.PromoPrice,
		Active:        r.Active,
	}
	if r.StartDate != nil {
		d, err := ParseDate(*r.StartDate)
		if err != nil {
			return commands.UpdatePromotionInput{}, err
		}
		input.StartDate = &d
	}
	if r.EndDate != nil {
		d, err := ParseDate(*r.EndDate)
		if err != nil {
			return commands.UpdatePromotionInput{}, err
		}
		input.EndDate = &d
	}
	return input, nil
}
