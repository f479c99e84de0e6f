package request

import (
	"github.com/google/uuid"
)

// Rating and sentiment are derived server-side from the comment, so the
// payload carries only the text.
type CreateReviewRequest struct {
	RequestID uuid.UUID `json:"request_id" binding:"required"`
	Comment   string    `json:"comment" binding:"required,max=1000"`
}

type ReportReviewRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

type SetReviewVisibilityRequest struct {
	Visible *bool `json:"visible" binding:"required"`
}
