package response

import (
	"eventora/internal/domain/quota"
	"eventora/internal/usecase/queries"
)

type PhotoResponse struct {
	ID          string  `json:"id"`
	ProviderID  string  `json:"provider_id"`
	URL         string  `json:"url"`
	Description *string `json:"description,omitempty"`
	OrderIndex  int32   `json:"order_index"`
	UploadedAt  int64   `json:"uploaded_at"`
}

func FromPhotos(items []queries.PhotoView) []PhotoResponse {
	res := make([]PhotoResponse, len(items))
	for i, p := range items {
		res[i] = PhotoResponse{
			ID:          p.ID.String(),
			ProviderID:  p.ProviderID.String(),
			URL:         p.URL,
			Description: p.Description,
			OrderIndex:  p.OrderIndex,
			UploadedAt:  p.UploadedAt.Unix(),
		}
	}
	return res
}

type QuotaInfoResponse struct {
	Used      int  `json:"used"`
	Limit     int  `json:"limit"`
	Remaining int  `json:"remaining"`
	CanAdd    bool `json:"can_add"`
}

func FromQuotaInfo(info quota.Info) QuotaInfoResponse {
	return QuotaInfoResponse(info)
}
