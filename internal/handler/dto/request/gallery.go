package request

import (
	"eventora/internal/domain/gallery"

	"github.com/google/uuid"
)

type AddPhotoRequest struct {
	URL         string  `json:"url" binding:"required,url,max=500"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	OrderIndex  int32   `json:"order_index" binding:"omitempty,min=0"`
}

type UpdatePhotoRequest struct {
	Description *string `json:"description" binding:"omitempty,max=500"`
	OrderIndex  *int32  `json:"order_index" binding:"omitempty,min=0"`
}

type ReorderItem struct {
	PhotoID    uuid.UUID `json:"photo_id" binding:"required"`
	OrderIndex int32     `json:"order_index" binding:"min=0"`
}

type ReorderGalleryRequest struct {
	Items []ReorderItem `json:"items" binding:"required,min=1,dive"`
}

func (r *ReorderGalleryRequest) ToItems() []gallery.OrderItem {
	items := make([]gallery.OrderItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = gallery.OrderItem{PhotoID: it.PhotoID, OrderIndex: it.OrderIndex}
	}
	return items
}
