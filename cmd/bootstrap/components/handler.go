package components

import (
	"eventora/internal/handler"
	"eventora/internal/handler/api"
	"eventora/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRequestHandler,
		api.NewCalendarHandler,
		api.NewMessageHandler,
		api.NewReviewHandler,
		api.NewGalleryHandler,
		api.NewPromotionHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	request *api.RequestHandler,
	calendar *api.CalendarHandler,
	message *api.MessageHandler,
	review *api.ReviewHandler,
	gallery *api.GalleryHandler,
	promotion *api.PromotionHandler,
) handler.Handlers {
	return handler.Handlers{
		Request:   request,
		Calendar:  calendar,
		Message:   message,
		Review:    review,
		Gallery:   gallery,
		Promotion: promotion,
	}
}
