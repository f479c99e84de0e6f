package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"eventora/internal/domain/actor"
	"eventora/internal/handler/api"
	"eventora/internal/handler/middleware"
	"eventora/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Request   *api.RequestHandler
	Calendar  *api.CalendarHandler
	Message   *api.MessageHandler
	Review    *api.ReviewHandler
	Gallery   *api.GalleryHandler
	Promotion *api.PromotionHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// Public catalog surface: no auth required.
		providers := apiGroup.Group("/providers/:id")
		{
			addRoutes(providers, []route{
				{Method: http.MethodGet, Path: "/availability", Handler: h.Calendar.PublicAvailability},
				{Method: http.MethodGet, Path: "/reviews", Handler: h.Review.ListForProvider},
				{Method: http.MethodGet, Path: "/reviews/stats", Handler: h.Review.Stats},
				{Method: http.MethodGet, Path: "/gallery", Handler: h.Gallery.List},
				{Method: http.MethodGet, Path: "/promotions", Handler: h.Promotion.ListCurrent},
			})
		}

		requests := apiGroup.Group("/requests")
		requests.Use(authMiddleware.RequireAuth())
		{
			addRoutes(requests, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Request.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Request.List},
				{Method: http.MethodGet, Path: "/stats", Handler: h.Request.Stats},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Request.Get},
				{Method: http.MethodPost, Path: "/:id/respond", Handler: h.Request.Respond},
				{Method: http.MethodPost, Path: "/:id/accept", Handler: h.Request.Accept},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Request.Reject},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Request.Cancel},
				{Method: http.MethodPost, Path: "/:id/messages", Handler: h.Message.Send},
				{Method: http.MethodGet, Path: "/:id/messages", Handler: h.Message.Thread},
			})
		}

		conversations := apiGroup.Group("/conversations")
		conversations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(conversations, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Message.Conversations},
				{Method: http.MethodGet, Path: "/unread", Handler: h.Message.UnreadCount},
			})
		}

		messages := apiGroup.Group("/messages")
		messages.Use(authMiddleware.RequireAuth())
		{
			addRoutes(messages, []route{
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Message.Delete},
			})
		}

		calendar := apiGroup.Group("/calendar")
		calendar.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(actor.RoleProvider))
		{
			addRoutes(calendar, []route{
				{Method: http.MethodPost, Path: "/block", Handler: h.Calendar.Block},
				{Method: http.MethodPost, Path: "/unblock", Handler: h.Calendar.Unblock},
				{Method: http.MethodDelete, Path: "/:date", Handler: h.Calendar.DeleteDate},
				{Method: http.MethodGet, Path: "", Handler: h.Calendar.List},
				{Method: http.MethodGet, Path: "/stats", Handler: h.Calendar.Stats},
			})
		}

		reviews := apiGroup.Group("/reviews")
		reviews.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reviews, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Review.Create},
				{Method: http.MethodPost, Path: "/:id/report", Handler: h.Review.Report},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Review.Delete},
			})
		}

		gallery := apiGroup.Group("/gallery")
		gallery.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(actor.RoleProvider))
		{
			addRoutes(gallery, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Gallery.AddPhoto},
				{Method: http.MethodGet, Path: "/quota", Handler: h.Gallery.Quota},
				{Method: http.MethodPut, Path: "/reorder", Handler: h.Gallery.Reorder},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Gallery.UpdatePhoto},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Gallery.DeletePhoto},
			})
		}

		promotions := apiGroup.Group("/promotions")
		{
			addRoutes(promotions, []route{
				{Method: http.MethodGet, Path: "/search", Handler: h.Promotion.Search},
			})

			owned := promotions.Group("")
			owned.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(actor.RoleProvider))
			addRoutes(owned, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Promotion.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Promotion.ListOwn},
				{Method: http.MethodGet, Path: "/quota", Handler: h.Promotion.Quota},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Promotion.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Promotion.Delete},
			})

			addRoutes(promotions, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Promotion.Get},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(actor.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/reviews/reported", Handler: h.Review.ListReported},
				{Method: http.MethodPut, Path: "/reviews/:id/visibility", Handler: h.Review.SetVisibility},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
