package handler

import (
	"net/http"

	"marketplace-api/internal/handler/api"
	"marketplace-api/internal/handler/middleware"
	"marketplace-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Orders       *api.OrderHandler
	Offers       *api.OfferHandler
	Escrow       *api.EscrowHandler
	Reviews      *api.ReviewHandler
	Notification *api.NotificationHandler
	Users        *api.UserHandler
	Conversation *api.ConversationHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.Middleware())
	engine.Use(middleware.Metrics())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(requireAuth)
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Orders.Create, Mw: []gin.HandlerFunc{middleware.RequireIdempotencyKey()}},
				{Method: http.MethodGet, Path: "", Handler: h.Orders.Search},
				{Method: http.MethodGet, Path: "/mine", Handler: h.Orders.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Orders.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Orders.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Orders.Delete},
				{Method: http.MethodPost, Path: "/:id/status", Handler: h.Orders.ChangeStatus},
				{Method: http.MethodGet, Path: "/:id/history", Handler: h.Orders.History},

				{Method: http.MethodPost, Path: "/:id/offers", Handler: h.Offers.Create},
				{Method: http.MethodGet, Path: "/:id/offers", Handler: h.Offers.ListByOrder},

				{Method: http.MethodPost, Path: "/:id/escrow", Handler: h.Escrow.Fund},
				{Method: http.MethodGet, Path: "/:id/escrow", Handler: h.Escrow.Get},
				{Method: http.MethodPost, Path: "/:id/escrow/release", Handler: h.Escrow.Release},
				{Method: http.MethodPost, Path: "/:id/escrow/dispute", Handler: h.Escrow.Dispute},
				{Method: http.MethodPost, Path: "/:id/escrow/resolve", Handler: h.Escrow.Resolve},

				{Method: http.MethodPost, Path: "/:id/reviews", Handler: h.Reviews.Create},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Reviews.ListByOrder},

				{Method: http.MethodGet, Path: "/:id/conversation", Handler: h.Conversation.GetByOrder},
			})
		}

		conversations := apiGroup.Group("/conversations")
		conversations.Use(requireAuth)
		{
			addRoutes(conversations, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Conversation.ListMine},
				{Method: http.MethodGet, Path: "/:id/messages", Handler: h.Conversation.ListMessages},
				{Method: http.MethodPost, Path: "/:id/messages", Handler: h.Conversation.Send},
				{Method: http.MethodPatch, Path: "/:id/messages/:messageId", Handler: h.Conversation.Edit},
				{Method: http.MethodPost, Path: "/:id/read", Handler: h.Conversation.MarkRead},
			})
		}

		offers := apiGroup.Group("/offers")
		offers.Use(requireAuth)
		{
			addRoutes(offers, []route{
				{Method: http.MethodGet, Path: "/mine", Handler: h.Offers.ListMine},
				{Method: http.MethodGet, Path: "/stats", Handler: h.Offers.Stats},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Offers.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Offers.Update},
				{Method: http.MethodPost, Path: "/:id/withdraw", Handler: h.Offers.Withdraw},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Offers.Reject},
				{Method: http.MethodPost, Path: "/:id/accept", Handler: h.Offers.Accept},
			})
		}

		reviews := apiGroup.Group("/reviews")
		reviews.Use(requireAuth)
		{
			addRoutes(reviews, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reviews.Get},
				{Method: http.MethodPost, Path: "/:id/response", Handler: h.Reviews.Respond},
			})
		}

		users := apiGroup.Group("/users")
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Users.Search},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Users.Get},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Reviews.ListByUser},
				{Method: http.MethodGet, Path: "/:id/rating", Handler: h.Reviews.Rating},
			})

			me := users.Group("/me")
			me.Use(requireAuth)
			addRoutes(me, []route{
				{Method: http.MethodPatch, Path: "", Handler: h.Users.UpdateMe},
				{Method: http.MethodDelete, Path: "", Handler: h.Users.DeleteMe},
			})
		}

		notifications := apiGroup.Group("/notifications")
		notifications.Use(requireAuth)
		{
			addRoutes(notifications, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Notification.List},
				{Method: http.MethodGet, Path: "/unread-count", Handler: h.Notification.UnreadCount},
				{Method: http.MethodPost, Path: "/read-all", Handler: h.Notification.MarkAllRead},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Notification.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Notification.Delete},
				{Method: http.MethodPost, Path: "/:id/read", Handler: h.Notification.MarkRead},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(requireAuth, authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/offers/expire", Handler: h.Offers.ExpireNow},
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
