package components

import (
	"marketplace-api/internal/handler"
	"marketplace-api/internal/handler/api"
	"marketplace-api/internal/handler/middleware"
	"marketplace-api/internal/handler/validation"
	"marketplace-api/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		api.NewAuthHandler,
		api.NewOrderHandler,
		api.NewOfferHandler,
		api.NewEscrowHandler,
		api.NewReviewHandler,
		api.NewNotificationHandler,
		api.NewUserHandler,
		api.NewConversationHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(
		validation.Register,
		handler.NewRouter,
	),
)

type handlerParams struct {
	fx.In

	Auth         *api.AuthHandler
	Orders       *api.OrderHandler
	Offers       *api.OfferHandler
	Escrow       *api.EscrowHandler
	Reviews      *api.ReviewHandler
	Notification *api.NotificationHandler
	Users        *api.UserHandler
	Conversation *api.ConversationHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:         p.Auth,
		Orders:       p.Orders,
		Offers:       p.Offers,
		Escrow:       p.Escrow,
		Reviews:      p.Reviews,
		Notification: p.Notification,
		Users:        p.Users,
		Conversation: p.Conversation,
	}
}
