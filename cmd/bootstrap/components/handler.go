package components

import (
	"commerce-core/internal/handler"
	"commerce-core/internal/handler/api"
	"commerce-core/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCartHandler,
		api.NewCheckoutHandler,
		api.NewOrderHandler,
		middleware.NewAuthMiddleware,
		func(cart *api.CartHandler, checkout *api.CheckoutHandler, order *api.OrderHandler) handler.Handlers {
			return handler.Handlers{Cart: cart, Checkout: checkout, Order: order}
		},
	),
	fx.Invoke(handler.NewRouter),
)
