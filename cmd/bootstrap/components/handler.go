package components

import (
	"hiburan-booking-gateway/internal/handler"
	"hiburan-booking-gateway/internal/handler/api"
	"hiburan-booking-gateway/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewEventHandler,
		api.NewBookingHandler,
		api.NewPaymentProofHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
