package components

import (
	"club-portal/internal/handler"
	"club-portal/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewKitchenHandler,
		api.NewGearHandler,
		api.NewPaymentHandler,
		api.NewMemberHandler,
		api.NewEventHandler,
	),
	fx.Invoke(
		handler.NewRouter,
	),
)
