package components

import (
	"ticketboss/internal/handler"
	"ticketboss/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewEventHandler,
		api.NewReservationHandler,
		api.NewHealthHandler,
	),
	fx.Invoke(handler.NewRouter),
)
