package components

import (
	"appointment-scheduler/internal/handler"
	"appointment-scheduler/internal/handler/api"
	"appointment-scheduler/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAppointmentHandler,
		api.NewAvailabilityHandler,
		api.NewServiceHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
