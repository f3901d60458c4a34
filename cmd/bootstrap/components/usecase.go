package components

import (
	"appointment-scheduler/internal/domain/appointment"
	"appointment-scheduler/internal/pkg/clock"
	"appointment-scheduler/internal/usecase"
	"appointment-scheduler/internal/usecase/commands"
	"appointment-scheduler/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewSystemClock,
	appointment.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAppointmentCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReconciler,
		queries.NewAvailabilityQueries,
		queries.NewAppointmentQueries,
		queries.NewServiceCatalog,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
