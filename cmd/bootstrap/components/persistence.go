package components

import (
	"appointment-scheduler/internal/infra/db"
	"appointment-scheduler/internal/infra/readstore"
	"appointment-scheduler/internal/infra/uow"
	"appointment-scheduler/internal/usecase/queries"
	"appointment-scheduler/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
	NewUoWPool,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Appointment views
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentReadStore)),
		),
		// Occupancy snapshots outside a transaction
		fx.Annotate(
			readstore.NewSnapshotReadStore,
			fx.As(new(shared.AppointmentReads)),
		),
		// Owners
		fx.Annotate(
			readstore.NewOwnerReadStore,
			fx.As(new(shared.OwnerDirectory)),
		),
		// Service catalog
		fx.Annotate(
			readstore.NewServiceReadStore,
			fx.As(new(queries.ServiceReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork; the appointment repository is built per transaction
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewUoWPool(pool *pgxpool.Pool) uow.Pool {
	return pool
}
