package components

import (
	"ticketboss/internal/infra/db"
	"ticketboss/internal/infra/readstore"
	"ticketboss/internal/infra/repository"
	"ticketboss/internal/infra/uow"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		repository.NewEventRepository,
		repository.NewReservationRepository,
		readstore.NewEventReadStore,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
