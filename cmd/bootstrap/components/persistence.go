package components

import (
	"marketplace-api/internal/infra/readstore"
	"marketplace-api/internal/infra/sqlstore"
	"marketplace-api/internal/infra/uow"
	"marketplace-api/internal/usecase/queries"
	"marketplace-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

// One *sqlstore.Queries satisfies every read-query interface.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(sqlQueriesAs, fx.As(new(readstore.OrderReadQueries))),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(sqlQueriesAs, fx.As(new(readstore.OfferReadQueries))),
		fx.Annotate(
			readstore.NewOfferReadStore,
			fx.As(new(queries.OfferReadStore)),
		),
		fx.Annotate(sqlQueriesAs, fx.As(new(readstore.EscrowReadQueries))),
		fx.Annotate(
			readstore.NewEscrowReadStore,
			fx.As(new(queries.EscrowReadStore)),
		),
		fx.Annotate(sqlQueriesAs, fx.As(new(readstore.ReviewViewQueries))),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
		fx.Annotate(sqlQueriesAs, fx.As(new(readstore.NotificationReadQueries))),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
		),
		fx.Annotate(sqlQueriesAs, fx.As(new(readstore.UserReadQueries))),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(sqlQueriesAs, fx.As(new(readstore.ConversationReadQueries))),
		fx.Annotate(
			readstore.NewConversationReadStore,
			fx.As(new(queries.ConversationReadStore)),
		),
	),
)

// Repositories are built per transaction by the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlstore.Queries {
	return sqlstore.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlstore.DBTX {
	return pool
}

func sqlQueriesAs(q *sqlstore.Queries) *sqlstore.Queries {
	return q
}
