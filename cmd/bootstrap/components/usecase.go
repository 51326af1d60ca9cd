package components

import (
	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/pkg/config"
	"marketplace-api/internal/pkg/password"
	"marketplace-api/internal/usecase"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/queries"

	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func() *password.Hasher { return password.NewHasher(bcrypt.DefaultCost) },
	func(cfg config.Config) config.MarketplaceConfig { return cfg.Marketplace },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewOrderCommands,
		commands.NewOfferCommands,
		commands.NewEscrowCommands,
		commands.NewReviewCommands,
		commands.NewNotificationCommands,
		commands.NewMaintenanceCommands,
		commands.NewUserCommands,
		commands.NewConversationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewOrderQueries,
		queries.NewOfferQueries,
		queries.NewEscrowQueries,
		queries.NewReviewQueries,
		queries.NewNotificationQueries,
		queries.NewConversationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
