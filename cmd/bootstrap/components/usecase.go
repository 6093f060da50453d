package components

import (
	"tutorlink/internal/domain/session"
	"tutorlink/internal/pkg/clock"
	"tutorlink/internal/pkg/config"
	"tutorlink/internal/pkg/jwt"
	"tutorlink/internal/usecase/commands"
	"tutorlink/internal/usecase/queries"
	"tutorlink/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	commands.NewLedgerService,
	func(cfg config.Config) session.PriceCalculator {
		return session.NewHourlyPriceCalculator(cfg.Booking.FeeRate)
	},
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewOfferQueries,
		queries.NewSessionQueries,
		queries.NewLedgerQueries,
		queries.NewReviewQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(u shared.UnitOfWork, rs queries.UserReadStore, jwtService *jwt.Service, cfg config.Config) commands.AuthCommands {
			return commands.NewAuthCommands(u, rs, jwtService, int64(cfg.Booking.SignupBonusPoints))
		},
		commands.NewOfferUseCase,
		commands.NewSessionUseCase,
		commands.NewReviewUseCase,
	),
)
