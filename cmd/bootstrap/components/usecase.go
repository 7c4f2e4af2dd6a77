package components

import (
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		NewPriceCalculator,
		fx.As(new(reservation.PriceCalculator)),
	),
	func(clock clock.Clock, calc reservation.PriceCalculator) *reservation.Services {
		return &reservation.Services{
			Clock:           clock,
			PriceCalculator: calc,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewFormCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewFormQueries,
	),
)

func NewPriceCalculator(cfg config.Config) *reservation.DefaultPriceCalculator {
	calc := reservation.NewDefaultPriceCalculator()
	p := cfg.Pricing
	calc.BaseRates[reservation.RoomTypeStandard] = p.StandardRate
	calc.BaseRates[reservation.RoomTypeDeluxe] = p.DeluxeRate
	calc.BaseRates[reservation.RoomTypeSuite] = p.SuiteRate
	calc.ExtraGuestRate = p.ExtraGuestRate
	calc.IncludedGuests = p.IncludedGuests
	return calc
}
