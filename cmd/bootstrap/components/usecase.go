package components

import (
	"holiday-booker/internal/domain/booking"
	"holiday-booker/internal/handler/middleware"
	"holiday-booker/internal/pkg/clock"
	"holiday-booker/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		booking.NewFactory,
		usecase.NewAuthUseCase,
		usecase.NewCatalogUseCase,
		usecase.NewBookingUseCase,
		func(a usecase.AuthUseCase) middleware.TokenValidator {
			return a
		},
	),
)
