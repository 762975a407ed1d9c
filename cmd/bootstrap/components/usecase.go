package components

import (
	"club-portal/internal/pkg/clock"
	"club-portal/internal/usecase"
	"club-portal/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		shared.NewTxRunner,
		usecase.NewKitchenUseCase,
		usecase.NewGearUseCase,
		usecase.NewPaymentUseCase,
		usecase.NewMemberUseCase,
		usecase.NewEventUseCase,
	),
)
