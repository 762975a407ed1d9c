package components

import (
	"club-portal/internal/infra/repository"
	"club-portal/internal/infra/session"
	"club-portal/internal/pkg/clock"
	"club-portal/internal/pkg/config"
	"club-portal/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewMealRepository,
			fx.As(new(usecase.MealRepository)),
		),
		fx.Annotate(
			repository.NewPersonRepository,
			fx.As(new(usecase.PersonRepository)),
		),
		fx.Annotate(
			repository.NewGearRepository,
			fx.As(new(usecase.GearRepository)),
		),
		fx.Annotate(
			repository.NewPaymentRepository,
			fx.As(new(usecase.PaymentRepository)),
		),
		fx.Annotate(
			repository.NewEventRepository,
			fx.As(new(usecase.EventRepository)),
		),
		fx.Annotate(
			NewCartStore,
			fx.As(new(usecase.CartStore)),
		),
	),
)

func NewCartStore(cfg config.Config, clk clock.Clock) *session.CartStore {
	return session.NewCartStore(cfg.Session, clk)
}
