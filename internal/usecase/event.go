package usecase

import (
	"context"
	"time"

	"club-portal/internal/pkg/clock"
	"club-portal/internal/pkg/errs"
	"club-portal/internal/usecase/readmodel"
)

type EventRepository interface {
	ListUpcoming(ctx context.Context, now time.Time) ([]*readmodel.EventRM, error)
}

type EventUseCase interface {
	UpcomingEvents(ctx context.Context) ([]*readmodel.EventRM, error)
}

type eventUseCaseImpl struct {
	eventRepo EventRepository
	clock     clock.Clock
}

func NewEventUseCase(eventRepo EventRepository, clock clock.Clock) EventUseCase {
	return &eventUseCaseImpl{
		eventRepo: eventRepo,
		clock:     clock,
	}
}

func (e *eventUseCaseImpl) UpcomingEvents(ctx context.Context) ([]*readmodel.EventRM, error) {
	events, err := e.eventRepo.ListUpcoming(ctx, e.clock.Now())
	if err != nil {
		return nil, errs.Wrap(err, "failed to list upcoming events")
	}
	return events, nil
}
