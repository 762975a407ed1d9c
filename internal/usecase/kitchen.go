package usecase

import (
	"context"
	"errors"
	"time"

	"club-portal/internal/domain/kitchen"
	"club-portal/internal/infra"
	"club-portal/internal/infra/db"
	"club-portal/internal/pkg/clock"
	"club-portal/internal/pkg/errs"
	"club-portal/internal/usecase/readmodel"
	"club-portal/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrMealNotFound        = errors.New("meal not found")
	ErrProspectiveNotFound = errors.New("prospective not found")
	ErrNotProspective      = errors.New("person is not in the prospective pipeline")
	ErrMealFull            = errors.New("meal has no sophomore capacity left")

	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type MealRepository interface {
	MealsBetween(ctx context.Context, from, to time.Time) ([]kitchen.MealSnapshot, error)
	MealsWithAttendanceFrom(ctx context.Context, from time.Time, sophomoreYear int) ([]kitchen.MealAttendance, error)
	MealsWithAttendanceOn(ctx context.Context, day time.Time, sophomoreYear int) ([]kitchen.MealAttendance, error)
	LockMeal(ctx context.Context, tx db.DBTX, mealID uuid.UUID) (*kitchen.MealSnapshot, error)
	CountsForMeal(ctx context.Context, tx db.DBTX, mealID uuid.UUID, sophomoreYear int) (sophomores, attending int, err error)
	CreateEntry(ctx context.Context, tx db.DBTX, e kitchen.Entry) error
	EntriesForPersonSince(ctx context.Context, personID uuid.UUID, since time.Time) ([]readmodel.MealEntryRM, error)
}

type PersonRepository interface {
	FindByNetID(ctx context.Context, netID string) (*readmodel.PersonRM, error)
	ListMembers(ctx context.Context) ([]*readmodel.PersonRM, error)
}

type KitchenUseCase interface {
	WeeklyMenu(ctx context.Context) (kitchen.Week, error)
	WeeklyMenuFor(ctx context.Context, anchor time.Time) (kitchen.Week, error)
	Availability(ctx context.Context) (kitchen.AvailabilityView, error)
	MealCounts(ctx context.Context, year, month, day int) (kitchen.MealCounts, error)
	Signup(ctx context.Context, netID string, mealID uuid.UUID) (*kitchen.Entry, error)
	ProspectiveProfile(ctx context.Context, netID string) (*readmodel.ProspectiveProfileRM, error)
}

type kitchenUseCaseImpl struct {
	mealRepo   MealRepository
	personRepo PersonRepository
	txRunner   shared.TxRunner
	clock      clock.Clock
}

func NewKitchenUseCase(
	mealRepo MealRepository,
	personRepo PersonRepository,
	txRunner shared.TxRunner,
	clock clock.Clock,
) KitchenUseCase {
	return &kitchenUseCaseImpl{
		mealRepo:   mealRepo,
		personRepo: personRepo,
		txRunner:   txRunner,
		clock:      clock,
	}
}

// WeeklyMenu shows the week containing today, per the injected clock.
func (k *kitchenUseCaseImpl) WeeklyMenu(ctx context.Context) (kitchen.Week, error) {
	return k.WeeklyMenuFor(ctx, k.clock.Now())
}

func (k *kitchenUseCaseImpl) WeeklyMenuFor(ctx context.Context, anchor time.Time) (kitchen.Week, error) {
	monday := kitchen.MondayOf(anchor)
	meals, err := k.mealRepo.MealsBetween(ctx, monday, monday.AddDate(0, 0, 6))
	if err != nil {
		return kitchen.Week{}, errs.Wrap(err, "failed to load meals for week")
	}
	return kitchen.ComputeWeek(anchor, meals), nil
}

func (k *kitchenUseCaseImpl) Availability(ctx context.Context) (kitchen.AvailabilityView, error) {
	now := k.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	meals, err := k.mealRepo.MealsWithAttendanceFrom(ctx, today, kitchen.SophomoreClassYear(now))
	if err != nil {
		return kitchen.AvailabilityView{}, errs.Wrap(err, "failed to load future meals")
	}
	return kitchen.ComputeAvailability(meals), nil
}

func (k *kitchenUseCaseImpl) MealCounts(ctx context.Context, year, month, day int) (kitchen.MealCounts, error) {
	d, err := kitchen.NewDate(year, month, day)
	if err != nil {
		return kitchen.MealCounts{}, err
	}

	meals, err := k.mealRepo.MealsWithAttendanceOn(ctx, d, kitchen.SophomoreClassYear(k.clock.Now()))
	if err != nil {
		return kitchen.MealCounts{}, errs.Wrap(err, "failed to load meals for day")
	}
	return kitchen.BuildCounts(meals), nil
}

// Signup re-checks eligibility under the meal's row lock before inserting the
// entry, so two signups for the same meal serialize. The separate
// Availability check the caller saw beforehand remains advisory.
func (k *kitchenUseCaseImpl) Signup(ctx context.Context, netID string, mealID uuid.UUID) (*kitchen.Entry, error) {
	prospective, err := k.findProspective(ctx, netID)
	if err != nil {
		return nil, err
	}

	return shared.RunInTx(ctx, k.txRunner, func(tx db.DBTX) (*kitchen.Entry, error) {
		meal, err := k.mealRepo.LockMeal(ctx, tx, mealID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrMealNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		sophomores, attending, err := k.mealRepo.CountsForMeal(ctx, tx, mealID, kitchen.SophomoreClassYear(k.clock.Now()))
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		attendance := kitchen.MealAttendance{
			MealSnapshot:   *meal,
			SophomoreCount: sophomores,
			Attending:      attending,
		}
		if !kitchen.Eligible(attendance) {
			return nil, ErrMealFull
		}

		entry := kitchen.NewEntry(mealID, prospective.ID, k.clock.Now())
		if err := k.mealRepo.CreateEntry(ctx, tx, entry); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return &entry, nil
	})
}

func (k *kitchenUseCaseImpl) ProspectiveProfile(ctx context.Context, netID string) (*readmodel.ProspectiveProfileRM, error) {
	prospective, err := k.findProspective(ctx, netID)
	if err != nil {
		return nil, err
	}

	now := k.clock.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	entries, err := k.mealRepo.EntriesForPersonSince(ctx, prospective.ID, monthStart)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load meal entries for prospective")
	}

	return &readmodel.ProspectiveProfileRM{
		Person:         *prospective,
		MealsThisMonth: entries,
	}, nil
}

func (k *kitchenUseCaseImpl) findProspective(ctx context.Context, netID string) (*readmodel.PersonRM, error) {
	rm, err := k.personRepo.FindByNetID(ctx, netID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProspectiveNotFound
		}
		return nil, errs.Wrap(err, "failed to find person by netid")
	}

	for _, role := range rm.Roles {
		if role == "prospective" {
			return rm, nil
		}
	}
	return nil, ErrNotProspective
}
