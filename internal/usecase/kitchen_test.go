//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"club-portal/internal/domain/kitchen"
	"club-portal/internal/infra"
	"club-portal/internal/infra/db"
	"club-portal/internal/pkg/clock"
	"club-portal/internal/usecase"
	"club-portal/tests/common/builder"
	sharedmock "club-portal/tests/mock/shared"
	usecasemock "club-portal/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type KitchenUseCaseTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockMealRepo   *usecasemock.MockMealRepository
	mockPersonRepo *usecasemock.MockPersonRepository
	mockTx         *sharedmock.MockTxRunner
	clk            *clock.MockClock
	uc             usecase.KitchenUseCase
}

func (s *KitchenUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockMealRepo = usecasemock.NewMockMealRepository(s.mockCtrl)
	s.mockPersonRepo = usecasemock.NewMockPersonRepository(s.mockCtrl)
	s.mockTx = sharedmock.NewMockTxRunner(s.mockCtrl)
	// Mid-September: the sophomore class year is 2026+3.
	s.clk = clock.NewMockClock(time.Date(2026, 9, 9, 15, 30, 0, 0, time.UTC))
	s.uc = usecase.NewKitchenUseCase(s.mockMealRepo, s.mockPersonRepo, s.mockTx, s.clk)
}

func (s *KitchenUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestKitchenUseCaseSuite(t *testing.T) {
	suite.Run(t, new(KitchenUseCaseTestSuite))
}

func (s *KitchenUseCaseTestSuite) expectTx() {
	s.mockTx.EXPECT().
		InTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(tx db.DBTX) error) error {
			return fn(nil)
		})
}

func (s *KitchenUseCaseTestSuite) TestWeeklyMenu() {
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	s.Run("anchored week", func() {
		dinner := builder.NewMealBuilder().With(func(b *builder.MealBuilder) {
			b.Day = monday
		}).BuildSnapshot()

		s.mockMealRepo.EXPECT().
			MealsBetween(gomock.Any(), monday, monday.AddDate(0, 0, 6)).
			Return([]kitchen.MealSnapshot{dinner}, nil)

		week, err := s.uc.WeeklyMenuFor(context.Background(), monday.AddDate(0, 0, 2))
		s.Require().NoError(err)

		s.Require().Len(week.Days, 7)
		s.Require().NotNil(week.Days[0].Dinner)
		s.Equal(dinner.ID, week.Days[0].Dinner.ID)
		s.Equal(monday.AddDate(0, 0, -7), week.PrevWeek)
	})

	s.Run("default week comes from the clock", func() {
		s.mockMealRepo.EXPECT().
			MealsBetween(gomock.Any(), monday, monday.AddDate(0, 0, 6)).
			Return(nil, nil)

		week, err := s.uc.WeeklyMenu(context.Background())
		s.Require().NoError(err)

		s.Require().Len(week.Days, 7)
		s.Equal(monday, week.Days[0].Day)
	})
}

func (s *KitchenUseCaseTestSuite) TestAvailability() {
	today := time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC)
	open := builder.NewMealBuilder().With(func(b *builder.MealBuilder) {
		b.Day = today
		b.SophomoreCount = 1
		b.SophomoreLimit = 6
	}).BuildAttendance()

	s.mockMealRepo.EXPECT().
		MealsWithAttendanceFrom(gomock.Any(), today, 2029).
		Return([]kitchen.MealAttendance{open}, nil)

	view, err := s.uc.Availability(context.Background())
	s.Require().NoError(err)

	s.Equal([]string{"2026-09-09"}, view.AvailableDates)
	s.Equal("Dinner: 1 of 6 sophomore spots taken", view.HoverText["2026-09-09"])
}

func (s *KitchenUseCaseTestSuite) TestMealCounts() {
	s.Run("invalid date short-circuits before the repository", func() {
		_, err := s.uc.MealCounts(context.Background(), 2026, 2, 30)
		s.ErrorIs(err, kitchen.ErrInvalidDate)
	})

	s.Run("builds per-kind pairs for the day", func() {
		day := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
		brunch := builder.NewMealBuilder().With(func(b *builder.MealBuilder) {
			b.Day = day
			b.Kind = kitchen.KindBrunch
			b.Attending = 14
			b.SophomoreLimit = 4
		}).BuildAttendance()

		s.mockMealRepo.EXPECT().
			MealsWithAttendanceOn(gomock.Any(), day, 2029).
			Return([]kitchen.MealAttendance{brunch}, nil)

		counts, err := s.uc.MealCounts(context.Background(), 2026, 9, 12)
		s.Require().NoError(err)

		s.Equal(kitchen.CountPair{Attending: 14, Limit: 4}, counts.Brunch)
		s.Equal(kitchen.NoMeal, counts.Lunch)
		s.Equal(kitchen.NoMeal, counts.Dinner)
	})
}

func (s *KitchenUseCaseTestSuite) TestSignup() {
	s.Run("records an entry while the meal has capacity", func() {
		s.expectTx()

		prospective := builder.NewPersonBuilder().BuildReadModel()
		meal := builder.NewMealBuilder().BuildSnapshot()

		s.mockPersonRepo.EXPECT().FindByNetID(gomock.Any(), prospective.NetID).Return(prospective, nil)
		s.mockMealRepo.EXPECT().LockMeal(gomock.Any(), gomock.Any(), meal.ID).Return(&meal, nil)
		s.mockMealRepo.EXPECT().CountsForMeal(gomock.Any(), gomock.Any(), meal.ID, 2029).Return(5, 11, nil)

		var created kitchen.Entry
		s.mockMealRepo.EXPECT().
			CreateEntry(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, tx db.DBTX, e kitchen.Entry) error {
				created = e
				return nil
			})

		entry, err := s.uc.Signup(context.Background(), prospective.NetID, meal.ID)
		s.Require().NoError(err)

		s.Equal(created, *entry)
		s.Equal(meal.ID, entry.MealID)
		s.Equal(prospective.ID, entry.PersonID)
		s.Equal(s.clk.Now(), entry.CreatedAt)
	})

	s.Run("full meal is refused under the row lock", func() {
		s.expectTx()

		prospective := builder.NewPersonBuilder().BuildReadModel()
		meal := builder.NewMealBuilder().BuildSnapshot()

		s.mockPersonRepo.EXPECT().FindByNetID(gomock.Any(), prospective.NetID).Return(prospective, nil)
		s.mockMealRepo.EXPECT().LockMeal(gomock.Any(), gomock.Any(), meal.ID).Return(&meal, nil)
		// The count reached the limit after the caller last saw availability.
		s.mockMealRepo.EXPECT().CountsForMeal(gomock.Any(), gomock.Any(), meal.ID, 2029).Return(6, 14, nil)

		_, err := s.uc.Signup(context.Background(), prospective.NetID, meal.ID)
		s.ErrorIs(err, usecase.ErrMealFull)
	})

	s.Run("unknown meal", func() {
		s.expectTx()

		prospective := builder.NewPersonBuilder().BuildReadModel()
		mealID := uuid.New()

		s.mockPersonRepo.EXPECT().FindByNetID(gomock.Any(), prospective.NetID).Return(prospective, nil)
		s.mockMealRepo.EXPECT().
			LockMeal(gomock.Any(), gomock.Any(), mealID).
			Return(nil, infra.WrapRepoErr("no rows", nil, infra.KindNotFound))

		_, err := s.uc.Signup(context.Background(), prospective.NetID, mealID)
		s.ErrorIs(err, usecase.ErrMealNotFound)
	})

	s.Run("unknown netid never opens a transaction", func() {
		s.mockPersonRepo.EXPECT().
			FindByNetID(gomock.Any(), "ghost1").
			Return(nil, infra.WrapRepoErr("no rows", nil, infra.KindNotFound))

		_, err := s.uc.Signup(context.Background(), "ghost1", uuid.New())
		s.ErrorIs(err, usecase.ErrProspectiveNotFound)
	})
}

func (s *KitchenUseCaseTestSuite) TestProspectiveProfile() {
	s.Run("unknown netid", func() {
		s.mockPersonRepo.EXPECT().
			FindByNetID(gomock.Any(), "ghost1").
			Return(nil, infra.WrapRepoErr("no rows", nil, infra.KindNotFound))

		_, err := s.uc.ProspectiveProfile(context.Background(), "ghost1")
		s.ErrorIs(err, usecase.ErrProspectiveNotFound)
	})

	s.Run("person without the prospective role", func() {
		member := builder.NewPersonBuilder().With(func(b *builder.PersonBuilder) {
			b.Roles = nil
			b.Roles = append(b.Roles, "student", "member")
		}).BuildReadModel()

		s.mockPersonRepo.EXPECT().FindByNetID(gomock.Any(), member.NetID).Return(member, nil)

		_, err := s.uc.ProspectiveProfile(context.Background(), member.NetID)
		s.ErrorIs(err, usecase.ErrNotProspective)
	})

	s.Run("profile includes meals since the start of the month", func() {
		prospective := builder.NewPersonBuilder().BuildReadModel()
		monthStart := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

		s.mockPersonRepo.EXPECT().FindByNetID(gomock.Any(), prospective.NetID).Return(prospective, nil)
		s.mockMealRepo.EXPECT().
			EntriesForPersonSince(gomock.Any(), prospective.ID, monthStart).
			Return(nil, nil)

		profile, err := s.uc.ProspectiveProfile(context.Background(), prospective.NetID)
		s.Require().NoError(err)

		s.Equal(*prospective, profile.Person)
		s.Empty(profile.MealsThisMonth)
	})
}
