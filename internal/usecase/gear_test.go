//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"club-portal/internal/domain/gear"
	"club-portal/internal/infra"
	"club-portal/internal/pkg/config"
	"club-portal/internal/usecase"
	"club-portal/tests/common/builder"
	usecasemock "club-portal/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GearUseCaseTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockRepo  *usecasemock.MockGearRepository
	mockCarts *usecasemock.MockCartStore
	uc        usecase.GearUseCase
}

func (s *GearUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = usecasemock.NewMockGearRepository(s.mockCtrl)
	s.mockCarts = usecasemock.NewMockCartStore(s.mockCtrl)
	s.uc = usecase.NewGearUseCase(s.mockRepo, s.mockCarts, config.NewTestConfig())
}

func (s *GearUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGearUseCaseSuite(t *testing.T) {
	suite.Run(t, new(GearUseCaseTestSuite))
}

func (s *GearUseCaseTestSuite) TestListGear() {
	s.Run("collapses sizes under one product card", func() {
		jacketM := builder.NewGearItemBuilder().Build()
		jacketL := builder.NewGearItemBuilder().With(func(b *builder.GearItemBuilder) {
			b.Size = "L"
		}).Build()
		mug := builder.NewGearItemBuilder().With(func(b *builder.GearItemBuilder) {
			b.Name = "Club Mug"
			b.Size = ""
			b.PriceCents = 1200
		}).Build()

		s.mockRepo.EXPECT().ListInStock(gomock.Any()).Return([]gear.Item{jacketM, jacketL, mug}, nil)

		cards, err := s.uc.ListGear(context.Background())
		s.Require().NoError(err)

		s.Require().Len(cards, 2)
		s.Equal("Crew Jacket", cards[0].Name)
		s.Equal([]string{"M", "L"}, cards[0].Sizes)
		s.Equal("Club Mug", cards[1].Name)
		s.Empty(cards[1].Sizes)
		s.Equal(int64(1200), cards[1].PriceCents)
	})

	s.Run("propagates repository failure", func() {
		s.mockRepo.EXPECT().ListInStock(gomock.Any()).Return(nil, infra.WrapRepoErr("query failed", nil))

		_, err := s.uc.ListGear(context.Background())
		s.Error(err)
	})
}

func (s *GearUseCaseTestSuite) TestAddToCart() {
	jacket := builder.NewGearItemBuilder().Build()
	key := jacket.Key()
	sessionID := uuid.NewString()

	s.Run("adds and persists the next cart", func() {
		s.mockRepo.EXPECT().FindByKey(gomock.Any(), key).Return(&jacket, nil)
		s.mockCarts.EXPECT().Get(sessionID).Return(gear.Cart{})
		s.mockCarts.EXPECT().Put(sessionID, gomock.Any())

		cart, err := s.uc.AddToCart(context.Background(), sessionID, key, 2)
		s.Require().NoError(err)

		s.Require().Len(cart.Lines, 1)
		s.Equal(2, cart.Lines[0].Quantity)
	})

	s.Run("unknown item", func() {
		s.mockRepo.EXPECT().FindByKey(gomock.Any(), key).Return(nil, infra.WrapRepoErr("no rows", nil, infra.KindNotFound))

		_, err := s.uc.AddToCart(context.Background(), sessionID, key, 1)
		s.ErrorIs(err, usecase.ErrItemNotFound)
	})

	s.Run("quantity exceeding inventory leaves the cart untouched", func() {
		scarce := builder.NewGearItemBuilder().With(func(b *builder.GearItemBuilder) {
			b.Inventory = 5
		}).Build()
		existing, addErr := gear.Cart{}.Add(scarce, 4)
		s.Require().NoError(addErr)

		s.mockRepo.EXPECT().FindByKey(gomock.Any(), key).Return(&scarce, nil)
		s.mockCarts.EXPECT().Get(sessionID).Return(existing)

		cart, err := s.uc.AddToCart(context.Background(), sessionID, key, 2)
		s.ErrorIs(err, usecase.ErrInsufficientInventory)
		s.Equal(4, cart.Lines[0].Quantity)
	})

	s.Run("non-positive quantity", func() {
		s.mockRepo.EXPECT().FindByKey(gomock.Any(), key).Return(&jacket, nil)
		s.mockCarts.EXPECT().Get(sessionID).Return(gear.Cart{})

		_, err := s.uc.AddToCart(context.Background(), sessionID, key, 0)
		s.ErrorIs(err, usecase.ErrInvalidQuantity)
	})
}

func (s *GearUseCaseTestSuite) TestRemoveOneFromCart() {
	jacket := builder.NewGearItemBuilder().Build()
	sessionID := uuid.NewString()

	existing, err := gear.Cart{}.Add(jacket, 2)
	s.Require().NoError(err)

	s.mockCarts.EXPECT().Get(sessionID).Return(existing)
	s.mockCarts.EXPECT().Put(sessionID, gomock.Any())

	cart := s.uc.RemoveOneFromCart(sessionID, jacket.Key())
	s.Equal(1, cart.Lines[0].Quantity)
}

func (s *GearUseCaseTestSuite) TestClearCart() {
	sessionID := uuid.NewString()
	s.mockCarts.EXPECT().Put(sessionID, gear.Cart{})

	s.uc.ClearCart(sessionID)
}

func (s *GearUseCaseTestSuite) TestCheckout() {
	sessionID := uuid.NewString()

	s.Run("empty cart cannot check out", func() {
		s.mockCarts.EXPECT().Get(sessionID).Return(gear.Cart{})

		_, err := s.uc.Checkout(sessionID)
		s.ErrorIs(err, usecase.ErrCartEmpty)
	})

	s.Run("freezes the cart into gateway form fields", func() {
		jacket := builder.NewGearItemBuilder().Build()
		cart, err := gear.Cart{}.Add(jacket, 2)
		s.Require().NoError(err)

		s.mockCarts.EXPECT().Get(sessionID).Return(cart)

		form, err := s.uc.Checkout(sessionID)
		s.Require().NoError(err)

		s.Equal("treasurer@example.edu", form.Business)
		s.Equal("Gear Order", form.ItemName)
		s.Equal("90.00", form.Amount)
		s.Equal("Crew Jacket|2|M|", form.Custom)
		s.Equal("http://localhost:8889/api/payments/notify", form.NotifyURL)
		s.Equal("http://localhost:8889/confirm", form.ReturnURL)
		s.Equal("http://localhost:8889/cart", form.CancelURL)

		_, err = uuid.Parse(form.Invoice)
		s.NoError(err, "invoice must be a fresh UUID")
	})
}
