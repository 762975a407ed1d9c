package usecase

import (
	"context"
	"errors"

	"club-portal/internal/domain/gear"
	"club-portal/internal/infra"
	"club-portal/internal/infra/db"
	"club-portal/internal/pkg/config"
	"club-portal/internal/pkg/errs"
	"club-portal/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrItemNotFound          = errors.New("gear item not found")
	ErrInsufficientInventory = errors.New("requested quantity exceeds inventory")
	ErrInvalidQuantity       = errors.New("quantity must be positive")
	ErrCartEmpty             = errors.New("cart is empty")
)

type GearRepository interface {
	ListInStock(ctx context.Context) ([]gear.Item, error)
	FindByKey(ctx context.Context, key gear.ItemKey) (*gear.Item, error)
	FindByKeyTx(ctx context.Context, tx db.DBTX, key gear.ItemKey) (*gear.Item, error)
	DecrementInventory(ctx context.Context, tx db.DBTX, key gear.ItemKey, quantity int) error
}

// CartStore is the session boundary: carts go in and out as whole values so
// the reconciliation rules never mutate ambient session state.
type CartStore interface {
	NewSessionID() string
	Get(sessionID string) gear.Cart
	Put(sessionID string, cart gear.Cart)
	Delete(sessionID string)
}

type GearUseCase interface {
	ListGear(ctx context.Context) ([]*readmodel.GearListItemRM, error)
	ViewCart(sessionID string) gear.Cart
	AddToCart(ctx context.Context, sessionID string, key gear.ItemKey, quantity int) (gear.Cart, error)
	RemoveOneFromCart(sessionID string, key gear.ItemKey) gear.Cart
	ClearCart(sessionID string)
	Checkout(sessionID string) (*readmodel.CheckoutRM, error)
}

type gearUseCaseImpl struct {
	gearRepo GearRepository
	carts    CartStore
	cfg      config.Config
}

func NewGearUseCase(gearRepo GearRepository, carts CartStore, cfg config.Config) GearUseCase {
	return &gearUseCaseImpl{
		gearRepo: gearRepo,
		carts:    carts,
		cfg:      cfg,
	}
}

// ListGear collapses in-stock SKUs into one card per product name, with the
// available sizes listed alongside. Out-of-stock SKUs never show.
func (g *gearUseCaseImpl) ListGear(ctx context.Context) ([]*readmodel.GearListItemRM, error) {
	items, err := g.gearRepo.ListInStock(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list gear items")
	}

	var (
		cards  []*readmodel.GearListItemRM
		byName = make(map[string]*readmodel.GearListItemRM)
	)
	for _, item := range items {
		card, ok := byName[item.Name]
		if !ok {
			card = &readmodel.GearListItemRM{
				Name:       item.Name,
				PriceCents: item.PriceCents,
			}
			byName[item.Name] = card
			cards = append(cards, card)
		}
		if item.Size != "" {
			card.Sizes = append(card.Sizes, item.Size)
		}
	}
	return cards, nil
}

func (g *gearUseCaseImpl) ViewCart(sessionID string) gear.Cart {
	return g.carts.Get(sessionID)
}

// AddToCart checks the requested quantity against the inventory snapshot at
// decision time. Nothing is reserved: stock only moves when a payment
// notification clears, so the admission here can go stale under concurrent
// sessions.
func (g *gearUseCaseImpl) AddToCart(ctx context.Context, sessionID string, key gear.ItemKey, quantity int) (gear.Cart, error) {
	item, err := g.gearRepo.FindByKey(ctx, key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return gear.Cart{}, ErrItemNotFound
		}
		return gear.Cart{}, errs.Wrap(err, "failed to find gear item")
	}

	cart := g.carts.Get(sessionID)
	next, err := cart.Add(*item, quantity)
	if err != nil {
		switch {
		case errors.Is(err, gear.ErrInvalidQuantity):
			return cart, ErrInvalidQuantity
		case errors.Is(err, gear.ErrInsufficientInventory):
			return cart, ErrInsufficientInventory
		}
		return cart, err
	}

	g.carts.Put(sessionID, next)
	return next, nil
}

func (g *gearUseCaseImpl) RemoveOneFromCart(sessionID string, key gear.ItemKey) gear.Cart {
	next := g.carts.Get(sessionID).RemoveOne(key)
	g.carts.Put(sessionID, next)
	return next
}

func (g *gearUseCaseImpl) ClearCart(sessionID string) {
	g.carts.Put(sessionID, gear.Cart{})
}

// Checkout freezes the cart into the gateway form fields. The custom payload
// round-trips the line items so the notification handler can reconcile them
// against inventory later.
func (g *gearUseCaseImpl) Checkout(sessionID string) (*readmodel.CheckoutRM, error) {
	cart := g.carts.Get(sessionID)
	if cart.IsEmpty() {
		return nil, ErrCartEmpty
	}

	host := g.cfg.Server.Host
	return &readmodel.CheckoutRM{
		Business:  g.cfg.PayPal.ReceiverEmail,
		Invoice:   uuid.NewString(),
		ItemName:  g.cfg.PayPal.ItemName,
		Amount:    gear.FormatAmount(cart.TotalCents()),
		Custom:    gear.EncodePayload(cart),
		NotifyURL: host + g.cfg.PayPal.NotifyPath,
		ReturnURL: host + g.cfg.PayPal.ReturnPath,
		CancelURL: host + g.cfg.PayPal.CancelPath,
	}, nil
}
