package usecase

import (
	"context"
	"errors"
	"time"

	"club-portal/internal/domain/gear"
	"club-portal/internal/infra"
	"club-portal/internal/infra/db"
	"club-portal/internal/pkg/clock"
	"club-portal/internal/pkg/config"
	"club-portal/internal/pkg/errs"
	"club-portal/internal/usecase/readmodel"
	"club-portal/internal/usecase/shared"
)

var (
	ErrDuplicatePayment   = errors.New("payment with this invoice was already applied")
	ErrInventoryConflict  = errors.New("inventory no longer covers the paid quantities")
	ErrPaymentItemUnknown = errors.New("paid item does not exist in the store")
)

type PaymentRepository interface {
	Insert(ctx context.Context, tx db.DBTX, n gear.Notification, now time.Time) error
}

type PaymentUseCase interface {
	ApplyNotification(ctx context.Context, n gear.Notification) (*readmodel.PaymentResultRM, error)
}

type paymentUseCaseImpl struct {
	gearRepo    GearRepository
	paymentRepo PaymentRepository
	txRunner    shared.TxRunner
	cfg         config.Config
	clock       clock.Clock
}

func NewPaymentUseCase(
	gearRepo GearRepository,
	paymentRepo PaymentRepository,
	txRunner shared.TxRunner,
	cfg config.Config,
	clock clock.Clock,
) PaymentUseCase {
	return &paymentUseCaseImpl{
		gearRepo:    gearRepo,
		paymentRepo: paymentRepo,
		txRunner:    txRunner,
		cfg:         cfg,
		clock:       clock,
	}
}

// ApplyNotification runs the gateway trust checks in their required order,
// then moves inventory inside a single transaction. The paid amount is
// always recomputed from stored prices; the figure in the notification is
// only ever compared against, never trusted. Decrements touch one row per
// payload item, so two concurrent notifications can deadlock; the retry
// wrapper reruns the whole transaction on 40001/40P01.
func (p *paymentUseCaseImpl) ApplyNotification(ctx context.Context, n gear.Notification) (*readmodel.PaymentResultRM, error) {
	items, err := gear.ValidateNotification(n, p.cfg.PayPal.ReceiverEmail)
	if err != nil {
		return nil, err
	}

	return shared.WithDefaultRetry(ctx, p.txRunner, func(tx db.DBTX) (*readmodel.PaymentResultRM, error) {
		var expectedCents int64
		for _, item := range items {
			stored, err := p.gearRepo.FindByKeyTx(ctx, tx, gear.ItemKey{Name: item.Name, Size: item.Size})
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return nil, ErrPaymentItemUnknown
				}
				return nil, errs.Mark(err, ErrDatabaseOperationFailed)
			}
			expectedCents += stored.PriceCents * int64(item.Quantity)
		}

		if err := gear.VerifyAmount(expectedCents, n.AmountCents); err != nil {
			return nil, err
		}

		if err := p.paymentRepo.Insert(ctx, tx, n, p.clock.Now()); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return nil, ErrDuplicatePayment
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		applied := make([]readmodel.AppliedItemRM, 0, len(items))
		for _, item := range items {
			key := gear.ItemKey{Name: item.Name, Size: item.Size}
			if err := p.gearRepo.DecrementInventory(ctx, tx, key, item.Quantity); err != nil {
				if infra.IsKind(err, infra.KindConflict) {
					return nil, ErrInventoryConflict
				}
				return nil, errs.Mark(err, ErrDatabaseOperationFailed)
			}
			applied = append(applied, readmodel.AppliedItemRM{
				Name:     item.Name,
				Size:     item.Size,
				Quantity: item.Quantity,
			})
		}

		return &readmodel.PaymentResultRM{
			InvoiceID:   n.InvoiceID,
			AmountCents: n.AmountCents,
			Items:       applied,
		}, nil
	})
}
