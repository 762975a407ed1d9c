package repository

import (
	"context"
	"errors"
	"time"

	"club-portal/internal/domain/gear"
	"club-portal/internal/infra"
	"club-portal/internal/infra/db"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

// Insert records an applied notification. The unique invoice constraint is
// the replay guard: a second delivery of the same message hits
// DUPLICATE_KEY and never reaches the inventory updates.
func (r *PaymentRepository) Insert(ctx context.Context, tx db.DBTX, n gear.Notification, now time.Time) error {
	_, err := tx.Exec(ctx, `
INSERT INTO payments (invoice_id, receiver_email, amount_cents, custom, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`,
		n.InvoiceID, n.ReceiverEmail, n.AmountCents, n.Custom, n.Status, now)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("payment already recorded", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert payment", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
