package repository

import (
	"context"
	"errors"

	"club-portal/internal/domain/gear"
	"club-portal/internal/infra"
	"club-portal/internal/infra/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GearRepository struct {
	pool *pgxpool.Pool
}

func NewGearRepository(pool *pgxpool.Pool) *GearRepository {
	return &GearRepository{pool: pool}
}

const gearColumns = `id, name, size, price_cents, inventory`

func (r *GearRepository) ListInStock(ctx context.Context) ([]gear.Item, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+gearColumns+`
FROM gear_items
WHERE inventory > 0
ORDER BY name, size`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query gear items", err)
	}
	defer rows.Close()

	var items []gear.Item
	for rows.Next() {
		var item gear.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Size, &item.PriceCents, &item.Inventory); err != nil {
			return nil, infra.WrapRepoErr("failed to scan gear row", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read gear rows", err)
	}
	return items, nil
}

func (r *GearRepository) FindByKey(ctx context.Context, key gear.ItemKey) (*gear.Item, error) {
	return r.findByKey(ctx, r.pool, key)
}

// FindByKeyTx is the transactional variant used while applying a payment.
func (r *GearRepository) FindByKeyTx(ctx context.Context, tx db.DBTX, key gear.ItemKey) (*gear.Item, error) {
	return r.findByKey(ctx, tx, key)
}

func (r *GearRepository) findByKey(ctx context.Context, q db.DBTX, key gear.ItemKey) (*gear.Item, error) {
	row := q.QueryRow(ctx, `
SELECT `+gearColumns+`
FROM gear_items
WHERE name = $1 AND size = $2`, key.Name, key.Size)

	var item gear.Item
	if err := row.Scan(&item.ID, &item.Name, &item.Size, &item.PriceCents, &item.Inventory); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("gear item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find gear item", err)
	}
	return &item, nil
}

// DecrementInventory refuses to go below zero: the conditional update either
// moves the whole quantity or affects no row at all.
func (r *GearRepository) DecrementInventory(ctx context.Context, tx db.DBTX, key gear.ItemKey, quantity int) error {
	tag, err := tx.Exec(ctx, `
UPDATE gear_items
SET inventory = inventory - $3
WHERE name = $1 AND size = $2 AND inventory >= $3`, key.Name, key.Size, quantity)
	if err != nil {
		return infra.WrapRepoErr("failed to decrement inventory", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("inventory too low or item missing", nil, infra.KindConflict)
	}
	return nil
}
