package repository

import (
	"context"
	"time"

	"club-portal/internal/infra"
	"club-portal/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

func (r *EventRepository) ListUpcoming(ctx context.Context, now time.Time) ([]*readmodel.EventRM, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, title, snippet, starts_at, ends_at
FROM social_events
WHERE ends_at >= $1
ORDER BY starts_at`, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query upcoming events", err)
	}
	defer rows.Close()

	var events []*readmodel.EventRM
	for rows.Next() {
		var rm readmodel.EventRM
		if err := rows.Scan(&rm.ID, &rm.Title, &rm.Snippet, &rm.StartsAt, &rm.EndsAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan event row", err)
		}
		events = append(events, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read event rows", err)
	}
	return events, nil
}
