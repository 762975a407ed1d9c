package repository

import (
	"context"
	"errors"
	"time"

	"club-portal/internal/domain/kitchen"
	"club-portal/internal/infra"
	"club-portal/internal/infra/db"
	"club-portal/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MealRepository struct {
	pool *pgxpool.Pool
}

func NewMealRepository(pool *pgxpool.Pool) *MealRepository {
	return &MealRepository{pool: pool}
}

const mealColumns = `m.id, m.day, m.kind, m.sophomore_limit, m.menu`

// attendanceQuery joins every entry once; the sophomore count filters by the
// entry person's class year while attending counts all rows.
const attendanceQuery = `
SELECT ` + mealColumns + `,
       COUNT(e.id) FILTER (WHERE p.class_year = $1) AS sophomore_count,
       COUNT(e.id) AS attending
FROM meals m
LEFT JOIN meal_entries e ON e.meal_id = m.id
LEFT JOIN persons p ON p.id = e.person_id
`

func (r *MealRepository) MealsBetween(ctx context.Context, from, to time.Time) ([]kitchen.MealSnapshot, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+mealColumns+`
FROM meals m
WHERE m.day >= $1 AND m.day <= $2
ORDER BY m.day, m.kind`, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query meals between days", err)
	}
	defer rows.Close()

	var meals []kitchen.MealSnapshot
	for rows.Next() {
		m, err := scanMeal(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan meal row", err)
		}
		meals = append(meals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read meal rows", err)
	}
	return meals, nil
}

func (r *MealRepository) MealsWithAttendanceFrom(ctx context.Context, from time.Time, sophomoreYear int) ([]kitchen.MealAttendance, error) {
	rows, err := r.pool.Query(ctx, attendanceQuery+`
WHERE m.day >= $2
GROUP BY m.id
ORDER BY m.day, m.id`, sophomoreYear, from)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query future meals", err)
	}
	defer rows.Close()
	return collectAttendance(rows)
}

func (r *MealRepository) MealsWithAttendanceOn(ctx context.Context, day time.Time, sophomoreYear int) ([]kitchen.MealAttendance, error) {
	rows, err := r.pool.Query(ctx, attendanceQuery+`
WHERE m.day = $2
GROUP BY m.id
ORDER BY m.id`, sophomoreYear, day)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query meals for day", err)
	}
	defer rows.Close()
	return collectAttendance(rows)
}

// LockMeal takes the meal's row lock for the rest of the transaction, which
// serializes concurrent signups against the same meal.
func (r *MealRepository) LockMeal(ctx context.Context, tx db.DBTX, mealID uuid.UUID) (*kitchen.MealSnapshot, error) {
	row := tx.QueryRow(ctx, `
SELECT `+mealColumns+`
FROM meals m
WHERE m.id = $1
FOR UPDATE`, mealID)

	m, err := scanMeal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("meal not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock meal", err)
	}
	return &m, nil
}

func (r *MealRepository) CountsForMeal(ctx context.Context, tx db.DBTX, mealID uuid.UUID, sophomoreYear int) (sophomores, attending int, err error) {
	row := tx.QueryRow(ctx, `
SELECT COUNT(e.id) FILTER (WHERE p.class_year = $1),
       COUNT(e.id)
FROM meal_entries e
JOIN persons p ON p.id = e.person_id
WHERE e.meal_id = $2`, sophomoreYear, mealID)

	if err := row.Scan(&sophomores, &attending); err != nil {
		return 0, 0, infra.WrapRepoErr("failed to count meal entries", err)
	}
	return sophomores, attending, nil
}

func (r *MealRepository) CreateEntry(ctx context.Context, tx db.DBTX, e kitchen.Entry) error {
	_, err := tx.Exec(ctx, `
INSERT INTO meal_entries (id, meal_id, person_id, created_at)
VALUES ($1, $2, $3, $4)`, e.ID, e.MealID, e.PersonID, e.CreatedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to create meal entry", err)
	}
	return nil
}

func (r *MealRepository) EntriesForPersonSince(ctx context.Context, personID uuid.UUID, since time.Time) ([]readmodel.MealEntryRM, error) {
	rows, err := r.pool.Query(ctx, `
SELECT e.id, e.meal_id, m.day, m.kind, e.created_at
FROM meal_entries e
JOIN meals m ON m.id = e.meal_id
WHERE e.person_id = $1 AND m.day >= $2
ORDER BY m.day, e.created_at`, personID, since)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query entries for person", err)
	}
	defer rows.Close()

	var entries []readmodel.MealEntryRM
	for rows.Next() {
		var rm readmodel.MealEntryRM
		if err := rows.Scan(&rm.EntryID, &rm.MealID, &rm.Day, &rm.Kind, &rm.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan entry row", err)
		}
		entries = append(entries, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read entry rows", err)
	}
	return entries, nil
}

func scanMeal(row pgx.Row) (kitchen.MealSnapshot, error) {
	var (
		m    kitchen.MealSnapshot
		kind string
	)
	if err := row.Scan(&m.ID, &m.Day, &kind, &m.SophomoreLimit, &m.Menu); err != nil {
		return kitchen.MealSnapshot{}, err
	}
	m.Kind = kitchen.MealKind(kind)
	return m, nil
}

func collectAttendance(rows pgx.Rows) ([]kitchen.MealAttendance, error) {
	var meals []kitchen.MealAttendance
	for rows.Next() {
		var (
			m    kitchen.MealAttendance
			kind string
		)
		err := rows.Scan(&m.ID, &m.Day, &kind, &m.SophomoreLimit, &m.Menu, &m.SophomoreCount, &m.Attending)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan attendance row", err)
		}
		m.Kind = kitchen.MealKind(kind)
		meals = append(meals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read attendance rows", err)
	}
	return meals, nil
}
