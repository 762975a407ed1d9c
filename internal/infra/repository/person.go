package repository

import (
	"context"
	"errors"

	"club-portal/internal/infra"
	"club-portal/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PersonRepository struct {
	pool *pgxpool.Pool
}

func NewPersonRepository(pool *pgxpool.Pool) *PersonRepository {
	return &PersonRepository{pool: pool}
}

const personColumns = `id, first_name, last_name, netid, class_year, roles,
       events_attended, house_account_cents, COALESCE(position, ''), allow_rsvp`

func (r *PersonRepository) FindByNetID(ctx context.Context, netID string) (*readmodel.PersonRM, error) {
	row := r.pool.QueryRow(ctx, `
SELECT `+personColumns+`
FROM persons
WHERE netid = $1`, netID)

	rm, err := scanPerson(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("person not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find person by netid", err)
	}
	return rm, nil
}

func (r *PersonRepository) ListMembers(ctx context.Context) ([]*readmodel.PersonRM, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+personColumns+`
FROM persons
WHERE 'member' = ANY(roles) OR 'officer' = ANY(roles)
ORDER BY last_name, first_name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query members", err)
	}
	defer rows.Close()

	var members []*readmodel.PersonRM
	for rows.Next() {
		rm, err := scanPerson(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan person row", err)
		}
		members = append(members, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read person rows", err)
	}
	return members, nil
}

func scanPerson(row pgx.Row) (*readmodel.PersonRM, error) {
	var rm readmodel.PersonRM
	err := row.Scan(
		&rm.ID,
		&rm.FirstName,
		&rm.LastName,
		&rm.NetID,
		&rm.ClassYear,
		&rm.Roles,
		&rm.EventsAttended,
		&rm.HouseAccountCents,
		&rm.Position,
		&rm.AllowRSVP,
	)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}
