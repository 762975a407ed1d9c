//go:build unit

package builder

import (
	"club-portal/internal/domain/person"
	"club-portal/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type PersonBuilder struct {
	ID                uuid.UUID
	FirstName         string
	LastName          string
	NetID             string
	ClassYear         int
	Roles             []person.Role
	EventsAttended    int
	HouseAccountCents int64
	Position          string
	AllowRSVP         bool
}

func NewPersonBuilder() *PersonBuilder {
	return &PersonBuilder{
		ID:        uuid.New(),
		FirstName: "Alex",
		LastName:  "Chen",
		NetID:     "ac2847",
		ClassYear: 2029,
		Roles:     []person.Role{person.RoleStudent, person.RoleProspective},
		AllowRSVP: true,
	}
}

func (b *PersonBuilder) With(mutate func(*PersonBuilder)) *PersonBuilder {
	mutate(b)
	return b
}

func (b *PersonBuilder) BuildDomain() (*person.Person, error) {
	return person.NewPerson(b.FirstName, b.LastName, b.NetID, b.ClassYear, b.Roles)
}

func (b *PersonBuilder) BuildReadModel() *readmodel.PersonRM {
	roles := make([]string, 0, len(b.Roles))
	for _, r := range b.Roles {
		roles = append(roles, string(r))
	}
	return &readmodel.PersonRM{
		ID:                b.ID,
		FirstName:         b.FirstName,
		LastName:          b.LastName,
		NetID:             b.NetID,
		ClassYear:         b.ClassYear,
		Roles:             roles,
		EventsAttended:    b.EventsAttended,
		HouseAccountCents: b.HouseAccountCents,
		Position:          b.Position,
		AllowRSVP:         b.AllowRSVP,
	}
}
