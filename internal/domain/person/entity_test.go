//go:build unit

package person_test

import (
	"testing"

	"club-portal/internal/domain/person"
	"club-portal/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type personCase struct {
	name   string
	mutate func(*builder.PersonBuilder)
	errIs  error
}

func runPersonCases(t *testing.T, cases []personCase) {
	t.Helper()
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			b := builder.NewPersonBuilder()
			if tt.mutate != nil {
				tt.mutate(b)
			}
			p, err := b.BuildDomain()
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, p)
		})
	}
}

func TestNewPerson(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		p, err := builder.NewPersonBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, p)

		assert.NotEqual(t, uuid.Nil, p.ID())
		assert.Equal(t, "Alex Chen", p.FullName())
		assert.Equal(t, "ac2847", p.NetID())
		assert.Equal(t, 2029, p.ClassYear())
		assert.True(t, p.HasRole(person.RoleProspective))
		assert.False(t, p.HasRole(person.RoleOfficer))
		assert.True(t, p.AllowRSVP())
	})

	t.Run("name validation", func(t *testing.T) {
		runPersonCases(t, []personCase{
			{
				name:   "empty first name",
				mutate: func(b *builder.PersonBuilder) { b.FirstName = "" },
				errIs:  person.ErrEmptyName,
			},
			{
				name:   "whitespace last name",
				mutate: func(b *builder.PersonBuilder) { b.LastName = "   " },
				errIs:  person.ErrEmptyName,
			},
		})
	})

	t.Run("student field validation", func(t *testing.T) {
		runPersonCases(t, []personCase{
			{
				name:   "netid with symbols",
				mutate: func(b *builder.PersonBuilder) { b.NetID = "ac-2847" },
				errIs:  person.ErrInvalidNetID,
			},
			{
				name:   "empty netid on a student",
				mutate: func(b *builder.PersonBuilder) { b.NetID = "" },
				errIs:  person.ErrInvalidNetID,
			},
			{
				name:   "missing class year on a student",
				mutate: func(b *builder.PersonBuilder) { b.ClassYear = 0 },
				errIs:  person.ErrStudentFields,
			},
			{
				name: "staff need no netid or class year",
				mutate: func(b *builder.PersonBuilder) {
					b.Roles = []person.Role{person.RoleStaff}
					b.NetID = ""
					b.ClassYear = 0
				},
			},
			{
				name:   "unknown role",
				mutate: func(b *builder.PersonBuilder) { b.Roles = []person.Role{"alumnus"} },
				errIs:  person.ErrInvalidRole,
			},
		})
	})

	t.Run("names are trimmed", func(t *testing.T) {
		p, err := builder.NewPersonBuilder().With(func(b *builder.PersonBuilder) {
			b.FirstName = "  Alex "
		}).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Alex", p.FirstName())
	})
}

func TestRolesOrder(t *testing.T) {
	p, err := builder.NewPersonBuilder().With(func(b *builder.PersonBuilder) {
		b.Roles = []person.Role{person.RoleOfficer, person.RoleStudent, person.RoleMember}
	}).BuildDomain()
	require.NoError(t, err)

	// Stable declaration order regardless of input order.
	assert.Equal(t, []person.Role{person.RoleStudent, person.RoleMember, person.RoleOfficer}, p.Roles())
}

func TestReconstructPerson(t *testing.T) {
	id := uuid.New()
	p := person.ReconstructPerson(
		id, "Morgan", "Diaz", "md3120", 2027,
		[]person.Role{person.RoleMember, person.RoleOfficer},
		12, -3500, "Social Chair", false,
	)

	assert.Equal(t, id, p.ID())
	assert.Equal(t, 12, p.EventsAttended())
	assert.Equal(t, int64(-3500), p.HouseAccountCents())
	assert.Equal(t, "Social Chair", p.Position())
	assert.False(t, p.AllowRSVP())
	assert.True(t, p.HasRole(person.RoleOfficer))
}
