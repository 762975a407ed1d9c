package person

import (
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrInvalidNetID  = errors.New("netid must be alphanumeric")
	ErrInvalidRole   = errors.New("unknown role")
	ErrStudentFields = errors.New("student roles require a netid and class year")
)

var netIDPattern = regexp.MustCompile(`^[0-9a-zA-Z]+$`)

// Role is a capability flag. A person holds a set of them instead of sitting
// in a Person→Student→Prospective/Member→Officer pointer chain, which kept
// shadowing fields between levels in the old data model.
type Role string

const (
	RoleStaff       Role = "staff"
	RoleStudent     Role = "student"
	RoleProspective Role = "prospective"
	RoleMember      Role = "member"
	RoleOfficer     Role = "officer"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStaff, RoleStudent, RoleProspective, RoleMember, RoleOfficer:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

type Person struct {
	id                uuid.UUID
	firstName         string
	lastName          string
	netID             string
	classYear         int
	roles             map[Role]bool
	eventsAttended    int
	houseAccountCents int64
	position          string
	allowRSVP         bool
}

func NewPerson(firstName, lastName, netID string, classYear int, roles []Role) (*Person, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, ErrEmptyName
	}

	roleSet := make(map[Role]bool, len(roles))
	for _, r := range roles {
		if _, err := ParseRole(string(r)); err != nil {
			return nil, err
		}
		roleSet[r] = true
	}

	p := &Person{
		id:        uuid.New(),
		firstName: firstName,
		lastName:  lastName,
		netID:     netID,
		classYear: classYear,
		roles:     roleSet,
		allowRSVP: true,
	}

	if p.isStudentLike() {
		if !netIDPattern.MatchString(netID) {
			return nil, ErrInvalidNetID
		}
		if classYear <= 0 {
			return nil, ErrStudentFields
		}
	}

	return p, nil
}

func ReconstructPerson(
	id uuid.UUID,
	firstName, lastName, netID string,
	classYear int,
	roles []Role,
	eventsAttended int,
	houseAccountCents int64,
	position string,
	allowRSVP bool,
) *Person {
	roleSet := make(map[Role]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}
	return &Person{
		id:                id,
		firstName:         firstName,
		lastName:          lastName,
		netID:             netID,
		classYear:         classYear,
		roles:             roleSet,
		eventsAttended:    eventsAttended,
		houseAccountCents: houseAccountCents,
		position:          position,
		allowRSVP:         allowRSVP,
	}
}

func (p *Person) isStudentLike() bool {
	return p.roles[RoleStudent] || p.roles[RoleProspective] || p.roles[RoleMember] || p.roles[RoleOfficer]
}

func (p *Person) HasRole(r Role) bool { return p.roles[r] }

func (p *Person) Roles() []Role {
	out := make([]Role, 0, len(p.roles))
	for _, r := range []Role{RoleStaff, RoleStudent, RoleProspective, RoleMember, RoleOfficer} {
		if p.roles[r] {
			out = append(out, r)
		}
	}
	return out
}

func (p *Person) ID() uuid.UUID             { return p.id }
func (p *Person) FirstName() string         { return p.firstName }
func (p *Person) LastName() string          { return p.lastName }
func (p *Person) FullName() string          { return p.firstName + " " + p.lastName }
func (p *Person) NetID() string             { return p.netID }
func (p *Person) ClassYear() int            { return p.classYear }
func (p *Person) EventsAttended() int       { return p.eventsAttended }
func (p *Person) HouseAccountCents() int64  { return p.houseAccountCents }
func (p *Person) Position() string          { return p.position }
func (p *Person) AllowRSVP() bool           { return p.allowRSVP }
