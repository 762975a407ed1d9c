package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type PersonRM struct {
	ID                uuid.UUID
	FirstName         string
	LastName          string
	NetID             string
	ClassYear         int
	Roles             []string
	EventsAttended    int
	HouseAccountCents int64
	Position          string
	AllowRSVP         bool
}

// ProspectiveProfileRM backs the meal-signup page: the prospective's record
// plus the meals they have eaten since the start of the current month.
type ProspectiveProfileRM struct {
	Person         PersonRM
	MealsThisMonth []MealEntryRM
}

type MealEntryRM struct {
	EntryID   uuid.UUID
	MealID    uuid.UUID
	Day       time.Time
	Kind      string
	CreatedAt time.Time
}
