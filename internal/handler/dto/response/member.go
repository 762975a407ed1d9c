package response

import (
	"time"

	"club-portal/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type PersonResponse struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	NetID          string    `json:"netid"`
	ClassYear      int       `json:"classYear"`
	Roles          []string  `json:"roles"`
	EventsAttended int       `json:"eventsAttended"`
	Position       string    `json:"position,omitempty"`
}

func FromPerson(rm *readmodel.PersonRM) *PersonResponse {
	return &PersonResponse{
		ID:             rm.ID,
		FirstName:      rm.FirstName,
		LastName:       rm.LastName,
		NetID:          rm.NetID,
		ClassYear:      rm.ClassYear,
		Roles:          rm.Roles,
		EventsAttended: rm.EventsAttended,
		Position:       rm.Position,
	}
}

type MealEntryResponse struct {
	MealID    uuid.UUID `json:"mealId"`
	Day       string    `json:"day"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"createdAt"`
}

type ProspectiveProfileResponse struct {
	Person         PersonResponse      `json:"person"`
	MealsThisMonth []MealEntryResponse `json:"mealsThisMonth"`
}

func FromProspectiveProfile(rm *readmodel.ProspectiveProfileRM) *ProspectiveProfileResponse {
	meals := make([]MealEntryResponse, len(rm.MealsThisMonth))
	for i, e := range rm.MealsThisMonth {
		meals[i] = MealEntryResponse{
			MealID:    e.MealID,
			Day:       e.Day.Format(time.DateOnly),
			Kind:      e.Kind,
			CreatedAt: e.CreatedAt,
		}
	}
	return &ProspectiveProfileResponse{
		Person:         *FromPerson(&rm.Person),
		MealsThisMonth: meals,
	}
}
