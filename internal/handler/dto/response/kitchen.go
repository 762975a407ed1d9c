package response

import (
	"time"

	"club-portal/internal/domain/kitchen"

	"github.com/google/uuid"
)

type MealResponse struct {
	ID             uuid.UUID `json:"id"`
	Kind           string    `json:"kind"`
	SophomoreLimit int       `json:"sophomoreLimit"`
	Menu           string    `json:"menu"`
}

type DayScheduleResponse struct {
	Label  string        `json:"label"`
	Day    string        `json:"day"`
	Brunch *MealResponse `json:"brunch,omitempty"`
	Lunch  *MealResponse `json:"lunch,omitempty"`
	Dinner *MealResponse `json:"dinner,omitempty"`
}

type WeekResponse struct {
	Days     []DayScheduleResponse `json:"days"`
	PrevWeek string                `json:"prevWeek"`
	NextWeek string                `json:"nextWeek"`
}

func FromWeek(w kitchen.Week) *WeekResponse {
	days := make([]DayScheduleResponse, len(w.Days))
	for i, d := range w.Days {
		days[i] = DayScheduleResponse{
			Label:  d.Label,
			Day:    d.Day.Format(time.DateOnly),
			Brunch: fromMealSnapshot(d.Brunch),
			Lunch:  fromMealSnapshot(d.Lunch),
			Dinner: fromMealSnapshot(d.Dinner),
		}
	}
	return &WeekResponse{
		Days:     days,
		PrevWeek: w.PrevWeek.Format(time.DateOnly),
		NextWeek: w.NextWeek.Format(time.DateOnly),
	}
}

func fromMealSnapshot(m *kitchen.MealSnapshot) *MealResponse {
	if m == nil {
		return nil
	}
	return &MealResponse{
		ID:             m.ID,
		Kind:           string(m.Kind),
		SophomoreLimit: m.SophomoreLimit,
		Menu:           m.Menu,
	}
}

type AvailabilityResponse struct {
	AvailableDates []string          `json:"availableDates"`
	HoverText      map[string]string `json:"hoverText"`
}

func FromAvailability(v kitchen.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		AvailableDates: v.AvailableDates,
		HoverText:      v.HoverText,
	}
}

type SignupResponse struct {
	EntryID   uuid.UUID `json:"entryId"`
	MealID    uuid.UUID `json:"mealId"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromEntry(e *kitchen.Entry) *SignupResponse {
	return &SignupResponse{
		EntryID:   e.ID,
		MealID:    e.MealID,
		CreatedAt: e.CreatedAt,
	}
}
