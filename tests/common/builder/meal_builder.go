//go:build unit

package builder

import (
	"time"

	"club-portal/internal/domain/kitchen"

	"github.com/google/uuid"
)

type MealBuilder struct {
	ID             uuid.UUID
	Day            time.Time
	Kind           kitchen.MealKind
	SophomoreLimit int
	Menu           string
	SophomoreCount int
	Attending      int
}

func NewMealBuilder() *MealBuilder {
	return &MealBuilder{
		ID:             uuid.New(),
		Day:            time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), // a Monday
		Kind:           kitchen.KindDinner,
		SophomoreLimit: 6,
		Menu:           "Chicken parm, roasted potatoes",
		SophomoreCount: 0,
		Attending:      0,
	}
}

func (b *MealBuilder) With(mutate func(*MealBuilder)) *MealBuilder {
	mutate(b)
	return b
}

func (b *MealBuilder) BuildSnapshot() kitchen.MealSnapshot {
	return kitchen.MealSnapshot{
		ID:             b.ID,
		Day:            b.Day,
		Kind:           b.Kind,
		SophomoreLimit: b.SophomoreLimit,
		Menu:           b.Menu,
	}
}

func (b *MealBuilder) BuildAttendance() kitchen.MealAttendance {
	return kitchen.MealAttendance{
		MealSnapshot:   b.BuildSnapshot(),
		SophomoreCount: b.SophomoreCount,
		Attending:      b.Attending,
	}
}
