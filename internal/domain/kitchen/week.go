package kitchen

import "time"

const dayLabelFormat = "Mon 01/02"

// DaySchedule is one row of the weekly menu. Any slot may be nil.
type DaySchedule struct {
	Label  string
	Day    time.Time
	Brunch *MealSnapshot
	Lunch  *MealSnapshot
	Dinner *MealSnapshot
}

type Week struct {
	Days     []DaySchedule
	PrevWeek time.Time
	NextWeek time.Time
}

// MondayOf truncates to midnight and walks back to the Monday of the week
// containing d.
func MondayOf(d time.Time) time.Time {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}

// ComputeWeek lays the given meals onto the Monday-aligned 7-day window
// containing anchor. Exactly seven entries come back, Monday through Sunday.
// A day that has a brunch never shows a lunch: the two are mutually
// exclusive on the menu even when both records exist.
func ComputeWeek(anchor time.Time, meals []MealSnapshot) Week {
	monday := MondayOf(anchor)

	byDay := make(map[string][]MealSnapshot, len(meals))
	for _, m := range meals {
		key := m.Day.Format(time.DateOnly)
		byDay[key] = append(byDay[key], m)
	}

	days := make([]DaySchedule, 0, 7)
	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i)
		sched := DaySchedule{
			Label: day.Format(dayLabelFormat),
			Day:   day,
		}
		for _, m := range byDay[day.Format(time.DateOnly)] {
			meal := m
			switch m.Kind {
			case KindBrunch:
				if sched.Brunch == nil {
					sched.Brunch = &meal
				}
			case KindLunch:
				if sched.Lunch == nil {
					sched.Lunch = &meal
				}
			case KindDinner:
				if sched.Dinner == nil {
					sched.Dinner = &meal
				}
			}
		}
		if sched.Brunch != nil {
			sched.Lunch = nil
		}
		days = append(days, sched)
	}

	return Week{
		Days:     days,
		PrevWeek: monday.AddDate(0, 0, -7),
		NextWeek: monday.AddDate(0, 0, 7),
	}
}
