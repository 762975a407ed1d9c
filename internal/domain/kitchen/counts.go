package kitchen

// CountPair is (attending, limit) for one meal kind. NoMeal marks a kind with
// no record on the queried day.
type CountPair struct {
	Attending int `json:"attending"`
	Limit     int `json:"limit"`
}

var NoMeal = CountPair{Attending: -1, Limit: -1}

type MealCounts struct {
	Brunch CountPair `json:"brunch"`
	Lunch  CountPair `json:"lunch"`
	Dinner CountPair `json:"dinner"`
}

// BuildCounts folds the meals of a single day into per-kind pairs. Attending
// counts every entry for the meal, not just sophomores.
func BuildCounts(meals []MealAttendance) MealCounts {
	counts := MealCounts{Brunch: NoMeal, Lunch: NoMeal, Dinner: NoMeal}
	for _, m := range meals {
		pair := CountPair{Attending: m.Attending, Limit: m.SophomoreLimit}
		switch m.Kind {
		case KindBrunch:
			counts.Brunch = pair
		case KindLunch:
			counts.Lunch = pair
		case KindDinner:
			counts.Dinner = pair
		}
	}
	return counts
}
