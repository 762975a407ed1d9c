package kitchen

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// AvailabilityView feeds the calendar picker: which dates can still be chosen
// and what the per-day tooltip should read.
type AvailabilityView struct {
	AvailableDates []string
	HoverText      map[string]string
}

func limitStatus(m MealAttendance) string {
	if m.SophomoreCount < m.SophomoreLimit {
		return fmt.Sprintf("%d of %d sophomore spots taken", m.SophomoreCount, m.SophomoreLimit)
	}
	return fmt.Sprintf("full (%d sophomore limit)", m.SophomoreLimit)
}

// ComputeAvailability groups the given meals by day and marks a day available
// when any meal that day still has sophomore capacity. Hover text joins the
// per-meal status strings in the order the meals were handed in, so the
// result is deterministic for a fixed storage snapshot.
func ComputeAvailability(meals []MealAttendance) AvailabilityView {
	hoverParts := make(map[string][]string)
	dayOrder := make([]string, 0, len(meals))
	available := make(map[string]bool)

	for _, m := range meals {
		key := m.Day.Format(time.DateOnly)
		if _, seen := hoverParts[key]; !seen {
			dayOrder = append(dayOrder, key)
		}
		hoverParts[key] = append(hoverParts[key], fmt.Sprintf("%s: %s", m.Kind.Label(), limitStatus(m)))

		if Eligible(m) {
			available[key] = true
		}
	}

	hover := make(map[string]string, len(hoverParts))
	for _, key := range dayOrder {
		hover[key] = strings.Join(hoverParts[key], ",")
	}

	dates := make([]string, 0, len(available))
	for d := range available {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	return AvailabilityView{
		AvailableDates: dates,
		HoverText:      hover,
	}
}
