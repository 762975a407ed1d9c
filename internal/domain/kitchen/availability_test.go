//go:build unit

package kitchen_test

import (
	"testing"
	"time"

	"club-portal/internal/domain/kitchen"
	"club-portal/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attendanceOn(day time.Time, kind kitchen.MealKind, count, limit int) kitchen.MealAttendance {
	return builder.NewMealBuilder().With(func(b *builder.MealBuilder) {
		b.Day = day
		b.Kind = kind
		b.SophomoreCount = count
		b.SophomoreLimit = limit
	}).BuildAttendance()
}

func TestComputeAvailability(t *testing.T) {
	day1 := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	t.Run("empty input", func(t *testing.T) {
		view := kitchen.ComputeAvailability(nil)
		assert.Empty(t, view.AvailableDates)
		assert.Empty(t, view.HoverText)
	})

	t.Run("day with any open meal is available", func(t *testing.T) {
		view := kitchen.ComputeAvailability([]kitchen.MealAttendance{
			attendanceOn(day1, kitchen.KindLunch, 6, 6),
			attendanceOn(day1, kitchen.KindDinner, 5, 6),
		})
		assert.Equal(t, []string{"2026-09-07"}, view.AvailableDates)
	})

	t.Run("day with only full meals is not available but keeps hover text", func(t *testing.T) {
		view := kitchen.ComputeAvailability([]kitchen.MealAttendance{
			attendanceOn(day1, kitchen.KindDinner, 6, 6),
		})
		assert.Empty(t, view.AvailableDates)
		assert.Equal(t, "Dinner: full (6 sophomore limit)", view.HoverText["2026-09-07"])
	})

	t.Run("hover text joins meals in input order", func(t *testing.T) {
		view := kitchen.ComputeAvailability([]kitchen.MealAttendance{
			attendanceOn(day1, kitchen.KindLunch, 2, 6),
			attendanceOn(day1, kitchen.KindDinner, 6, 6),
		})
		require.Contains(t, view.HoverText, "2026-09-07")
		assert.Equal(t,
			"Lunch: 2 of 6 sophomore spots taken,Dinner: full (6 sophomore limit)",
			view.HoverText["2026-09-07"])
	})

	t.Run("available dates come back sorted", func(t *testing.T) {
		view := kitchen.ComputeAvailability([]kitchen.MealAttendance{
			attendanceOn(day2, kitchen.KindDinner, 0, 6),
			attendanceOn(day1, kitchen.KindDinner, 0, 6),
		})
		assert.Equal(t, []string{"2026-09-07", "2026-09-08"}, view.AvailableDates)
	})

	t.Run("a date never repeats", func(t *testing.T) {
		view := kitchen.ComputeAvailability([]kitchen.MealAttendance{
			attendanceOn(day1, kitchen.KindBrunch, 0, 6),
			attendanceOn(day1, kitchen.KindDinner, 0, 6),
		})
		assert.Equal(t, []string{"2026-09-07"}, view.AvailableDates)
	})
}
