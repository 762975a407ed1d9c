//go:build unit

package kitchen_test

import (
	"testing"
	"time"

	"club-portal/internal/domain/kitchen"
	"club-portal/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestBuildCounts(t *testing.T) {
	day := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	t.Run("missing kinds report the sentinel pair", func(t *testing.T) {
		counts := kitchen.BuildCounts(nil)
		assert.Equal(t, kitchen.NoMeal, counts.Brunch)
		assert.Equal(t, kitchen.NoMeal, counts.Lunch)
		assert.Equal(t, kitchen.NoMeal, counts.Dinner)
	})

	t.Run("attending counts everyone, limit is the sophomore cap", func(t *testing.T) {
		meal := builder.NewMealBuilder().With(func(b *builder.MealBuilder) {
			b.Day = day
			b.Kind = kitchen.KindDinner
			b.SophomoreCount = 3
			b.SophomoreLimit = 6
			b.Attending = 17
		}).BuildAttendance()

		counts := kitchen.BuildCounts([]kitchen.MealAttendance{meal})

		assert.Equal(t, kitchen.CountPair{Attending: 17, Limit: 6}, counts.Dinner)
		assert.Equal(t, kitchen.NoMeal, counts.Brunch)
		assert.Equal(t, kitchen.NoMeal, counts.Lunch)
	})

	t.Run("each kind fills its own slot", func(t *testing.T) {
		brunch := builder.NewMealBuilder().With(func(b *builder.MealBuilder) {
			b.Day = day
			b.Kind = kitchen.KindBrunch
			b.Attending = 9
			b.SophomoreLimit = 4
		}).BuildAttendance()
		dinner := builder.NewMealBuilder().With(func(b *builder.MealBuilder) {
			b.Day = day
			b.Kind = kitchen.KindDinner
			b.Attending = 21
			b.SophomoreLimit = 6
		}).BuildAttendance()

		counts := kitchen.BuildCounts([]kitchen.MealAttendance{brunch, dinner})

		assert.Equal(t, kitchen.CountPair{Attending: 9, Limit: 4}, counts.Brunch)
		assert.Equal(t, kitchen.NoMeal, counts.Lunch)
		assert.Equal(t, kitchen.CountPair{Attending: 21, Limit: 6}, counts.Dinner)
	})
}
