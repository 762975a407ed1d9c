//go:build unit

package gear_test

import (
	"testing"

	"club-portal/internal/domain/gear"
	"club-portal/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAdd(t *testing.T) {
	jacket := builder.NewGearItemBuilder().Build()

	t.Run("adds a new line", func(t *testing.T) {
		cart, err := gear.Cart{}.Add(jacket, 2)
		require.NoError(t, err)

		require.Len(t, cart.Lines, 1)
		assert.Equal(t, gear.Line{
			Name:       jacket.Name,
			Size:       jacket.Size,
			PriceCents: jacket.PriceCents,
			Quantity:   2,
		}, cart.Lines[0])
	})

	t.Run("merges into an existing line", func(t *testing.T) {
		cart, err := gear.Cart{}.Add(jacket, 2)
		require.NoError(t, err)
		cart, err = cart.Add(jacket, 3)
		require.NoError(t, err)

		require.Len(t, cart.Lines, 1)
		assert.Equal(t, 5, cart.Lines[0].Quantity)
	})

	t.Run("different sizes are separate lines", func(t *testing.T) {
		large := builder.NewGearItemBuilder().With(func(b *builder.GearItemBuilder) {
			b.Size = "L"
		}).Build()

		cart, err := gear.Cart{}.Add(jacket, 1)
		require.NoError(t, err)
		cart, err = cart.Add(large, 1)
		require.NoError(t, err)

		assert.Len(t, cart.Lines, 2)
	})

	t.Run("rejects non-positive quantities", func(t *testing.T) {
		for _, q := range []int{0, -1} {
			_, err := gear.Cart{}.Add(jacket, q)
			assert.ErrorIs(t, err, gear.ErrInvalidQuantity)
		}
	})

	t.Run("line total is capped by the inventory snapshot", func(t *testing.T) {
		scarce := builder.NewGearItemBuilder().With(func(b *builder.GearItemBuilder) {
			b.Inventory = 5
		}).Build()

		cart, err := gear.Cart{}.Add(scarce, 4)
		require.NoError(t, err)

		_, err = cart.Add(scarce, 2)
		assert.ErrorIs(t, err, gear.ErrInsufficientInventory)

		cart, err = cart.Add(scarce, 1)
		require.NoError(t, err)
		assert.Equal(t, 5, cart.Lines[0].Quantity)
	})

	t.Run("the original cart is never mutated", func(t *testing.T) {
		cart, err := gear.Cart{}.Add(jacket, 1)
		require.NoError(t, err)

		next, err := cart.Add(jacket, 1)
		require.NoError(t, err)

		assert.Equal(t, 1, cart.Lines[0].Quantity)
		assert.Equal(t, 2, next.Lines[0].Quantity)
	})
}

func TestCartRemoveOne(t *testing.T) {
	jacket := builder.NewGearItemBuilder().Build()

	t.Run("decrements the matching line", func(t *testing.T) {
		cart, err := gear.Cart{}.Add(jacket, 3)
		require.NoError(t, err)

		next := cart.RemoveOne(jacket.Key())

		assert.Equal(t, 2, next.Lines[0].Quantity)
		assert.Equal(t, 3, cart.Lines[0].Quantity)
	})

	t.Run("drops the line at zero", func(t *testing.T) {
		cart, err := gear.Cart{}.Add(jacket, 1)
		require.NoError(t, err)

		next := cart.RemoveOne(jacket.Key())

		assert.True(t, next.IsEmpty())
	})

	t.Run("unknown key is a no-op", func(t *testing.T) {
		cart, err := gear.Cart{}.Add(jacket, 2)
		require.NoError(t, err)

		next := cart.RemoveOne(gear.ItemKey{Name: "Beanie", Size: ""})

		assert.Equal(t, cart.Lines, next.Lines)
	})
}

func TestCartTotals(t *testing.T) {
	jacket := builder.NewGearItemBuilder().Build() // 4500 cents
	mug := builder.NewGearItemBuilder().With(func(b *builder.GearItemBuilder) {
		b.Name = "Club Mug"
		b.Size = ""
		b.PriceCents = 1200
	}).Build()

	cart, err := gear.Cart{}.Add(jacket, 2)
	require.NoError(t, err)
	cart, err = cart.Add(mug, 3)
	require.NoError(t, err)

	assert.Equal(t, int64(2*4500+3*1200), cart.TotalCents())
	assert.Equal(t, int64(9000), cart.Lines[0].SubtotalCents())
	assert.False(t, cart.IsEmpty())
	assert.True(t, cart.Clear().IsEmpty())
	assert.True(t, gear.Cart{}.IsEmpty())
}
