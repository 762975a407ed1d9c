//go:build unit

package session_test

import (
	"testing"
	"time"

	"club-portal/internal/domain/gear"
	"club-portal/internal/infra/session"
	"club-portal/internal/pkg/clock"
	"club-portal/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, ttl time.Duration) (*session.CartStore, *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC))
	return session.NewCartStore(config.SessionConfig{TTL: ttl}, clk), clk
}

func cartWith(t *testing.T, quantity int) gear.Cart {
	t.Helper()
	cart, err := gear.Cart{}.Add(gear.Item{Name: "Crew Jacket", Size: "M", PriceCents: 4500, Inventory: 10}, quantity)
	require.NoError(t, err)
	return cart
}

func TestCartStore(t *testing.T) {
	t.Run("unknown session yields an empty cart", func(t *testing.T) {
		store, _ := newStore(t, time.Hour)
		assert.True(t, store.Get("nope").IsEmpty())
	})

	t.Run("put then get round trips", func(t *testing.T) {
		store, _ := newStore(t, time.Hour)
		id := store.NewSessionID()

		store.Put(id, cartWith(t, 2))

		got := store.Get(id)
		require.Len(t, got.Lines, 1)
		assert.Equal(t, 2, got.Lines[0].Quantity)
	})

	t.Run("session ids are unique", func(t *testing.T) {
		store, _ := newStore(t, time.Hour)
		assert.NotEqual(t, store.NewSessionID(), store.NewSessionID())
	})

	t.Run("expired cart reads as empty", func(t *testing.T) {
		store, clk := newStore(t, time.Hour)
		id := store.NewSessionID()
		store.Put(id, cartWith(t, 1))

		clk.Add(time.Hour + time.Minute)

		assert.True(t, store.Get(id).IsEmpty())
	})

	t.Run("a write renews the deadline", func(t *testing.T) {
		store, clk := newStore(t, time.Hour)
		id := store.NewSessionID()
		store.Put(id, cartWith(t, 1))

		clk.Add(45 * time.Minute)
		store.Put(id, cartWith(t, 2))
		clk.Add(45 * time.Minute)

		got := store.Get(id)
		require.Len(t, got.Lines, 1)
		assert.Equal(t, 2, got.Lines[0].Quantity)
	})

	t.Run("delete forgets the cart", func(t *testing.T) {
		store, _ := newStore(t, time.Hour)
		id := store.NewSessionID()
		store.Put(id, cartWith(t, 1))

		store.Delete(id)

		assert.True(t, store.Get(id).IsEmpty())
	})
}
