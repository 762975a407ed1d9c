package session

import (
	"sync"
	"time"

	"club-portal/internal/domain/gear"
	"club-portal/internal/pkg/clock"
	"club-portal/internal/pkg/config"

	"github.com/google/uuid"
)

// CartStore keeps per-session carts in memory, keyed by the opaque ID in the
// session cookie. Carts are values: Get hands out a copy and Put replaces it
// wholesale, so the only shared state is the map itself.
type CartStore struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	clock   clock.Clock
}

type entry struct {
	cart      gear.Cart
	expiresAt time.Time
}

func NewCartStore(cfg config.SessionConfig, clk clock.Clock) *CartStore {
	return &CartStore{
		entries: make(map[string]entry),
		ttl:     cfg.TTL,
		clock:   clk,
	}
}

func (s *CartStore) NewSessionID() string {
	return uuid.NewString()
}

func (s *CartStore) Get(sessionID string) gear.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[sessionID]
	if !ok || s.clock.Now().After(e.expiresAt) {
		delete(s.entries, sessionID)
		return gear.Cart{}
	}
	return e.cart
}

func (s *CartStore) Put(sessionID string, cart gear.Cart) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(now)
	s.entries[sessionID] = entry{
		cart:      cart,
		expiresAt: now.Add(s.ttl),
	}
}

func (s *CartStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionID)
}

// pruneLocked drops expired sessions opportunistically on writes instead of
// running a background janitor.
func (s *CartStore) pruneLocked(now time.Time) {
	for id, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, id)
		}
	}
}
