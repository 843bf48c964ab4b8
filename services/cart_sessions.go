package services

import (
	"sync"

	"github.com/google/uuid"

	"fixuno-backend/models"
)

// CartSessions keeps one cart per storefront client, keyed by the session id
// the client echoes back in the X-Cart-Session header. Carts live in memory
// only; a booking is the first durable artifact.
type CartSessions struct {
	mu    sync.RWMutex
	carts map[string]*models.Cart
}

func NewCartSessions() *CartSessions {
	return &CartSessions{carts: make(map[string]*models.Cart)}
}

// Acquire returns the cart for the session, minting a new session id when
// the supplied one is empty or unknown.
func (cs *CartSessions) Acquire(sessionID string) (string, *models.Cart) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if sessionID != "" {
		if cart, ok := cs.carts[sessionID]; ok {
			return sessionID, cart
		}
	}
	id := uuid.NewString()
	cart := &models.Cart{}
	cs.carts[id] = cart
	return id, cart
}

// Drop discards a session's cart entirely.
func (cs *CartSessions) Drop(sessionID string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	delete(cs.carts, sessionID)
}
