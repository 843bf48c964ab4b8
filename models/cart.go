package models

import "sync"

// CartItem is a sub-service selected for booking, with its quantity and the
// parent service name denormalized for display and receipts.
type CartItem struct {
	SubService
	Quantity          int    `json:"quantity"`
	ParentServiceName string `json:"parentServiceName"`
}

// Cart holds the in-progress selection. At most one entry exists per
// sub-service id; quantity is always >= 1. The mutex makes each operation
// atomic under concurrent handlers sharing a session, the same discipline
// the store follows.
type Cart struct {
	mu    sync.Mutex
	items []CartItem
}

// AddItem appends the sub-service with quantity 1, or increments the
// quantity if an entry with the same id already exists.
func (c *Cart) AddItem(sub SubService, parentServiceName string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == sub.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, CartItem{
		SubService:        sub,
		Quantity:          1,
		ParentServiceName: parentServiceName,
	})
}

// SetQuantity replaces the quantity for the given sub-service id. A quantity
// of zero or less removes the entry. Unknown ids are a no-op.
func (c *Cart) SetQuantity(subServiceID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if quantity <= 0 {
		for i := range c.items {
			if c.items[i].ID == subServiceID {
				c.items = append(c.items[:i], c.items[i+1:]...)
				return
			}
		}
		return
	}
	for i := range c.items {
		if c.items[i].ID == subServiceID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Total recomputes the cart total on every call so it can never drift from
// the items after a mutation.
func (c *Cart) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, item := range c.items {
		total += item.Price * item.Quantity
	}
	return total
}

// Items returns a deep copy so callers cannot mutate cart state behind the
// engine's back.
func (c *Cart) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len reports the number of distinct entries.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear empties the cart. Called once, after a booking commits.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}
