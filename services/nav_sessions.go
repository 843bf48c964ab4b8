package services

import (
	"sync"

	"github.com/google/uuid"

	"fixuno-backend/navigation"
)

// NavSessions keeps one navigation controller per storefront client, keyed
// by the same session id as the cart. The controller itself is not safe for
// concurrent use, so every operation runs under the registry lock.
type NavSessions struct {
	mu    sync.Mutex
	views map[string]*navigation.Controller
}

func NewNavSessions() *NavSessions {
	return &NavSessions{views: make(map[string]*navigation.Controller)}
}

// acquire must be called with ns.mu held.
func (ns *NavSessions) acquire(sessionID string) (string, *navigation.Controller) {
	if sessionID != "" {
		if c, ok := ns.views[sessionID]; ok {
			return sessionID, c
		}
	}
	id := sessionID
	if id == "" {
		id = uuid.NewString()
	}
	c := navigation.NewController()
	ns.views[id] = c
	return id, c
}

// Navigate records the path and applies the view it resolves to.
func (ns *NavSessions) Navigate(sessionID, path string) (string, string, navigation.View) {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	id, c := ns.acquire(sessionID)
	view := c.Navigate(path)
	return id, c.Path(), view
}

// OpenPanel shows a modal panel without moving the path.
func (ns *NavSessions) OpenPanel(sessionID string, p navigation.Panel, serviceID string) (string, string, navigation.View) {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	id, c := ns.acquire(sessionID)
	view := c.OpenPanel(p, serviceID)
	return id, c.Path(), view
}

// Back applies the back gesture: dismiss an open panel first, only then pop
// the path history.
func (ns *NavSessions) Back(sessionID string) (string, string, navigation.View) {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	id, c := ns.acquire(sessionID)
	view := c.Back()
	return id, c.Path(), view
}

// Current returns the session's path and view without changing either.
func (ns *NavSessions) Current(sessionID string) (string, string, navigation.View) {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	id, c := ns.acquire(sessionID)
	return id, c.Path(), c.Current()
}
