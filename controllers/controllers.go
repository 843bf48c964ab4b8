// controllers/controllers.go
package controllers

import (
	"fixuno-backend/services"
	"fixuno-backend/store"
)

// Shared handler dependencies, wired once from main.
var (
	Store       *store.Store
	Carts       *services.CartSessions
	Nav         *services.NavSessions
	Submissions *services.SubmissionService
	Bot         *services.Assistant
	LiveTracker *services.Tracker
)

// Setup injects the handler dependencies.
func Setup(st *store.Store, carts *services.CartSessions, nav *services.NavSessions, subs *services.SubmissionService, bot *services.Assistant, tracker *services.Tracker) {
	Store = st
	Carts = carts
	Nav = nav
	Submissions = subs
	Bot = bot
	LiveTracker = tracker
}
