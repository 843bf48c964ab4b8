// controllers/admin.go
package controllers

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"fixuno-backend/models"
	"fixuno-backend/store"
	"fixuno-backend/utils"
)

// AdminLoginInput carries the partner PIN. This is a demo-grade gate, not
// real authentication: a shared PIN unlocks a short-lived admin token.
type AdminLoginInput struct {
	PIN string `json:"pin" binding:"required"`
}

// UpdateStatusInput carries the target booking status.
type UpdateStatusInput struct {
	Status models.BookingStatus `json:"status" binding:"required"`
}

// AdminLogin checks the partner PIN and issues the admin session token.
// A wrong PIN gets a rejection message; there is no lockout.
func AdminLogin(c *gin.Context) {
	var input AdminLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !pinMatches(input.PIN) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid PIN.")
		return
	}

	token, err := utils.GenerateAdminToken()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// pinMatches prefers the bcrypt hash when configured and falls back to the
// plain demo PIN.
func pinMatches(pin string) bool {
	if hash := os.Getenv("ADMIN_PIN_HASH"); hash != "" {
		return utils.CheckPINHash(pin, hash)
	}
	expected := os.Getenv("ADMIN_PIN")
	if expected == "" {
		expected = "1234"
	}
	return pin == expected
}

// GetAdminBookings lists the whole ledger, optionally filtered by the
// dashboard search box (customer name, phone, or booking id).
func GetAdminBookings(c *gin.Context) {
	bookings := Store.Bookings()

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q := strings.ToLower(search)
		filtered := bookings[:0]
		for _, b := range bookings {
			if strings.Contains(strings.ToLower(b.UserName), q) ||
				strings.Contains(b.UserPhone, search) ||
				strings.Contains(strings.ToLower(b.ID), q) {
				filtered = append(filtered, b)
			}
		}
		bookings = filtered
	}

	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatus applies an operator-driven status transition. The
// store enforces the forward-only rule.
func UpdateBookingStatus(c *gin.Context) {
	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !models.ValidStatus(input.Status) {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown status")
		return
	}

	found, err := Store.UpdateStatus(c.Param("id"), input.Status)
	if errors.Is(err, store.ErrIllegalTransition) {
		utils.RespondWithError(c, http.StatusConflict, "Status can only move forward")
		return
	}
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

// DeleteBooking removes a booking in any state. The dashboard confirms with
// the operator before calling this.
func DeleteBooking(c *gin.Context) {
	if !Store.DeleteBooking(c.Param("id")) {
		utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}

// AdminStats mirrors the dashboard header cards.
type AdminStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Revenue   int `json:"revenue"`   // completed bookings only
	Potential int `json:"potential"` // every booking on the ledger
}

// GetAdminStats aggregates the triage counters over the ledger.
func GetAdminStats(c *gin.Context) {
	var stats AdminStats
	for _, b := range Store.Bookings() {
		stats.Total++
		switch b.Status {
		case models.StatusPending:
			stats.Pending++
		case models.StatusConfirmed:
			stats.Confirmed++
		case models.StatusCompleted:
			stats.Revenue += b.Total
		}
		stats.Potential += b.Total
	}
	c.JSON(http.StatusOK, stats)
}
