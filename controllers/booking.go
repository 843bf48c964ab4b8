// controllers/booking.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fixuno-backend/models"
	"fixuno-backend/services"
	"fixuno-backend/utils"
)

// SubmitBooking runs one submission attempt against the session's cart. On
// success the booking is committed, the profile rewritten and the cart
// cleared; the response carries the confirmation display delay for the
// client's success card.
func SubmitBooking(c *gin.Context) {
	var input services.SubmissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	sessionID, cart := Carts.Acquire(c.GetHeader(SessionHeader))

	booking, fieldErrs, err := Submissions.Submit(cart, input)
	if fieldErrs != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"fieldErrors": fieldErrs})
		return
	}
	if errors.Is(err, services.ErrEmptyCart) {
		utils.RespondWithError(c, http.StatusBadRequest, "Your cart is empty")
		return
	}
	if errors.Is(err, services.ErrNotifyFailed) {
		// Retryable: nothing was committed, the cart still holds the items.
		utils.RespondWithError(c, http.StatusBadGateway,
			"Failed to submit booking to backend. Please check your connection and try again.")
		return
	}
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to submit booking")
		return
	}

	c.Header(SessionHeader, sessionID)
	c.JSON(http.StatusCreated, gin.H{
		"booking":             booking,
		"confirmationSeconds": services.ConfirmationSeconds,
	})
}

// GetMyBookings returns the ledger scoped to one phone number, the caller's
// de facto identity. With no phone given, the remembered profile's phone is
// used.
func GetMyBookings(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		if profile := Store.Profile(); profile != nil {
			phone = profile.Phone
		}
	}
	if phone == "" {
		c.JSON(http.StatusOK, []models.Booking{})
		return
	}

	bookings := Store.BookingsForPhone(phone)
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// GetProfile returns the remembered user for booking-form prefill.
func GetProfile(c *gin.Context) {
	profile := Store.Profile()
	if profile == nil {
		c.JSON(http.StatusOK, gin.H{"profile": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// CancelBooking lets a customer withdraw their own request while it is still
// Pending. The phone must match the booking's snapshot.
func CancelBooking(c *gin.Context) {
	id := c.Param("id")
	booking, ok := Store.FindBooking(id)
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		return
	}
	if booking.UserPhone != c.Query("phone") {
		utils.RespondWithError(c, http.StatusForbidden, "This booking belongs to a different phone number")
		return
	}
	if booking.Status != models.StatusPending {
		utils.RespondWithError(c, http.StatusConflict, "Only pending bookings can be cancelled")
		return
	}

	Store.DeleteBooking(id)
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}
