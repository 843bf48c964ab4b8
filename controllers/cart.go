// controllers/cart.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixuno-backend/catalog"
	"fixuno-backend/models"
	"fixuno-backend/utils"
)

// SessionHeader carries the client's cart session id.
const SessionHeader = "X-Cart-Session"

// AddCartItemInput identifies the sub-service being added. Price and parent
// service name come from the catalog, never from the client.
type AddCartItemInput struct {
	SubServiceID string `json:"subServiceId" binding:"required"`
}

// SetQuantityInput carries the replacement quantity. Zero or less removes
// the entry.
type SetQuantityInput struct {
	Quantity int `json:"quantity"`
}

func cartResponse(c *gin.Context, sessionID string, cart *models.Cart) {
	c.Header(SessionHeader, sessionID)
	c.JSON(http.StatusOK, gin.H{
		"sessionId": sessionID,
		"items":     cart.Items(),
		"total":     cart.Total(),
	})
}

// GetCart returns the session's cart, minting a session when none exists.
func GetCart(c *gin.Context) {
	sessionID, cart := Carts.Acquire(c.GetHeader(SessionHeader))
	cartResponse(c, sessionID, cart)
}

// AddCartItem adds one unit of a sub-service, incrementing the quantity when
// the item is already in the cart.
func AddCartItem(c *gin.Context) {
	var input AddCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	sub, parent, ok := catalog.FindSubService(input.SubServiceID)
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Sub-service not found")
		return
	}

	sessionID, cart := Carts.Acquire(c.GetHeader(SessionHeader))
	cart.AddItem(sub, parent.Name)
	cartResponse(c, sessionID, cart)
}

// SetCartQuantity replaces an item's quantity; <= 0 removes it. An unknown
// id is a no-op, matching the cart contract.
func SetCartQuantity(c *gin.Context) {
	var input SetQuantityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	sessionID, cart := Carts.Acquire(c.GetHeader(SessionHeader))
	cart.SetQuantity(c.Param("id"), input.Quantity)
	cartResponse(c, sessionID, cart)
}

// ClearCart empties the session's cart.
func ClearCart(c *gin.Context) {
	sessionID, cart := Carts.Acquire(c.GetHeader(SessionHeader))
	cart.Clear()
	cartResponse(c, sessionID, cart)
}
