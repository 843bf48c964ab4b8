// controllers/tracker.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetTracker returns the live-activity counters for the storefront's
// tracker section.
func GetTracker(c *gin.Context) {
	accomplished, activeTechs := LiveTracker.Counters()
	c.JSON(http.StatusOK, gin.H{
		"accomplished": accomplished,
		"activeTechs":  activeTechs,
	})
}
