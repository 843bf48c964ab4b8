// controllers/catalog.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixuno-backend/catalog"
	"fixuno-backend/utils"
)

// GetServices returns the full service catalog.
func GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Services())
}

// GetService returns one service by id or deep-link slug.
func GetService(c *gin.Context) {
	slug := c.Param("slug")
	if svc, ok := catalog.FindService(slug); ok {
		c.JSON(http.StatusOK, svc)
		return
	}
	if svc, ok := catalog.FindBySlug(slug); ok {
		c.JSON(http.StatusOK, svc)
		return
	}
	utils.RespondWithError(c, http.StatusNotFound, "Service not found")
}

// SearchCatalog powers the header search dropdown.
func SearchCatalog(c *gin.Context) {
	results := catalog.Search(c.Query("q"))
	if results == nil {
		results = []catalog.SearchResult{}
	}
	c.JSON(http.StatusOK, results)
}

// GetFAQs returns the static FAQ list.
func GetFAQs(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.FAQs())
}
