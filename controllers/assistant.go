// controllers/assistant.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixuno-backend/catalog"
	"fixuno-backend/utils"
)

// ChatInput is a free-text question for the assistant widget.
type ChatInput struct {
	Message string `json:"message" binding:"required"`
}

// ExplainInput names the sub-service the detail modal wants described.
type ExplainInput struct {
	SubServiceID string `json:"subServiceId" binding:"required"`
}

// AssistantChat answers a storefront question. The assistant never returns
// a technical error string; failures become on-brand fallback copy, so this
// endpoint always responds 200.
func AssistantChat(c *gin.Context) {
	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": Bot.Chat(c.Request.Context(), input.Message)})
}

// AssistantExplain describes why a sub-service matters.
func AssistantExplain(c *gin.Context) {
	var input ExplainInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	sub, parent, ok := catalog.FindSubService(input.SubServiceID)
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Sub-service not found")
		return
	}

	reply := Bot.ExplainService(c.Request.Context(), parent.Name, sub.Name, sub.Price)
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
