// controllers/navigation.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixuno-backend/catalog"
	"fixuno-backend/navigation"
	"fixuno-backend/utils"
)

// ResolvePathInput is the path the SPA shell is about to show.
type ResolvePathInput struct {
	Path string `json:"path" binding:"required"`
}

// ResolvePath maps a deep-link path to the view the shell should render.
// When the path opens a service detail panel, the full service rides along
// so the shell needs no second request.
func ResolvePath(c *gin.Context) {
	var input ResolvePathInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	view := navigation.Resolve(input.Path)
	c.JSON(http.StatusOK, viewResponse("", view))
}

// OpenPanelInput names the modal panel to show over the current view.
type OpenPanelInput struct {
	Panel     string `json:"panel" binding:"required"`
	ServiceID string `json:"serviceId"`
}

func viewResponse(path string, view navigation.View) gin.H {
	resp := gin.H{"view": view}
	if path != "" {
		resp["path"] = path
	}
	if view.Panel == navigation.PanelServiceDetail {
		if svc, ok := catalog.FindService(view.ServiceID); ok {
			resp["service"] = svc
		}
	}
	return resp
}

// GetView returns the session's current path and view without changing them.
func GetView(c *gin.Context) {
	id, path, view := Nav.Current(c.GetHeader(SessionHeader))
	c.Header(SessionHeader, id)
	c.JSON(http.StatusOK, viewResponse(path, view))
}

// NavigateView records a path change for the session, stacking the previous
// path into its back history.
func NavigateView(c *gin.Context) {
	var input ResolvePathInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	id, path, view := Nav.Navigate(c.GetHeader(SessionHeader), input.Path)
	c.Header(SessionHeader, id)
	c.JSON(http.StatusOK, viewResponse(path, view))
}

// OpenViewPanel shows a modal panel for the session without moving the path.
func OpenViewPanel(c *gin.Context) {
	var input OpenPanelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	panel := navigation.Panel(input.Panel)
	if !navigation.ValidPanel(panel) {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown panel: "+input.Panel)
		return
	}
	if panel == navigation.PanelServiceDetail {
		if _, ok := catalog.FindService(input.ServiceID); !ok {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
			return
		}
	}

	id, path, view := Nav.OpenPanel(c.GetHeader(SessionHeader), panel, input.ServiceID)
	c.Header(SessionHeader, id)
	c.JSON(http.StatusOK, viewResponse(path, view))
}

// NavigateBack applies the back gesture: an open panel is dismissed first;
// only with no panel open does the path history pop.
func NavigateBack(c *gin.Context) {
	id, path, view := Nav.Back(c.GetHeader(SessionHeader))
	c.Header(SessionHeader, id)
	c.JSON(http.StatusOK, viewResponse(path, view))
}
