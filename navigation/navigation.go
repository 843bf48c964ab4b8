// Package navigation models the storefront's view state: which modal panel
// is open, which home section is foregrounded, and how the browser back
// gesture interacts with both. Panels are exclusive by construction; the
// controller holds a single tagged view value instead of one flag per modal.
package navigation

import (
	"strings"

	"fixuno-backend/catalog"
)

// Panel identifies the modal overlays the storefront can show.
type Panel string

const (
	PanelNone          Panel = ""
	PanelServiceDetail Panel = "serviceDetail"
	PanelBookingForm   Panel = "bookingForm"
	PanelHistory       Panel = "history"
	PanelAdmin         Panel = "admin"
	PanelContact       Panel = "contact"
	PanelChat          Panel = "chat"
)

// ValidPanel reports whether p names a panel the storefront can open.
func ValidPanel(p Panel) bool {
	switch p {
	case PanelNone, PanelServiceDetail, PanelBookingForm, PanelHistory,
		PanelAdmin, PanelContact, PanelChat:
		return true
	}
	return false
}

// Section is the home-page area scrolled into view when no panel covers it.
type Section string

const (
	SectionHome     Section = "home"
	SectionServices Section = "services"
	SectionReviews  Section = "reviews"
)

// View is the single source of truth for what is on screen.
type View struct {
	Panel     Panel   `json:"panel"`
	ServiceID string  `json:"serviceId,omitempty"` // set when Panel is serviceDetail
	Section   Section `json:"section"`
}

// Resolve maps a path to the view it deep-links to. Known fixed paths come
// first; anything else is tried as a service slug and falls back to home.
func Resolve(path string) View {
	clean := strings.Trim(strings.ToLower(strings.TrimSpace(path)), "/")
	switch clean {
	case "":
		return View{Section: SectionHome}
	case "service", "services":
		return View{Section: SectionServices}
	case "reviews":
		return View{Section: SectionReviews}
	case "contact-us":
		return View{Panel: PanelContact, Section: SectionHome}
	}
	if svc, ok := catalog.FindBySlug(clean); ok {
		return View{Panel: PanelServiceDetail, ServiceID: svc.ID, Section: SectionServices}
	}
	return View{Section: SectionHome}
}

// Controller tracks the current path, the back/forward history, and the
// active view. It is not safe for concurrent use; each storefront client
// owns its own controller.
type Controller struct {
	path    string
	history []string
	view    View
}

func NewController() *Controller {
	return &Controller{path: "/", view: Resolve("/")}
}

// Path returns the current location.
func (c *Controller) Path() string {
	return c.path
}

// Current returns the active view.
func (c *Controller) Current() View {
	return c.view
}

// Navigate records the path so back can restore it, then applies the view
// the path resolves to.
func (c *Controller) Navigate(path string) View {
	if path == "" {
		path = "/"
	}
	if path != c.path {
		c.history = append(c.history, c.path)
		c.path = path
	}
	c.view = Resolve(path)
	return c.view
}

// OpenPanel shows a panel without changing the path, the way the booking
// form, history, admin and chat overlays are opened from UI actions.
func (c *Controller) OpenPanel(p Panel, serviceID string) View {
	c.view.Panel = p
	c.view.ServiceID = ""
	if p == PanelServiceDetail {
		c.view.ServiceID = serviceID
	}
	return c.view
}

// ClosePanels dismisses whatever panel is open.
func (c *Controller) ClosePanels() View {
	c.view.Panel = PanelNone
	c.view.ServiceID = ""
	return c.view
}

// Back applies the browser back gesture. A back with any panel open only
// dismisses the panel; the path does not move until a later back finds no
// panel to close.
func (c *Controller) Back() View {
	if c.view.Panel != PanelNone {
		return c.ClosePanels()
	}
	if n := len(c.history); n > 0 {
		c.path = c.history[n-1]
		c.history = c.history[:n-1]
		c.view = Resolve(c.path)
	}
	return c.view
}
