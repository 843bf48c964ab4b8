// Package catalog holds the static Fixuno service catalog. The data is
// read-only; handlers and the booking flow look services up here instead of
// trusting client-supplied prices.
package catalog

import (
	"strings"

	"fixuno-backend/models"
)

var services = []models.Service{
	{
		ID:          "ac",
		Category:    models.CategoryMaintenance,
		Name:        "AC Service & Repair",
		Description: "Expert installation, repair, and maintenance for all types of air conditioners.",
		SubServices: []models.SubService{
			{ID: "ac-s-jet", Name: "Split AC Jet Service", Price: 599, Description: "Deep cleaning with high-pressure water jet."},
			{ID: "ac-gas", Name: "AC Gas Charge (up to 1.5 ton)", Price: 2499, Description: "Refilling of refrigerant gas to restore cooling."},
			{ID: "ac-s-install", Name: "Split AC Installation", Price: 1499, Description: "Professional installation of new split units."},
			{ID: "ac-inspect", Name: "AC Repair (Inspection Fee)", Price: 299, Description: "Basic visit fee for diagnosis."},
		},
	},
	{
		ID:          "lighting",
		Category:    models.CategoryInstallation,
		Name:        "Lighting & Fixtures",
		Description: "Installation and repair of tube lights, bulb holders, and decorative lighting.",
		SubServices: []models.SubService{
			{ID: "light-tube-install", Name: "Tube Light Installation", Price: 149, Description: "Professional installation of LED tube lights."},
			{ID: "light-decorative", Name: "Decorative/Festive Lights", Price: 499, Description: "Setup of festive lights for home."},
		},
	},
	{
		ID:          "large-appliance",
		Category:    models.CategoryRepair,
		Name:        "Large Appliance Repair",
		Description: "Fixing all major home appliances including refrigerators and washing machines.",
		SubServices: []models.SubService{
			{ID: "app-fridge", Name: "Refrigerator Repair (Inspection)", Price: 299, Description: "Visit and diagnosis of fridge issues."},
			{ID: "app-wm", Name: "Washing Machine Repair (Inspection)", Price: 299, Description: "Inspection charge for washing machine faults."},
		},
	},
	{
		ID:          "wiring",
		Category:    models.CategoryMaintenance,
		Name:        "Home Wiring Solutions",
		Description: "Complete home wiring, re-wiring, and fault detection.",
		SubServices: []models.SubService{
			{ID: "wiring-point", Name: "New Wiring Point (per point)", Price: 299, Description: "Creating new electrical points with basic wiring."},
			{ID: "wiring-fault", Name: "Fault Detection & Repair", Price: 300, Description: "Identifying and fixing short circuits."},
		},
	},
	{
		ID:          "minor_work",
		Category:    models.CategoryRepair,
		Name:        "Minor Home Repairs",
		Description: "Quick fixes for all the small but important jobs around your house.",
		SubServices: []models.SubService{
			{ID: "mw-drilling", Name: "Drill & Hang (per item)", Price: 99, Description: "Drilling for photo frames, clocks, etc."},
			{ID: "mw-hinge", Name: "Door Hinge/Handle Repair", Price: 149, Description: "Fixing loose hinges or handles."},
		},
	},
}

var faqs = []models.FAQ{
	{Question: "How quickly can a technician arrive?", Answer: "Typically within 2-4 hours for major urban areas."},
	{Question: "Are the service charges fixed?", Answer: "The inspection fee is fixed. Final labor depends on work complexity."},
	{Question: "Do you provide warranty?", Answer: "Yes, we provide a 30-day service warranty on all labor."},
}

// Services returns the full catalog.
func Services() []models.Service {
	return services
}

// FAQs returns the static FAQ list.
func FAQs() []models.FAQ {
	return faqs
}

// FindService looks a service up by its id.
func FindService(id string) (models.Service, bool) {
	for _, s := range services {
		if s.ID == id {
			return s, true
		}
	}
	return models.Service{}, false
}

// FindBySlug resolves a deep-link slug such as "ac-repair" or "minor-work"
// to its service. Slugs use hyphens where ids may use underscores, and a
// slug that merely starts with the service id still matches ("/ac-repair"
// opens the "ac" service).
func FindBySlug(slug string) (models.Service, bool) {
	slug = strings.Trim(strings.ToLower(slug), "/")
	if slug == "" {
		return models.Service{}, false
	}
	for _, s := range services {
		id := strings.ReplaceAll(s.ID, "_", "-")
		if slug == id || strings.HasPrefix(slug, id+"-") {
			return s, true
		}
	}
	return models.Service{}, false
}

// FindSubService looks a sub-service up by id across the whole catalog,
// returning it with its parent service.
func FindSubService(id string) (models.SubService, models.Service, bool) {
	for _, s := range services {
		for _, sub := range s.SubServices {
			if sub.ID == id {
				return sub, s, true
			}
		}
		for _, part := range s.Parts {
			if part.ID == id {
				return part, s, true
			}
		}
	}
	return models.SubService{}, models.Service{}, false
}

// SearchResult is one row of the header search dropdown.
type SearchResult struct {
	models.SubService
	ParentName string `json:"parentName"`
	ParentID   string `json:"parentId"`
}

// Search matches sub-services whose own name or parent service name contains
// the query, capped at five results like the storefront dropdown.
func Search(query string) []SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var results []SearchResult
	for _, s := range services {
		for _, sub := range s.SubServices {
			if strings.Contains(strings.ToLower(sub.Name), q) ||
				strings.Contains(strings.ToLower(s.Name), q) {
				results = append(results, SearchResult{SubService: sub, ParentName: s.Name, ParentID: s.ID})
				if len(results) == 5 {
					return results
				}
			}
		}
	}
	return results
}
