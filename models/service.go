package models

// ServiceCategory classifies a catalog service.
type ServiceCategory string

const (
	CategoryRepair       ServiceCategory = "Repair"
	CategoryInstallation ServiceCategory = "Installation"
	CategoryMaintenance  ServiceCategory = "Maintenance"
)

// SubService is a bookable line item. IDs are unique across the whole
// catalog, not just within a parent service, because the cart indexes by
// sub-service id alone.
type SubService struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"` // rupees, whole units
	Description string `json:"description,omitempty"`
}

// Service is a catalog entry grouping sub-services and optional spare parts.
type Service struct {
	ID          string          `json:"id"`
	Category    ServiceCategory `json:"category"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	SubServices []SubService    `json:"subServices"`
	Parts       []SubService    `json:"parts,omitempty"`
}

// FAQ is a static question/answer pair shown on the storefront.
type FAQ struct {
	Question string `json:"q"`
	Answer   string `json:"a"`
}
