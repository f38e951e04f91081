package domain

// ServiceCategory group of a salon service
type ServiceCategory string

const (
	CategoryManicure ServiceCategory = "manicure"
	CategoryPedicure ServiceCategory = "pedicure"
	CategoryNailArt  ServiceCategory = "nailart"
	CategoryOther    ServiceCategory = "other"
)

// Service a bookable salon service. Static, defined in the catalog.
type Service struct {
	ID              string
	Name            string
	Description     string
	DurationMinutes int
	Price           float64
	Category        ServiceCategory
}

// Addon an optional extra for a service. Static, defined in the catalog.
type Addon struct {
	ID          string
	Name        string
	Description string
	Price       float64
}

// EstimatedTotal service price plus the prices of the selected add-ons
func EstimatedTotal(service *Service, addons []*Addon) float64 {
	if service == nil {
		return 0
	}
	total := service.Price
	for _, a := range addons {
		total += a.Price
	}
	return total
}
