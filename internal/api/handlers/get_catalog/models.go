package get_catalog

import (
	"github.com/m04kA/SMC-SalonBooking/internal/catalog"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// CatalogResponse HTTP response model
type CatalogResponse struct {
	Services            []ServiceResponse `json:"services"`
	Addons              []AddonResponse   `json:"addons"`
	PortfolioCategories []OptionResponse  `json:"portfolioCategories"`
	ContactMethods      []OptionResponse  `json:"contactMethods"`
}

type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Category        string  `json:"category"`
}

type AddonResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type OptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FromCatalog собирает ответ из каталога
func FromCatalog(c Catalog) *CatalogResponse {
	resp := &CatalogResponse{
		Services:            make([]ServiceResponse, 0, len(c.Services())),
		Addons:              make([]AddonResponse, 0, len(c.Addons())),
		PortfolioCategories: fromOptions(c.PortfolioCategories()),
		ContactMethods:      fromOptions(c.ContactMethods()),
	}

	for _, s := range c.Services() {
		resp.Services = append(resp.Services, fromService(s))
	}
	for _, a := range c.Addons() {
		resp.Addons = append(resp.Addons, AddonResponse{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			Price:       a.Price,
		})
	}

	return resp
}

func fromService(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		Category:        string(s.Category),
	}
}

func fromOptions(options []catalog.Option) []OptionResponse {
	result := make([]OptionResponse, 0, len(options))
	for _, o := range options {
		result = append(result, OptionResponse{Value: o.Value, Label: o.Label})
	}
	return result
}
