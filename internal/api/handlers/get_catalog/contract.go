package get_catalog

import (
	"github.com/m04kA/SMC-SalonBooking/internal/catalog"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

type Catalog interface {
	Services() []*domain.Service
	Addons() []*domain.Addon
	PortfolioCategories() []catalog.Option
	ContactMethods() []catalog.Option
}
